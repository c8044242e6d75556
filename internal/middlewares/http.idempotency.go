package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	sharedidempotency "github.com/joshuarp/idgen-api/internal/shared/idempotency"
)

const IdempotencyKeyHeader = "X-Idempotency-Key"

type IdempotencyConfig struct {
	Store sharedidempotency.Store

	// Scope namespaces keys per route; the client id is appended.
	Scope string

	LockTTL time.Duration

	// Required rejects requests without IdempotencyKeyHeader. When false such
	// requests pass through untracked.
	Required bool

	Logger *slog.Logger
}

func NewHTTPIdempotencyMiddleware(cfg IdempotencyConfig) fiber.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		idempotencyKey := strings.TrimSpace(c.Get(IdempotencyKeyHeader))
		if idempotencyKey == "" {
			if cfg.Required {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing idempotency key"})
			}
			return c.Next()
		}

		if cfg.Store == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "idempotency store is not available"})
		}

		clientID := strings.TrimSpace(ClientIDFromContext(c))
		if clientID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authenticated client"})
		}

		request := sharedidempotency.Request{
			Scope:       cfg.Scope + ":" + clientID,
			Key:         idempotencyKey,
			RequestHash: requestHash(c.Method(), c.Path(), clientID, c.BodyRaw()),
			LockTTL:     cfg.LockTTL,
		}

		decision, err := cfg.Store.Acquire(c.Context(), request)
		if err != nil {
			cfg.Logger.Error("idempotency acquire failed", "error", err, "scope", request.Scope)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to acquire idempotency key"})
		}

		switch decision.Type {
		case sharedidempotency.DecisionReplay:
			if decision.ContentType != "" {
				c.Set(fiber.HeaderContentType, decision.ContentType)
			}
			if decision.StatusCode <= 0 {
				decision.StatusCode = fiber.StatusOK
			}
			return c.Status(decision.StatusCode).Send(decision.Body)
		case sharedidempotency.DecisionInProgress:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "request is already in progress"})
		case sharedidempotency.DecisionConflict:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "idempotency key reused with different payload"})
		case sharedidempotency.DecisionAcquired:
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "invalid idempotency state"})
		}

		handlerErr := c.Next()
		statusCode := c.Response().StatusCode()

		// server failures are not recorded so the client can retry the key
		if handlerErr != nil || statusCode >= fiber.StatusInternalServerError {
			if err := cfg.Store.Release(c.Context(), request); err != nil {
				cfg.Logger.Warn("idempotency release failed", "error", err, "scope", request.Scope)
			}
			return handlerErr
		}

		response := sharedidempotency.StoredResponse{
			StatusCode:  statusCode,
			Body:        append([]byte(nil), c.Response().Body()...),
			ContentType: string(c.Response().Header.ContentType()),
		}
		if err := cfg.Store.Complete(c.Context(), request, response); err != nil {
			cfg.Logger.Error("idempotency complete failed", "error", err, "scope", request.Scope)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to persist idempotency response"})
		}
		return nil
	}
}

func requestHash(method, path, clientID string, body []byte) string {
	hasher := sha256.New()
	hasher.Write([]byte(strings.ToUpper(strings.TrimSpace(method))))
	hasher.Write([]byte("\n"))
	hasher.Write([]byte(strings.TrimSpace(path)))
	hasher.Write([]byte("\n"))
	hasher.Write([]byte(strings.TrimSpace(clientID)))
	hasher.Write([]byte("\n"))
	hasher.Write(body)

	return hex.EncodeToString(hasher.Sum(nil))
}
