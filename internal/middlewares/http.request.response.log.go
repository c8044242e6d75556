package middlewares

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
)

var clientIPHeaders = []string{
	fiber.HeaderXForwardedFor,
	"Proxy-Client-IP",
	"WL-Proxy-Client-IP",
	"X-Real-IP",
}

func NewHTTPRequestResponseLogMiddleware(logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		start := time.Now().UTC()
		err := c.Next()
		latency := time.Since(start)

		statusCode := c.Response().StatusCode()
		if err != nil {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				statusCode = fiberErr.Code
			}
		}

		attrs := []any{
			"request_id", RequestIDFromContext(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", statusCode,
			"latency_ms", latency.Milliseconds(),
			"client_ip", ClientIP(c),
			"user_agent", c.Get(fiber.HeaderUserAgent),
		}
		if clientID := ClientIDFromContext(c); clientID != "" {
			attrs = append(attrs, "client_id", clientID)
		}

		switch {
		case err != nil:
			logger.Error("http_request", append(attrs, "error", err.Error())...)
			return err
		case statusCode >= fiber.StatusInternalServerError:
			logger.Error("http_request", attrs...)
		case statusCode >= fiber.StatusBadRequest:
			logger.Warn("http_request", attrs...)
		default:
			logger.Info("http_request", attrs...)
		}
		return nil
	}
}

// ClientIP resolves the caller address through proxy headers, first hop
// first, before falling back to the socket address.
func ClientIP(c fiber.Ctx) string {
	for _, header := range clientIPHeaders {
		value := strings.TrimSpace(c.Get(header))
		if value == "" {
			continue
		}
		first := strings.TrimSpace(strings.Split(value, ",")[0])
		if first != "" && !strings.EqualFold(first, "unknown") {
			return normalizeLoopback(first)
		}
	}
	return normalizeLoopback(c.IP())
}

func normalizeLoopback(ip string) string {
	if ip == "::1" || ip == "0:0:0:0:0:0:0:1" {
		return "127.0.0.1"
	}
	return ip
}
