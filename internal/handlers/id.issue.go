package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/idgen-api/internal/domain/vo"
	"github.com/joshuarp/idgen-api/internal/middlewares"
	shareduid "github.com/joshuarp/idgen-api/internal/shared/uid"
)

type IDIssueService interface {
	Issue(ctx context.Context) (vo.IssuedID, error)
	IssueBatch(ctx context.Context, count int) (vo.IssuedIDBatch, error)
}

type IDIssueHandler struct {
	service IDIssueService
	logger  *slog.Logger
}

func NewIDIssueHandler(service IDIssueService, logger *slog.Logger) *IDIssueHandler {
	return &IDIssueHandler{service: service, logger: logger}
}

func (h *IDIssueHandler) Register(router fiber.Router, scope, rateLimit fiber.Handler) {
	router.Get("/ids", scope, rateLimit, h.Handle)
}

func (h *IDIssueHandler) Handle(c fiber.Ctx) error {
	issued, err := h.service.Issue(c.Context())
	if err != nil {
		return issueErrorResponse(c, h.logger, err)
	}

	return c.Status(fiber.StatusOK).JSON(issued)
}

// issueErrorResponse maps generator failures. A backwards clock is
// transient, so callers are told to retry.
func issueErrorResponse(c fiber.Ctx, logger *slog.Logger, err error) error {
	switch {
	case errors.Is(err, vo.ErrInvalidBatchSize):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, shareduid.ErrClockRegression):
		logger.Warn("id generation refused", "request_id", middlewares.RequestIDFromContext(c), "error", err)
		c.Set(fiber.HeaderRetryAfter, "1")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "clock moved backwards, retry shortly"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "request cancelled"})
	case errors.Is(err, shareduid.ErrTimestampOutOfRange):
		logger.Error("id timestamp out of range", "request_id", middlewares.RequestIDFromContext(c), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "id space exhausted for the configured epoch"})
	default:
		logger.Error("failed to issue id", "request_id", middlewares.RequestIDFromContext(c), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
