package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

type IDIssueBatchHandler struct {
	service IDIssueService
	logger  *slog.Logger
}

type idBatchRequest struct {
	Count int `json:"count"`
}

func NewIDIssueBatchHandler(service IDIssueService, logger *slog.Logger) *IDIssueBatchHandler {
	return &IDIssueBatchHandler{service: service, logger: logger}
}

func (h *IDIssueBatchHandler) Register(router fiber.Router, scope, rateLimit, idempotency fiber.Handler) {
	router.Post("/ids/batch", scope, rateLimit, idempotency, h.Handle)
}

func (h *IDIssueBatchHandler) Handle(c fiber.Ctx) error {
	var requestBody idBatchRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	batch, err := h.service.IssueBatch(c.Context(), requestBody.Count)
	if err != nil {
		return issueErrorResponse(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(batch)
}
