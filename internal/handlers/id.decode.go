package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/idgen-api/internal/domain/vo"
)

type IDDecodeService interface {
	Decode(ctx context.Context, raw string) (vo.DecodedID, error)
	Node(ctx context.Context) vo.NodeInfo
}

type IDDecodeHandler struct {
	service IDDecodeService
	logger  *slog.Logger
}

func NewIDDecodeHandler(service IDDecodeService, logger *slog.Logger) *IDDecodeHandler {
	return &IDDecodeHandler{service: service, logger: logger}
}

func (h *IDDecodeHandler) Register(router fiber.Router, scope fiber.Handler) {
	router.Get("/ids/:id", scope, h.Handle)
	router.Get("/node", scope, h.HandleNode)
}

func (h *IDDecodeHandler) Handle(c fiber.Ctx) error {
	decoded, err := h.service.Decode(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, vo.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		h.logger.Error("failed to decode id", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	return c.Status(fiber.StatusOK).JSON(decoded)
}

func (h *IDDecodeHandler) HandleNode(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.service.Node(c.Context()))
}
