package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/idgen-api/internal/domain/vo"
)

type FileDeleteHandler struct {
	service FileObjectService
	logger  *slog.Logger
}

type fileDeleteRequest struct {
	Bucket      string   `json:"bucket"`
	ObjectNames []string `json:"object_names"`
}

func NewFileDeleteHandler(service FileObjectService, logger *slog.Logger) *FileDeleteHandler {
	return &FileDeleteHandler{service: service, logger: logger}
}

func (h *FileDeleteHandler) Register(router fiber.Router, scope fiber.Handler) {
	router.Delete("/files", scope, h.Handle)
}

func (h *FileDeleteHandler) Handle(c fiber.Ctx) error {
	var requestBody fileDeleteRequest
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.service.Delete(c.Context(), requestBody.Bucket, requestBody.ObjectNames); err != nil {
		switch {
		case errors.Is(err, vo.ErrNoObjectNames):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "object_names must not be empty"})
		case errors.Is(err, vo.ErrBucketRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bucket is required"})
		case errors.Is(err, vo.ErrBucketNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "bucket not found"})
		default:
			h.logger.Error("failed to delete files", "bucket", requestBody.Bucket, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}
