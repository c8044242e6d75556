package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/idgen-api/internal/domain/vo"
	"github.com/joshuarp/idgen-api/internal/middlewares"
)

type FileObjectService interface {
	Upload(ctx context.Context, upload vo.FileUpload) (vo.StoredFile, error)
	Delete(ctx context.Context, bucket string, objectNames []string) error
}

type FileUploadHandler struct {
	service FileObjectService
	logger  *slog.Logger
}

func NewFileUploadHandler(service FileObjectService, logger *slog.Logger) *FileUploadHandler {
	return &FileUploadHandler{service: service, logger: logger}
}

func (h *FileUploadHandler) Register(router fiber.Router, scope fiber.Handler) {
	router.Post("/files", scope, h.Handle)
}

func (h *FileUploadHandler) Handle(c fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "multipart field \"file\" is required",
		})
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Error("failed to open upload", "filename", header.Filename, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	defer file.Close()

	stored, err := h.service.Upload(c.Context(), vo.FileUpload{
		Bucket:       c.FormValue("bucket"),
		OriginalName: header.Filename,
		ContentType:  header.Header.Get(fiber.HeaderContentType),
		Size:         header.Size,
		Body:         file,
	})
	if err != nil {
		switch {
		case errors.Is(err, vo.ErrEmptyFile):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is empty"})
		case errors.Is(err, vo.ErrFileTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, vo.ErrBucketRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bucket is required"})
		default:
			h.logger.Error("failed to upload file",
				"request_id", middlewares.RequestIDFromContext(c),
				"client_id", middlewares.ClientIDFromContext(c),
				"filename", header.Filename,
				"error", err,
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(stored)
}
