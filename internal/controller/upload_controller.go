package controller

import (
	"agroadvisor-be/internal/dto"
	"agroadvisor-be/internal/pkg/serverutils"
	"agroadvisor-be/internal/pkg/storage"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	UploadImage(ctx *fiber.Ctx) error
}

type uploadController struct {
	store storage.UploadStore
}

func NewUploadController(store storage.UploadStore) IUploadController {
	return &uploadController{store: store}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload_image", serverutils.JwtMiddleware, c.UploadImage)
}

func (c *uploadController) UploadImage(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image file provided"})
	}
	if fileHeader.Filename == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No selected file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save file"})
	}
	defer file.Close()

	filename, err := c.store.Save(fileHeader.Filename, file)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save file"})
	}

	return ctx.JSON(dto.UploadImageResponse{ImageFilename: filename})
}
