package gallery

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/models"
)

var validate = validator.New()

// GalleryPage is public: visitors can browse school photos without logging in.
func GalleryPage(c *fiber.Ctx) error {
	photos, err := database.GetGalleryPhotos(config.GetDB())
	if err != nil {
		photos = []*models.GalleryPhoto{}
	}

	return c.Render("gallery/index", fiber.Map{
		"Title":  "Gallery - Greenhill Schools",
		"photos": photos,
	}, "")
}

func GetPhotosAPI(c *fiber.Ctx) error {
	photos, err := database.GetGalleryPhotos(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch photos"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"photos":  photos,
		"count":   len(photos),
	})
}

// CreatePhotoAPI records gallery photo metadata. The file itself is served
// from the static directory; how it gets there is not this handler's concern.
func CreatePhotoAPI(c *fiber.Ctx) error {
	type CreatePhotoRequest struct {
		Title    string  `json:"title" validate:"required"`
		Caption  *string `json:"caption"`
		FilePath string  `json:"file_path" validate:"required"`
	}

	var req CreatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	photo := &models.GalleryPhoto{
		Title:      req.Title,
		Caption:    req.Caption,
		FilePath:   req.FilePath,
		UploadedBy: c.Locals("user_id").(string),
	}
	if err := database.CreateGalleryPhoto(config.GetDB(), photo); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save photo"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "photo": photo})
}

func DeletePhotoAPI(c *fiber.Ctx) error {
	if err := database.DeleteGalleryPhoto(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete photo"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Photo deleted"})
}
