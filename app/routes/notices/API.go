package notices

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/models"
)

var validate = validator.New()

func GetNoticesAPI(c *fiber.Ctx) error {
	notices, err := database.GetNotices(config.GetDB(), c.Query("audience"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch notices"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"notices": notices,
		"count":   len(notices),
	})
}

func CreateNoticeAPI(c *fiber.Ctx) error {
	type CreateNoticeRequest struct {
		Title     string     `json:"title" validate:"required"`
		Body      string     `json:"body" validate:"required"`
		Audience  string     `json:"audience" validate:"omitempty,oneof=all teachers students parents"`
		ExpiresAt *time.Time `json:"expires_at"`
	}

	var req CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Audience == "" {
		req.Audience = "all"
	}

	notice := &models.Notice{
		Title:     req.Title,
		Body:      req.Body,
		Audience:  req.Audience,
		ExpiresAt: req.ExpiresAt,
		CreatedBy: c.Locals("user_id").(string),
	}
	if err := database.CreateNotice(config.GetDB(), notice); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create notice"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "notice": notice})
}

func UpdateNoticeAPI(c *fiber.Ctx) error {
	var notice models.Notice
	if err := c.BodyParser(&notice); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	notice.ID = c.Params("id")

	if err := database.UpdateNotice(config.GetDB(), &notice); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Notice not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update notice"})
	}

	return c.JSON(fiber.Map{"success": true, "notice": notice})
}

func DeleteNoticeAPI(c *fiber.Ctx) error {
	if err := database.DeleteNotice(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete notice"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Notice deleted"})
}
