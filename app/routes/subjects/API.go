package subjects

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/models"
)

var validate = validator.New()

func GetSubjectsByClassAPI(c *fiber.Ctx) error {
	subjects, err := database.GetSubjectsByClass(config.GetDB(), c.Params("classId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"subjects": subjects,
		"count":    len(subjects),
	})
}

func GetSubjectAPI(c *fiber.Ctx) error {
	subject, err := database.GetSubjectByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}

	return c.JSON(fiber.Map{"success": true, "subject": subject})
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	type CreateSubjectRequest struct {
		ClassID string  `json:"class_id" validate:"required,uuid"`
		Name    string  `json:"name" validate:"required"`
		Code    *string `json:"code"`
	}

	var req CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	subject := &models.Subject{ClassID: req.ClassID, Name: req.Name, Code: req.Code, IsActive: true}
	if err := database.CreateSubject(config.GetDB(), subject); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "subject": subject})
}

func UpdateSubjectAPI(c *fiber.Ctx) error {
	subject, err := database.GetSubjectByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}

	if err := c.BodyParser(subject); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	subject.ID = c.Params("id")

	if err := database.UpdateSubject(config.GetDB(), subject); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
	}

	return c.JSON(fiber.Map{"success": true, "subject": subject})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	if err := database.DeleteSubject(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Subject deleted"})
}
