package parents

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/models"
)

var validate = validator.New()

func GetParentsAPI(c *fiber.Ctx) error {
	parents, err := database.GetParents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch parents"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"parents": parents,
		"count":   len(parents),
	})
}

func GetParentAPI(c *fiber.Ctx) error {
	parent, err := database.GetParentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Parent not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch parent"})
	}

	return c.JSON(fiber.Map{"success": true, "parent": parent})
}

func CreateParentAPI(c *fiber.Ctx) error {
	type CreateParentRequest struct {
		FirstName    string  `json:"first_name" validate:"required"`
		LastName     string  `json:"last_name" validate:"required"`
		Email        *string `json:"email" validate:"omitempty,email"`
		Phone        string  `json:"phone" validate:"required"`
		Relationship string  `json:"relationship" validate:"omitempty,oneof=father mother guardian other"`
	}

	var req CreateParentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Relationship == "" {
		req.Relationship = string(models.Guardian)
	}

	parent := &models.Parent{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Relationship: models.RelationshipType(req.Relationship),
	}
	if err := database.CreateParent(config.GetDB(), parent); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create parent"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "parent": parent})
}

func UpdateParentAPI(c *fiber.Ctx) error {
	parent, err := database.GetParentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Parent not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch parent"})
	}

	if err := c.BodyParser(parent); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	parent.ID = c.Params("id")

	if err := database.UpdateParent(config.GetDB(), parent); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Parent not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update parent"})
	}

	return c.JSON(fiber.Map{"success": true, "parent": parent})
}

func DeleteParentAPI(c *fiber.Ctx) error {
	if err := database.DeleteParent(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete parent"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Parent deleted"})
}

func LinkStudentAPI(c *fiber.Ctx) error {
	if err := database.LinkParentStudent(config.GetDB(), c.Params("id"), c.Params("studentId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to link student"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Student linked"})
}

func UnlinkStudentAPI(c *fiber.Ctx) error {
	if err := database.UnlinkParentStudent(config.GetDB(), c.Params("id"), c.Params("studentId")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to unlink student"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Student unlinked"})
}
