package teachers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/logger"
	"greenhill-schools/app/models"
)

var validate = validator.New()

func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.ListUsersByRole(config.GetDB(), models.RoleTeacher)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	type CreateTeacherRequest struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Phone     string `json:"phone"`
	}

	var req CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := database.CreateUser(config.GetDB(), user, req.Password, models.RoleTeacher); err != nil {
		logger.Log.Error().Err(err).Str("email", req.Email).Msg("failed to create teacher account")
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create teacher"})
	}
	user.Password = ""

	return c.Status(201).JSON(fiber.Map{"success": true, "teacher": user})
}
