package settings

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
)

func GetSettingsAPI(c *fiber.Ctx) error {
	settings, err := database.GetSettings(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch settings"})
	}

	return c.JSON(fiber.Map{"success": true, "settings": settings})
}

func UpdateSettingAPI(c *fiber.Ctx) error {
	type UpdateSettingRequest struct {
		Value string `json:"value"`
	}

	var req UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	key := c.Params("key")
	if err := database.UpsertSetting(config.GetDB(), key, req.Value); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save setting"})
	}

	return c.JSON(fiber.Map{"success": true, "key": key, "value": req.Value})
}
