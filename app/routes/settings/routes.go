package settings

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/models"
	"greenhill-schools/app/routes/auth"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetSettingsAPI)
	api.Put("/:key", auth.RoleMiddleware(models.RoleAdmin), UpdateSettingAPI)
}
