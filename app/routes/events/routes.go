package events

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/models"
	"greenhill-schools/app/routes/auth"
)

func SetupEventsRoutes(app *fiber.App) {
	api := app.Group("/api/events")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetEventsAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateEventAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateEventAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteEventAPI)
}
