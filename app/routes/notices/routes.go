package notices

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/models"
	"greenhill-schools/app/routes/auth"
)

func SetupNoticesRoutes(app *fiber.App) {
	api := app.Group("/api/notices")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetNoticesAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateNoticeAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateNoticeAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteNoticeAPI)
}
