package subjects

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/models"
	"greenhill-schools/app/routes/auth"
)

func SetupSubjectsRoutes(app *fiber.App) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)
	api.Get("/class/:classId", GetSubjectsByClassAPI)
	api.Get("/:id", GetSubjectAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateSubjectAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateSubjectAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteSubjectAPI)
}
