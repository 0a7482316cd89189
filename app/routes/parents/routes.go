package parents

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/models"
	"greenhill-schools/app/routes/auth"
)

func SetupParentsRoutes(app *fiber.App) {
	api := app.Group("/api/parents")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetParentsAPI)
	api.Get("/:id", GetParentAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateParentAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateParentAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteParentAPI)
	api.Post("/:id/students/:studentId", auth.RoleMiddleware(models.RoleAdmin), LinkStudentAPI)
	api.Delete("/:id/students/:studentId", auth.RoleMiddleware(models.RoleAdmin), UnlinkStudentAPI)
}
