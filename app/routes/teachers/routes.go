package teachers

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/models"
	"greenhill-schools/app/routes/auth"
)

func SetupTeachersRoutes(app *fiber.App) {
	teachers := app.Group("/teachers")
	teachers.Use(auth.AuthMiddleware)
	teachers.Get("/", TeachersPage)

	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTeachersAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateTeacherAPI)
}

func TeachersPage(c *fiber.Ctx) error {
	return c.Render("teachers/index", fiber.Map{
		"Title":       "Teachers - Greenhill Schools",
		"CurrentPage": "teachers",
		"user":        c.Locals("user"),
	})
}
