package exams

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/models"
	"greenhill-schools/app/routes/auth"
)

func SetupExamsRoutes(app *fiber.App) {
	exams := app.Group("/exams")
	exams.Use(auth.AuthMiddleware)
	exams.Get("/", ExamsPage)

	api := app.Group("/api/exams")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetExamsAPI)
	api.Get("/:id", GetExamAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateExamAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateExamAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteExamAPI)
}

func ExamsPage(c *fiber.Ctx) error {
	exams, err := database.GetExams(config.GetDB(), c.Query("class_id"))
	if err != nil {
		exams = []*models.Exam{}
	}

	return c.Render("exams/index", fiber.Map{
		"Title":       "Exams - Greenhill Schools",
		"CurrentPage": "exams",
		"exams":       exams,
		"user":        c.Locals("user"),
	})
}
