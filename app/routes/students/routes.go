package students

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/models"
	"greenhill-schools/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)
	students.Get("/", StudentsPage)
	students.Get("/:id", StudentDetailPage)

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateStudentAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateStudentAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteStudentAPI)
}

func StudentsPage(c *fiber.Ctx) error {
	classes, err := database.GetActiveClassesSimple(config.GetDB())
	if err != nil {
		classes = []models.Class{}
	}

	return c.Render("students/index", fiber.Map{
		"Title":       "Students - Greenhill Schools",
		"CurrentPage": "students",
		"classes":     classes,
		"user":        c.Locals("user"),
	})
}

func StudentDetailPage(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(404).SendString("Student not found")
	}

	return c.Render("students/detail", fiber.Map{
		"Title":       student.FullName() + " - Greenhill Schools",
		"CurrentPage": "students",
		"student":     student,
		"user":        c.Locals("user"),
	})
}
