package classes

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/models"
	"greenhill-schools/app/routes/auth"
)

func SetupClassesRoutes(app *fiber.App) {
	classes := app.Group("/classes")
	classes.Use(auth.AuthMiddleware)
	classes.Get("/", ClassesPage)
	classes.Get("/:id", ClassDetailPage)

	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetClassesAPI)
	api.Get("/:id", GetClassAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin), CreateClassAPI)
	api.Put("/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateClassAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteClassAPI)
}

func ClassesPage(c *fiber.Ctx) error {
	classes, err := database.GetClasses(config.GetDB())
	if err != nil {
		classes = []*models.Class{}
	}

	return c.Render("classes/index", fiber.Map{
		"Title":       "Classes - Greenhill Schools",
		"CurrentPage": "classes",
		"classes":     classes,
		"user":        c.Locals("user"),
	})
}

func ClassDetailPage(c *fiber.Ctx) error {
	class, err := database.GetClassByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(404).SendString("Class not found")
	}

	subjects, err := database.GetSubjectsByClass(config.GetDB(), class.ID)
	if err != nil {
		subjects = []*models.Subject{}
	}

	return c.Render("classes/detail", fiber.Map{
		"Title":       class.Name + " - Greenhill Schools",
		"CurrentPage": "classes",
		"class":       class,
		"subjects":    subjects,
		"user":        c.Locals("user"),
	})
}
