package public

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/results"
)

var engine *results.Engine

// SetupPublicRoutes registers the anonymous result checker. Nothing in this
// package sits behind the auth middleware.
func SetupPublicRoutes(app *fiber.App, e *results.Engine) {
	engine = e

	app.Get("/results/check", ResultCheckerPage)
	app.Get("/api/public/exams", ListExamsAPI)
	app.Get("/api/public/results", CheckResultAPI)
}

func ResultCheckerPage(c *fiber.Ctx) error {
	return c.Render("public/result-checker", fiber.Map{
		"Title": "Check Results - Greenhill Schools",
	}, "")
}
