package marks

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/results"
	"greenhill-schools/app/routes/auth"
)

// engine is shared by the handlers, set once during route setup.
var engine *results.Engine

func SetupMarksRoutes(app *fiber.App, e *results.Engine) {
	engine = e

	marks := app.Group("/marks")
	marks.Use(auth.AuthMiddleware)
	marks.Get("/", MarksEntryPage)

	api := app.Group("/api/marks")
	api.Use(auth.AuthMiddleware)
	api.Post("/", RecordMarksAPI)
	api.Get("/exam/:examId", GetExamMarksAPI)
	api.Get("/exam/:examId/summary", GetVerificationSummaryAPI)
	api.Post("/exam/:examId/verify-all", VerifyAllAPI)
	api.Post("/exam/:examId/publish", PublishResultsAPI)
	api.Post("/exam/:examId/students/:studentId/verify", VerifyStudentAPI)
	api.Post("/exam/:examId/students/:studentId/unverify", UnverifyStudentAPI)
	api.Get("/exam/:examId/students/:studentId/result", GetStudentResultAPI)
	api.Get("/exam/:examId/students/:studentId/report-card", GetReportCardAPI)
}

func MarksEntryPage(c *fiber.Ctx) error {
	return c.Render("marks/index", fiber.Map{
		"Title":       "Marks Entry - Greenhill Schools",
		"CurrentPage": "marks",
		"user":        c.Locals("user"),
	})
}
