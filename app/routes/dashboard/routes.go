package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	dash := app.Group("/dashboard")
	dash.Use(auth.AuthMiddleware)
	dash.Get("/", DashboardPage)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetStatsAPI)
}

func DashboardPage(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		stats = nil
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - Greenhill Schools",
		"CurrentPage": "dashboard",
		"stats":       stats,
		"user":        c.Locals("user"),
	})
}

func GetStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}
