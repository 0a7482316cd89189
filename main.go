package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/logger"
	"greenhill-schools/app/results"
	"greenhill-schools/app/routes/auth"
	"greenhill-schools/app/routes/classes"
	"greenhill-schools/app/routes/dashboard"
	"greenhill-schools/app/routes/events"
	"greenhill-schools/app/routes/exams"
	"greenhill-schools/app/routes/fees"
	"greenhill-schools/app/routes/gallery"
	"greenhill-schools/app/routes/marks"
	"greenhill-schools/app/routes/notices"
	"greenhill-schools/app/routes/parents"
	"greenhill-schools/app/routes/public"
	"greenhill-schools/app/routes/settings"
	"greenhill-schools/app/routes/students"
	"greenhill-schools/app/routes/subjects"
	"greenhill-schools/app/routes/teachers"
	"greenhill-schools/app/services"
)

// customErrorHandler renders error pages for web requests and JSON for the API.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Page Not Found - Greenhill Schools",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - Greenhill Schools",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error - Greenhill Schools",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Greenhill Schools",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogDir); err != nil {
		panic(err)
	}

	loc, err := time.LoadLocation("Africa/Kampala")
	if err != nil {
		logger.Log.Warn().Err(err).Msg("falling back to fixed UTC+3")
		time.Local = time.FixedZone("EAT", 3*60*60)
	} else {
		time.Local = loc
	}

	if err := config.InitDB(cfg); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer config.GetDB().Close()

	if err := database.RunStartupMigrations(config.GetDB()); err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to apply schema guards")
	}

	// Results engine over the shared pool; publication policy from env.
	resultsEngine := results.NewEngine(results.NewPostgresStore(config.GetDB()))
	resultsEngine.UnpublishOnEdit = cfg.UnpublishOnEdit

	services.StartScheduler(config.GetDB())

	engine := html.New(cfg.TemplateDir, ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New())

	app.Static("/static", cfg.StaticDir)
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendFile(cfg.StaticDir + "/favicon.ico")
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	classes.SetupClassesRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	students.SetupStudentsRoutes(app)
	teachers.SetupTeachersRoutes(app)
	parents.SetupParentsRoutes(app)
	exams.SetupExamsRoutes(app)
	marks.SetupMarksRoutes(app, resultsEngine)
	public.SetupPublicRoutes(app, resultsEngine)
	notices.SetupNoticesRoutes(app)
	events.SetupEventsRoutes(app)
	gallery.SetupGalleryRoutes(app)
	fees.SetupFeesRoutes(app)
	settings.SetupSettingsRoutes(app)

	// Catch-all for 404s, must be registered last.
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Log.Info().Str("addr", addr).Msg("server starting")
	if err := app.Listen(addr); err != nil {
		logger.Log.Fatal().Err(err).Msg("server stopped")
	}
}
