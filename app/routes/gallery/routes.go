package gallery

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/models"
	"greenhill-schools/app/routes/auth"
)

func SetupGalleryRoutes(app *fiber.App) {
	app.Get("/gallery", GalleryPage)

	api := app.Group("/api/gallery")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetPhotosAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher), CreatePhotoAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeletePhotoAPI)
}
