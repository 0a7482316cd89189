package fees

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/models"
	"greenhill-schools/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)
	api.Get("/types", GetFeeTypesAPI)
	api.Post("/types", auth.RoleMiddleware(models.RoleAdmin), CreateFeeTypeAPI)
	api.Put("/types/:id", auth.RoleMiddleware(models.RoleAdmin), UpdateFeeTypeAPI)
	api.Delete("/types/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteFeeTypeAPI)
	api.Post("/payments", auth.RoleMiddleware(models.RoleAdmin), RecordPaymentAPI)
	api.Get("/students/:studentId/payments", GetStudentPaymentsAPI)
	api.Get("/students/:studentId/status", GetStudentFeeStatusAPI)
}
