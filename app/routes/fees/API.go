package fees

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/models"
)

var validate = validator.New()

func GetFeeTypesAPI(c *fiber.Ctx) error {
	feeTypes, err := database.GetFeeTypes(config.GetDB(), c.QueryBool("active_only", false))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee types"})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"fee_types": feeTypes,
		"count":     len(feeTypes),
	})
}

func CreateFeeTypeAPI(c *fiber.Ctx) error {
	type CreateFeeTypeRequest struct {
		Name             string  `json:"name" validate:"required"`
		Description      *string `json:"description"`
		Amount           float64 `json:"amount" validate:"gt=0"`
		PaymentFrequency string  `json:"payment_frequency" validate:"required,oneof=once per_term per_year on_demand"`
	}

	var req CreateFeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	feeType := &models.FeeType{
		Name:             req.Name,
		Description:      req.Description,
		Amount:           req.Amount,
		PaymentFrequency: req.PaymentFrequency,
		IsActive:         true,
	}
	if err := database.CreateFeeType(config.GetDB(), feeType); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee type"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "fee_type": feeType})
}

func UpdateFeeTypeAPI(c *fiber.Ctx) error {
	feeType, err := database.GetFeeTypeByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee type"})
	}

	if err := c.BodyParser(feeType); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	feeType.ID = c.Params("id")

	if err := database.UpdateFeeType(config.GetDB(), feeType); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee type not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee type"})
	}

	return c.JSON(fiber.Map{"success": true, "fee_type": feeType})
}

func DeleteFeeTypeAPI(c *fiber.Ctx) error {
	if err := database.DeleteFeeType(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete fee type"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Fee type deleted"})
}

func RecordPaymentAPI(c *fiber.Ctx) error {
	type RecordPaymentRequest struct {
		StudentID string     `json:"student_id" validate:"required,uuid"`
		FeeTypeID string     `json:"fee_type_id" validate:"required,uuid"`
		Amount    float64    `json:"amount" validate:"gt=0"`
		Reference *string    `json:"reference"`
		PaidAt    *time.Time `json:"paid_at"`
	}

	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	payment := &models.FeePayment{
		StudentID:  req.StudentID,
		FeeTypeID:  req.FeeTypeID,
		Amount:     req.Amount,
		Status:     models.PaymentCompleted,
		Reference:  req.Reference,
		ReceivedBy: c.Locals("user_id").(string),
	}
	if req.PaidAt != nil {
		payment.PaidAt = *req.PaidAt
	}
	if err := database.RecordFeePayment(config.GetDB(), payment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "payment": payment})
}

func GetStudentPaymentsAPI(c *fiber.Ctx) error {
	payments, err := database.GetStudentPayments(config.GetDB(), c.Params("studentId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"payments": payments,
		"count":    len(payments),
	})
}

func GetStudentFeeStatusAPI(c *fiber.Ctx) error {
	status, err := database.GetStudentFeeStatus(config.GetDB(), c.Params("studentId"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee status"})
	}

	return c.JSON(fiber.Map{"success": true, "status": status})
}
