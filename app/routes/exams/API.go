package exams

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

func GetExamsAPI(c *fiber.Ctx) error {
	exams, err := database.GetExams(config.GetDB(), c.Query("class_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exams"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"exams":   exams,
		"count":   len(exams),
	})
}

func GetExamAPI(c *fiber.Ctx) error {
	exam, err := database.GetExamByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam"})
	}

	return c.JSON(fiber.Map{"success": true, "exam": exam})
}

func CreateExamAPI(c *fiber.Ctx) error {
	type CreateExamRequest struct {
		Name      string    `json:"name" validate:"required"`
		ClassID   string    `json:"class_id" validate:"required,uuid"`
		ExamType  string    `json:"exam_type" validate:"required"`
		FullMarks float64   `json:"full_marks" validate:"required,gt=0"`
		PassMarks float64   `json:"pass_marks" validate:"gte=0"`
		StartDate time.Time `json:"start_date" validate:"required"`
		EndDate   time.Time `json:"end_date" validate:"required"`
		Published bool      `json:"published"`
	}

	var req CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !models.ValidExamType(models.ExamType(req.ExamType)) {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown exam type"})
	}
	if req.PassMarks > req.FullMarks {
		return c.Status(400).JSON(fiber.Map{"error": "Pass marks cannot exceed full marks"})
	}
	if req.EndDate.Before(req.StartDate) {
		return c.Status(400).JSON(fiber.Map{"error": "End date cannot be before start date"})
	}

	exam := &models.Exam{
		Name:      req.Name,
		ClassID:   req.ClassID,
		ExamType:  models.ExamType(req.ExamType),
		FullMarks: req.FullMarks,
		PassMarks: req.PassMarks,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Published: req.Published,
	}
	if err := database.CreateExam(config.GetDB(), exam); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exam"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "exam": exam})
}

func UpdateExamAPI(c *fiber.Ctx) error {
	exam, err := database.GetExamByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam"})
	}

	prevFull, prevPass := exam.FullMarks, exam.PassMarks
	published := exam.ResultsPublished

	if err := c.BodyParser(exam); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	exam.ID = c.Params("id")
	// results_published is a writable JSON field on the model, so a payload
	// could flip it off to dodge the freeze below. The stored value wins;
	// the flag itself only changes through the publish flow.
	exam.ResultsPublished = published

	// Marks thresholds are frozen once results are out: grades would
	// silently shift under published results otherwise.
	if marksFrozen(published, prevFull, prevPass, exam) {
		return c.Status(409).JSON(fiber.Map{"error": "Cannot change marks of an exam with published results"})
	}
	if !models.ValidExamType(exam.ExamType) {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown exam type"})
	}
	if exam.PassMarks > exam.FullMarks {
		return c.Status(400).JSON(fiber.Map{"error": "Pass marks cannot exceed full marks"})
	}

	if err := database.UpdateExam(config.GetDB(), exam); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update exam"})
	}

	return c.JSON(fiber.Map{"success": true, "exam": exam})
}

// marksFrozen reports whether an update changes marks-affecting fields of an
// exam whose results are already out. published must come from the stored
// row, never from the request body.
func marksFrozen(published bool, prevFull, prevPass float64, exam *models.Exam) bool {
	return published && (exam.FullMarks != prevFull || exam.PassMarks != prevPass)
}

func DeleteExamAPI(c *fiber.Ctx) error {
	if err := database.DeleteExam(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete exam"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Exam deleted"})
}
