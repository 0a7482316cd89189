package public

import (
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/config"
	"greenhill-schools/app/database"
	"greenhill-schools/app/logger"
	"greenhill-schools/app/results"
)

// ListExamsAPI feeds the exam selector on the checker page. Only schedule-
// published exams appear; whether their results are out is not disclosed
// here.
func ListExamsAPI(c *fiber.Ctx) error {
	exams, err := database.GetPublishedExams(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exams"})
	}

	type examOption struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		ClassName string `json:"class_name"`
	}
	options := make([]examOption, 0, len(exams))
	for _, e := range exams {
		opt := examOption{ID: e.ID, Name: e.Name}
		if e.Class != nil {
			opt.ClassName = e.Class.Name
		}
		options = append(options, opt)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"exams":   options,
	})
}

// CheckResultAPI looks up a published result by exam and roll number. Every
// failed lookup returns the same 404 body regardless of which part missed.
func CheckResultAPI(c *fiber.Ctx) error {
	examID := c.Query("exam_id")
	rollNumber := c.Query("roll_number")
	if examID == "" || rollNumber == "" {
		return c.Status(400).JSON(fiber.Map{"error": "exam_id and roll_number are required"})
	}

	res, err := engine.PublicResultLookup(examID, rollNumber)
	if err != nil {
		if results.IsNotFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		logger.Log.Error().Err(err).Str("exam_id", examID).Msg("public result lookup failed")
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"result":  res,
	})
}
