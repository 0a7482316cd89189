package marks

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"greenhill-schools/app/logger"
	"greenhill-schools/app/results"
	"greenhill-schools/app/routes/auth"
)

var validate = validator.New()

// respondEngineError maps engine errors onto HTTP statuses.
func respondEngineError(c *fiber.Ctx, err error) error {
	var vErr *results.ValidationError
	var blocked *results.PublicationBlockedError

	switch {
	case errors.Is(err, results.ErrForbidden):
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	case errors.As(err, &vErr):
		return c.Status(400).JSON(fiber.Map{"error": vErr.Error(), "field": vErr.Field})
	case errors.As(err, &blocked):
		return c.Status(409).JSON(fiber.Map{"error": blocked.Error(), "unverified": blocked.Unverified})
	case results.IsNotFound(err):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.Log.Error().Err(err).Str("path", c.Path()).Msg("marks request failed")
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func RecordMarksAPI(c *fiber.Ctx) error {
	var in results.RecordMarksInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	rec, err := engine.RecordMarks(in)
	if err != nil {
		return respondEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"record":  rec,
	})
}

func GetExamMarksAPI(c *fiber.Ctx) error {
	recs, err := engine.ListExamMarks(c.Params("examId"))
	if err != nil {
		return respondEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"records": recs,
		"count":   len(recs),
	})
}

func GetVerificationSummaryAPI(c *fiber.Ctx) error {
	summary, err := engine.VerificationSummary(c.Params("examId"))
	if err != nil {
		return respondEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
	})
}

func VerifyStudentAPI(c *fiber.Ctx) error {
	examID := c.Params("examId")
	studentID := c.Params("studentId")

	p := auth.CurrentPrincipal(c)
	if err := engine.Verify(examID, studentID, p); err != nil {
		return respondEngineError(c, err)
	}

	logger.Log.Info().
		Str("exam_id", examID).
		Str("student_id", studentID).
		Str("verified_by", p.UserID).
		Msg("student marks verified")

	return c.JSON(fiber.Map{"success": true, "message": "Marks verified"})
}

func UnverifyStudentAPI(c *fiber.Ctx) error {
	examID := c.Params("examId")
	studentID := c.Params("studentId")

	if err := engine.Unverify(examID, studentID, auth.CurrentPrincipal(c)); err != nil {
		return respondEngineError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Verification cleared"})
}

func VerifyAllAPI(c *fiber.Ctx) error {
	examID := c.Params("examId")

	p := auth.CurrentPrincipal(c)
	n, err := engine.VerifyAll(examID, p)
	if err != nil {
		return respondEngineError(c, err)
	}

	logger.Log.Info().
		Str("exam_id", examID).
		Int("records", n).
		Str("verified_by", p.UserID).
		Msg("exam marks bulk verified")

	return c.JSON(fiber.Map{
		"success":  true,
		"verified": n,
		"message":  "All marks verified",
	})
}

func PublishResultsAPI(c *fiber.Ctx) error {
	examID := c.Params("examId")

	p := auth.CurrentPrincipal(c)
	if err := engine.Publish(examID, p); err != nil {
		return respondEngineError(c, err)
	}

	logger.Log.Info().
		Str("exam_id", examID).
		Str("published_by", p.UserID).
		Msg("exam results published")

	return c.JSON(fiber.Map{"success": true, "message": "Results published"})
}

func GetStudentResultAPI(c *fiber.Ctx) error {
	res, err := engine.ComputeStudentResult(c.Params("examId"), c.Params("studentId"))
	if err != nil {
		return respondEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"result":  res,
	})
}

func GetReportCardAPI(c *fiber.Ctx) error {
	card, err := engine.ReportCard(c.Params("examId"), c.Params("studentId"))
	if err != nil {
		return respondEngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"report":  card,
	})
}
