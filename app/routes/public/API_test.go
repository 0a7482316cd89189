package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenhill-schools/app/models"
	"greenhill-schools/app/results"
)

func setupTestApp(t *testing.T) (*fiber.App, *results.MemoryStore) {
	t.Helper()
	store := results.NewMemoryStore()
	app := fiber.New()
	SetupPublicRoutes(app, results.NewEngine(store))
	return app, store
}

func seedPublishedExam(t *testing.T, store *results.MemoryStore) (*models.Exam, *models.Student) {
	t.Helper()

	class := store.AddClass(&models.Class{Name: "Primary Five", Code: "P5"})
	exam := store.AddExam(&models.Exam{
		Name:      "First Terminal Examination",
		ClassID:   class.ID,
		ExamType:  models.FirstTerminal,
		FullMarks: 100,
		PassMarks: 40,
		StartDate: time.Now().AddDate(0, -1, 0),
		EndDate:   time.Now().AddDate(0, -1, 7),
	})
	student := store.AddStudent(&models.Student{
		RollNumber: "12",
		FirstName:  "Aisha",
		LastName:   "Nakato",
		ClassID:    &class.ID,
	})
	subject := store.AddSubject(&models.Subject{ClassID: class.ID, Name: "Mathematics"})

	engine := results.NewEngine(store)
	_, err := engine.RecordMarks(results.RecordMarksInput{
		ExamID:        exam.ID,
		StudentID:     student.ID,
		SubjectID:     subject.ID,
		MarksObtained: 83,
	})
	require.NoError(t, err)

	admin := results.Principal{UserID: "admin-1", Roles: []string{models.RoleAdmin}}
	_, err = engine.VerifyAll(exam.ID, admin)
	require.NoError(t, err)
	require.NoError(t, engine.Publish(exam.ID, admin))

	return exam, student
}

func checkResult(t *testing.T, app *fiber.App, examID, roll string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/public/results?exam_id="+examID+"&roll_number="+roll, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCheckResultPublished(t *testing.T) {
	app, store := setupTestApp(t)
	exam, student := seedPublishedExam(t, store)

	resp := checkResult(t, app, exam.ID, student.RollNumber)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Success bool                 `json:"success"`
		Result  results.PublicResult `json:"result"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "Aisha Nakato", body.Result.StudentName)
	assert.Equal(t, "First Terminal Examination", body.Result.ExamName)
	assert.Equal(t, 83.0, body.Result.TotalObtained)
	assert.Equal(t, "Distinction", body.Result.Division)
	require.Len(t, body.Result.Subjects, 1)
	assert.Equal(t, "Mathematics", body.Result.Subjects[0].SubjectName)
}

func TestCheckResultMissingParams(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/api/public/results?exam_id=abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

// Unknown exams, unpublished exams and wrong roll numbers must be
// indistinguishable from the outside.
func TestCheckResultUniformNotFound(t *testing.T) {
	app, store := setupTestApp(t)
	exam, student := seedPublishedExam(t, store)

	// Seed a second, unpublished exam in the same class.
	unpublished := store.AddExam(&models.Exam{
		Name:      "Second Terminal Examination",
		ClassID:   exam.ClassID,
		ExamType:  models.SecondTerminal,
		FullMarks: 100,
		PassMarks: 40,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 0, 7),
	})

	cases := map[string]struct {
		examID string
		roll   string
	}{
		"unknown exam":      {"no-such-exam", student.RollNumber},
		"unpublished exam":  {unpublished.ID, student.RollNumber},
		"wrong roll number": {exam.ID, "999"},
	}

	var bodies []string
	for name, tc := range cases {
		resp := checkResult(t, app, tc.examID, tc.roll)
		assert.Equal(t, 404, resp.StatusCode, name)

		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), name)
		bodies = append(bodies, body.Error)
	}

	for _, msg := range bodies {
		assert.Equal(t, "result not found", msg)
	}
}
