package exams

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenhill-schools/app/models"
)

func publishedExam() *models.Exam {
	return &models.Exam{
		Name:             "First Terminal Examination",
		FullMarks:        100,
		PassMarks:        40,
		ResultsPublished: true,
	}
}

// A payload carrying results_published:false alongside new thresholds must
// not lift the freeze: the stored flag wins over the parsed body.
func TestMarksFreezeSurvivesPublishedFlagInPayload(t *testing.T) {
	exam := publishedExam()
	prevFull, prevPass := exam.FullMarks, exam.PassMarks
	published := exam.ResultsPublished

	body := []byte(`{"full_marks":50,"pass_marks":20,"results_published":false}`)
	require.NoError(t, json.Unmarshal(body, exam))
	exam.ResultsPublished = published

	assert.True(t, marksFrozen(published, prevFull, prevPass, exam))
	assert.True(t, exam.ResultsPublished)
}

func TestMarksFreezeAllowsNameAndDateEdits(t *testing.T) {
	exam := publishedExam()
	prevFull, prevPass := exam.FullMarks, exam.PassMarks

	body := []byte(`{"name":"First Terminal Examination (amended)"}`)
	require.NoError(t, json.Unmarshal(body, exam))

	assert.False(t, marksFrozen(true, prevFull, prevPass, exam))
	assert.Equal(t, "First Terminal Examination (amended)", exam.Name)
}

func TestMarksFreezeIgnoresUnpublishedExams(t *testing.T) {
	exam := publishedExam()
	exam.ResultsPublished = false
	prevFull, prevPass := exam.FullMarks, exam.PassMarks

	body := []byte(`{"full_marks":50,"pass_marks":20}`)
	require.NoError(t, json.Unmarshal(body, exam))

	assert.False(t, marksFrozen(false, prevFull, prevPass, exam))
}
