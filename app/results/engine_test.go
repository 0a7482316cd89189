package results

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenhill-schools/app/grading"
	"greenhill-schools/app/models"
)

var (
	admin   = Principal{UserID: "11111111-1111-1111-1111-111111111111", Roles: []string{models.RoleAdmin}}
	teacher = Principal{UserID: "22222222-2222-2222-2222-222222222222", Roles: []string{models.RoleTeacher}}
)

type fixture struct {
	store    *MemoryStore
	engine   *Engine
	exam     *models.Exam
	student  *models.Student
	subjects []*models.Subject
}

// newFixture seeds one class with one student and three subjects plus a
// terminal exam (full 100, pass 40).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := NewMemoryStore()
	class := store.AddClass(&models.Class{Name: "Primary Five", Code: "P5"})
	exam := store.AddExam(&models.Exam{
		Name:      "First Terminal Examination",
		ClassID:   class.ID,
		ExamType:  models.FirstTerminal,
		FullMarks: 100,
		PassMarks: 40,
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	})
	student := store.AddStudent(&models.Student{
		RollNumber: "12",
		FirstName:  "Aisha",
		LastName:   "Nakato",
		ClassID:    &class.ID,
		IsActive:   true,
	})
	var subjects []*models.Subject
	for _, name := range []string{"Mathematics", "Science", "English"} {
		subjects = append(subjects, store.AddSubject(&models.Subject{ClassID: class.ID, Name: name}))
	}
	return &fixture{store: store, engine: NewEngine(store), exam: exam, student: student, subjects: subjects}
}

func (f *fixture) record(t *testing.T, subjectIdx int, marks float64) *models.MarkRecord {
	t.Helper()
	rec, err := f.engine.RecordMarks(RecordMarksInput{
		ExamID:        f.exam.ID,
		StudentID:     f.student.ID,
		SubjectID:     f.subjects[subjectIdx].ID,
		MarksObtained: marks,
	})
	require.NoError(t, err)
	return rec
}

func TestRecordMarksValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.RecordMarks(RecordMarksInput{
		ExamID:        f.exam.ID,
		StudentID:     f.student.ID,
		SubjectID:     f.subjects[0].ID,
		MarksObtained: 120,
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "marks_obtained", ve.Field)

	_, err = f.engine.RecordMarks(RecordMarksInput{
		ExamID:        f.exam.ID,
		StudentID:     f.student.ID,
		SubjectID:     f.subjects[0].ID,
		MarksObtained: -1,
	})
	require.ErrorAs(t, err, &ve)

	_, err = f.engine.RecordMarks(RecordMarksInput{
		ExamID:        "99999999-9999-9999-9999-999999999999",
		StudentID:     f.student.ID,
		SubjectID:     f.subjects[0].ID,
		MarksObtained: 50,
	})
	assert.True(t, IsNotFound(err))
}

func TestRecordMarksDefaultsTotalToFullMarks(t *testing.T) {
	f := newFixture(t)
	rec := f.record(t, 0, 85)
	assert.Equal(t, 100.0, rec.TotalMarks)
	assert.Equal(t, "A", rec.Grade)
	assert.False(t, rec.Verified)
}

func TestPublishGate(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 85)
	f.record(t, 1, 38)

	err := f.engine.Publish(f.exam.ID, admin)
	var pb *PublicationBlockedError
	require.ErrorAs(t, err, &pb)
	assert.Equal(t, 2, pb.Unverified)

	exam, err := f.store.GetExam(f.exam.ID)
	require.NoError(t, err)
	assert.False(t, exam.ResultsPublished)

	_, err = f.engine.VerifyAll(f.exam.ID, admin)
	require.NoError(t, err)
	require.NoError(t, f.engine.Publish(f.exam.ID, admin))

	exam, err = f.store.GetExam(f.exam.ID)
	require.NoError(t, err)
	assert.True(t, exam.ResultsPublished)
}

func TestPublishEmptyExamBlocked(t *testing.T) {
	f := newFixture(t)
	err := f.engine.Publish(f.exam.ID, admin)
	var pb *PublicationBlockedError
	require.ErrorAs(t, err, &pb)
	assert.Equal(t, 0, pb.Unverified)
}

func TestVerificationClearedOnEdit(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 85)
	require.NoError(t, f.engine.Verify(f.exam.ID, f.student.ID, admin))

	recs, err := f.store.ListStudentMarks(f.exam.ID, f.student.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.True(t, recs[0].Verified)
	require.NotNil(t, recs[0].VerifiedBy)

	// Re-entering different marks must drop the sign-off.
	f.record(t, 0, 90)

	recs, err = f.store.ListStudentMarks(f.exam.ID, f.student.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.False(t, recs[0].Verified)
	assert.Nil(t, recs[0].VerifiedBy)
	assert.Nil(t, recs[0].VerifiedAt)
	assert.Equal(t, "A+", recs[0].Grade)
}

func TestVerifyIdempotent(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 70)

	require.NoError(t, f.engine.Verify(f.exam.ID, f.student.ID, admin))
	first, err := f.store.ListStudentMarks(f.exam.ID, f.student.ID)
	require.NoError(t, err)

	require.NoError(t, f.engine.Verify(f.exam.ID, f.student.ID, admin))
	second, err := f.store.ListStudentMarks(f.exam.ID, f.student.ID)
	require.NoError(t, err)

	assert.True(t, second[0].Verified)
	assert.Equal(t, *first[0].VerifiedBy, *second[0].VerifiedBy)
	// Only the timestamp may move, and only forward.
	assert.False(t, second[0].VerifiedAt.Before(*first[0].VerifiedAt))

	summary, err := f.engine.VerificationSummary(f.exam.ID)
	require.NoError(t, err)
	assert.Equal(t, &VerificationSummary{Total: 1, Verified: 1, Unverified: 0, AllVerified: true}, summary)
}

func TestVerifyUnknownStudent(t *testing.T) {
	f := newFixture(t)
	err := f.engine.Verify(f.exam.ID, "33333333-3333-3333-3333-333333333333", admin)
	assert.True(t, IsNotFound(err))
}

func TestVerifyRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 50)

	assert.ErrorIs(t, f.engine.Verify(f.exam.ID, f.student.ID, teacher), ErrForbidden)
	_, err := f.engine.VerifyAll(f.exam.ID, teacher)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, f.engine.Publish(f.exam.ID, teacher), ErrForbidden)
}

func TestUnverify(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 50)
	f.record(t, 1, 60)
	_, err := f.engine.VerifyAll(f.exam.ID, admin)
	require.NoError(t, err)

	require.NoError(t, f.engine.Unverify(f.exam.ID, f.student.ID, admin))

	summary, err := f.engine.VerificationSummary(f.exam.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Verified)
	recs, _ := f.store.ListStudentMarks(f.exam.ID, f.student.ID)
	for _, r := range recs {
		assert.False(t, r.Verified)
		assert.Nil(t, r.VerifiedBy)
		assert.Nil(t, r.VerifiedAt)
	}
}

func TestVerifyAllAtomicOnFailure(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 50)
	f.record(t, 1, 60)
	f.record(t, 2, 70)

	f.store.FailNextVerifyAll()
	_, err := f.engine.VerifyAll(f.exam.ID, admin)
	require.Error(t, err)

	// A failed bulk verify leaves no record verified: readers never observe
	// a partially applied batch.
	summary, err := f.engine.VerificationSummary(f.exam.ID)
	require.NoError(t, err)
	assert.Equal(t, &VerificationSummary{Total: 3, Verified: 0, Unverified: 3, AllVerified: false}, summary)
}

func TestComputeStudentResultScenario(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 85) // Mathematics
	f.record(t, 1, 38) // Science: below pass
	f.record(t, 2, 60) // English

	res, err := f.engine.ComputeStudentResult(f.exam.ID, f.student.ID)
	require.NoError(t, err)

	assert.Equal(t, 183.0, res.TotalObtained)
	assert.Equal(t, 300.0, res.TotalFull)
	assert.Equal(t, 61.0, res.Percentage)
	assert.Equal(t, grading.FirstDivision, res.Division)

	var science SubjectResult
	for _, s := range res.Subjects {
		if s.SubjectName == "Science" {
			science = s
		}
	}
	assert.Equal(t, "F", science.Grade)
	assert.False(t, science.Passed)
}

func TestComputeStudentResultNoRecords(t *testing.T) {
	f := newFixture(t)
	_, err := f.engine.ComputeStudentResult(f.exam.ID, f.student.ID)
	assert.True(t, IsNotFound(err))
}

func TestPublicLookupNonLeakage(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 85)

	// (a) real exam, real roll, results not yet published
	_, errUnpublished := f.engine.PublicResultLookup(f.exam.ID, f.student.RollNumber)
	// (b) nonexistent exam
	_, errNoExam := f.engine.PublicResultLookup("99999999-9999-9999-9999-999999999999", f.student.RollNumber)

	_, err := f.engine.VerifyAll(f.exam.ID, admin)
	require.NoError(t, err)
	require.NoError(t, f.engine.Publish(f.exam.ID, admin))

	// (c) published exam, wrong roll number
	_, errNoRoll := f.engine.PublicResultLookup(f.exam.ID, "9999")

	for _, err := range []error{errUnpublished, errNoExam, errNoRoll} {
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "result not found", nf.Error())
	}
}

func TestEndToEnd(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 85)
	f.record(t, 1, 38)
	f.record(t, 2, 60)

	summary, err := f.engine.VerificationSummary(f.exam.ID)
	require.NoError(t, err)
	assert.Equal(t, &VerificationSummary{Total: 3, Verified: 0, Unverified: 3, AllVerified: false}, summary)

	n, err := f.engine.VerifyAll(f.exam.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	summary, err = f.engine.VerificationSummary(f.exam.ID)
	require.NoError(t, err)
	assert.Equal(t, &VerificationSummary{Total: 3, Verified: 3, Unverified: 0, AllVerified: true}, summary)

	require.NoError(t, f.engine.Publish(f.exam.ID, admin))

	pub, err := f.engine.PublicResultLookup(f.exam.ID, f.student.RollNumber)
	require.NoError(t, err)
	assert.Equal(t, "Aisha Nakato", pub.StudentName)
	assert.Equal(t, "Primary Five", pub.ClassName)
	assert.Len(t, pub.Subjects, 3)
	assert.Equal(t, 183.0, pub.TotalObtained)
	assert.Equal(t, 61.0, pub.Percentage)
	assert.Equal(t, grading.FirstDivision, pub.Division)

	// Editing one mark afterwards drops that record's verification but the
	// exam stays published (sticky policy).
	f.record(t, 1, 42)

	summary, err = f.engine.VerificationSummary(f.exam.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Unverified)
	assert.False(t, summary.AllVerified)

	exam, err := f.store.GetExam(f.exam.ID)
	require.NoError(t, err)
	assert.True(t, exam.ResultsPublished)
}

func TestUnpublishOnEditPolicy(t *testing.T) {
	f := newFixture(t)
	f.engine.UnpublishOnEdit = true
	f.record(t, 0, 85)
	_, err := f.engine.VerifyAll(f.exam.ID, admin)
	require.NoError(t, err)
	require.NoError(t, f.engine.Publish(f.exam.ID, admin))

	f.record(t, 0, 80)

	exam, err := f.store.GetExam(f.exam.ID)
	require.NoError(t, err)
	assert.False(t, exam.ResultsPublished)
}

func TestReportCard(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 85)
	f.record(t, 2, 60)

	card, err := f.engine.ReportCard(f.exam.ID, f.student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aisha Nakato", card.StudentName)
	assert.Equal(t, "12", card.RollNumber)
	assert.Equal(t, models.FirstTerminal, card.ExamType)
	require.Len(t, card.Subjects, 2)
	for _, s := range card.Subjects {
		assert.Equal(t, s.TH, s.Total)
		assert.Equal(t, 0.0, s.PR)
		assert.Equal(t, 100.0, s.Full)
	}
}

func TestSimulatedFailureSurfaces(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 50)
	f.store.FailNextVerifyAll()
	_, err := f.engine.VerifyAll(f.exam.ID, admin)
	assert.True(t, errors.Is(err, errSimulatedFailure))
}

// verifyRacingStore rejects the first publish attempt and immediately
// verifies the exam's records, reproducing a bulk verification landing
// between a rejected flip and the follow-up summary read.
type verifyRacingStore struct {
	*MemoryStore
	raced bool
}

func (s *verifyRacingStore) PublishResults(examID string) (bool, error) {
	if !s.raced {
		s.raced = true
		if _, err := s.MemoryStore.VerifyAllMarks(examID, admin.UserID, time.Now()); err != nil {
			return false, err
		}
		return false, nil
	}
	return s.MemoryStore.PublishResults(examID)
}

func TestPublishRetriesWhenVerificationLandsConcurrently(t *testing.T) {
	f := newFixture(t)
	f.record(t, 0, 85)
	f.record(t, 1, 72)

	eng := NewEngine(&verifyRacingStore{MemoryStore: f.store})
	require.NoError(t, eng.Publish(f.exam.ID, admin))

	exam, err := f.store.GetExam(f.exam.ID)
	require.NoError(t, err)
	assert.True(t, exam.ResultsPublished)
}
