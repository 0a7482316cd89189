package results

import (
	"time"

	"greenhill-schools/app/models"
)

// Store is the persistence boundary of the verification engine. Both bulk
// operations (VerifyAllMarks, PublishResults) must be atomic: readers never
// observe a half-applied batch. The Postgres implementation relies on
// single-statement updates; the in-memory one on a single mutex.
type Store interface {
	GetExam(examID string) (*models.Exam, error)
	GetStudent(studentID string) (*models.Student, error)
	GetStudentByRoll(classID, rollNumber string) (*models.Student, error)

	// ListExamMarks returns every mark record of the exam with student and
	// subject relations populated.
	ListExamMarks(examID string) ([]*models.MarkRecord, error)
	// ListStudentMarks returns one student's records for the exam with the
	// subject relation populated.
	ListStudentMarks(examID, studentID string) ([]*models.MarkRecord, error)
	// CountMarks returns the total and verified record counts for the exam.
	CountMarks(examID string) (total, verified int, err error)

	// UpsertMark inserts or updates the record for rec's
	// (exam, student, subject) key in one atomic step. On update the stored
	// verification state is replaced by rec's (the engine always passes an
	// unverified record).
	UpsertMark(rec *models.MarkRecord) error

	// SetStudentVerification stamps or clears verification on all of the
	// student's records for the exam and reports how many records changed
	// owner state. verifiedBy/verifiedAt are nil when clearing.
	SetStudentVerification(examID, studentID string, verifiedBy *string, verifiedAt *time.Time) (int, error)

	// VerifyAllMarks verifies every record of the exam in one atomic unit and
	// returns the number of records the exam holds.
	VerifyAllMarks(examID, verifiedBy string, at time.Time) (int, error)

	// PublishResults flips results_published to true only if the exam exists,
	// has at least one mark record and every record is verified. Returns
	// whether the flip happened.
	PublishResults(examID string) (bool, error)

	// SetResultsPublished sets the flag unconditionally (used by the
	// unpublish-on-edit policy).
	SetResultsPublished(examID string, published bool) error
}
