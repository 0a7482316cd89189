package results

import (
	"database/sql"
	"fmt"
	"time"

	"greenhill-schools/app/models"
)

// PostgresStore implements Store over the shared connection pool. Bulk
// verification and the publish flip are single UPDATE statements, so their
// atomicity comes from Postgres itself; no reader ever sees a half-applied
// batch.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps the given pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetExam(examID string) (*models.Exam, error) {
	query := `
		SELECT
			e.id, e.name, e.class_id, e.exam_type, e.full_marks, e.pass_marks,
			e.start_date, e.end_date, e.published, e.results_published,
			e.created_at, e.updated_at,
			c.id, c.name, c.code
		FROM exams e
		LEFT JOIN classes c ON e.class_id = c.id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`

	var exam models.Exam
	var class models.Class

	err := s.db.QueryRow(query, examID).Scan(
		&exam.ID, &exam.Name, &exam.ClassID, &exam.ExamType, &exam.FullMarks, &exam.PassMarks,
		&exam.StartDate, &exam.EndDate, &exam.Published, &exam.ResultsPublished,
		&exam.CreatedAt, &exam.UpdatedAt,
		&class.ID, &class.Name, &class.Code,
	)
	if err != nil {
		return nil, err
	}

	exam.Class = &class
	return &exam, nil
}

func (s *PostgresStore) GetStudent(studentID string) (*models.Student, error) {
	query := `
		SELECT id, roll_number, first_name, last_name, class_id, is_active, created_at, updated_at
		FROM students
		WHERE id = $1 AND deleted_at IS NULL
	`
	return s.scanStudent(s.db.QueryRow(query, studentID))
}

func (s *PostgresStore) GetStudentByRoll(classID, rollNumber string) (*models.Student, error) {
	query := `
		SELECT id, roll_number, first_name, last_name, class_id, is_active, created_at, updated_at
		FROM students
		WHERE class_id = $1 AND roll_number = $2 AND deleted_at IS NULL
	`
	return s.scanStudent(s.db.QueryRow(query, classID, rollNumber))
}

func (s *PostgresStore) scanStudent(row *sql.Row) (*models.Student, error) {
	var student models.Student
	var classID sql.NullString

	err := row.Scan(
		&student.ID, &student.RollNumber, &student.FirstName, &student.LastName,
		&classID, &student.IsActive, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if classID.Valid {
		student.ClassID = &classID.String
	}
	return &student, nil
}

func (s *PostgresStore) ListExamMarks(examID string) ([]*models.MarkRecord, error) {
	query := `
		SELECT
			m.id, m.exam_id, m.student_id, m.subject_id, m.marks_obtained, m.total_marks,
			m.grade, m.remarks, m.verified, m.verified_by, m.verified_at,
			m.created_at, m.updated_at,
			st.id, st.roll_number, st.first_name, st.last_name,
			su.id, su.name, su.code
		FROM mark_records m
		JOIN students st ON m.student_id = st.id
		JOIN subjects su ON m.subject_id = su.id
		WHERE m.exam_id = $1
		ORDER BY st.roll_number, su.name
	`

	rows, err := s.db.Query(query, examID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mark records: %w", err)
	}
	defer rows.Close()

	var records []*models.MarkRecord
	for rows.Next() {
		rec, student, subject, err := scanMarkRow(rows, true)
		if err != nil {
			return nil, err
		}
		rec.Student = student
		rec.Subject = subject
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *PostgresStore) ListStudentMarks(examID, studentID string) ([]*models.MarkRecord, error) {
	query := `
		SELECT
			m.id, m.exam_id, m.student_id, m.subject_id, m.marks_obtained, m.total_marks,
			m.grade, m.remarks, m.verified, m.verified_by, m.verified_at,
			m.created_at, m.updated_at,
			su.id, su.name, su.code
		FROM mark_records m
		JOIN subjects su ON m.subject_id = su.id
		WHERE m.exam_id = $1 AND m.student_id = $2
		ORDER BY su.name
	`

	rows, err := s.db.Query(query, examID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student mark records: %w", err)
	}
	defer rows.Close()

	var records []*models.MarkRecord
	for rows.Next() {
		rec, _, subject, err := scanMarkRow(rows, false)
		if err != nil {
			return nil, err
		}
		rec.Subject = subject
		records = append(records, rec)
	}
	return records, rows.Err()
}

// scanMarkRow scans the shared mark record columns plus the joined student
// (when withStudent) and subject columns.
func scanMarkRow(rows *sql.Rows, withStudent bool) (*models.MarkRecord, *models.Student, *models.Subject, error) {
	var rec models.MarkRecord
	var student models.Student
	var subject models.Subject
	var remarks, verifiedBy sql.NullString
	var verifiedAt sql.NullTime
	var code sql.NullString

	dest := []interface{}{
		&rec.ID, &rec.ExamID, &rec.StudentID, &rec.SubjectID, &rec.MarksObtained, &rec.TotalMarks,
		&rec.Grade, &remarks, &rec.Verified, &verifiedBy, &verifiedAt,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	if withStudent {
		dest = append(dest, &student.ID, &student.RollNumber, &student.FirstName, &student.LastName)
	}
	dest = append(dest, &subject.ID, &subject.Name, &code)

	if err := rows.Scan(dest...); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to scan mark record: %w", err)
	}

	if remarks.Valid {
		rec.Remarks = &remarks.String
	}
	if verifiedBy.Valid {
		rec.VerifiedBy = &verifiedBy.String
	}
	if verifiedAt.Valid {
		rec.VerifiedAt = &verifiedAt.Time
	}
	if code.Valid {
		subject.Code = &code.String
	}
	return &rec, &student, &subject, nil
}

func (s *PostgresStore) CountMarks(examID string) (int, int, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE verified)
		FROM mark_records
		WHERE exam_id = $1
	`
	var total, verified int
	if err := s.db.QueryRow(query, examID).Scan(&total, &verified); err != nil {
		return 0, 0, fmt.Errorf("failed to count mark records: %w", err)
	}
	return total, verified, nil
}

func (s *PostgresStore) UpsertMark(rec *models.MarkRecord) error {
	query := `
		INSERT INTO mark_records
			(exam_id, student_id, subject_id, marks_obtained, total_marks, grade, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (exam_id, student_id, subject_id) DO UPDATE SET
			marks_obtained = EXCLUDED.marks_obtained,
			total_marks = EXCLUDED.total_marks,
			grade = EXCLUDED.grade,
			remarks = EXCLUDED.remarks,
			verified = false,
			verified_by = NULL,
			verified_at = NULL,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRow(
		query,
		rec.ExamID, rec.StudentID, rec.SubjectID,
		rec.MarksObtained, rec.TotalMarks, rec.Grade, rec.Remarks,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert mark record: %w", err)
	}
	return nil
}

func (s *PostgresStore) SetStudentVerification(examID, studentID string, verifiedBy *string, verifiedAt *time.Time) (int, error) {
	query := `
		UPDATE mark_records
		SET verified = $3, verified_by = $4, verified_at = $5, updated_at = NOW()
		WHERE exam_id = $1 AND student_id = $2
	`
	res, err := s.db.Exec(query, examID, studentID, verifiedBy != nil, verifiedBy, verifiedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to set verification: %w", err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *PostgresStore) VerifyAllMarks(examID, verifiedBy string, at time.Time) (int, error) {
	query := `
		UPDATE mark_records
		SET verified = true, verified_by = $2, verified_at = $3, updated_at = NOW()
		WHERE exam_id = $1
	`
	res, err := s.db.Exec(query, examID, verifiedBy, at)
	if err != nil {
		return 0, fmt.Errorf("failed to verify exam marks: %w", err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *PostgresStore) PublishResults(examID string) (bool, error) {
	// The subquery guards run inside the same statement as the flip, so a
	// concurrent mark edit cannot land between check and commit.
	query := `
		UPDATE exams
		SET results_published = true, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
			AND EXISTS (SELECT 1 FROM mark_records WHERE exam_id = $1)
			AND NOT EXISTS (SELECT 1 FROM mark_records WHERE exam_id = $1 AND NOT verified)
	`
	res, err := s.db.Exec(query, examID)
	if err != nil {
		return false, fmt.Errorf("failed to publish results: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *PostgresStore) SetResultsPublished(examID string, published bool) error {
	query := `
		UPDATE exams
		SET results_published = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	if _, err := s.db.Exec(query, examID, published); err != nil {
		return fmt.Errorf("failed to set results_published: %w", err)
	}
	return nil
}
