package database

import (
	"database/sql"
	"fmt"

	"greenhill-schools/app/models"
)

// GetExams returns all exams, optionally filtered by class.
func GetExams(db *sql.DB, classID string) ([]*models.Exam, error) {
	query := `
		SELECT e.id, e.name, e.class_id, e.exam_type, e.full_marks, e.pass_marks,
			e.start_date, e.end_date, e.published, e.results_published,
			e.created_at, e.updated_at,
			c.name, c.code
		FROM exams e
		LEFT JOIN classes c ON e.class_id = c.id
		WHERE e.deleted_at IS NULL
	`
	args := []interface{}{}
	if classID != "" {
		query += " AND e.class_id = $1"
		args = append(args, classID)
	}
	query += " ORDER BY e.start_date DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exams: %w", err)
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		e := &models.Exam{}
		c := &models.Class{}
		err := rows.Scan(
			&e.ID, &e.Name, &e.ClassID, &e.ExamType, &e.FullMarks, &e.PassMarks,
			&e.StartDate, &e.EndDate, &e.Published, &e.ResultsPublished,
			&e.CreatedAt, &e.UpdatedAt,
			&c.Name, &c.Code,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exam: %w", err)
		}
		c.ID = e.ClassID
		e.Class = c
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// GetPublishedExams returns exams visible on the public schedule.
func GetPublishedExams(db *sql.DB) ([]*models.Exam, error) {
	query := `
		SELECT e.id, e.name, e.class_id, e.exam_type, e.full_marks, e.pass_marks,
			e.start_date, e.end_date, e.published, e.results_published,
			e.created_at, e.updated_at,
			c.name, c.code
		FROM exams e
		LEFT JOIN classes c ON e.class_id = c.id
		WHERE e.deleted_at IS NULL AND e.published = true
		ORDER BY e.start_date
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch published exams: %w", err)
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		e := &models.Exam{}
		c := &models.Class{}
		err := rows.Scan(
			&e.ID, &e.Name, &e.ClassID, &e.ExamType, &e.FullMarks, &e.PassMarks,
			&e.StartDate, &e.EndDate, &e.Published, &e.ResultsPublished,
			&e.CreatedAt, &e.UpdatedAt,
			&c.Name, &c.Code,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exam: %w", err)
		}
		c.ID = e.ClassID
		e.Class = c
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

func GetExamByID(db *sql.DB, examID string) (*models.Exam, error) {
	query := `
		SELECT e.id, e.name, e.class_id, e.exam_type, e.full_marks, e.pass_marks,
			e.start_date, e.end_date, e.published, e.results_published,
			e.created_at, e.updated_at,
			c.name, c.code
		FROM exams e
		LEFT JOIN classes c ON e.class_id = c.id
		WHERE e.id = $1 AND e.deleted_at IS NULL
	`
	e := &models.Exam{}
	c := &models.Class{}
	err := db.QueryRow(query, examID).Scan(
		&e.ID, &e.Name, &e.ClassID, &e.ExamType, &e.FullMarks, &e.PassMarks,
		&e.StartDate, &e.EndDate, &e.Published, &e.ResultsPublished,
		&e.CreatedAt, &e.UpdatedAt,
		&c.Name, &c.Code,
	)
	if err != nil {
		return nil, err
	}
	c.ID = e.ClassID
	e.Class = c
	return e, nil
}

func CreateExam(db *sql.DB, e *models.Exam) error {
	query := `
		INSERT INTO exams (name, class_id, exam_type, full_marks, pass_marks, start_date, end_date, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query,
		e.Name, e.ClassID, e.ExamType, e.FullMarks, e.PassMarks, e.StartDate, e.EndDate, e.Published,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create exam: %w", err)
	}
	return nil
}

// UpdateExam saves exam changes. Callers are responsible for rejecting
// changes to marks-affecting fields on a results-published exam.
func UpdateExam(db *sql.DB, e *models.Exam) error {
	query := `
		UPDATE exams
		SET name = $1, exam_type = $2, full_marks = $3, pass_marks = $4,
			start_date = $5, end_date = $6, published = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
	`
	res, err := db.Exec(query,
		e.Name, e.ExamType, e.FullMarks, e.PassMarks, e.StartDate, e.EndDate, e.Published, e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update exam: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteExam soft deletes an exam and hard deletes its mark records: a mark
// record never outlives its exam.
func DeleteExam(db *sql.DB, examID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM mark_records WHERE exam_id = $1`, examID); err != nil {
		return fmt.Errorf("failed to delete mark records: %w", err)
	}
	if _, err := tx.Exec(`UPDATE exams SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, examID); err != nil {
		return fmt.Errorf("failed to delete exam: %w", err)
	}
	return tx.Commit()
}
