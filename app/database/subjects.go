package database

import (
	"database/sql"
	"fmt"

	"greenhill-schools/app/models"
)

// GetSubjectsByClass returns a class's subjects.
func GetSubjectsByClass(db *sql.DB, classID string) ([]*models.Subject, error) {
	query := `
		SELECT id, class_id, name, code, is_active, created_at, updated_at
		FROM subjects
		WHERE class_id = $1 AND deleted_at IS NULL
		ORDER BY name
	`
	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		s := &models.Subject{}
		var code sql.NullString
		if err := rows.Scan(&s.ID, &s.ClassID, &s.Name, &code, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Code = nullableString(code)
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func GetSubjectByID(db *sql.DB, subjectID string) (*models.Subject, error) {
	query := `
		SELECT id, class_id, name, code, is_active, created_at, updated_at
		FROM subjects
		WHERE id = $1 AND deleted_at IS NULL
	`
	s := &models.Subject{}
	var code sql.NullString
	err := db.QueryRow(query, subjectID).Scan(&s.ID, &s.ClassID, &s.Name, &code, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Code = nullableString(code)
	return s, nil
}

func CreateSubject(db *sql.DB, s *models.Subject) error {
	query := `
		INSERT INTO subjects (class_id, name, code)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query, s.ClassID, s.Name, s.Code).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}
	return nil
}

func UpdateSubject(db *sql.DB, s *models.Subject) error {
	query := `
		UPDATE subjects
		SET name = $1, code = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4 AND deleted_at IS NULL
	`
	res, err := db.Exec(query, s.Name, s.Code, s.IsActive, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update subject: %w", err)
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

func DeleteSubject(db *sql.DB, subjectID string) error {
	query := `UPDATE subjects SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, subjectID)
	return err
}
