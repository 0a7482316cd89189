package database

import (
	"database/sql"
	"fmt"

	"greenhill-schools/app/models"
)

// GetActiveClassesSimple retrieves a simple list of active classes (ID, Name, Code)
func GetActiveClassesSimple(db *sql.DB) ([]models.Class, error) {
	query := `SELECT id, name, code FROM classes WHERE is_active = true AND deleted_at IS NULL ORDER BY name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []models.Class
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Code); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// GetClasses returns all classes with their student counts.
func GetClasses(db *sql.DB) ([]*models.Class, error) {
	query := `
		SELECT c.id, c.name, c.code, c.teacher_id, c.is_active, c.created_at, c.updated_at,
			COUNT(s.id) FILTER (WHERE s.deleted_at IS NULL AND s.is_active)
		FROM classes c
		LEFT JOIN students s ON s.class_id = c.id
		WHERE c.deleted_at IS NULL
		GROUP BY c.id
		ORDER BY c.name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classes: %w", err)
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		c := &models.Class{}
		var teacherID sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &teacherID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.StudentCount); err != nil {
			return nil, err
		}
		c.TeacherID = nullableString(teacherID)
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

func GetClassByID(db *sql.DB, classID string) (*models.Class, error) {
	query := `
		SELECT id, name, code, teacher_id, is_active, created_at, updated_at
		FROM classes
		WHERE id = $1 AND deleted_at IS NULL
	`
	c := &models.Class{}
	var teacherID sql.NullString
	err := db.QueryRow(query, classID).Scan(&c.ID, &c.Name, &c.Code, &teacherID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.TeacherID = nullableString(teacherID)
	return c, nil
}

func CreateClass(db *sql.DB, c *models.Class) error {
	query := `
		INSERT INTO classes (name, code, teacher_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query, c.Name, c.Code, c.TeacherID).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

func UpdateClass(db *sql.DB, c *models.Class) error {
	query := `
		UPDATE classes
		SET name = $1, code = $2, teacher_id = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
	`
	res, err := db.Exec(query, c.Name, c.Code, c.TeacherID, c.IsActive, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update class: %w", err)
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

func DeleteClass(db *sql.DB, classID string) error {
	query := `UPDATE classes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, classID)
	return err
}
