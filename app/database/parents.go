package database

import (
	"database/sql"
	"fmt"

	"greenhill-schools/app/models"
)

func GetParents(db *sql.DB) ([]*models.Parent, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, relationship, created_at, updated_at
		FROM parents
		WHERE deleted_at IS NULL
		ORDER BY first_name, last_name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parents: %w", err)
	}
	defer rows.Close()

	var parents []*models.Parent
	for rows.Next() {
		p := &models.Parent{}
		var email sql.NullString
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &email, &p.Phone, &p.Relationship, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Email = nullableString(email)
		parents = append(parents, p)
	}
	return parents, rows.Err()
}

func GetParentByID(db *sql.DB, parentID string) (*models.Parent, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, relationship, created_at, updated_at
		FROM parents
		WHERE id = $1 AND deleted_at IS NULL
	`
	p := &models.Parent{}
	var email sql.NullString
	err := db.QueryRow(query, parentID).Scan(&p.ID, &p.FirstName, &p.LastName, &email, &p.Phone, &p.Relationship, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Email = nullableString(email)

	// Attach linked students for the detail view.
	students, err := getParentStudents(db, parentID)
	if err != nil {
		return nil, err
	}
	p.Students = students
	return p, nil
}

func getParentStudents(db *sql.DB, parentID string) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.roll_number, s.first_name, s.last_name
		FROM students s
		JOIN parent_students ps ON ps.student_id = s.id
		WHERE ps.parent_id = $1 AND s.deleted_at IS NULL
		ORDER BY s.first_name
	`
	rows, err := db.Query(query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.RollNumber, &s.FirstName, &s.LastName); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func CreateParent(db *sql.DB, p *models.Parent) error {
	query := `
		INSERT INTO parents (first_name, last_name, email, phone, relationship)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query, p.FirstName, p.LastName, p.Email, p.Phone, p.Relationship).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create parent: %w", err)
	}
	return nil
}

func UpdateParent(db *sql.DB, p *models.Parent) error {
	query := `
		UPDATE parents
		SET first_name = $1, last_name = $2, email = $3, phone = $4, relationship = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`
	res, err := db.Exec(query, p.FirstName, p.LastName, p.Email, p.Phone, p.Relationship, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update parent: %w", err)
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

func DeleteParent(db *sql.DB, parentID string) error {
	query := `UPDATE parents SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, parentID)
	return err
}

// LinkParentStudent attaches a student to a parent, ignoring duplicates.
func LinkParentStudent(db *sql.DB, parentID, studentID string) error {
	query := `
		INSERT INTO parent_students (parent_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (parent_id, student_id) DO NOTHING
	`
	_, err := db.Exec(query, parentID, studentID)
	return err
}

// UnlinkParentStudent removes a parent/student link.
func UnlinkParentStudent(db *sql.DB, parentID, studentID string) error {
	query := `DELETE FROM parent_students WHERE parent_id = $1 AND student_id = $2`
	_, err := db.Exec(query, parentID, studentID)
	return err
}
