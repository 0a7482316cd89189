package database

import (
	"database/sql"
	"fmt"
	"strings"

	"greenhill-schools/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search  string
	ClassID string
	Gender  string
	Status  string
	Limit   int
	Offset  int
}

// GetStudents returns students matching the filters plus the total count.
func GetStudents(db *sql.DB, f StudentFilters) ([]*models.Student, int, error) {
	where := []string{"s.deleted_at IS NULL"}
	args := []interface{}{}

	if f.Search != "" {
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
		where = append(where, fmt.Sprintf(
			"(LOWER(s.first_name) LIKE $%d OR LOWER(s.last_name) LIKE $%d OR s.roll_number LIKE $%d)",
			len(args), len(args), len(args)))
	}
	if f.ClassID != "" {
		args = append(args, f.ClassID)
		where = append(where, fmt.Sprintf("s.class_id = $%d", len(args)))
	}
	if f.Gender != "" {
		args = append(args, f.Gender)
		where = append(where, fmt.Sprintf("s.gender = $%d", len(args)))
	}
	if f.Status == "active" {
		where = append(where, "s.is_active = true")
	} else if f.Status == "inactive" {
		where = append(where, "s.is_active = false")
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM students s WHERE " + whereClause
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit, f.Offset)
	query := fmt.Sprintf(`
		SELECT s.id, s.roll_number, s.first_name, s.last_name, s.gender, s.date_of_birth,
			s.address, s.class_id, s.admitted_at, s.is_active, s.created_at, s.updated_at,
			c.name
		FROM students s
		LEFT JOIN classes c ON s.class_id = c.id
		WHERE %s
		ORDER BY s.first_name, s.last_name
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)-1, len(args))

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudentRow(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

func scanStudentRow(rows *sql.Rows) (*models.Student, error) {
	s := &models.Student{}
	var gender, address, classID, className sql.NullString
	var dob sql.NullTime

	err := rows.Scan(
		&s.ID, &s.RollNumber, &s.FirstName, &s.LastName, &gender, &dob,
		&address, &classID, &s.AdmittedAt, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		&className,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan student: %w", err)
	}

	if gender.Valid {
		g := models.Gender(gender.String)
		s.Gender = &g
	}
	if dob.Valid {
		s.DateOfBirth = &dob.Time
	}
	s.Address = nullableString(address)
	s.ClassID = nullableString(classID)
	if classID.Valid && className.Valid {
		s.Class = &models.Class{ID: classID.String, Name: className.String}
	}
	return s, nil
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	query := `
		SELECT s.id, s.roll_number, s.first_name, s.last_name, s.gender, s.date_of_birth,
			s.address, s.class_id, s.admitted_at, s.is_active, s.created_at, s.updated_at,
			c.name
		FROM students s
		LEFT JOIN classes c ON s.class_id = c.id
		WHERE s.id = $1 AND s.deleted_at IS NULL
	`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, sql.ErrNoRows
	}
	return scanStudentRow(rows)
}

// CreateStudent admits a new student. The roll number must be unique within
// the class; the unique index surfaces violations as a pq error.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `
		INSERT INTO students (roll_number, first_name, last_name, gender, date_of_birth, address, class_id, admitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, NOW()))
		RETURNING id, admitted_at, created_at, updated_at
	`
	var admitted interface{}
	if !s.AdmittedAt.IsZero() {
		admitted = s.AdmittedAt
	}
	err := db.QueryRow(query,
		s.RollNumber, s.FirstName, s.LastName, s.Gender, s.DateOfBirth, s.Address, s.ClassID, admitted,
	).Scan(&s.ID, &s.AdmittedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `
		UPDATE students
		SET roll_number = $1, first_name = $2, last_name = $3, gender = $4,
			date_of_birth = $5, address = $6, class_id = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9 AND deleted_at IS NULL
	`
	res, err := db.Exec(query,
		s.RollNumber, s.FirstName, s.LastName, s.Gender,
		s.DateOfBirth, s.Address, s.ClassID, s.IsActive, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
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

func DeleteStudent(db *sql.DB, studentID string) error {
	query := `UPDATE students SET deleted_at = NOW(), is_active = false WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, studentID)
	return err
}
