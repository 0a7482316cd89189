package database

import (
	"database/sql"
	"fmt"
	"time"

	"greenhill-schools/app/models"
)

func GetFeeTypes(db *sql.DB, activeOnly bool) ([]*models.FeeType, error) {
	query := `
		SELECT id, name, description, amount, payment_frequency, is_active, created_at, updated_at
		FROM fee_types
		WHERE deleted_at IS NULL
	`
	if activeOnly {
		query += " AND is_active = true"
	}
	query += " ORDER BY name"

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fee types: %w", err)
	}
	defer rows.Close()

	var feeTypes []*models.FeeType
	for rows.Next() {
		ft := &models.FeeType{}
		var desc sql.NullString
		if err := rows.Scan(&ft.ID, &ft.Name, &desc, &ft.Amount, &ft.PaymentFrequency, &ft.IsActive, &ft.CreatedAt, &ft.UpdatedAt); err != nil {
			return nil, err
		}
		ft.Description = nullableString(desc)
		feeTypes = append(feeTypes, ft)
	}
	return feeTypes, rows.Err()
}

func GetFeeTypeByID(db *sql.DB, feeTypeID string) (*models.FeeType, error) {
	query := `
		SELECT id, name, description, amount, payment_frequency, is_active, created_at, updated_at
		FROM fee_types
		WHERE id = $1 AND deleted_at IS NULL
	`
	ft := &models.FeeType{}
	var desc sql.NullString
	err := db.QueryRow(query, feeTypeID).Scan(&ft.ID, &ft.Name, &desc, &ft.Amount, &ft.PaymentFrequency, &ft.IsActive, &ft.CreatedAt, &ft.UpdatedAt)
	if err != nil {
		return nil, err
	}
	ft.Description = nullableString(desc)
	return ft, nil
}

func CreateFeeType(db *sql.DB, ft *models.FeeType) error {
	query := `
		INSERT INTO fee_types (name, description, amount, payment_frequency)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query, ft.Name, ft.Description, ft.Amount, ft.PaymentFrequency).
		Scan(&ft.ID, &ft.CreatedAt, &ft.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create fee type: %w", err)
	}
	return nil
}

func UpdateFeeType(db *sql.DB, ft *models.FeeType) error {
	query := `
		UPDATE fee_types
		SET name = $1, description = $2, amount = $3, payment_frequency = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`
	res, err := db.Exec(query, ft.Name, ft.Description, ft.Amount, ft.PaymentFrequency, ft.IsActive, ft.ID)
	if err != nil {
		return fmt.Errorf("failed to update fee type: %w", err)
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

func DeleteFeeType(db *sql.DB, feeTypeID string) error {
	query := `UPDATE fee_types SET deleted_at = NOW(), is_active = false WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, feeTypeID)
	return err
}

// RecordFeePayment inserts a payment against a student's fee.
func RecordFeePayment(db *sql.DB, p *models.FeePayment) error {
	query := `
		INSERT INTO fee_payments (student_id, fee_type_id, amount, status, reference, received_by, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()))
		RETURNING id, paid_at, created_at, updated_at
	`
	var paidAt interface{}
	if !p.PaidAt.IsZero() {
		paidAt = p.PaidAt
	}
	err := db.QueryRow(query, p.StudentID, p.FeeTypeID, p.Amount, p.Status, p.Reference, p.ReceivedBy, paidAt).
		Scan(&p.ID, &p.PaidAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to record fee payment: %w", err)
	}
	return nil
}

// GetStudentPayments returns a student's payment history, newest first.
func GetStudentPayments(db *sql.DB, studentID string) ([]*models.FeePayment, error) {
	query := `
		SELECT p.id, p.student_id, p.fee_type_id, p.amount, p.status, p.reference, p.received_by,
			p.paid_at, p.created_at, p.updated_at,
			ft.name, ft.amount
		FROM fee_payments p
		JOIN fee_types ft ON p.fee_type_id = ft.id
		WHERE p.student_id = $1 AND p.deleted_at IS NULL
		ORDER BY p.paid_at DESC
	`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.FeePayment
	for rows.Next() {
		p := &models.FeePayment{}
		ft := &models.FeeType{}
		var ref sql.NullString
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.FeeTypeID, &p.Amount, &p.Status, &ref, &p.ReceivedBy,
			&p.PaidAt, &p.CreatedAt, &p.UpdatedAt,
			&ft.Name, &ft.Amount,
		)
		if err != nil {
			return nil, err
		}
		ft.ID = p.FeeTypeID
		p.Reference = nullableString(ref)
		p.FeeType = ft
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetStudentFeeStatus summarises what a student owes against active fee types
// versus completed payments.
func GetStudentFeeStatus(db *sql.DB, studentID string) (*models.StudentFeeStatus, error) {
	student, err := GetStudentByID(db, studentID)
	if err != nil {
		return nil, err
	}

	status := &models.StudentFeeStatus{Student: student}
	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM fee_types WHERE deleted_at IS NULL AND is_active = true), 0),
			COALESCE((SELECT SUM(amount) FROM fee_payments
				WHERE student_id = $1 AND deleted_at IS NULL AND status = 'completed'), 0)
	`
	if err := db.QueryRow(query, studentID).Scan(&status.TotalDue, &status.TotalPaid); err != nil {
		return nil, fmt.Errorf("failed to compute fee status: %w", err)
	}
	status.Balance = status.TotalDue - status.TotalPaid
	return status, nil
}

// GetFeesCollectedSince totals completed payments received since the cutoff.
func GetFeesCollectedSince(db *sql.DB, since time.Time) (float64, error) {
	var total float64
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM fee_payments
		WHERE deleted_at IS NULL AND status = 'completed' AND paid_at >= $1
	`
	if err := db.QueryRow(query, since).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to total fees: %w", err)
	}
	return total, nil
}
