package database

import (
	"database/sql"
	"fmt"
	"time"

	"greenhill-schools/app/models"
)

// GetEvents returns events overlapping the given window. A zero window
// returns everything upcoming from today.
func GetEvents(db *sql.DB, from, to time.Time) ([]*models.Event, error) {
	query := `
		SELECT id, title, description, start_date, end_date, location, color, created_at, updated_at
		FROM events
		WHERE deleted_at IS NULL
	`
	args := []interface{}{}
	if from.IsZero() && to.IsZero() {
		query += " AND end_date >= CURRENT_DATE"
	} else {
		args = append(args, from, to)
		query += " AND start_date <= $2 AND end_date >= $1"
	}
	query += " ORDER BY start_date"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e := &models.Event{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.Location, &e.Color, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func CreateEvent(db *sql.DB, e *models.Event) error {
	query := `
		INSERT INTO events (title, description, start_date, end_date, location, color)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query, e.Title, e.Description, e.StartDate, e.EndDate, e.Location, e.Color).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func UpdateEvent(db *sql.DB, e *models.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, start_date = $3, end_date = $4, location = $5, color = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
	`
	res, err := db.Exec(query, e.Title, e.Description, e.StartDate, e.EndDate, e.Location, e.Color, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
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

func DeleteEvent(db *sql.DB, eventID string) error {
	query := `UPDATE events SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, eventID)
	return err
}
