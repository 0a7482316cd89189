package database

import (
	"database/sql"
	"fmt"

	"greenhill-schools/app/models"
)

// GetNotices returns notices for the given audience ("" for all), newest
// first. Expired notices are excluded.
func GetNotices(db *sql.DB, audience string) ([]*models.Notice, error) {
	query := `
		SELECT id, title, body, audience, published_at, expires_at, created_by, created_at, updated_at
		FROM notices
		WHERE deleted_at IS NULL
			AND (expires_at IS NULL OR expires_at > NOW())
	`
	args := []interface{}{}
	if audience != "" {
		query += " AND (audience = 'all' OR audience = $1)"
		args = append(args, audience)
	}
	query += " ORDER BY published_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notices: %w", err)
	}
	defer rows.Close()

	var notices []*models.Notice
	for rows.Next() {
		n := &models.Notice{}
		var expires sql.NullTime
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.Audience, &n.PublishedAt, &expires, &n.CreatedBy, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		if expires.Valid {
			n.ExpiresAt = &expires.Time
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

func CreateNotice(db *sql.DB, n *models.Notice) error {
	query := `
		INSERT INTO notices (title, body, audience, published_at, expires_at, created_by)
		VALUES ($1, $2, $3, COALESCE($4, NOW()), $5, $6)
		RETURNING id, published_at, created_at, updated_at
	`
	var published interface{}
	if !n.PublishedAt.IsZero() {
		published = n.PublishedAt
	}
	err := db.QueryRow(query, n.Title, n.Body, n.Audience, published, n.ExpiresAt, n.CreatedBy).
		Scan(&n.ID, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notice: %w", err)
	}
	return nil
}

func UpdateNotice(db *sql.DB, n *models.Notice) error {
	query := `
		UPDATE notices
		SET title = $1, body = $2, audience = $3, expires_at = $4, updated_at = NOW()
		WHERE id = $5 AND deleted_at IS NULL
	`
	res, err := db.Exec(query, n.Title, n.Body, n.Audience, n.ExpiresAt, n.ID)
	if err != nil {
		return fmt.Errorf("failed to update notice: %w", err)
	}
	cnt, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if cnt == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteNotice(db *sql.DB, noticeID string) error {
	query := `UPDATE notices SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, noticeID)
	return err
}
