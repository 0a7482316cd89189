package database

import (
	"database/sql"
	"fmt"

	"greenhill-schools/app/models"
)

func GetGalleryPhotos(db *sql.DB) ([]*models.GalleryPhoto, error) {
	query := `
		SELECT id, title, caption, file_path, uploaded_by, created_at, updated_at
		FROM gallery_photos
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery photos: %w", err)
	}
	defer rows.Close()

	var photos []*models.GalleryPhoto
	for rows.Next() {
		p := &models.GalleryPhoto{}
		var caption sql.NullString
		if err := rows.Scan(&p.ID, &p.Title, &caption, &p.FilePath, &p.UploadedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Caption = nullableString(caption)
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func GetGalleryPhotoByID(db *sql.DB, photoID string) (*models.GalleryPhoto, error) {
	query := `
		SELECT id, title, caption, file_path, uploaded_by, created_at, updated_at
		FROM gallery_photos
		WHERE id = $1 AND deleted_at IS NULL
	`
	p := &models.GalleryPhoto{}
	var caption sql.NullString
	err := db.QueryRow(query, photoID).Scan(&p.ID, &p.Title, &caption, &p.FilePath, &p.UploadedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Caption = nullableString(caption)
	return p, nil
}

func CreateGalleryPhoto(db *sql.DB, p *models.GalleryPhoto) error {
	query := `
		INSERT INTO gallery_photos (title, caption, file_path, uploaded_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query, p.Title, p.Caption, p.FilePath, p.UploadedBy).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create gallery photo: %w", err)
	}
	return nil
}

func DeleteGalleryPhoto(db *sql.DB, photoID string) error {
	query := `UPDATE gallery_photos SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, photoID)
	return err
}
