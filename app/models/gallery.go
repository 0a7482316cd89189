package models

import "time"

// GalleryPhoto stores metadata for an uploaded gallery image. The file itself
// lives under the static directory; this table only tracks the path.
type GalleryPhoto struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title      string     `json:"title" gorm:"not null" validate:"required"`
	Caption    *string    `json:"caption,omitempty"`
	FilePath   string     `json:"file_path" gorm:"not null"`
	UploadedBy string     `json:"uploaded_by" gorm:"not null;type:uuid"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
