package models

import "time"

// Notice is an announcement shown on the dashboards.
type Notice struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Title       string     `json:"title" gorm:"not null" validate:"required"`
	Body        string     `json:"body" gorm:"not null;type:text" validate:"required"`
	Audience    string     `json:"audience" gorm:"not null;default:'all'" validate:"oneof=all teachers students parents"`
	PublishedAt time.Time  `json:"published_at" gorm:"not null"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedBy   string     `json:"created_by" gorm:"not null;type:uuid"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
