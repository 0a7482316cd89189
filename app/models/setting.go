package models

import "time"

// Setting is a school-wide key/value configuration row (school name, motto,
// contact details, current academic year).
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
