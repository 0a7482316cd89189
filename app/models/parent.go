package models

import "time"

// Parent is a guardian contact linked to one or more students.
type Parent struct {
	ID           string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	FirstName    string           `json:"first_name" gorm:"not null" validate:"required"`
	LastName     string           `json:"last_name" gorm:"not null" validate:"required"`
	Email        *string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string           `json:"phone" gorm:"not null" validate:"required"`
	Relationship RelationshipType `json:"relationship" gorm:"not null;default:'guardian'"`
	CreatedAt    time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time       `json:"deleted_at,omitempty" gorm:"index"`
	Students     []*Student       `json:"students,omitempty" gorm:"many2many:parent_students;"`
}
