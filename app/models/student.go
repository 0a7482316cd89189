package models

import "time"

// Student is an admitted learner. RollNumber is unique within the class.
type Student struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	RollNumber  string     `json:"roll_number" gorm:"not null;index" validate:"required"`
	FirstName   string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName    string     `json:"last_name" gorm:"not null" validate:"required"`
	Gender      *Gender    `json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	Address     *string    `json:"address,omitempty"`
	ClassID     *string    `json:"class_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	AdmittedAt  time.Time  `json:"admitted_at" gorm:"type:date"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Class       *Class     `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Parents     []*Parent  `json:"parents,omitempty" gorm:"many2many:parent_students;"`
}

// FullName returns "First Last" for display and exports.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
