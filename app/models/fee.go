package models

import "time"

// FeeType represents a type of fee that can be assigned to students
type FeeType struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name             string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Description      *string    `json:"description,omitempty" gorm:"type:text"`
	Amount           float64    `json:"amount" gorm:"not null;type:numeric" validate:"gt=0"`
	PaymentFrequency string     `json:"payment_frequency" gorm:"not null;check:payment_frequency IN ('once','per_term','per_year','on_demand')" validate:"required,oneof=once per_term per_year on_demand"`
	IsActive         bool       `json:"is_active" gorm:"default:true;index"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// FeePayment records money received against a student's fee.
type FeePayment struct {
	ID         string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID  string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FeeTypeID  string        `json:"fee_type_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount     float64       `json:"amount" gorm:"not null;type:numeric" validate:"gt=0"`
	Status     PaymentStatus `json:"status" gorm:"not null;default:'completed'"`
	Reference  *string       `json:"reference,omitempty"`
	ReceivedBy string        `json:"received_by" gorm:"not null;type:uuid"`
	PaidAt     time.Time     `json:"paid_at" gorm:"not null"`
	CreatedAt  time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time    `json:"deleted_at,omitempty" gorm:"index"`
	Student    *Student      `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	FeeType    *FeeType      `json:"fee_type,omitempty" gorm:"foreignKey:FeeTypeID;references:ID"`
}

// StudentFeeStatus summarises dues vs payments for one student.
type StudentFeeStatus struct {
	Student   *Student `json:"student"`
	TotalDue  float64  `json:"total_due"`
	TotalPaid float64  `json:"total_paid"`
	Balance   float64  `json:"balance"`
}
