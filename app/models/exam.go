package models

import "time"

// Exam represents one scheduled assessment for a class.
//
// Published controls visibility on the public exam schedule only.
// ResultsPublished controls visibility of marks to students/parents and the
// public result checker; it may only be set once every mark record of the
// exam has been verified.
type Exam struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name             string     `json:"name" gorm:"not null" validate:"required"`
	ClassID          string     `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ExamType         ExamType   `json:"exam_type" gorm:"not null" validate:"required"`
	FullMarks        float64    `json:"full_marks" gorm:"not null;type:decimal(6,2)" validate:"required,gt=0"`
	PassMarks        float64    `json:"pass_marks" gorm:"not null;type:decimal(6,2)" validate:"gte=0"`
	StartDate        time.Time  `json:"start_date" gorm:"not null;type:date" validate:"required"`
	EndDate          time.Time  `json:"end_date" gorm:"not null;type:date" validate:"required"`
	Published        bool       `json:"published" gorm:"default:false"`
	ResultsPublished bool       `json:"results_published" gorm:"default:false"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Class            *Class     `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}

// PassPercent converts the exam's pass marks into a percentage of full marks.
// Falls back to 40% when the exam carries no usable thresholds.
func (e *Exam) PassPercent() float64 {
	if e.FullMarks <= 0 || e.PassMarks <= 0 {
		return 40
	}
	return e.PassMarks / e.FullMarks * 100
}
