package models

import "time"

// MarkRecord stores one student's marks for one subject within one exam.
// There is at most one record per (exam, student, subject).
//
// Verified, VerifiedBy and VerifiedAt move together: a verified record always
// carries the verifier and timestamp, an unverified record carries neither.
// Any edit of the marks clears verification.
type MarkRecord struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ExamID        string     `json:"exam_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID     string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID     string     `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	MarksObtained float64    `json:"marks_obtained" gorm:"not null;type:decimal(6,2)" validate:"gte=0"`
	TotalMarks    float64    `json:"total_marks" gorm:"not null;type:decimal(6,2)" validate:"gt=0"`
	Grade         string     `json:"grade" gorm:"type:varchar(4)"`
	Remarks       *string    `json:"remarks,omitempty"`
	Verified      bool       `json:"verified" gorm:"default:false;index"`
	VerifiedBy    *string    `json:"verified_by,omitempty" gorm:"type:uuid"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	Exam          *Exam      `json:"exam,omitempty" gorm:"foreignKey:ExamID;references:ID"`
	Student       *Student   `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Subject       *Subject   `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
}

// ClearVerification resets the record to the unverified state.
func (m *MarkRecord) ClearVerification() {
	m.Verified = false
	m.VerifiedBy = nil
	m.VerifiedAt = nil
}

// SetVerified stamps the record with the verifier and time.
func (m *MarkRecord) SetVerified(verifierID string, at time.Time) {
	m.Verified = true
	m.VerifiedBy = &verifierID
	m.VerifiedAt = &at
}
