package models

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// RelationshipType defines the relationship of a parent/guardian to a student.
type RelationshipType string

const (
	Father   RelationshipType = "father"
	Mother   RelationshipType = "mother"
	Guardian RelationshipType = "guardian"
	OtherRel RelationshipType = "other"
)

// ExamType defines the kinds of assessments the school schedules.
type ExamType string

const (
	FirstTerminal  ExamType = "first_terminal"
	SecondTerminal ExamType = "second_terminal"
	ThirdTerminal  ExamType = "third_terminal"
	FinalExam      ExamType = "final"
	WeeklyTest     ExamType = "weekly_test"
	UnitTest       ExamType = "unit_test"
	MidTerm        ExamType = "mid_term"
	PreBoard       ExamType = "pre_board"
)

// ValidExamType reports whether t is one of the known exam types.
func ValidExamType(t ExamType) bool {
	switch t {
	case FirstTerminal, SecondTerminal, ThirdTerminal, FinalExam,
		WeeklyTest, UnitTest, MidTerm, PreBoard:
		return true
	}
	return false
}

// Role names used across route guards.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// PaymentStatus defines the status of a fee payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)
