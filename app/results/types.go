package results

import (
	"time"

	"greenhill-schools/app/models"
)

// Principal identifies the caller of an engine operation. It is passed in
// explicitly so the engine can be exercised without any session layer.
type Principal struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	for _, r := range p.Roles {
		if r == models.RoleAdmin {
			return true
		}
	}
	return false
}

// VerificationSummary describes verification progress for one exam.
// AllVerified requires at least one record: an empty exam is never
// publishable.
type VerificationSummary struct {
	Total       int  `json:"total"`
	Verified    int  `json:"verified"`
	Unverified  int  `json:"unverified"`
	AllVerified bool `json:"all_verified"`
}

// SubjectResult is one subject line of a student's aggregated exam result.
// Grade and GPA are recomputed from the current marks, never read from a
// stored aggregate.
type SubjectResult struct {
	SubjectID     string  `json:"subject_id"`
	SubjectName   string  `json:"subject_name"`
	MarksObtained float64 `json:"marks_obtained"`
	TotalMarks    float64 `json:"total_marks"`
	Grade         string  `json:"grade"`
	GPA           float64 `json:"gpa"`
	Passed        bool    `json:"passed"`
	Verified      bool    `json:"verified"`
}

// StudentExamResult aggregates all of a student's mark records for one exam.
// It is always computed on demand from MarkRecords.
type StudentExamResult struct {
	Student       *models.Student `json:"student"`
	Exam          *models.Exam    `json:"exam"`
	Subjects      []SubjectResult `json:"subjects"`
	TotalObtained float64         `json:"total_obtained"`
	TotalFull     float64         `json:"total_full"`
	Percentage    float64         `json:"percentage"`
	Division      string          `json:"division"`
	GPA           float64         `json:"gpa"`
}

// PublicSubjectLine is the per-subject shape exposed to the anonymous result
// checker.
type PublicSubjectLine struct {
	SubjectName   string  `json:"subject_name"`
	MarksObtained float64 `json:"marks_obtained"`
	TotalMarks    float64 `json:"total_marks"`
}

// PublicResult is the response of the anonymous result checker.
type PublicResult struct {
	StudentName   string              `json:"student_name"`
	RollNumber    string              `json:"roll_number"`
	ClassName     string              `json:"class_name"`
	ExamName      string              `json:"exam_name"`
	Subjects      []PublicSubjectLine `json:"subjects"`
	TotalObtained float64             `json:"total_obtained"`
	TotalMarks    float64             `json:"total_marks"`
	Percentage    float64             `json:"percentage"`
	Division      string              `json:"division"`
}

// ReportCardSubject is one line of the report exporter handoff. Practical
// marks are tracked separately on report cards even though marks entry
// records a single score per subject; PR stays zero until practical marks
// entry exists.
type ReportCardSubject struct {
	Name  string  `json:"name"`
	TH    float64 `json:"th"`
	PR    float64 `json:"pr"`
	Total float64 `json:"total"`
	Full  float64 `json:"full"`
	Grade string  `json:"grade"`
	GPA   float64 `json:"gpa"`
}

// ReportCardData is the finalized, read-only view handed to the report
// exporter. The exporter owns rendering.
type ReportCardData struct {
	StudentName string              `json:"student_name"`
	ClassName   string              `json:"class_name"`
	RollNumber  string              `json:"roll_number"`
	ExamName    string              `json:"exam_name"`
	ExamDate    time.Time           `json:"exam_date"`
	ExamType    models.ExamType     `json:"exam_type"`
	Subjects    []ReportCardSubject `json:"subjects"`
}
