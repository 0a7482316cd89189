// Package results owns the exam result pipeline: marks entry, per-record
// verification, bulk verification and the publication gate, plus the derived
// views (student aggregates, verification summaries, public lookups, report
// card handoffs) computed from mark records on demand.
package results

import (
	"database/sql"
	"errors"
	"math"
	"time"

	"greenhill-schools/app/grading"
	"greenhill-schools/app/models"
)

// Engine drives mark records through UNVERIFIED -> VERIFIED and gates
// publication on a fully verified result set.
type Engine struct {
	store Store

	// UnpublishOnEdit reverts results_published when marks of a published
	// exam are edited. Off by default: publication is sticky and an
	// administrator re-publishes manually after re-verification.
	UnpublishOnEdit bool
}

// NewEngine returns an engine over the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// RecordMarksInput is the payload for RecordMarks. TotalMarks of zero means
// "use the exam's full marks".
type RecordMarksInput struct {
	ExamID        string  `json:"exam_id" validate:"required,uuid"`
	StudentID     string  `json:"student_id" validate:"required,uuid"`
	SubjectID     string  `json:"subject_id" validate:"required,uuid"`
	MarksObtained float64 `json:"marks_obtained" validate:"gte=0"`
	TotalMarks    float64 `json:"total_marks" validate:"gte=0"`
	Remarks       *string `json:"remarks,omitempty"`
}

// RecordMarks upserts the mark record for (exam, student, subject). Editing
// a verified record clears its verification: marks and sign-off are coupled,
// so any change forces a re-verify. The stored grade is refreshed from the
// new marks.
func (e *Engine) RecordMarks(in RecordMarksInput) (*models.MarkRecord, error) {
	exam, err := e.getExam(in.ExamID)
	if err != nil {
		return nil, err
	}

	total := in.TotalMarks
	if total == 0 {
		total = exam.FullMarks
	}
	if total <= 0 {
		return nil, &ValidationError{Field: "total_marks", Message: "must be greater than zero"}
	}
	if in.MarksObtained < 0 {
		return nil, &ValidationError{Field: "marks_obtained", Message: "cannot be negative"}
	}
	if in.MarksObtained > total {
		return nil, &ValidationError{Field: "marks_obtained", Message: "cannot exceed total marks"}
	}

	rec := &models.MarkRecord{
		ExamID:        in.ExamID,
		StudentID:     in.StudentID,
		SubjectID:     in.SubjectID,
		MarksObtained: in.MarksObtained,
		TotalMarks:    total,
		Grade:         grading.SubjectGrade(in.MarksObtained, total, exam.PassPercent()),
		Remarks:       in.Remarks,
	}
	rec.ClearVerification()

	if err := e.store.UpsertMark(rec); err != nil {
		return nil, err
	}

	if e.UnpublishOnEdit && exam.ResultsPublished {
		if err := e.store.SetResultsPublished(exam.ID, false); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

// Verify marks all of the student's records for the exam as verified,
// stamped with the verifier and current time. Only admins may verify.
func (e *Engine) Verify(examID, studentID string, p Principal) error {
	if !p.IsAdmin() {
		return ErrForbidden
	}
	if _, err := e.getExam(examID); err != nil {
		return err
	}
	now := time.Now()
	n, err := e.store.SetStudentVerification(examID, studentID, &p.UserID, &now)
	if err != nil {
		return err
	}
	if n == 0 {
		return &NotFoundError{Resource: "mark records for student"}
	}
	return nil
}

// Unverify clears verification on all of the student's records for the exam.
func (e *Engine) Unverify(examID, studentID string, p Principal) error {
	if !p.IsAdmin() {
		return ErrForbidden
	}
	if _, err := e.getExam(examID); err != nil {
		return err
	}
	n, err := e.store.SetStudentVerification(examID, studentID, nil, nil)
	if err != nil {
		return err
	}
	if n == 0 {
		return &NotFoundError{Resource: "mark records for student"}
	}
	return nil
}

// VerifyAll verifies every mark record of the exam as one atomic unit:
// either all records end verified or none change.
func (e *Engine) VerifyAll(examID string, p Principal) (int, error) {
	if !p.IsAdmin() {
		return 0, ErrForbidden
	}
	if _, err := e.getExam(examID); err != nil {
		return 0, err
	}
	n, err := e.store.VerifyAllMarks(examID, p.UserID, time.Now())
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, &NotFoundError{Resource: "mark records for exam"}
	}
	return n, nil
}

// VerificationSummary reports verification progress for the exam.
func (e *Engine) VerificationSummary(examID string) (*VerificationSummary, error) {
	if _, err := e.getExam(examID); err != nil {
		return nil, err
	}
	total, verified, err := e.store.CountMarks(examID)
	if err != nil {
		return nil, err
	}
	return &VerificationSummary{
		Total:       total,
		Verified:    verified,
		Unverified:  total - verified,
		AllVerified: total > 0 && verified == total,
	}, nil
}

// Publish releases the exam's results to students, parents and the public
// checker. It fails with PublicationBlockedError while any record remains
// unverified (or no records exist); the flip itself is a conditional update
// so a concurrent mark edit cannot slip past the gate.
func (e *Engine) Publish(examID string, p Principal) error {
	if !p.IsAdmin() {
		return ErrForbidden
	}
	if _, err := e.getExam(examID); err != nil {
		return err
	}
	ok, err := e.store.PublishResults(examID)
	if err != nil {
		return err
	}
	for !ok {
		summary, err := e.VerificationSummary(examID)
		if err != nil {
			return err
		}
		if !summary.AllVerified {
			return &PublicationBlockedError{Unverified: summary.Unverified}
		}
		// The result set went fully verified between the rejected flip and
		// the re-read. Retry instead of reporting a count that no longer
		// describes the exam.
		ok, err = e.store.PublishResults(examID)
		if err != nil {
			return err
		}
	}
	return nil
}

// ComputeStudentResult aggregates the student's mark records for the exam
// into totals, percentage, division and GPA. Aggregation is
// verification-agnostic; publication, not computation, is gated.
func (e *Engine) ComputeStudentResult(examID, studentID string) (*StudentExamResult, error) {
	exam, err := e.getExam(examID)
	if err != nil {
		return nil, err
	}
	student, err := e.store.GetStudent(studentID)
	if err != nil {
		return nil, notFoundOr("student", err)
	}
	recs, err := e.store.ListStudentMarks(examID, studentID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, &NotFoundError{Resource: "mark records for student"}
	}

	res := &StudentExamResult{Student: student, Exam: exam}
	passPct := exam.PassPercent()
	var gpaSum float64
	for _, r := range recs {
		grade := grading.SubjectGrade(r.MarksObtained, r.TotalMarks, passPct)
		gpa := grading.GPA(grade)
		sub := SubjectResult{
			SubjectID:     r.SubjectID,
			MarksObtained: r.MarksObtained,
			TotalMarks:    r.TotalMarks,
			Grade:         grade,
			GPA:           gpa,
			Passed:        grading.Passed(r.MarksObtained, r.TotalMarks, passPct),
			Verified:      r.Verified,
		}
		if r.Subject != nil {
			sub.SubjectName = r.Subject.Name
		}
		res.Subjects = append(res.Subjects, sub)
		res.TotalObtained += r.MarksObtained
		res.TotalFull += r.TotalMarks
		gpaSum += gpa
	}
	res.Percentage = grading.Percent(res.TotalObtained, res.TotalFull)
	res.Division = grading.Division(res.Percentage)
	res.GPA = math.Round(gpaSum/float64(len(recs))*100) / 100
	return res, nil
}

// PublicResultLookup is the only anonymous read path. Every miss -- unknown
// exam, unpublished results, unknown roll number, no records -- yields the
// same NotFoundError so callers cannot probe which exams exist unpublished.
func (e *Engine) PublicResultLookup(examID, rollNumber string) (*PublicResult, error) {
	notFound := &NotFoundError{Resource: "result"}

	exam, err := e.store.GetExam(examID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || IsNotFound(err) {
			return nil, notFound
		}
		return nil, err
	}
	if !exam.ResultsPublished {
		return nil, notFound
	}
	student, err := e.store.GetStudentByRoll(exam.ClassID, rollNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || IsNotFound(err) {
			return nil, notFound
		}
		return nil, err
	}
	recs, err := e.store.ListStudentMarks(examID, student.ID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, notFound
	}

	out := &PublicResult{
		StudentName: student.FullName(),
		RollNumber:  student.RollNumber,
		ExamName:    exam.Name,
	}
	if exam.Class != nil {
		out.ClassName = exam.Class.Name
	}
	for _, r := range recs {
		line := PublicSubjectLine{
			MarksObtained: r.MarksObtained,
			TotalMarks:    r.TotalMarks,
		}
		if r.Subject != nil {
			line.SubjectName = r.Subject.Name
		}
		out.Subjects = append(out.Subjects, line)
		out.TotalObtained += r.MarksObtained
		out.TotalMarks += r.TotalMarks
	}
	out.Percentage = grading.Percent(out.TotalObtained, out.TotalMarks)
	out.Division = grading.Division(out.Percentage)
	return out, nil
}

// ReportCard builds the read-only handoff consumed by the report exporter.
func (e *Engine) ReportCard(examID, studentID string) (*ReportCardData, error) {
	res, err := e.ComputeStudentResult(examID, studentID)
	if err != nil {
		return nil, err
	}
	card := &ReportCardData{
		StudentName: res.Student.FullName(),
		RollNumber:  res.Student.RollNumber,
		ExamName:    res.Exam.Name,
		ExamDate:    res.Exam.StartDate,
		ExamType:    res.Exam.ExamType,
	}
	if res.Exam.Class != nil {
		card.ClassName = res.Exam.Class.Name
	}
	for _, s := range res.Subjects {
		card.Subjects = append(card.Subjects, ReportCardSubject{
			Name:  s.SubjectName,
			TH:    s.MarksObtained,
			Total: s.MarksObtained,
			Full:  s.TotalMarks,
			Grade: s.Grade,
			GPA:   s.GPA,
		})
	}
	return card, nil
}

// ListExamMarks exposes the exam's records (with relations) for the marks
// entry and verification screens.
func (e *Engine) ListExamMarks(examID string) ([]*models.MarkRecord, error) {
	if _, err := e.getExam(examID); err != nil {
		return nil, err
	}
	return e.store.ListExamMarks(examID)
}

func (e *Engine) getExam(examID string) (*models.Exam, error) {
	exam, err := e.store.GetExam(examID)
	if err != nil {
		return nil, notFoundOr("exam", err)
	}
	return exam, nil
}

func notFoundOr(resource string, err error) error {
	if errors.Is(err, sql.ErrNoRows) || IsNotFound(err) {
		return &NotFoundError{Resource: resource}
	}
	return err
}
