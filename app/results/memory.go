package results

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"greenhill-schools/app/models"
)

var errSimulatedFailure = errors.New("simulated store failure")

// MemoryStore is an in-memory Store used by tests and local tooling. A
// single mutex stands in for the per-exam transaction scope of the Postgres
// store, so bulk operations are atomic here too.
type MemoryStore struct {
	mu       sync.Mutex
	exams    map[string]*models.Exam
	students map[string]*models.Student
	subjects map[string]*models.Subject
	classes  map[string]*models.Class
	marks    map[string]*models.MarkRecord // keyed exam|student|subject

	// failNextVerifyAll makes the next VerifyAllMarks fail before mutating
	// anything, for atomicity tests.
	failNextVerifyAll bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		exams:    make(map[string]*models.Exam),
		students: make(map[string]*models.Student),
		subjects: make(map[string]*models.Subject),
		classes:  make(map[string]*models.Class),
		marks:    make(map[string]*models.MarkRecord),
	}
}

func markKey(examID, studentID, subjectID string) string {
	return examID + "|" + studentID + "|" + subjectID
}

// AddClass seeds a class.
func (s *MemoryStore) AddClass(c *models.Class) *models.Class {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.classes[c.ID] = c
	return c
}

// AddExam seeds an exam.
func (s *MemoryStore) AddExam(e *models.Exam) *models.Exam {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.exams[e.ID] = e
	return e
}

// AddStudent seeds a student.
func (s *MemoryStore) AddStudent(st *models.Student) *models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	s.students[st.ID] = st
	return st
}

// AddSubject seeds a subject.
func (s *MemoryStore) AddSubject(su *models.Subject) *models.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	if su.ID == "" {
		su.ID = uuid.NewString()
	}
	s.subjects[su.ID] = su
	return su
}

// FailNextVerifyAll arms a one-shot failure for the next bulk verify.
func (s *MemoryStore) FailNextVerifyAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNextVerifyAll = true
}

func (s *MemoryStore) GetExam(examID string) (*models.Exam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.exams[examID]
	if !ok {
		return nil, &NotFoundError{Resource: "exam"}
	}
	cp := *e
	if cls, ok := s.classes[e.ClassID]; ok {
		c := *cls
		cp.Class = &c
	}
	return &cp, nil
}

func (s *MemoryStore) GetStudent(studentID string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.students[studentID]
	if !ok {
		return nil, &NotFoundError{Resource: "student"}
	}
	cp := *st
	return &cp, nil
}

func (s *MemoryStore) GetStudentByRoll(classID, rollNumber string) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.students {
		if st.ClassID != nil && *st.ClassID == classID && st.RollNumber == rollNumber {
			cp := *st
			return &cp, nil
		}
	}
	return nil, &NotFoundError{Resource: "student"}
}

func (s *MemoryStore) ListExamMarks(examID string) ([]*models.MarkRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.MarkRecord
	for _, m := range s.marks {
		if m.ExamID != examID {
			continue
		}
		out = append(out, s.cloneMark(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) ListStudentMarks(examID, studentID string) ([]*models.MarkRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.MarkRecord
	for _, m := range s.marks {
		if m.ExamID != examID || m.StudentID != studentID {
			continue
		}
		out = append(out, s.cloneMark(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) cloneMark(m *models.MarkRecord) *models.MarkRecord {
	cp := *m
	if su, ok := s.subjects[m.SubjectID]; ok {
		sc := *su
		cp.Subject = &sc
	}
	if st, ok := s.students[m.StudentID]; ok {
		sc := *st
		cp.Student = &sc
	}
	return &cp
}

func (s *MemoryStore) CountMarks(examID string) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total, verified int
	for _, m := range s.marks {
		if m.ExamID != examID {
			continue
		}
		total++
		if m.Verified {
			verified++
		}
	}
	return total, verified, nil
}

func (s *MemoryStore) UpsertMark(rec *models.MarkRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := markKey(rec.ExamID, rec.StudentID, rec.SubjectID)
	now := time.Now()
	if existing, ok := s.marks[key]; ok {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	} else {
		rec.ID = uuid.NewString()
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	rec.ClearVerification()
	cp := *rec
	s.marks[key] = &cp
	return nil
}

func (s *MemoryStore) SetStudentVerification(examID, studentID string, verifiedBy *string, verifiedAt *time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, m := range s.marks {
		if m.ExamID != examID || m.StudentID != studentID {
			continue
		}
		if verifiedBy != nil {
			m.SetVerified(*verifiedBy, *verifiedAt)
		} else {
			m.ClearVerification()
		}
		m.UpdatedAt = time.Now()
		n++
	}
	return n, nil
}

func (s *MemoryStore) VerifyAllMarks(examID, verifiedBy string, at time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failNextVerifyAll {
		s.failNextVerifyAll = false
		return 0, errSimulatedFailure
	}
	var n int
	for _, m := range s.marks {
		if m.ExamID != examID {
			continue
		}
		m.SetVerified(verifiedBy, at)
		m.UpdatedAt = time.Now()
		n++
	}
	return n, nil
}

func (s *MemoryStore) PublishResults(examID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.exams[examID]
	if !ok {
		return false, nil
	}
	var total int
	for _, m := range s.marks {
		if m.ExamID != examID {
			continue
		}
		if !m.Verified {
			return false, nil
		}
		total++
	}
	if total == 0 {
		return false, nil
	}
	e.ResultsPublished = true
	e.UpdatedAt = time.Now()
	return true, nil
}

func (s *MemoryStore) SetResultsPublished(examID string, published bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.exams[examID]
	if !ok {
		return &NotFoundError{Resource: "exam"}
	}
	e.ResultsPublished = published
	e.UpdatedAt = time.Now()
	return nil
}
