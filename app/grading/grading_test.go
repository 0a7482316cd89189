package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectGrade(t *testing.T) {
	tests := []struct {
		name     string
		obtained float64
		total    float64
		pass     float64
		want     string
	}{
		{"a plus", 95, 100, 40, "A+"},
		{"a", 83, 100, 40, "A"},
		{"b plus boundary", 70, 100, 40, "B+"},
		{"b", 60, 100, 40, "B"},
		{"c plus", 55, 100, 40, "C+"},
		{"c at pass mark", 40, 100, 40, "C"},
		{"fail just below pass", 39, 100, 40, "F"},
		{"custom pass threshold", 35, 100, 35, "C"},
		{"fail under custom threshold", 34, 100, 35, "F"},
		{"half total marks", 45, 50, 40, "A+"},
		{"zero total is undefined", 10, 0, 40, GradeNA},
		{"zero pass falls back to default", 39, 100, 0, "F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubjectGrade(tt.obtained, tt.total, tt.pass))
		})
	}
}

func TestGPA(t *testing.T) {
	assert.Equal(t, 4.0, GPA("A+"))
	assert.Equal(t, 3.6, GPA("A"))
	assert.Equal(t, 3.2, GPA("B+"))
	assert.Equal(t, 2.8, GPA("B"))
	assert.Equal(t, 2.4, GPA("C+"))
	assert.Equal(t, 2.0, GPA("C"))
	assert.Equal(t, 1.6, GPA("D"))
	assert.Equal(t, 0.8, GPA("E"))
	assert.Equal(t, 0.0, GPA("F"))
	assert.Equal(t, 0.0, GPA(GradeNA))
	assert.Equal(t, 0.0, GPA("bogus"))
}

func TestDivision(t *testing.T) {
	assert.Equal(t, Distinction, Division(81))
	assert.Equal(t, Distinction, Division(80))
	assert.Equal(t, FirstDivision, Division(61))
	assert.Equal(t, SecondDivision, Division(45))
	assert.Equal(t, ThirdDivision, Division(32))
	assert.Equal(t, Failed, Division(31.9))
	assert.Equal(t, DivisionNA, Division(-1))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 61.0, Percent(183, 300))
	assert.Equal(t, 83.0, Percent(83, 100))
	assert.Equal(t, 33.3, Percent(1, 3))
	assert.Equal(t, -1.0, Percent(10, 0))
}

func TestPassed(t *testing.T) {
	assert.True(t, Passed(40, 100, 40))
	assert.False(t, Passed(38, 100, 40))
	assert.False(t, Passed(39, 100, 0)) // default threshold applies
	assert.True(t, Passed(40, 100, 0))
}
