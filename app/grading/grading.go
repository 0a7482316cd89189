// Package grading holds the school's grading rules: per-subject letter
// grades, GPA points and the overall division bands. Everything here is a
// pure function over marks so the same tables serve marks entry, dashboards,
// the public result checker and report exports.
package grading

import "math"

// GradeNA is returned when a grade cannot be computed (zero total marks).
const GradeNA = "NA"

// DefaultPassPercent applies when an exam carries no usable pass threshold.
const DefaultPassPercent = 40.0

// Division labels derived from aggregate percentage.
const (
	Distinction    = "Distinction"
	FirstDivision  = "First Division"
	SecondDivision = "Second Division"
	ThirdDivision  = "Third Division"
	Failed         = "Failed"
	DivisionNA     = "N/A"
)

// gpaPoints maps a letter grade to its GPA point value.
var gpaPoints = map[string]float64{
	"A+": 4.0,
	"A":  3.6,
	"B+": 3.2,
	"B":  2.8,
	"C+": 2.4,
	"C":  2.0,
	"D":  1.6,
	"E":  0.8,
}

// Percent returns obtained/total as a percentage rounded to one decimal.
// A zero or negative total yields -1 to signal an undefined percentage.
func Percent(obtained, total float64) float64 {
	if total <= 0 {
		return -1
	}
	return math.Round(obtained/total*1000) / 10
}

// SubjectGrade maps a subject score to its letter grade. passPercent is the
// failing cutoff; scores at or above it but under 50 earn a C. The bands
// above 50 are fixed.
func SubjectGrade(obtained, total, passPercent float64) string {
	pct := Percent(obtained, total)
	if pct < 0 {
		return GradeNA
	}
	if passPercent <= 0 {
		passPercent = DefaultPassPercent
	}
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B+"
	case pct >= 60:
		return "B"
	case pct >= 50:
		return "C+"
	case pct >= passPercent:
		return "C"
	default:
		return "F"
	}
}

// GPA returns the GPA point for a letter grade; unknown grades (including F
// and NA) score 0.
func GPA(grade string) float64 {
	return gpaPoints[grade]
}

// Division maps an aggregate percentage to its division band. Negative
// percentages (undefined, see Percent) yield DivisionNA.
func Division(pct float64) string {
	switch {
	case pct < 0:
		return DivisionNA
	case pct >= 80:
		return Distinction
	case pct >= 60:
		return FirstDivision
	case pct >= 45:
		return SecondDivision
	case pct >= 32:
		return ThirdDivision
	default:
		return Failed
	}
}

// Passed reports whether a subject score clears the pass threshold.
func Passed(obtained, total, passPercent float64) bool {
	if passPercent <= 0 {
		passPercent = DefaultPassPercent
	}
	pct := Percent(obtained, total)
	return pct >= passPercent
}
