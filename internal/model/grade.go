package model

import "time"

// GradeID uniquely identifies a recorded grade
type GradeID string

// Grade is a recorded assessment result for a student. Percent and letter
// are derived from score/total on the way out, never stored.
type Grade struct {
	ID        GradeID
	StudentID ProfileID
	GraderID  ProfileID
	Subject   string
	TestName  string
	Score     int
	Total     int
	Remarks   string

	RecordedAt time.Time
}

// Percent returns the score as a percentage, or 0 for a zero total
func (g *Grade) Percent() float64 {
	if g.Total <= 0 {
		return 0
	}
	return float64(g.Score) / float64(g.Total) * 100
}

// Letter maps the percentage to a letter grade
func (g *Grade) Letter() string {
	p := g.Percent()
	switch {
	case p >= 90:
		return "A"
	case p >= 80:
		return "B"
	case p >= 70:
		return "C"
	case p >= 60:
		return "D"
	default:
		return "F"
	}
}
