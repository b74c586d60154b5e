// Package round defines the stored round record and the input validation
// rules for its fields.
package round

import (
	"github.com/google/uuid"

	"fairway/pkg/whs"
)

// Round is a single recorded golf round. Records are immutable once
// stored: the differential is computed at creation time and never
// recomputed on read, so historical rounds keep the value the formula
// produced when they were entered.
type Round struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"` // YYYY-MM-DD, no time component
	Score        int     `json:"score"`
	CourseRating float64 `json:"courseRating"`
	Slope        int     `json:"slope"`
	Differential float64 `json:"differential"`
	Course       string  `json:"course,omitempty"` // display only
}

// New builds a round from already-validated fields, assigning a fresh ID
// and the score differential for the round.
func New(date string, score int, courseRating float64, slope int, course string) Round {
	return Round{
		ID:           uuid.NewString(),
		Date:         date,
		Score:        score,
		CourseRating: courseRating,
		Slope:        slope,
		Differential: whs.Differential(score, courseRating, slope),
		Course:       course,
	}
}

// Differentials extracts the differentials from rounds, preserving order.
func Differentials(rounds []Round) []float64 {
	diffs := make([]float64, len(rounds))
	for i, r := range rounds {
		diffs[i] = r.Differential
	}
	return diffs
}
