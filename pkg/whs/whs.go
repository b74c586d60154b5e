// Package whs implements the World Handicap System score differential
// and handicap index calculations. All functions are pure; persistence
// and validation live elsewhere.
package whs

import (
	"math"
	"sort"
)

// MaxHistory is the number of most recent rounds the handicap index
// considers. Older rounds never influence the index.
const MaxHistory = 20

// Differential computes the score differential for a single round:
// (113 / slope) * (score - courseRating), rounded to one decimal.
// The caller guarantees slope > 0 (validation bounds it to [55,155]).
func Differential(score int, courseRating float64, slope int) float64 {
	// Multiply before dividing so exact inputs stay exact
	// (113*30/120 is 28.25, (113/120)*30 drifts below it).
	raw := 113 * (float64(score) - courseRating) / float64(slope)
	return round1(raw)
}

// HandicapIndex computes the handicap index over the given differentials,
// ordered newest first. It considers at most the MaxHistory most recent
// entries, picks the best N per the WHS sliding scale, averages them,
// applies the scale's adjustment and rounds to one decimal.
//
// With zero differentials there is no index and ok is false.
func HandicapIndex(diffsNewestFirst []float64) (index float64, ok bool) {
	n := len(diffsNewestFirst)
	if n == 0 {
		return 0, false
	}
	if n > MaxHistory {
		n = MaxHistory
	}

	use, adjustment := slidingScale(n)

	best := make([]float64, n)
	copy(best, diffsNewestFirst[:n])
	// Stable keeps the more recent round first on equal differentials.
	sort.SliceStable(best, func(i, j int) bool { return best[i] < best[j] })

	var sum float64
	for _, d := range best[:use] {
		sum += d
	}
	return round1(sum/float64(use) + adjustment), true
}

// slidingScale maps the number of available rounds (1..MaxHistory) to how
// many of the best differentials count and which adjustment applies,
// per the WHS table.
func slidingScale(available int) (use int, adjustment float64) {
	switch {
	case available <= 3:
		return 1, -2.0
	case available <= 5:
		return 1, 0
	case available == 6:
		return 2, -1.0
	case available <= 8:
		return 2, 0
	case available <= 11:
		return 3, 0
	case available <= 14:
		return 4, 0
	case available <= 16:
		return 5, 0
	case available <= 18:
		return 6, 0
	case available == 19:
		return 7, 0
	default:
		return 8, 0
	}
}

// round1 rounds to one decimal, halves away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
