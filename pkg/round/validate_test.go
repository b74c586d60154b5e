package round

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

var fixedToday = time.Date(2026, 8, 30, 14, 30, 0, 0, time.Local)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr any // nil, *FormatError or *RangeError
	}{
		{"valid date", "2026-08-29", "2026-08-29", nil},
		{"today is allowed", "2026-08-30", "2026-08-30", nil},
		{"surrounding whitespace trimmed", "  2026-08-29  ", "2026-08-29", nil},
		{"tomorrow rejected", "2026-08-31", "", &RangeError{}},
		{"far future rejected", "2030-01-01", "", &RangeError{}},
		{"wrong separator", "2026/08/29", "", &FormatError{}},
		{"missing padding", "2026-8-29", "", &FormatError{}},
		{"not a date at all", "yesterday", "", &FormatError{}},
		{"impossible day", "2026-02-30", "", &FormatError{}},
		{"impossible month", "2026-13-01", "", &FormatError{}},
		{"empty", "", "", &FormatError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateDate(tt.raw, fixedToday)
			checkValidation(t, got, tt.want, err, tt.wantErr)
		})
	}
}

func TestValidateScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr any
	}{
		{"typical score", "90", 90, nil},
		{"lower bound", "1", 1, nil},
		{"upper bound", "200", 200, nil},
		{"zero", "0", 0, &RangeError{}},
		{"too high", "201", 0, &RangeError{}},
		{"negative", "-5", 0, &RangeError{}},
		{"decimal is not an integer", "90.5", 0, &TypeError{}},
		{"letters", "ninety", 0, &TypeError{}},
		{"empty", "", 0, &TypeError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateScore(tt.raw)
			checkValidation(t, got, tt.want, err, tt.wantErr)
		})
	}
}

func TestValidateCourseRating(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr any
	}{
		{"typical rating", "72.3", 72.3, nil},
		{"integer form", "70", 70.0, nil},
		{"lower bound", "50", 50.0, nil},
		{"upper bound", "80", 80.0, nil},
		{"below range", "49.9", 0, &RangeError{}},
		{"above range", "80.1", 0, &RangeError{}},
		{"letters", "hard", 0, &TypeError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCourseRating(tt.raw)
			checkValidation(t, got, tt.want, err, tt.wantErr)
		})
	}
}

func TestValidateSlope(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr any
	}{
		{"standard slope", "113", 113, nil},
		{"lower bound", "55", 55, nil},
		{"upper bound", "155", 155, nil},
		{"below range", "54", 0, &RangeError{}},
		{"above range", "156", 0, &RangeError{}},
		{"decimal", "113.5", 0, &TypeError{}},
		{"letters", "steep", 0, &TypeError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSlope(tt.raw)
			checkValidation(t, got, tt.want, err, tt.wantErr)
		})
	}
}

// Formatting an accepted value and validating it again yields the same
// value: validation normalizes but never reinterprets.
func TestValidatorsRoundTrip(t *testing.T) {
	for _, score := range []int{1, 90, 200} {
		got, err := ValidateScore(fmt.Sprintf("%d", score))
		if err != nil || got != score {
			t.Errorf("score round trip for %d: got %d, err %v", score, got, err)
		}
	}
	for _, slope := range []int{55, 113, 155} {
		got, err := ValidateSlope(fmt.Sprintf("%d", slope))
		if err != nil || got != slope {
			t.Errorf("slope round trip for %d: got %d, err %v", slope, got, err)
		}
	}
	for _, rating := range []float64{50, 67.5, 72.3, 80} {
		got, err := ValidateCourseRating(fmt.Sprintf("%g", rating))
		if err != nil || got != rating {
			t.Errorf("rating round trip for %v: got %v, err %v", rating, got, err)
		}
	}
}

func TestRoundValidate(t *testing.T) {
	valid := Round{ID: "abc", Date: "2026-08-29", Score: 90, CourseRating: 72, Slope: 113, Differential: 18.0}
	if err := valid.Validate(fixedToday); err != nil {
		t.Fatalf("valid round rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Round)
	}{
		{"missing id", func(r *Round) { r.ID = " " }},
		{"future date", func(r *Round) { r.Date = "2030-01-01" }},
		{"score out of range", func(r *Round) { r.Score = 0 }},
		{"rating out of range", func(r *Round) { r.CourseRating = 90 }},
		{"slope out of range", func(r *Round) { r.Slope = 54 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			if err := r.Validate(fixedToday); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestNewRound(t *testing.T) {
	r := New("2026-08-29", 90, 72, 113, "Pebble Creek")
	if r.ID == "" {
		t.Fatal("expected a generated id")
	}
	if r.Differential != 18.0 {
		t.Fatalf("differential = %v, want 18.0", r.Differential)
	}
	other := New("2026-08-29", 90, 72, 113, "Pebble Creek")
	if other.ID == r.ID {
		t.Fatal("ids must be unique per round")
	}
}

func checkValidation[T comparable](t *testing.T, got, want T, err error, wantErr any) {
	t.Helper()
	if wantErr == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected %T, got value %v", wantErr, got)
	}
	switch wantErr.(type) {
	case *FormatError:
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Fatalf("expected FormatError, got %T: %v", err, err)
		}
	case *RangeError:
		var re *RangeError
		if !errors.As(err, &re) {
			t.Fatalf("expected RangeError, got %T: %v", err, err)
		}
	case *TypeError:
		var te *TypeError
		if !errors.As(err, &te) {
			t.Fatalf("expected TypeError, got %T: %v", err, err)
		}
	}
}
