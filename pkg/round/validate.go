package round

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Field bounds. Scores above 200 or ratings outside these windows are
// rejected as user error rather than stored.
const (
	MinScore        = 1
	MaxScore        = 200
	MinCourseRating = 50.0
	MaxCourseRating = 80.0
	MinSlope        = 55
	MaxSlope        = 155
)

const DateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate checks that raw is a real calendar date in YYYY-MM-DD form
// and not after today. today is the caller's local clock; only its date
// part matters. Returns the trimmed date string.
func ValidateDate(raw string, today time.Time) (string, error) {
	s := strings.TrimSpace(raw)
	if !dateRe.MatchString(s) {
		return "", &FormatError{Msg: fmt.Sprintf("date %q must be in YYYY-MM-DD format", s)}
	}
	d, err := time.ParseInLocation(DateLayout, s, today.Location())
	if err != nil {
		return "", &FormatError{Msg: fmt.Sprintf("date %q is not a valid calendar date", s)}
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if d.After(midnight) {
		return "", &RangeError{Msg: fmt.Sprintf("date %s is in the future", s)}
	}
	return s, nil
}

// ValidateScore parses raw as a gross score, an integer in [1,200].
func ValidateScore(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &TypeError{Msg: fmt.Sprintf("score %q is not a whole number", s)}
	}
	if n < MinScore || n > MaxScore {
		return 0, &RangeError{Msg: fmt.Sprintf("score %d must be between %d and %d", n, MinScore, MaxScore)}
	}
	return n, nil
}

// ValidateCourseRating parses raw as a course rating in [50,80].
func ValidateCourseRating(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &TypeError{Msg: fmt.Sprintf("course rating %q is not a number", s)}
	}
	if f < MinCourseRating || f > MaxCourseRating {
		return 0, &RangeError{Msg: fmt.Sprintf("course rating %g must be between %g and %g", f, MinCourseRating, MaxCourseRating)}
	}
	return f, nil
}

// ValidateSlope parses raw as a slope rating, an integer in [55,155].
func ValidateSlope(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &TypeError{Msg: fmt.Sprintf("slope %q is not a whole number", s)}
	}
	if n < MinSlope || n > MaxSlope {
		return 0, &RangeError{Msg: fmt.Sprintf("slope %d must be between %d and %d", n, MinSlope, MaxSlope)}
	}
	return n, nil
}

// Validate runs the semantic field checks against an already-decoded
// round, for records arriving from outside the normal add path (imports).
// Structural checks on raw persisted JSON belong to the storage layer.
func (r Round) Validate(today time.Time) error {
	if strings.TrimSpace(r.ID) == "" {
		return &FormatError{Msg: "round is missing an id"}
	}
	if _, err := ValidateDate(r.Date, today); err != nil {
		return err
	}
	if r.Score < MinScore || r.Score > MaxScore {
		return &RangeError{Msg: fmt.Sprintf("score %d must be between %d and %d", r.Score, MinScore, MaxScore)}
	}
	if r.CourseRating < MinCourseRating || r.CourseRating > MaxCourseRating {
		return &RangeError{Msg: fmt.Sprintf("course rating %g must be between %g and %g", r.CourseRating, MinCourseRating, MaxCourseRating)}
	}
	if r.Slope < MinSlope || r.Slope > MaxSlope {
		return &RangeError{Msg: fmt.Sprintf("slope %d must be between %d and %d", r.Slope, MinSlope, MaxSlope)}
	}
	return nil
}
