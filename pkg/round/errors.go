package round

// Validation failures are discriminated by type so callers can tell a
// malformed value from an out-of-range one. All carry a message ready to
// show to the user.

// FormatError reports input that does not match the expected shape,
// such as a date that is not YYYY-MM-DD.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return e.Msg }

// RangeError reports a well-formed value outside its allowed bounds.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string { return e.Msg }

// TypeError reports input that does not parse as the expected kind at
// all, such as letters where a number is required.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return e.Msg }
