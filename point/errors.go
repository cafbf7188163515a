package point

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is matched by every *ParseError.
	ErrMalformed = errors.New("point: malformed line")
	// ErrFieldCount indicates a line did not contain exactly three fields.
	ErrFieldCount = errors.New("point: expected 3 comma-separated fields")
)

// ParseError reports a line that could not be decoded into a Point.
// Line is 1-based; it is zero when the error comes from Parse directly.
type ParseError struct {
	Line int
	Text string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("point: line %d %q: %v", e.Line, e.Text, e.Err)
	}

	return fmt.Sprintf("point: %q: %v", e.Text, e.Err)
}

// Unwrap exposes both ErrMalformed and the underlying cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}
