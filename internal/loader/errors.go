package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingIdentity is returned for a row without a county or state name.
	ErrMissingIdentity = errors.New("insufficient fields")

	// ErrHeaderTooShort is returned when the header has fewer columns than
	// the column map reads.
	ErrHeaderTooShort = errors.New("header has too few columns")
)

// LineError reports a problem with one input line.
type LineError struct {
	Line  int
	Cause error
}

// Error implements the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("malformed line %d: %v", e.Line, e.Cause)
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error {
	return e.Cause
}
