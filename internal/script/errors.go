package script

import (
	"errors"
	"fmt"
)

// ErrMalformedOperation is returned for a line that does not parse as an operation.
var ErrMalformedOperation = errors.New("malformed operation")

// OperationError places a failed operation in the script.
type OperationError struct {
	Line  int
	Text  string
	Cause error
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Cause)
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Cause)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Cause
}
