package county

import (
	"errors"
	"fmt"
)

// Error types for table operations.
var (
	// ErrUnknownField is returned when a field name is not in the catalog.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownOperator is returned when a comparison token is neither "ge" nor "le".
	ErrUnknownOperator = errors.New("unknown comparison operator")

	// ErrNotPercentage is returned when a sub-population is requested for a
	// field that is not a percentage of the county population.
	ErrNotPercentage = errors.New("field is not a population percentage")

	// ErrZeroPopulation is returned when a percentage is computed over a
	// table whose total population is zero.
	ErrZeroPopulation = errors.New("total population is zero")

	// ErrCapacityExceeded is returned when a record is added to a full table.
	ErrCapacityExceeded = errors.New("table capacity exceeded")
)

// FieldError ties a field-level failure to the name the caller asked for.
type FieldError struct {
	Name  string
	Cause error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s", e.Cause, e.Name)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Cause
}
