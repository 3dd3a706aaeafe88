package county

import "fmt"

// Comparison is the relation a field filter checks.
type Comparison int

const (
	// CompareNone matches nothing.
	CompareNone Comparison = iota
	// AtLeast is the "ge" operator.
	AtLeast
	// AtMost is the "le" operator.
	AtMost
)

// ParseComparison maps the script tokens "ge" and "le" to a Comparison.
// Any other token yields CompareNone and ErrUnknownOperator.
func ParseComparison(op string) (Comparison, error) {
	switch op {
	case "ge":
		return AtLeast, nil
	case "le":
		return AtMost, nil
	default:
		return CompareNone, fmt.Errorf("%w: %s", ErrUnknownOperator, op)
	}
}

// Holds reports whether v relates to threshold as c requires.
func (c Comparison) Holds(v, threshold float64) bool {
	switch c {
	case AtLeast:
		return v >= threshold
	case AtMost:
		return v <= threshold
	default:
		return false
	}
}

func (c Comparison) String() string {
	switch c {
	case AtLeast:
		return "ge"
	case AtMost:
		return "le"
	default:
		return "none"
	}
}
