// Package simplicity defines the closed method selector for confidence
// scoring.
package simplicity

import (
	"errors"
	"fmt"
)

// Method selects the simplicity formula.
//
//   - Gap     — dominance-gap formula with second-tier spread penalty.
//   - Entropy — normalized Shannon-entropy (purity) formula.
//
// Method is a closed enum: Score rejects anything else with
// ErrUnknownMethod before touching the table.
type Method int

const (
	// Gap selects the dominance-gap formula.
	Gap Method = iota

	// Entropy selects the normalized-entropy formula.
	Entropy
)

// Sentinel errors for simplicity scoring.
var (
	// ErrUnknownMethod is returned for a Method outside the closed enum,
	// or an unrecognized tag passed to ParseMethod.
	ErrUnknownMethod = errors.New("simplicity: unknown method")

	// ErrNilTable is returned when the score table is nil.
	ErrNilTable = errors.New("simplicity: score table is nil")
)

// String returns the canonical tag of the method.
func (m Method) String() string {
	switch m {
	case Gap:
		return "gap"
	case Entropy:
		return "entropy"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a literal method tag onto the enum.
// Recognized tags: "gap", "entropy". Anything else → ErrUnknownMethod.
func ParseMethod(tag string) (Method, error) {
	switch tag {
	case "gap":
		return Gap, nil
	case "entropy":
		return Entropy, nil
	default:
		return 0, fmt.Errorf("simplicity.ParseMethod: %q: %w", tag, ErrUnknownMethod)
	}
}
