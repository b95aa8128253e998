// Package subtype: sentinel errors. All user-triggered failures return one
// of these; tests match with errors.Is.

package subtype

import "errors"

var (
	// ErrNilMatrix is returned when a nil *expr.Matrix is passed.
	ErrNilMatrix = errors.New("subtype: matrix is nil")

	// ErrEmptyModuleSet is returned when the module set is nil or empty.
	ErrEmptyModuleSet = errors.New("subtype: module set is nil or empty")

	// ErrNilTable is returned by ScoreTable methods (Permute,
	// SetSimplicity) invoked on a nil table.
	ErrNilTable = errors.New("subtype: score table is nil")

	// ErrBadPermutation is returned by Permute when idx is not a
	// permutation of the table's row indices.
	ErrBadPermutation = errors.New("subtype: invalid permutation")

	// ErrLengthMismatch is returned by SetSimplicity when the value count
	// does not equal the sample count.
	ErrLengthMismatch = errors.New("subtype: length mismatch")

	// ErrOutOfRange indicates a sample or module index outside the table.
	ErrOutOfRange = errors.New("subtype: index out of range")

	// ErrNoSimplicity is returned when the simplicity column is read
	// before any scorer has set it.
	ErrNoSimplicity = errors.New("subtype: simplicity column not set")
)
