// SPDX-License-Identifier: MIT
// Package expr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the expr
// package. Constructors MUST return these sentinels and tests MUST check them
// via errors.Is. No constructor panics on user-triggered error conditions.

package expr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "expr: ..." for consistency. Sentinels are
// returned wrapped with fmt.Errorf("ctx: %w", ErrX) where context helps the
// caller identify the offending label; errors.Is still matches.

var (
	// ErrBadShape is returned when the data length does not equal
	// rows×cols, or when either dimension is zero.
	ErrBadShape = errors.New("expr: invalid matrix shape")

	// ErrEmptyLabel indicates an empty gene or sample label.
	ErrEmptyLabel = errors.New("expr: empty label")

	// ErrDuplicateLabel indicates a repeated gene or sample label.
	ErrDuplicateLabel = errors.New("expr: duplicate label")

	// ErrNonFinite indicates a ±Inf value at ingestion. NaN is legal and
	// means "unmeasured"; infinities are always rejected.
	ErrNonFinite = errors.New("expr: non-finite value")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At) return this, they do not panic.
	ErrOutOfRange = errors.New("expr: index out of range")

	// ErrUnknownLabel indicates a gene or sample label absent from the
	// matrix, or a module name absent from the set.
	ErrUnknownLabel = errors.New("expr: unknown label")

	// ErrEmptyModuleName indicates a module added under an empty name.
	ErrEmptyModuleName = errors.New("expr: empty module name")

	// ErrDuplicateModule indicates a module name added twice.
	ErrDuplicateModule = errors.New("expr: duplicate module name")
)
