// SPDX-License-Identifier: MIT
// Package expr: Matrix is a concrete, row-major labeled expression matrix,
// storing elements in a flat slice for performance and cache friendliness.
// Rows are genes, columns are samples; a NaN cell means "unmeasured".

package expr

import (
	"fmt"
	"math"
)

// matrixErrorf wraps an underlying sentinel with Matrix method context.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("expr.Matrix.%s: %w", method, err)
}

// Matrix is a dense gene×sample matrix of float64 values.
// genes and samples hold the row and column labels; data holds
// len(genes)*len(samples) elements in row-major order.
//
// Invariants (enforced by NewMatrix, relied on everywhere downstream):
//   - every gene label is unique and non-empty
//   - every sample label is unique and non-empty
//   - len(data) == len(genes)*len(samples)
//   - every value is finite or NaN (±Inf never enters)
type Matrix struct {
	genes   []string       // row labels, unique, non-empty
	samples []string       // column labels, unique, non-empty
	rowIdx  map[string]int // gene label → row index
	colIdx  map[string]int // sample label → column index
	data    []float64      // flat backing storage, row-major
}

// NewMatrix builds a labeled expression matrix from row labels, column
// labels and row-major data. It validates eagerly and copies its inputs,
// so the caller's slices stay independent of the returned Matrix.
//
// Errors:
//   - ErrBadShape        — zero rows/cols, or len(data) != rows*cols
//   - ErrEmptyLabel      — an empty gene or sample label
//   - ErrDuplicateLabel  — a repeated gene or sample label
//   - ErrNonFinite       — a ±Inf value (NaN is allowed: "unmeasured")
//
// Complexity: O(r*c) time and memory.
func NewMatrix(genes, samples []string, data []float64) (*Matrix, error) {
	r, c := len(genes), len(samples)
	if r == 0 || c == 0 {
		return nil, matrixErrorf("New", ErrBadShape)
	}
	if len(data) != r*c {
		return nil, fmt.Errorf("expr.Matrix.New: data length %d for %d×%d: %w",
			len(data), r, c, ErrBadShape)
	}

	rowIdx, err := indexLabels("gene", genes)
	if err != nil {
		return nil, err
	}
	colIdx, err := indexLabels("sample", samples)
	if err != nil {
		return nil, err
	}

	// Reject infinities up front so scoring never has to re-check.
	for i, v := range data {
		if math.IsInf(v, 0) {
			return nil, fmt.Errorf("expr.Matrix.New: value at flat index %d: %w", i, ErrNonFinite)
		}
	}

	m := &Matrix{
		genes:   append([]string(nil), genes...),
		samples: append([]string(nil), samples...),
		rowIdx:  rowIdx,
		colIdx:  colIdx,
		data:    append([]float64(nil), data...),
	}

	return m, nil
}

// indexLabels validates a label sequence (non-empty, unique) and returns
// the label → position index. kind is used only for error context.
func indexLabels(kind string, labels []string) (map[string]int, error) {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("expr.Matrix.New: %s %d: %w", kind, i, ErrEmptyLabel)
		}
		if _, seen := idx[l]; seen {
			return nil, fmt.Errorf("expr.Matrix.New: %s %q: %w", kind, l, ErrDuplicateLabel)
		}
		idx[l] = i
	}

	return idx, nil
}

// Rows returns the number of gene rows. Complexity: O(1).
func (m *Matrix) Rows() int { return len(m.genes) }

// Cols returns the number of sample columns. Complexity: O(1).
func (m *Matrix) Cols() int { return len(m.samples) }

// Genes returns a copy of the gene row labels in row order.
func (m *Matrix) Genes() []string { return append([]string(nil), m.genes...) }

// Samples returns a copy of the sample column labels in column order.
func (m *Matrix) Samples() []string { return append([]string(nil), m.samples...) }

// GeneIndex returns the row index of gene, and whether it is present.
func (m *Matrix) GeneIndex(gene string) (int, bool) {
	i, ok := m.rowIdx[gene]

	return i, ok
}

// SampleIndex returns the column index of sample, and whether it is present.
func (m *Matrix) SampleIndex(sample string) (int, bool) {
	j, ok := m.colIdx[sample]

	return j, ok
}

// At retrieves the element at (row, col). A NaN result means the value is
// unmeasured. Returns ErrOutOfRange on bad indices; never panics.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= len(m.genes) {
		return 0, fmt.Errorf("expr.Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if col < 0 || col >= len(m.samples) {
		return 0, fmt.Errorf("expr.Matrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*len(m.samples)+col], nil
}

// Value retrieves the element for (gene, sample) by label.
// Returns ErrUnknownLabel when either label is absent.
func (m *Matrix) Value(gene, sample string) (float64, error) {
	i, ok := m.rowIdx[gene]
	if !ok {
		return 0, fmt.Errorf("expr.Matrix.Value: gene %q: %w", gene, ErrUnknownLabel)
	}
	j, ok := m.colIdx[sample]
	if !ok {
		return 0, fmt.Errorf("expr.Matrix.Value: sample %q: %w", sample, ErrUnknownLabel)
	}

	return m.data[i*len(m.samples)+j], nil
}

// Row returns a copy of the values of the given gene row in column order.
// The copy keeps the Matrix immutable from outside.
func (m *Matrix) Row(row int) ([]float64, error) {
	if row < 0 || row >= len(m.genes) {
		return nil, fmt.Errorf("expr.Matrix.Row(%d): %w", row, ErrOutOfRange)
	}
	c := len(m.samples)
	out := make([]float64, c)
	copy(out, m.data[row*c:(row+1)*c])

	return out, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	cp, _ := NewMatrix(m.genes, m.samples, m.data) // inputs already valid

	return cp
}

// String implements fmt.Stringer for quick debugging.
func (m *Matrix) String() string {
	return fmt.Sprintf("expr.Matrix{%d genes × %d samples}", len(m.genes), len(m.samples))
}
