// Package subtype: core value types shared by the whole pipeline —
// the optional score Value, ModuleOrder, and the columnar ScoreTable.

package subtype

import "fmt"

// Unclassified is the TopCluster value assigned to a sample whose every
// module score is missing (no module had a measured gene for it). It is
// never a member of ModuleOrder and sorts after every real module.
const Unclassified = "Unclassified"

// DefaultPreferredOrder is the built-in reference display order for the
// four consensus subtypes shipped with the package. It is only a default
// argument — callers supply their own order for custom module sets, and
// names absent from the module set are simply skipped during resolution.
func DefaultPreferredOrder() []string {
	return []string{"CMS1", "CMS2", "CMS3", "CMS4"}
}

// Value is an explicit optional module score. Valid == false means the
// score is undefined (missing), which downstream code must treat as
// absent-from-consideration — it never compares as zero.
type Value struct {
	Float64 float64
	Valid   bool
}

// Some wraps a defined score.
func Some(v float64) Value { return Value{Float64: v, Valid: true} }

// None is the missing score.
func None() Value { return Value{} }

// ModuleOrder is the finalized sequence of module names used for every
// downstream operation: argmax tie-breaking, simplicity restriction and
// display grouping. It is always a permutation of the ModuleSet's names.
type ModuleOrder []string

// Index returns the position of name in the order, or -1 when absent.
func (o ModuleOrder) Index(name string) int {
	for i, n := range o {
		if n == name {
			return i
		}
	}

	return -1
}

// ResolveOrder computes ModuleOrder from a module name universe (in
// fallback order) and an optional preferred display order: preferred names
// present in the universe come first, in preferred order, ignoring repeats
// and unknown names; remaining universe names follow in fallback order.
// The result is a permutation of names — no duplicates, no omissions.
func ResolveOrder(names, preferred []string) ModuleOrder {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	order := make(ModuleOrder, 0, len(names))
	taken := make(map[string]bool, len(names))
	for _, n := range preferred {
		if known[n] && !taken[n] {
			order = append(order, n)
			taken[n] = true
		}
	}
	for _, n := range names {
		if !taken[n] {
			order = append(order, n)
			taken[n] = true
		}
	}

	return order
}

// ScoreTable is the columnar per-sample result of the pipeline: one row
// per sample, one score column per module in ModuleOrder, the TopCluster
// call, and (after simplicity scoring) the SimplicityScore column.
// Columns are appended as stages run; rows are never deleted. Row order is
// initially the expression matrix's sample order and is re-sorted by the
// arrange stage via Permute.
type ScoreTable struct {
	samples []string  // row keys, unique
	order   ModuleOrder
	scores  [][]Value // sample-major: scores[i][k] = sample i, module order[k]
	top     []string  // TopCluster per sample (a member of order, or Unclassified)

	simplicity    []float64
	hasSimplicity bool
}

// Len returns the number of sample rows.
func (t *ScoreTable) Len() int { return len(t.samples) }

// Samples returns a copy of the sample identifiers in row order.
func (t *ScoreTable) Samples() []string { return append([]string(nil), t.samples...) }

// Order returns a copy of the table's ModuleOrder.
func (t *ScoreTable) Order() ModuleOrder { return append(ModuleOrder(nil), t.order...) }

// Sample returns the identifier of row i.
func (t *ScoreTable) Sample(i int) (string, error) {
	if i < 0 || i >= len(t.samples) {
		return "", fmt.Errorf("subtype.ScoreTable.Sample(%d): %w", i, ErrOutOfRange)
	}

	return t.samples[i], nil
}

// At returns the score of row i for the module at position k in
// ModuleOrder. A missing score has Valid == false.
func (t *ScoreTable) At(i, k int) (Value, error) {
	if i < 0 || i >= len(t.samples) || k < 0 || k >= len(t.order) {
		return None(), fmt.Errorf("subtype.ScoreTable.At(%d,%d): %w", i, k, ErrOutOfRange)
	}

	return t.scores[i][k], nil
}

// RowScores returns a copy of row i's module scores in ModuleOrder.
func (t *ScoreTable) RowScores(i int) ([]Value, error) {
	if i < 0 || i >= len(t.samples) {
		return nil, fmt.Errorf("subtype.ScoreTable.RowScores(%d): %w", i, ErrOutOfRange)
	}

	return append([]Value(nil), t.scores[i]...), nil
}

// TopCluster returns the subtype call of row i.
func (t *ScoreTable) TopCluster(i int) (string, error) {
	if i < 0 || i >= len(t.samples) {
		return "", fmt.Errorf("subtype.ScoreTable.TopCluster(%d): %w", i, ErrOutOfRange)
	}

	return t.top[i], nil
}

// HasSimplicity reports whether the SimplicityScore column has been set.
func (t *ScoreTable) HasSimplicity() bool { return t.hasSimplicity }

// SimplicityScore returns the confidence value of row i.
// Returns ErrNoSimplicity before any simplicity scorer has run.
func (t *ScoreTable) SimplicityScore(i int) (float64, error) {
	if !t.hasSimplicity {
		return 0, fmt.Errorf("subtype.ScoreTable.SimplicityScore(%d): %w", i, ErrNoSimplicity)
	}
	if i < 0 || i >= len(t.samples) {
		return 0, fmt.Errorf("subtype.ScoreTable.SimplicityScore(%d): %w", i, ErrOutOfRange)
	}

	return t.simplicity[i], nil
}

// SimplicityScores returns a copy of the SimplicityScore column.
func (t *ScoreTable) SimplicityScores() ([]float64, error) {
	if !t.hasSimplicity {
		return nil, fmt.Errorf("subtype.ScoreTable.SimplicityScores: %w", ErrNoSimplicity)
	}

	return append([]float64(nil), t.simplicity...), nil
}

// SetSimplicity appends (or overwrites) the SimplicityScore column.
// vals[i] belongs to row i; len(vals) must equal Len(). The slice is
// copied. No other column is modified.
func (t *ScoreTable) SetSimplicity(vals []float64) error {
	if t == nil {
		return fmt.Errorf("subtype.ScoreTable.SetSimplicity: %w", ErrNilTable)
	}
	if len(vals) != len(t.samples) {
		return fmt.Errorf("subtype.ScoreTable.SetSimplicity: %d values for %d samples: %w",
			len(vals), len(t.samples), ErrLengthMismatch)
	}
	t.simplicity = append([]float64(nil), vals...)
	t.hasSimplicity = true

	return nil
}

// Permute returns a deep copy of the table with rows reordered so that
// new row p equals old row idx[p]. idx must be a permutation of [0, Len).
// Every column — scores, TopCluster and SimplicityScore if set — moves
// with its row.
func (t *ScoreTable) Permute(idx []int) (*ScoreTable, error) {
	if t == nil {
		return nil, fmt.Errorf("subtype.ScoreTable.Permute: %w", ErrNilTable)
	}
	n := len(t.samples)
	if len(idx) != n {
		return nil, fmt.Errorf("subtype.ScoreTable.Permute: %d indices for %d rows: %w",
			len(idx), n, ErrBadPermutation)
	}
	seen := make([]bool, n)
	for _, i := range idx {
		if i < 0 || i >= n || seen[i] {
			return nil, fmt.Errorf("subtype.ScoreTable.Permute: index %d: %w", i, ErrBadPermutation)
		}
		seen[i] = true
	}

	out := &ScoreTable{
		samples:       make([]string, n),
		order:         append(ModuleOrder(nil), t.order...),
		scores:        make([][]Value, n),
		top:           make([]string, n),
		hasSimplicity: t.hasSimplicity,
	}
	if t.hasSimplicity {
		out.simplicity = make([]float64, n)
	}
	for p, i := range idx {
		out.samples[p] = t.samples[i]
		out.scores[p] = append([]Value(nil), t.scores[i]...)
		out.top[p] = t.top[i]
		if t.hasSimplicity {
			out.simplicity[p] = t.simplicity[i]
		}
	}

	return out, nil
}
