package subtype

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/genemodule/subtyper/expr"
)

// Score — module scoring and subtype assignment.
//
// Description:
//
//	For each module m in the resolved ModuleOrder, Score intersects m's
//	gene set with the matrix's gene rows and computes, per sample, the
//	arithmetic mean of the sample's measured values over that
//	intersection. The module with the maximum score becomes the sample's
//	TopCluster.
//
// Algorithm outline:
//  1. Validate inputs (nil matrix, nil/empty module set) — fail fast.
//  2. Resolve ModuleOrder: preferred names present in the set first,
//     remaining set names in insertion order (see ResolveOrder).
//  3. For each module in ModuleOrder:
//     a. Intersect its gene list with the matrix rows, deduplicating
//     repeated identifiers; record the matching row indices.
//     b. Empty intersection ⇒ every sample scores missing for m.
//     c. Otherwise, per sample: mean over the non-NaN values among the
//     intersected rows; all-NaN ⇒ missing.
//  4. Per sample: stable argmax over ModuleOrder — scan in order, keep
//     the first maximum among defined scores. Missing scores are never
//     selected. All scores missing ⇒ TopCluster = Unclassified.
//
// Determinism:
//   - ModuleOrder and the intersection order are fixed by the inputs;
//     identical inputs give byte-identical tables.
//
// Errors:
//   - ErrNilMatrix      — m is nil
//   - ErrEmptyModuleSet — set is nil or has no modules
//
// Complexity: O(Σ|module genes| + modules × samples × genes-per-module).
func Score(m *expr.Matrix, set *expr.ModuleSet, opts ...Option) (*ScoreTable, ModuleOrder, error) {
	if m == nil {
		return nil, nil, fmt.Errorf("subtype.Score: %w", ErrNilMatrix)
	}
	if set == nil || set.Len() == 0 {
		return nil, nil, fmt.Errorf("subtype.Score: %w", ErrEmptyModuleSet)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order := ResolveOrder(set.Names(), o.Preferred)
	samples := m.Samples()
	nSamples, nModules := len(samples), len(order)

	// Score columns, module-major while computing, sample-major in the table.
	cols := make([][]Value, nModules)
	for k, name := range order {
		genes, _ := set.Genes(name) // name comes from the set; always present
		rows := intersectRows(m, genes)
		cols[k] = scoreColumn(m, rows, nSamples)
	}

	t := &ScoreTable{
		samples: samples,
		order:   order,
		scores:  make([][]Value, nSamples),
		top:     make([]string, nSamples),
	}
	for i := 0; i < nSamples; i++ {
		row := make([]Value, nModules)
		for k := 0; k < nModules; k++ {
			row[k] = cols[k][i]
		}
		t.scores[i] = row
		t.top[i] = argmax(order, row)
	}

	return t, order, nil
}

// intersectRows maps a module's gene list to matrix row indices, skipping
// absent genes and deduplicating repeats, in gene-list order.
func intersectRows(m *expr.Matrix, genes []string) []int {
	rows := make([]int, 0, len(genes))
	seen := make(map[int]bool, len(genes))
	for _, g := range genes {
		i, ok := m.GeneIndex(g)
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		rows = append(rows, i)
	}

	return rows
}

// scoreColumn computes one module's score for every sample: the mean of
// the measured (non-NaN) values among rows. No rows, or all values NaN
// for a sample, yields a missing score — never zero.
func scoreColumn(m *expr.Matrix, rows []int, nSamples int) []Value {
	col := make([]Value, nSamples) // zero Value is missing
	if len(rows) == 0 {
		return col
	}

	vals := make([]float64, 0, len(rows))
	for j := 0; j < nSamples; j++ {
		vals = vals[:0]
		for _, i := range rows {
			v, _ := m.At(i, j) // indices come from the matrix itself
			if !math.IsNaN(v) {
				vals = append(vals, v)
			}
		}
		if len(vals) == 0 {
			continue
		}
		mean, err := stats.Mean(vals)
		if err != nil {
			continue // unreachable: vals is non-empty
		}
		col[j] = Some(mean)
	}

	return col
}

// argmax returns the name of the first module in order holding the
// maximum defined score, or Unclassified when every score is missing.
func argmax(order ModuleOrder, row []Value) string {
	best, bestAt := math.Inf(-1), -1
	for k, v := range row {
		if !v.Valid {
			continue
		}
		if bestAt == -1 || v.Float64 > best {
			best, bestAt = v.Float64, k
		}
	}
	if bestAt == -1 {
		return Unclassified
	}

	return order[bestAt]
}
