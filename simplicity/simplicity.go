package simplicity

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/genemodule/subtyper/subtype"
)

// Score computes one simplicity value per sample under the selected
// method and appends the SimplicityScore column to t (overwriting a
// previous column if present). No other column is modified.
//
// Per-sample input is the sample's module-score vector restricted to the
// table's ModuleOrder; missing scores are dropped before either formula
// runs (they are absent from consideration, not zeros).
//
// Errors:
//   - ErrNilTable      — t is nil
//   - ErrUnknownMethod — method outside the closed {Gap, Entropy} enum
//
// Determinism: identical tables and method give byte-identical columns.
func Score(t *subtype.ScoreTable, method Method) error {
	if t == nil {
		return fmt.Errorf("simplicity.Score: %w", ErrNilTable)
	}
	if method != Gap && method != Entropy {
		return fmt.Errorf("simplicity.Score: %v: %w", method, ErrUnknownMethod)
	}

	n := t.Len()
	nModules := len(t.Order())
	out := make([]float64, n)
	vec := make([]float64, 0, nModules)

	for i := 0; i < n; i++ {
		row, err := t.RowScores(i)
		if err != nil {
			return fmt.Errorf("simplicity.Score: %w", err)
		}
		vec = vec[:0]
		for _, v := range row {
			if v.Valid {
				vec = append(vec, v.Float64)
			}
		}
		switch method {
		case Gap:
			out[i] = gapScore(vec)
		case Entropy:
			out[i] = entropyScore(vec, nModules)
		}
	}

	if err := t.SetSimplicity(out); err != nil {
		return fmt.Errorf("simplicity.Score: %w", err)
	}

	return nil
}

// gapScore — dominance-gap simplicity.
//
// With ranks r1 ≥ r2 ≥ … ≥ rn (the defined scores sorted descending):
//
//	n < 3:  r1 − rn                       (plain range; 0 for n ≤ 1)
//	n ≥ 3:  (ADDS − ADNS) × correction
//
//	ADDS       = Σ_{i=2..n} (r1 − ri)     — aggregate dominance of the top
//	ADNS       = Σ_{a=1..M} Σ_{b=a..M} (r_{a+1} − r_{b+2}),  M = n−2
//	             — upper-triangular spread among the non-extreme scores,
//	               pairing the a-th middle rank r2..r(n−1) against the
//	               a-th-through-last of the shifted list r3..rn
//	correction = (r1 − rn) / (n − 1)
//
// ADDS rewards a single clearly dominant module; ADNS penalizes a spread
// second tier; the correction rescales by the dynamic range.
func gapScore(scores []float64) float64 {
	n := len(scores)
	if n == 0 {
		return 0
	}

	r := append([]float64(nil), scores...)
	sort.Sort(sort.Reverse(sort.Float64Slice(r)))

	if n < 3 {
		return r[0] - r[n-1]
	}

	var adds float64
	for i := 1; i < n; i++ {
		adds += r[0] - r[i]
	}

	mid := n - 2
	var adns float64
	for a := 0; a < mid; a++ {
		for b := a; b < mid; b++ {
			adns += r[a+1] - r[b+2]
		}
	}

	correction := (r[0] - r[n-1]) / float64(n-1)

	return (adds - adns) * correction
}

// entropyScore — normalized-entropy (purity) simplicity.
//
// Shift the defined scores by their minimum, normalize to a probability
// distribution p, and return 1 − H(p)/log(N) where H is Shannon entropy
// (zero-probability entries dropped before the log) and N is the total
// module count in ModuleOrder — not the count of defined or nonzero
// entries.
//
// Degenerate fallbacks, each an explicit 0 (maximal ambiguity):
//   - no defined scores
//   - all defined scores equal (zero post-shift sum)
//   - a single-module order (log(1) = 0: no discriminative information)
func entropyScore(scores []float64, nModules int) float64 {
	if len(scores) == 0 || nModules < 2 {
		return 0
	}

	p := append([]float64(nil), scores...)
	floats.AddConst(-floats.Min(p), p)

	total := floats.Sum(p)
	if total == 0 {
		return 0
	}
	floats.Scale(1/total, p)

	h := stat.Entropy(p) // skips zero-probability entries

	return 1 - h/math.Log(float64(nModules))
}
