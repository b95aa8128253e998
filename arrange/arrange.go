package arrange

import (
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/genemodule/subtyper/subtype"
)

// Arrange sorts the table's samples for display and assembles the
// annotation bundle.
//
// Sort comparator, applied stably over the input row order:
//  1. position of TopCluster within ModuleOrder, ascending — samples are
//     grouped by subtype in display sequence; Unclassified groups last;
//  2. SimplicityScore descending — most confident samples lead a group.
//
// The reordered module-score columns are transposed into a
// modules×samples *mat.Dense (missing → NaN), confidence values are
// min–max normalized into [0,1] (all zeros when max == min), and the
// palette is interpolated between PaletteLight and PaletteDark.
//
// Errors:
//   - ErrNilTable     — t is nil
//   - ErrNoSimplicity — t has no SimplicityScore column
//
// Pure apart from its return value; t itself is never modified.
func Arrange(t *subtype.ScoreTable) (*Arrangement, error) {
	if t == nil {
		return nil, fmt.Errorf("arrange.Arrange: %w", ErrNilTable)
	}
	if !t.HasSimplicity() {
		return nil, fmt.Errorf("arrange.Arrange: %w", ErrNoSimplicity)
	}

	order := t.Order()
	n := t.Len()

	// Precompute sort keys so the comparator stays cheap and readable.
	pos := make([]int, n)  // TopCluster position; Unclassified → len(order)
	simp := make([]float64, n)
	for i := 0; i < n; i++ {
		top, err := t.TopCluster(i)
		if err != nil {
			return nil, fmt.Errorf("arrange.Arrange: %w", err)
		}
		if p := order.Index(top); p >= 0 {
			pos[i] = p
		} else {
			pos[i] = len(order)
		}
		simp[i], err = t.SimplicityScore(i)
		if err != nil {
			return nil, fmt.Errorf("arrange.Arrange: %w", err)
		}
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		ia, ib := perm[a], perm[b]
		if pos[ia] != pos[ib] {
			return pos[ia] < pos[ib]
		}

		return simp[ia] > simp[ib]
	})

	sorted, err := t.Permute(perm)
	if err != nil {
		return nil, fmt.Errorf("arrange.Arrange: %w", err)
	}

	matrix, err := transpose(sorted)
	if err != nil {
		return nil, fmt.Errorf("arrange.Arrange: %w", err)
	}

	annotation, err := normalizeConfidence(sorted)
	if err != nil {
		return nil, fmt.Errorf("arrange.Arrange: %w", err)
	}

	palette, err := Palette(PaletteLight, PaletteDark, PaletteSize)
	if err != nil {
		return nil, fmt.Errorf("arrange.Arrange: %w", err)
	}

	return &Arrangement{
		Matrix:     matrix,
		Order:      perm,
		Annotation: annotation,
		Palette:    palette,
		Table:      sorted,
	}, nil
}

// transpose turns the sorted table's module columns into a
// modules×samples display matrix. Missing scores become NaN cells, which
// renderers draw as gaps.
func transpose(t *subtype.ScoreTable) (*mat.Dense, error) {
	order := t.Order()
	rows, cols := len(order), t.Len()
	out := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		scores, err := t.RowScores(j)
		if err != nil {
			return nil, err
		}
		for k := 0; k < rows; k++ {
			if scores[k].Valid {
				out.Set(k, j, scores[k].Float64)
			} else {
				out.Set(k, j, math.NaN())
			}
		}
	}

	return out, nil
}

// normalizeConfidence min–max rescales the SimplicityScore column into
// [0,1], keyed by sample identifier. When every value is identical the
// range is degenerate and every sample maps to exactly 0.
func normalizeConfidence(t *subtype.ScoreTable) (map[string]float64, error) {
	simp, err := t.SimplicityScores()
	if err != nil {
		return nil, err
	}
	samples := t.Samples()

	out := make(map[string]float64, len(samples))
	if len(simp) == 0 {
		return out, nil
	}

	lo, hi := floats.Min(simp), floats.Max(simp)
	span := hi - lo
	for i, id := range samples {
		if span > 0 {
			out[id] = (simp[i] - lo) / span
		} else {
			out[id] = 0
		}
	}

	return out, nil
}

// Palette returns n hex color stops linearly interpolated in Lab space
// between the light and dark anchors, endpoints inclusive. Lab blending
// keeps perceptual spacing even; out-of-gamut intermediates are clamped.
func Palette(light, dark string, n int) ([]string, error) {
	lo, err := colorful.Hex(light)
	if err != nil {
		return nil, fmt.Errorf("arrange.Palette: anchor %q: %v", light, err)
	}
	hi, err := colorful.Hex(dark)
	if err != nil {
		return nil, fmt.Errorf("arrange.Palette: anchor %q: %v", dark, err)
	}
	if n < 2 {
		n = 2 // a ramp needs both endpoints
	}

	stops := make([]string, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		stops[i] = lo.BlendLab(hi, f).Clamped().Hex()
	}

	return stops, nil
}
