// Package arrange: output bundle, palette anchors and sentinel errors.
package arrange

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/genemodule/subtyper/subtype"
)

// Palette geometry and anchors. The ramp runs light → dark within one
// blue hue so that normalized confidence maps naturally onto ink density.
const (
	// PaletteSize is the number of interpolated color stops.
	PaletteSize = 100

	// PaletteLight is the light anchor (low confidence).
	PaletteLight = "#f7fbff"

	// PaletteDark is the dark anchor (high confidence).
	PaletteDark = "#08306b"
)

// Sentinel errors for arrangement.
var (
	// ErrNilTable is returned when the score table is nil.
	ErrNilTable = errors.New("arrange: score table is nil")

	// ErrNoSimplicity is returned when the table has no SimplicityScore
	// column yet — run a simplicity scorer first.
	ErrNoSimplicity = errors.New("arrange: simplicity column not set")
)

// Arrangement is the render-only annotation bundle: everything the
// heatmap collaborator needs, precomputed. It is created once per call
// and never mutated afterwards.
type Arrangement struct {
	// Matrix holds the module scores transposed for display:
	// rows = ModuleOrder, columns = samples in sorted order.
	// Missing scores are NaN cells.
	Matrix *mat.Dense

	// Order is the applied sample permutation: output position p shows
	// input row Order[p].
	Order []int

	// Annotation maps sample identifier → min–max normalized confidence
	// in [0,1]. All zeros when every raw confidence is identical.
	Annotation map[string]float64

	// Palette is the PaletteSize-stop hex color ramp, light to dark,
	// handed unchanged to the renderer.
	Palette []string

	// Table is the row-permuted ScoreTable matching Order — the
	// canonical post-arrangement table for downstream callers.
	Table *subtype.ScoreTable
}
