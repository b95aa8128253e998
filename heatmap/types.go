package heatmap

import "github.com/genemodule/subtyper/arrange"

// Scale selects the axis along which a renderer rescales cell values for
// display. ScaleNone draws the matrix as supplied.
type Scale int

const (
	// ScaleNone applies no display scaling.
	ScaleNone Scale = iota

	// ScaleRow rescales within each module row.
	ScaleRow

	// ScaleColumn rescales within each sample column.
	ScaleColumn
)

// Options are the cosmetic display switches handed to a renderer.
// None of them affect any computed value.
type Options struct {
	// ShowSampleNames toggles column labels.
	ShowSampleNames bool

	// Scale selects display rescaling (none/row/column).
	Scale Scale

	// CellWidth and CellHeight fix the cell geometry in renderer units;
	// zero lets the renderer choose.
	CellWidth, CellHeight float64

	// ClusterRows and ClusterColumns toggle renderer-side clustering.
	// The arrange stage already orders both axes, so these default off.
	ClusterRows, ClusterColumns bool

	// ShowLegend toggles the confidence legend.
	ShowLegend bool
}

// Figure is the renderer's opaque output; the scoring core never
// inspects it.
type Figure interface{}

// Renderer draws an arrangement as a heatmap. Implementations are
// supplied by the caller; this core ships none.
type Renderer interface {
	Render(a *arrange.Arrangement, opts Options) (Figure, error)
}
