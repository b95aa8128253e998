// Package heatmap declares the boundary to the heatmap renderer
// collaborator.
//
// The renderer is external to the scoring core: it receives a precomputed
// module×sample matrix, per-sample annotation values and a color ramp
// (see arrange.Arrangement) plus cosmetic display options, and returns an
// opaque figure. It performs no scoring logic — all numbers it draws were
// computed upstream. This package therefore holds only the interface and
// the option types; concrete renderers live with the drawing toolkit that
// implements them.
package heatmap
