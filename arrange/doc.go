// Package arrange prepares a scored table for heatmap display: it sorts
// samples, transposes scores into a module×sample matrix, normalizes the
// confidence values and builds the color palette.
//
// 🚀 What does arrange do?
//
//	Given a score table that already carries TopCluster calls and a
//	SimplicityScore column, Arrange produces the full annotation bundle
//	the renderer collaborator consumes:
//
//	  • order      — the sample permutation: grouped by TopCluster in
//	    ModuleOrder sequence, most confident samples first within a group
//	    (Unclassified samples close the sequence)
//	  • matrix     — the reordered module-score columns transposed into a
//	    modules×samples *mat.Dense; missing scores become NaN cells
//	  • annotation — min–max normalized confidence per sample, in [0,1]
//	    (all zeros when every raw confidence is identical)
//	  • palette    — 100 hex color stops interpolated in Lab space
//	    between a light and a dark shade of the same blue hue
//	  • table      — the row-permuted ScoreTable, the canonical
//	    post-arrangement table for downstream use
//
// Arrange never recomputes scores and never mutates its input table.
//
// ⚙️ Usage:
//
//	a, err := arrange.Arrange(table)
//	// hand a.Matrix, a.Annotation and a.Palette to the renderer
//
// Complexity: O(samples log samples + samples × modules).
package arrange
