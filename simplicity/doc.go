// Package simplicity quantifies how unambiguous a sample's subtype
// assignment is, appending a SimplicityScore column to a score table.
//
// 🚀 What is a simplicity score?
//
//	A scalar confidence measure over a sample's module-score vector.
//	A sample whose top module clearly dominates the rest is "simple"
//	(high score); a sample whose scores are spread evenly is ambiguous
//	(low score). Two formulas are available, selected by a closed Method
//	enum — unrecognized selectors are rejected at the boundary.
//
// ✨ The two methods:
//
//   - Gap — rewards the aggregate dominance of the top score over every
//     other score (ADDS), penalizes spread among the non-extreme scores
//     (ADNS: ambiguous second-tier signal), and rescales by the overall
//     dynamic range. Fewer than three defined scores fall back to the
//     plain range.
//
//   - Entropy — one minus the normalized Shannon entropy of the
//     min-shifted score distribution: 0 for maximally spread scores,
//     approaching 1 as one module dominates.
//
// Missing module scores are absent from consideration: both formulas
// operate on the defined entries of the vector only. Degenerate inputs
// (constant vectors, a single module, no defined scores) each have a
// documented zero-valued fallback, never an error.
//
// ⚙️ Usage:
//
//	if err := simplicity.Score(table, simplicity.Entropy); err != nil { ... }
//	conf, _ := table.SimplicityScore(0)
//
// Complexity: O(samples × modules log modules); pure apart from the
// appended column.
package simplicity
