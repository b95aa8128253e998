// Package subtype scores gene modules against an expression matrix and
// assigns each sample its dominant module (the TopCluster call).
//
// 🚀 What does subtype do?
//
//	For every (sample, module) pair it computes the arithmetic mean of the
//	sample's expression over the module's genes that are present in the
//	matrix, ignoring unmeasured (NaN) values. The module with the highest
//	score becomes the sample's TopCluster; ties break toward the earlier
//	position in ModuleOrder, so calls are deterministic.
//
// Missing data is explicit throughout:
//
//   - a module whose genes do not intersect the matrix scores missing
//     (Value.Valid == false) for every sample — never zero;
//   - a sample whose values are all unmeasured across a module's genes
//     scores missing for that module;
//   - a missing score is never selected as TopCluster; a sample missing
//     every module score is called Unclassified.
//
// ModuleOrder is resolved once, before scoring: modules named in the
// preferred order come first (in that order), the rest follow in the
// ModuleSet's insertion order. Every downstream stage — tie-breaking,
// simplicity scoring, display ordering — reuses this one sequence.
//
// ⚙️ Usage:
//
//	table, order, err := subtype.Score(m, modules,
//	    subtype.WithPreferredOrder([]string{"Basal", "Classical"}))
//
// Complexity: O(Σ|module genes| + samples × modules) time; pure function,
// inputs are never mutated.
package subtype
