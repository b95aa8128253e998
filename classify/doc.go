// Package classify runs the whole subtype-scoring pipeline in one call:
// module scoring → simplicity scoring → sample arrangement.
//
// It is a thin façade over the subtype, simplicity and arrange packages,
// for callers who want the annotation bundle without wiring the stages
// themselves. Each stage remains individually importable.
//
// ⚙️ Usage:
//
//	res, err := classify.Run(m, modules,
//	    classify.WithMethod(simplicity.Entropy),
//	    classify.WithPreferredOrder([]string{"Basal", "Classical"}))
//	if err != nil { ... }
//	_ = res.Arrangement.Matrix // modules×samples, display order
//
// Determinism: identical inputs (matrix, modules, options) produce
// byte-identical results end to end.
package classify
