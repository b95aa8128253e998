// Package subtyper assigns samples in a gene-expression dataset to
// molecular subtypes by scoring curated gene modules, and quantifies how
// unambiguous each assignment is.
//
// 🚀 What is subtyper?
//
//	A small, deterministic, in-memory scoring library that brings together:
//		• Module scoring: per-sample mean expression over curated gene sets
//		• Subtype calls: stable argmax over module scores (TopCluster)
//		• Simplicity scores: assignment confidence via a gap or entropy formula
//		• Display preparation: grouped sample ordering, module×sample matrix,
//		  normalized confidence annotation and a 100-stop color palette
//
// ✨ Why choose subtyper?
//
//   - Deterministic – identical inputs give byte-identical outputs
//   - Explicit missing-data handling – unmeasured values are never coerced to 0
//   - Pure – no I/O, no global state, no side effects; one call per dataset
//   - Composable – each stage is usable on its own or through classify.Run
//
// Everything is organized under six subpackages:
//
//	expr/       — input model: labeled expression matrix & gene-module sets
//	subtype/    — ModuleScorer: score table, ModuleOrder, TopCluster calls
//	simplicity/ — SimplicityScorer: gap & entropy confidence formulas
//	arrange/    — SampleOrderer: sorting, transposition, annotation bundle
//	heatmap/    — renderer collaborator boundary (interface + display options)
//	classify/   — end-to-end pipeline façade
//
// Quick sketch of the data flow:
//
//	ExpressionMatrix + GeneModuleSet
//	    → ScoreTable (+TopCluster)
//	    → ScoreTable (+SimplicityScore)
//	    → {module×sample matrix, annotation, palette, ordered table}
//	    → Renderer (external)
//
// The caller supplies an already length/variance-normalized matrix; no
// normalization, batch correction or significance testing happens here.
//
//	go get github.com/genemodule/subtyper/classify
package subtyper
