// SPDX-License-Identifier: MIT

// Package expr defines the input data model for module-based subtype
// scoring: a labeled dense expression matrix and named gene-module sets.
//
// The expr package provides:
//
//   - Matrix: a dense, row-major float64 matrix with unique gene row labels
//     and unique sample column labels. A NaN cell means "unmeasured"; it is
//     preserved as missing, never coerced to zero.
//   - ModuleSet: an insertion-ordered mapping from module name to a gene
//     identifier list. Insertion order is the fallback display order for
//     modules that do not appear in a caller-supplied preferred order.
//
// Both types validate eagerly on construction: duplicate or empty labels,
// shape mismatches and non-finite (±Inf) values fail fast with sentinel
// errors, before any scoring begins. Values are assumed to be already
// length/variance-normalized by the caller; expr applies no transform.
//
// See the scoring packages subtype, simplicity and arrange for usage.
package expr
