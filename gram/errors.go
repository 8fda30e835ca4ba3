// SPDX-License-Identifier: MIT
// Package: turing/gram
//
// errors.go — sentinel errors for the grid builder.
//
// Taxonomy:
//   • ErrConfig     — bad request, raised before any evaluator call.
//   • ErrCapacity   — table sizes above the configured limits, raised before
//                     any sample is requested.
//   • ErrEvaluator  — the evaluator failed or returned a malformed batch;
//                     fatal, no partial table is returned.
//   • ErrOutOfRange — an (interval, offset) pair or flat index outside the grid.
//   • ErrInvariant  — Table.Verify found a broken structural invariant.

package gram

import "errors"

// ErrConfig indicates an invalid countGram, samplesPerInterval or target.
var ErrConfig = errors.New("gram: invalid configuration")

// ErrCapacity indicates that the requested table exceeds the configured limits.
var ErrCapacity = errors.New("gram: table capacity exceeded")

// ErrEvaluator indicates a failed or malformed evaluator call.
var ErrEvaluator = errors.New("gram: evaluator failure")

// ErrOutOfRange indicates an index outside the sample grid.
var ErrOutOfRange = errors.New("gram: index out of range")

// ErrInvariant indicates a table whose structure is inconsistent.
var ErrInvariant = errors.New("gram: table invariant violated")
