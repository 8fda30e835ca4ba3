// SPDX-License-Identifier: MIT
// Package: turing/analysis
//
// errors.go — sentinel errors for the analysis stages.

package analysis

import "errors"

// ErrShape indicates input slices whose lengths do not fit the grid.
var ErrShape = errors.New("analysis: inconsistent input shape")

// ErrNilTable indicates Analyze was called without a table.
var ErrNilTable = errors.New("analysis: table is nil")
