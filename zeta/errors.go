// SPDX-License-Identifier: MIT
// Package: turing/zeta
//
// errors.go — sentinel errors for the evaluators.

package zeta

import "errors"

// ErrBadTarget indicates a target that is not a non-negative decimal string.
var ErrBadTarget = errors.New("zeta: malformed target")

// ErrOutOfDomain indicates a height below the evaluator's supported range
// or a negative Gram index.
var ErrOutOfDomain = errors.New("zeta: height out of domain")

// ErrNoConvergence indicates that Newton's iteration for a Gram point did not
// reach the requested accuracy; usually the precision is too low for it.
var ErrNoConvergence = errors.New("zeta: gram point iteration did not converge")

// ErrBadBatch indicates a non-positive count or a nil start/step.
var ErrBadBatch = errors.New("zeta: invalid batch request")
