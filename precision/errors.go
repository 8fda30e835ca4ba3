// SPDX-License-Identifier: MIT
// Package: turing/precision
//
// errors.go — sentinel errors for the precision package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by rewording the sentinel.

package precision

import "errors"

// ErrBadPrecision indicates a precision (in bits) outside [MinBits, MaxBits].
var ErrBadPrecision = errors.New("precision: bits out of range")

// ErrBadThreads indicates a non-positive evaluator thread hint.
var ErrBadThreads = errors.New("precision: thread hint must be ≥ 1")

// ErrClosed indicates that a value was requested from a closed Context.
var ErrClosed = errors.New("precision: context is closed")

// ErrParse indicates that a decimal string is empty or contains anything
// besides digits and a single '.'.
var ErrParse = errors.New("precision: malformed decimal")

// ErrDomain indicates an argument outside a function's real domain
// (e.g. Log of a non-positive value).
var ErrDomain = errors.New("precision: argument outside domain")
