// SPDX-License-Identifier: MIT
// Package: turing/precision
//
// log.go — guarded transcendental functions on *big.Float.
//
// math/big has no Log/Exp; github.com/ALTree/bigfloat supplies them at the
// precision of the argument. The wrappers below turn its panics and
// infinities into ErrDomain so callers never have to recover.

package precision

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// Log returns ln(x) at x's precision.
//
// Errors:
//   - ErrDomain if x is nil, x ≤ 0 or x is ±Inf.
func Log(x *big.Float) (*big.Float, error) {
	if x == nil || x.Sign() <= 0 || x.IsInf() {
		return nil, fmt.Errorf("Log: %v: %w", x, ErrDomain)
	}

	return bigfloat.Log(x), nil
}

// Exp returns eˣ at x's precision.
//
// Errors:
//   - ErrDomain if x is nil or ±Inf.
func Exp(x *big.Float) (*big.Float, error) {
	if x == nil || x.IsInf() {
		return nil, fmt.Errorf("Exp: %v: %w", x, ErrDomain)
	}

	return bigfloat.Exp(x), nil
}

// Ceil returns the smallest integer ≥ x.
//
// Errors:
//   - ErrDomain if x is nil or ±Inf.
func Ceil(x *big.Float) (*big.Int, error) {
	if x == nil || x.IsInf() {
		return nil, fmt.Errorf("Ceil: %v: %w", x, ErrDomain)
	}
	// Int truncates toward zero, so only positive non-integers need +1.
	z, acc := x.Int(nil)
	if acc == big.Below {
		z.Add(z, big.NewInt(1))
	}

	return z, nil
}
