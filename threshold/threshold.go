// SPDX-License-Identifier: MIT
// Package: turing/threshold
//
// threshold.go — minimum run length K of consecutive Gram blocks.
//
// Purpose:
//   - Turing's method certifies a zero count once K consecutive Gram blocks
//     satisfy Rosser's rule. K grows like ln² of the height:
//
//	Gp = G + Window
//	K  = ⌈ A·(ln Gp)² + B·ln Gp ⌉,   A = 0.00313, B = 0.1039
//
// Contract:
//   - Arithmetic runs at max(G.Prec(), 64) bits, so G may exceed float64 range.
//   - No panics; a non-positive Gp is reported as ErrDomain.
//
// Complexity: one big-float logarithm.

package threshold

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/turing/precision"
)

// Window is added to G to bound the end of the verification window.
const Window = 100

// Coefficients of the K bound, kept as decimal strings so they are parsed
// exactly at the working precision.
const (
	coefSquare = "0.00313"
	coefLinear = "0.1039"
)

const minPrec = 64

// ErrDomain indicates G is nil or G + Window ≤ 0.
var ErrDomain = errors.New("threshold: Gram point outside domain")

// K returns the number of consecutive Gram blocks required at height g.
func K(g *big.Float) (int, error) {
	if g == nil || g.IsInf() {
		return 0, fmt.Errorf("K: %v: %w", g, ErrDomain)
	}

	prec := g.Prec()
	if prec < minPrec {
		prec = minPrec
	}
	nf := func() *big.Float { return new(big.Float).SetPrec(prec) }

	gp := nf().Add(g, nf().SetInt64(Window))
	if gp.Sign() <= 0 {
		return 0, fmt.Errorf("K: G+%d = %s: %w", Window, gp.Text('g', 10), ErrDomain)
	}

	ln, err := precision.Log(gp)
	if err != nil {
		return 0, fmt.Errorf("K: %w", err)
	}

	a, _, err := big.ParseFloat(coefSquare, 10, prec, big.ToNearestEven)
	if err != nil {
		return 0, fmt.Errorf("K: %w", err)
	}
	b, _, err := big.ParseFloat(coefLinear, 10, prec, big.ToNearestEven)
	if err != nil {
		return 0, fmt.Errorf("K: %w", err)
	}

	sq := nf().Mul(ln, ln)
	sq.Mul(sq, a)
	lin := nf().Mul(ln, b)
	raw := nf().Add(sq, lin)

	k, err := precision.Ceil(raw)
	if err != nil {
		return 0, fmt.Errorf("K: %w", err)
	}

	return int(k.Int64()), nil
}
