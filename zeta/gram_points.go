// SPDX-License-Identifier: MIT
// Package: turing/zeta
//
// gram_points.go — Newton's method for θ(g) = nπ.
//
// The initial guess g₀ = 2π·exp(1 + W((8n+1)/(8e))) inverts the leading
// terms of θ and is accurate to a few digits already for n = 0, so Newton
// converges in a handful of steps at any precision.

package zeta

import (
	"fmt"
	"math"
	"math/big"
)

// Lambert W iteration limits.
const (
	lambertMaxIter = 64
	lambertTol     = 1e-15
)

// gramPoint returns g(n) at the working precision.
//
// Errors:
//   - ErrOutOfDomain   if n < 0 or the initial guess overflows float64.
//   - ErrNoConvergence if no step falls below accuracy within maxIter steps,
//     or the iteration leaves the domain.
func (r *RiemannSiegel) gramPoint(n *big.Int, accuracy *big.Float) (*big.Float, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("g(%s): negative index: %w", n, ErrOutOfDomain)
	}

	nFloat, _ := new(big.Float).SetInt(n).Float64()
	guess := initialGram(nFloat)
	if math.IsInf(guess, 0) || math.IsNaN(guess) {
		return nil, fmt.Errorf("g(%s): initial guess overflows: %w", n, ErrOutOfDomain)
	}

	// Without an explicit accuracy, aim for the run precision relative to g.
	tol := r.nf()
	if accuracy != nil && accuracy.Sign() > 0 {
		tol.Set(accuracy)
	} else {
		tol.SetMantExp(r.nf().SetFloat64(guess), -int(r.outPrec))
	}

	target := r.nf().SetInt(n)
	target.Mul(target, r.pi)

	g := r.nf().SetFloat64(guess)
	step := r.nf()
	for i := 0; i < r.cfg.maxIter; i++ {
		f := r.theta(g)
		f.Sub(f, target)
		step.Quo(f, r.thetaPrime(g))
		g.Sub(g, step)

		if g.Cmp(r.minT) < 0 {
			return nil, fmt.Errorf("g(%s): iterate left the domain: %w", n, ErrNoConvergence)
		}
		if step.Sign() == 0 || new(big.Float).Abs(step).Cmp(tol) <= 0 {
			return g, nil
		}
	}

	return nil, fmt.Errorf("g(%s): %d iterations, last step %s: %w",
		n, r.cfg.maxIter, step.Text('e', 3), ErrNoConvergence)
}

// initialGram returns 2π·exp(1 + W((8n+1)/(8e))).
func initialGram(n float64) float64 {
	w := lambertW((8*n + 1) / (8 * math.E))

	return 2 * math.Pi * math.Exp(1+w)
}

// lambertW solves w·eʷ = x for x ≥ 0 with Halley's iteration.
func lambertW(x float64) float64 {
	w := math.Log1p(x)
	if x > 3 {
		lx := math.Log(x)
		w = lx - math.Log(lx)
	}
	for i := 0; i < lambertMaxIter; i++ {
		ew := math.Exp(w)
		f := w*ew - x
		wp1 := w + 1
		next := w - f/(ew*wp1-(w+2)*f/(2*wp1))
		if math.Abs(next-w) <= lambertTol*(1+math.Abs(next)) {
			return next
		}
		w = next
	}

	return w
}
