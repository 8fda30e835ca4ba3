// SPDX-License-Identifier: MIT
// Package: turing/precision
//
// context.go — run-scoped arbitrary-precision context.
//
// Contract:
//   • New validates bits/threads and precomputes π once.
//   • Close is idempotent; after Close, Parse and Pi return ErrClosed.
//   • A Context is read-only after New (apart from Close), so concurrent
//     readers (e.g. parallel batch evaluation) may share it.

package precision

import (
	"fmt"
	"math/big"
	"sync/atomic"
)

// Precision bounds in bits. The CLI narrows these to [128, 1024]; the
// package itself only refuses values that cannot represent a float64.
const (
	MinBits uint = 53
	MaxBits uint = 1 << 16

	// DefaultBits mirrors the command line default.
	DefaultBits uint = 256
)

// guardBits are extra bits carried while computing constants so the final
// rounding to the run precision is correct.
const guardBits = 32

// Context carries the precision, evaluator thread hint and debug flags of a run.
type Context struct {
	prec    uint
	threads int
	debug   int
	pi      *big.Float
	closed  atomic.Bool
}

// New creates a Context with the given precision in bits, evaluator thread
// hint and opaque debug flags.
//
// Errors:
//   - ErrBadPrecision if bits ∉ [MinBits, MaxBits].
//   - ErrBadThreads   if threads < 1.
//
// Complexity: O(M(bits)·log bits) for π, where M is big multiplication cost.
func New(bits uint, threads, debugFlags int) (*Context, error) {
	if bits < MinBits || bits > MaxBits {
		return nil, fmt.Errorf("New: %d bits: %w", bits, ErrBadPrecision)
	}
	if threads < 1 {
		return nil, fmt.Errorf("New: %d threads: %w", threads, ErrBadThreads)
	}

	return &Context{
		prec:    bits,
		threads: threads,
		debug:   debugFlags,
		pi:      Pi(bits),
	}, nil
}

// Prec returns the run precision in bits.
func (c *Context) Prec() uint { return c.prec }

// Threads returns the evaluator thread hint.
func (c *Context) Threads() int { return c.threads }

// DebugFlags returns the opaque debug flags forwarded to evaluators.
func (c *Context) DebugFlags() int { return c.debug }

// Float returns a new zero value at the run precision.
func (c *Context) Float() *big.Float {
	return new(big.Float).SetPrec(c.prec)
}

// FromInt returns x as a value at the run precision.
func (c *Context) FromInt(x *big.Int) *big.Float {
	return c.Float().SetInt(x)
}

// Pi returns a fresh copy of π at the run precision.
func (c *Context) Pi() (*big.Float, error) {
	if c.closed.Load() {
		return nil, fmt.Errorf("Pi: %w", ErrClosed)
	}

	return c.Float().Set(c.pi), nil
}

// Parse converts a validated non-negative decimal string to a value at the
// run precision (round to nearest even).
func (c *Context) Parse(s string) (*big.Float, error) {
	if c.closed.Load() {
		return nil, fmt.Errorf("Parse: %w", ErrClosed)
	}
	if err := ValidateDecimal(s); err != nil {
		return nil, err
	}
	x, ok := c.Float().SetMode(big.ToNearestEven).SetString(s)
	if !ok {
		return nil, fmt.Errorf("Parse: %q: %w", s, ErrParse)
	}

	return x, nil
}

// Close releases the context. It is safe to call more than once.
func (c *Context) Close() error {
	c.closed.Store(true)

	return nil
}

// Closed reports whether Close has been called.
func (c *Context) Closed() bool { return c.closed.Load() }

// Pi evaluates π with the Gauss–Legendre iteration at prec+guardBits and
// rounds the result to prec. Context.Pi returns a cached copy; callers that
// need π at a different precision (e.g. with guard bits) use this directly.
//
//	a₀=1, b₀=1/√2, t₀=1/4, p₀=1
//	aₖ₊₁=(aₖ+bₖ)/2, bₖ₊₁=√(aₖbₖ), tₖ₊₁=tₖ−pₖ(aₖ−aₖ₊₁)², pₖ₊₁=2pₖ
//	π ≈ (a+b)²/(4t)
//
// The number of correct digits roughly doubles per step.
func Pi(prec uint) *big.Float {
	work := prec + guardBits
	nf := func() *big.Float { return new(big.Float).SetPrec(work) }

	a := nf().SetInt64(1)
	b := nf().Sqrt(nf().SetInt64(2))
	b.Quo(nf().SetInt64(1), b)
	t := nf().SetFloat64(0.25)
	p := nf().SetInt64(1)

	var steps int
	for bits := uint(1); bits < work; bits <<= 1 {
		steps++
	}
	steps += 2

	for i := 0; i < steps; i++ {
		next := nf().Add(a, b)
		next.SetMantExp(next, -1)

		b.Sqrt(nf().Mul(a, b))

		d := nf().Sub(a, next)
		d.Mul(d, d)
		d.Mul(d, p)
		t.Sub(t, d)

		p.SetMantExp(p, 1)
		a = next
	}

	num := nf().Add(a, b)
	num.Mul(num, num)
	den := nf().SetMantExp(t, 2)

	return new(big.Float).SetPrec(prec).Quo(num, den)
}
