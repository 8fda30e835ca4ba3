// SPDX-License-Identifier: MIT
// Package: turing/zeta
//
// synthetic.go — deterministic gram.Evaluator for demos and tests.
//
// Purpose:
//   - Produce evenly spaced "Gram points" and a cosine Z that obeys Gram's
//     law, so every interval holds exactly one sign change.
//   - Optionally plant close zero pairs (Lehmer pairs) that a coarse grid
//     steps over.
//
// Contract:
//   - O(count) per batch, no goroutines, no global state.
//   - Option constructors panic on nonsense; methods return errors.
//
// Model:
//   - g(n) = origin + n·spacing
//   - x    = (t − origin)/spacing reduced mod 2, in big.Float
//   - Z(t) = A·cos(πx)·Π (t−a)(t−b)/((t−m)²+h²)   over planted pairs

package zeta

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/turing/gram"
	"github.com/katalvlaran/turing/precision"
)

// Defaults specific to the synthetic evaluator.
const (
	defSynthOrigin    = "0"
	defSynthSpacing   = "1"
	defSynthAmplitude = 1.0
)

// ClosePair is a planted pair of zeros a < b.
type ClosePair struct {
	A, B float64
}

type synthParams struct {
	origin    string
	spacing   string
	amplitude float64
	pairs     []ClosePair
}

// SyntheticOption customizes NewSynthetic.
type SyntheticOption func(*synthParams)

// WithOrigin sets g(0) as a non-negative decimal string. Panics on malformed input.
func WithOrigin(decimal string) SyntheticOption {
	if err := precision.ValidateDecimal(decimal); err != nil {
		panic(fmt.Sprintf("zeta: WithOrigin(%q): %v", decimal, err))
	}
	return func(p *synthParams) {
		p.origin = decimal
	}
}

// WithSpacing sets the Gram spacing as a positive decimal string.
// Panics on malformed or zero input.
func WithSpacing(decimal string) SyntheticOption {
	if err := precision.ValidateDecimal(decimal); err != nil {
		panic(fmt.Sprintf("zeta: WithSpacing(%q): %v", decimal, err))
	}
	if f, _, err := big.ParseFloat(decimal, 10, 64, big.ToNearestEven); err != nil || f.Sign() == 0 {
		panic(fmt.Sprintf("zeta: WithSpacing(%q): must be > 0", decimal))
	}
	return func(p *synthParams) {
		p.spacing = decimal
	}
}

// WithAmplitude sets A. Panics unless A > 0 and finite.
func WithAmplitude(a float64) SyntheticOption {
	if !(a > 0) || math.IsInf(a, 0) {
		panic(fmt.Sprintf("zeta: WithAmplitude(%v)", a))
	}
	return func(p *synthParams) {
		p.amplitude = a
	}
}

// WithClosePair plants zeros at a and b. Panics unless a < b.
func WithClosePair(a, b float64) SyntheticOption {
	if !(a < b) {
		panic(fmt.Sprintf("zeta: WithClosePair(%v, %v): need a < b", a, b))
	}
	return func(p *synthParams) {
		p.pairs = append(p.pairs, ClosePair{A: a, B: b})
	}
}

// Synthetic is a deterministic evaluator over evenly spaced Gram points.
type Synthetic struct {
	prec      uint
	origin    *big.Float
	spacing   *big.Float
	two       *big.Float
	amplitude float64
	pairs     []ClosePair
}

var _ gram.Evaluator = (*Synthetic)(nil)

// NewSynthetic creates a Synthetic evaluator at ctx's precision.
func NewSynthetic(ctx *precision.Context, opts ...SyntheticOption) (*Synthetic, error) {
	p := synthParams{
		origin:    defSynthOrigin,
		spacing:   defSynthSpacing,
		amplitude: defSynthAmplitude,
	}
	for _, opt := range opts {
		opt(&p)
	}
	if ctx == nil {
		return nil, fmt.Errorf("NewSynthetic: nil precision context: %w", ErrBadBatch)
	}

	origin, err := ctx.Parse(p.origin)
	if err != nil {
		return nil, fmt.Errorf("NewSynthetic: origin: %w", err)
	}
	spacing, err := ctx.Parse(p.spacing)
	if err != nil {
		return nil, fmt.Errorf("NewSynthetic: spacing: %w", err)
	}

	return &Synthetic{
		prec:      ctx.Prec(),
		origin:    origin,
		spacing:   spacing,
		two:       ctx.Float().SetInt64(2),
		amplitude: p.amplitude,
		pairs:     p.pairs,
	}, nil
}

// LocateNearestIndex returns ⌊(target − origin)/spacing⌋.
func (s *Synthetic) LocateNearestIndex(target string, _ *big.Float) (*big.Int, error) {
	if err := precision.ValidateDecimal(target); err != nil {
		return nil, fmt.Errorf("LocateNearestIndex: %w: %w", ErrBadTarget, err)
	}
	t, ok := s.nf().SetString(target)
	if !ok {
		return nil, fmt.Errorf("LocateNearestIndex: %q: %w", target, ErrBadTarget)
	}
	if t.Cmp(s.origin) < 0 {
		return nil, fmt.Errorf("LocateNearestIndex: %s below origin: %w", target, ErrOutOfDomain)
	}

	return floorInt(s.position(t)), nil
}

// ReferenceLocation returns origin + index·spacing.
func (s *Synthetic) ReferenceLocation(index *big.Int, _ *big.Float) (*big.Float, error) {
	if index == nil || index.Sign() < 0 {
		return nil, fmt.Errorf("ReferenceLocation: index %v: %w", index, ErrOutOfDomain)
	}
	g := s.nf().SetInt(index)
	g.Mul(g, s.spacing)

	return g.Add(g, s.origin), nil
}

// EvaluateBatch returns Z(start + j·step) for j ∈ [0,count).
func (s *Synthetic) EvaluateBatch(start, step *big.Float, count, tag int) (gram.Batch, error) {
	if start == nil || step == nil || count < 1 {
		return gram.Batch{}, fmt.Errorf("EvaluateBatch: batch %d, count %d: %w", tag, count, ErrBadBatch)
	}

	out := make([]float64, count)
	x := s.nf()
	for j := range out {
		x.SetInt64(int64(j))
		x.Mul(x, step)
		x.Add(x, start)
		out[j] = s.Z(x)
	}

	return gram.Batch{Tag: tag, Values: out}, nil
}

// Z returns the synthetic Z(t).
func (s *Synthetic) Z(t *big.Float) float64 {
	// Phase reduced mod 2 in big.Float so Gram points land on exact multiples of π.
	pos := s.position(t)
	k := floorInt(s.nf().Quo(pos, s.two))
	pos.Sub(pos, s.nf().Mul(s.nf().SetInt(k), s.two))
	phase, _ := pos.Float64()

	v := s.amplitude * math.Cos(math.Pi*phase)

	tf, _ := t.Float64()
	for _, p := range s.pairs {
		m := (p.A + p.B) / 2
		h := (p.B - p.A) / 2
		d := tf - m
		v *= (tf - p.A) * (tf - p.B) / (d*d + h*h)
	}

	return v
}

// position returns (t − origin)/spacing.
func (s *Synthetic) position(t *big.Float) *big.Float {
	x := s.nf().Sub(t, s.origin)

	return x.Quo(x, s.spacing)
}

func (s *Synthetic) nf() *big.Float {
	return new(big.Float).SetPrec(s.prec)
}
