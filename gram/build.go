// SPDX-License-Identifier: MIT
// Package: turing/gram
//
// build.go — Grid Builder: reference points and the flat sample grid.
//
// Contract:
//   • Request validation (ErrConfig) and capacity checks (ErrCapacity) run
//     before the first evaluator call.
//   • Any evaluator failure aborts Build with ErrEvaluator; no partial Table.
//   • Build is single-threaded. Parallelism, if any, lives in the evaluator.
//
// Steps:
//   1. n₀ ← LocateNearestIndex(target)
//   2. g(n₀+k) for k ∈ [0,countGram], parity (−1)^(n₀+k)
//   3. interval and sub-interval lengths for k ∈ [0,countGram)
//   4. slot 0 ← Z(g(n₀) − sub[0])
//   5. slots k·S+1 … k·S+S ← Z(g(n₀+k) + j·sub[k]), j ∈ [0,S)
//   6. slot countGram·S+1 ← Z(g(n₀+countGram))
//
// Complexity: countGram+1 ReferenceLocation calls, countGram+2 EvaluateBatch
// calls, O(countGram·S) memory.

package gram

import (
	"math"
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/turing/precision"
)

// Request describes the grid to build.
type Request struct {
	Target             string // non-negative decimal, e.g. "7005.0"
	CountGram          int    // number of Gram intervals, ≥ 1
	SamplesPerInterval int    // S, ≥ 1
}

// Build locates the reference points around req.Target and fills the sample grid.
func Build(ctx *precision.Context, ev Evaluator, req Request, opts ...Option) (*Table, error) {
	const method = "Build"

	cfg := newBuildConfig(opts...)
	if err := validateRequest(ctx, ev, req, cfg); err != nil {
		return nil, err
	}

	acc := accuracy(ctx, cfg.accuracyDigits)
	log := cfg.log.WithFields(logrus.Fields{
		"target":    req.Target,
		"countGram": req.CountGram,
		"samples":   req.SamplesPerInterval,
	})

	n0, err := ev.LocateNearestIndex(req.Target, acc)
	if err != nil {
		return nil, builderErrorf(method, "locate %q: %w: %w", req.Target, ErrEvaluator, err)
	}
	if n0 == nil || n0.Sign() < 0 {
		return nil, builderErrorf(method, "%w: locate %q returned index %v", ErrEvaluator, req.Target, n0)
	}
	log.WithField("n0", n0.String()).Debug("located first Gram index")

	points, err := locatePoints(ctx, ev, n0, req, acc)
	if err != nil {
		return nil, err
	}

	values := make([]float64, SampleCount(req.CountGram, req.SamplesPerInterval))
	s := req.SamplesPerInterval

	// Slot 0: one sub-interval before g(n₀).
	pre := ctx.Float().Sub(points[0].Location, points[0].SubIntervalLength)
	if err = evaluateInto(ev, values, 0, pre, points[0].SubIntervalLength, 1, 0); err != nil {
		return nil, err
	}

	for k := 0; k < req.CountGram; k++ {
		log.WithField("interval", k).Debug("processing Gram interval")
		p := points[k]
		if err = evaluateInto(ev, values, k*s+1, p.Location, p.SubIntervalLength, s, k); err != nil {
			return nil, err
		}
	}

	// Final slot: Z at g(n₀+countGram).
	last := points[req.CountGram]
	if err = evaluateInto(ev, values, req.CountGram*s+1, last.Location, points[req.CountGram-1].SubIntervalLength, 1, req.CountGram); err != nil {
		return nil, err
	}
	log.WithField("slots", len(values)).Debug("sample grid complete")

	return &Table{
		Points:    points,
		Values:    values,
		countGram: req.CountGram,
		samples:   s,
	}, nil
}

// validateRequest rejects bad input before any evaluator call.
func validateRequest(ctx *precision.Context, ev Evaluator, req Request, cfg buildConfig) error {
	const method = "Build"

	switch {
	case ctx == nil:
		return builderErrorf(method, "%w: nil precision context", ErrConfig)
	case ctx.Closed():
		return builderErrorf(method, "%w: %w", ErrConfig, precision.ErrClosed)
	case ev == nil:
		return builderErrorf(method, "%w: nil evaluator", ErrConfig)
	case req.CountGram < 1:
		return builderErrorf(method, "%w: countGram=%d, need ≥ 1", ErrConfig, req.CountGram)
	case req.SamplesPerInterval < 1:
		return builderErrorf(method, "%w: samplesPerInterval=%d, need ≥ 1", ErrConfig, req.SamplesPerInterval)
	}
	if err := precision.ValidateDecimal(req.Target); err != nil {
		return builderErrorf(method, "%w: %w", ErrConfig, err)
	}

	// Limits are compared by subtraction and division only; countGram+1 and
	// countGram·S+2 may not be representable until both checks pass.
	if req.CountGram > cfg.maxPoints-1 {
		return builderErrorf(method, "%w: %d Gram intervals, limit %d reference points",
			ErrCapacity, req.CountGram, cfg.maxPoints)
	}
	if req.SamplesPerInterval > cfg.maxSamples-2 ||
		req.CountGram > (cfg.maxSamples-2)/req.SamplesPerInterval {
		return builderErrorf(method, "%w: %d×%d grid, limit %d slots",
			ErrCapacity, req.CountGram, req.SamplesPerInterval, cfg.maxSamples)
	}

	return nil
}

// locatePoints evaluates g(n₀+k) for k ∈ [0,countGram] and derives the lengths.
func locatePoints(ctx *precision.Context, ev Evaluator, n0 *big.Int, req Request, acc *big.Float) ([]ReferencePoint, error) {
	const method = "Build"

	points := make([]ReferencePoint, req.CountGram+1)
	parity := 1
	if n0.Bit(0) == 1 {
		parity = -1
	}

	one := big.NewInt(1)
	idx := new(big.Int).Set(n0)
	for k := range points {
		loc, err := ev.ReferenceLocation(idx, acc)
		if err != nil {
			return nil, builderErrorf(method, "reference location of n=%s: %w: %w", idx, ErrEvaluator, err)
		}
		if loc == nil || loc.IsInf() {
			return nil, builderErrorf(method, "%w: reference location of n=%s is not finite", ErrEvaluator, idx)
		}
		points[k] = ReferencePoint{
			Index:    new(big.Int).Set(idx),
			Location: ctx.Float().Set(loc),
			Parity:   parity,
		}
		parity = -parity
		idx.Add(idx, one)
	}

	sDiv := ctx.Float().SetInt64(int64(req.SamplesPerInterval))
	for k := 0; k < req.CountGram; k++ {
		length := ctx.Float().Sub(points[k+1].Location, points[k].Location)
		if length.Sign() <= 0 {
			return nil, builderErrorf(method, "%w: g(%s) ≥ g(%s), locations must increase",
				ErrEvaluator, points[k].Index, points[k+1].Index)
		}
		points[k].IntervalLength = length
		points[k].SubIntervalLength = ctx.Float().Quo(length, sDiv)
	}

	return points, nil
}

// evaluateInto requests one batch and stores it at values[at : at+count].
func evaluateInto(ev Evaluator, values []float64, at int, start, step *big.Float, count, tag int) error {
	const method = "Build"

	b, err := ev.EvaluateBatch(start, step, count, tag)
	if err != nil {
		return builderErrorf(method, "batch %d: %w: %w", tag, ErrEvaluator, err)
	}
	if b.Tag != tag {
		return builderErrorf(method, "%w: batch tagged %d, requested %d", ErrEvaluator, b.Tag, tag)
	}
	if len(b.Values) != count {
		return builderErrorf(method, "%w: batch %d returned %d values, requested %d",
			ErrEvaluator, tag, len(b.Values), count)
	}
	for j, v := range b.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return builderErrorf(method, "%w: batch %d value %d is %v", ErrEvaluator, tag, j, v)
		}
	}
	copy(values[at:at+count], b.Values)

	return nil
}

// accuracy returns 10⁻ᵈ / 2 at the run precision.
func accuracy(ctx *precision.Context, digits int) *big.Float {
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	den.Lsh(den, 1)

	return ctx.Float().Quo(ctx.Float().SetInt64(1), ctx.FromInt(den))
}
