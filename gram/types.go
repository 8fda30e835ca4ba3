// SPDX-License-Identifier: MIT
// Package: turing/gram
//
// types.go — evaluator contract and the reference/sample tables.

package gram

import (
	"math/big"
)

// Evaluator is the Z-function collaborator used by Build.
//
// Implementations must be deterministic for identical arguments. Every call
// is a blocking unit of work: it either returns a complete result or fails.
type Evaluator interface {
	// LocateNearestIndex returns the largest Gram index n with g(n) ≤ target.
	// target is a non-negative decimal string.
	LocateNearestIndex(target string, accuracy *big.Float) (*big.Int, error)

	// ReferenceLocation returns g(index) to within accuracy.
	ReferenceLocation(index *big.Int, accuracy *big.Float) (*big.Float, error)

	// EvaluateBatch returns Z(start + j·step) for j ∈ [0,count), tagged with tag.
	EvaluateBatch(start, step *big.Float, count, tag int) (Batch, error)
}

// Batch is the owned result of one EvaluateBatch call.
type Batch struct {
	Tag    int       // interval tag echoed back by the evaluator
	Values []float64 // exactly count values, in grid order
}

// ReferencePoint is one Gram point of the run.
type ReferencePoint struct {
	Index    *big.Int   // Gram index n
	Location *big.Float // g(n)
	Parity   int        // (−1)ⁿ: +1 for even n, −1 for odd n

	// IntervalLength is g(n+1) − g(n); nil on the last point.
	IntervalLength *big.Float
	// SubIntervalLength is IntervalLength / S; nil on the last point.
	SubIntervalLength *big.Float
}

// Table owns the reference points and the flat sample grid of one run.
type Table struct {
	Points []ReferencePoint // len countGram+1
	Values []float64        // len countGram·S+2, see package doc for the mapping

	countGram int
	samples   int
}

// NewTable wraps already computed points and values into a Table after
// checking the sizes. It is meant for callers that obtain samples from
// somewhere other than Build (fixtures, replays).
func NewTable(points []ReferencePoint, values []float64, countGram, samplesPerInterval int) (*Table, error) {
	if countGram < 1 || samplesPerInterval < 1 {
		return nil, builderErrorf("NewTable", "%w: countGram=%d samplesPerInterval=%d",
			ErrConfig, countGram, samplesPerInterval)
	}
	if len(points) != countGram+1 {
		return nil, builderErrorf("NewTable", "%w: %d points, want %d",
			ErrInvariant, len(points), countGram+1)
	}
	if len(values) != SampleCount(countGram, samplesPerInterval) {
		return nil, builderErrorf("NewTable", "%w: %d values, want %d",
			ErrInvariant, len(values), SampleCount(countGram, samplesPerInterval))
	}

	return &Table{
		Points:    points,
		Values:    values,
		countGram: countGram,
		samples:   samplesPerInterval,
	}, nil
}

// CountGram returns the number of Gram intervals.
func (t *Table) CountGram() int { return t.countGram }

// SamplesPerInterval returns S.
func (t *Table) SamplesPerInterval() int { return t.samples }

// Len returns the number of populated sample slots.
func (t *Table) Len() int { return len(t.Values) }

// Parities returns the parity of every reference point.
func (t *Table) Parities() []int {
	out := make([]int, len(t.Points))
	for k := range t.Points {
		out[k] = t.Points[k].Parity
	}

	return out
}

// ReferenceValues returns Z at every reference point, i.e. Values[k·S+1].
func (t *Table) ReferenceValues() []float64 {
	out := make([]float64, len(t.Points))
	for k := range t.Points {
		out[k] = t.Values[k*t.samples+1]
	}

	return out
}

// SampleCount returns countGram·S + 2.
func SampleCount(countGram, samplesPerInterval int) int {
	return countGram*samplesPerInterval + 2
}
