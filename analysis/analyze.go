// SPDX-License-Identifier: MIT
// Package: turing/analysis
//
// analyze.go — the full analysis pipeline and its result.

package analysis

import (
	"fmt"

	"github.com/katalvlaran/turing/gram"
)

// Verdict classifies an interval's zero count against its expected parity.
type Verdict int

const (
	// AsExpected: the found count has the expected parity.
	AsExpected Verdict = iota
	// MissingExpectedOdd: an odd count was expected, an even one was found.
	MissingExpectedOdd
	// MissingExpectedEven: an even count was expected, an odd one was found.
	MissingExpectedEven
)

// String renders the verdict the way the report prints it.
func (v Verdict) String() string {
	switch v {
	case AsExpected:
		return "as expected"
	case MissingExpectedOdd:
		return "missing at least one zero, expected odd"
	case MissingExpectedEven:
		return "missing at least one zero, expected even"
	}

	return fmt.Sprintf("Verdict(%d)", int(v))
}

// Result owns every flag derived from a gram.Table.
type Result struct {
	IsGood    []bool // per reference point
	ExpectOdd []bool // per interval

	ZerosFound []int // per interval, ∈ [0, S]

	Rise         []float64 // per sample, Rise[0] unused
	TowardZero   []bool    // per sample
	ZeroCrossing []bool    // per sample
	Lehmer       []bool    // per sample, Lehmer[0] == false
}

// Analyze — full per-table analysis.
//
// Description:
//
//	Reads the parities, reference values and sample grid of tb and derives
//	every per-point, per-interval and per-sample flag. tb is not modified;
//	running Analyze twice on the same table yields equal results.
//
// Algorithm Outline:
//  1. Classify(tb.Parities(), tb.ReferenceValues()) → IsGood, ExpectOdd.
//  2. Directions(tb.Values) → Rise, TowardZero.
//  3. Crossings(tb.Values, countGram, S) → ZeroCrossing, ZerosFound.
//  4. DetectLehmer(TowardZero, ZeroCrossing) → Lehmer.
//
// Errors:
//   - ErrNilTable if tb is nil.
//   - ErrShape (wrapped) from any stage.
//
// Complexity: O(countGram·S) time and memory.
func Analyze(tb *gram.Table) (*Result, error) {
	if tb == nil {
		return nil, fmt.Errorf("Analyze: %w", ErrNilTable)
	}

	isGood, expectOdd, err := Classify(tb.Parities(), tb.ReferenceValues())
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	rise, toward := Directions(tb.Values)
	crossing, zeros, err := Crossings(tb.Values, tb.CountGram(), tb.SamplesPerInterval())
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	lehmer, err := DetectLehmer(toward, crossing)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	return &Result{
		IsGood:       isGood,
		ExpectOdd:    expectOdd,
		ZerosFound:   zeros,
		Rise:         rise,
		TowardZero:   toward,
		ZeroCrossing: crossing,
		Lehmer:       lehmer,
	}, nil
}

// Verdict returns the classification of interval k.
func (r *Result) Verdict(k int) Verdict {
	odd := r.ZerosFound[k]%2 == 1
	switch {
	case odd == r.ExpectOdd[k]:
		return AsExpected
	case r.ExpectOdd[k]:
		return MissingExpectedOdd
	default:
		return MissingExpectedEven
	}
}

// Mismatches returns the number of intervals whose verdict is not AsExpected.
func (r *Result) Mismatches() int {
	var n int
	for k := range r.ZerosFound {
		if r.Verdict(k) != AsExpected {
			n++
		}
	}

	return n
}

// LehmerCount returns the number of flagged samples.
func (r *Result) LehmerCount() int {
	var n int
	for _, f := range r.Lehmer {
		if f {
			n++
		}
	}

	return n
}

// BadCount returns the number of bad Gram points.
func (r *Result) BadCount() int {
	var n int
	for _, g := range r.IsGood {
		if !g {
			n++
		}
	}

	return n
}

// TotalZeros returns the number of sign changes over all intervals.
func (r *Result) TotalZeros() int {
	var n int
	for _, z := range r.ZerosFound {
		n += z
	}

	return n
}
