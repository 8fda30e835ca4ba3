// SPDX-License-Identifier: MIT
// Package: turing/gram
//
// index.go — the (interval, offset) ⇄ flat index mapping.
//
// Contract:
//   • Index and Locate are inverse bijections over the whole grid.
//   • The two boundary slots are addressed as (0, −1) and (countGram, 0).
//   • Neither function allocates.

package gram

import "math/big"

// PreSampleOffset addresses the slot one sub-interval before the first
// reference point: Index(0, PreSampleOffset) == 0.
const PreSampleOffset = -1

// Index maps (interval, offset) to the flat slot holding the sample offset
// sub-intervals past reference point interval.
//
//	(0, −1)          → 0
//	(k, j)           → k·S + 1 + j     for k ∈ [0,countGram), j ∈ [0,S)
//	(countGram, 0)   → countGram·S + 1
//
// Complexity: O(1).
func (t *Table) Index(interval, offset int) (int, error) {
	switch {
	case interval == 0 && offset == PreSampleOffset:
		return 0, nil
	case interval == t.countGram && offset == 0:
		return t.countGram*t.samples + 1, nil
	case interval < 0 || interval >= t.countGram || offset < 0 || offset >= t.samples:
		return 0, builderErrorf("Index", "%w: (%d,%d) on a %d×%d grid",
			ErrOutOfRange, interval, offset, t.countGram, t.samples)
	}

	return interval*t.samples + 1 + offset, nil
}

// Locate is the inverse of Index.
// Complexity: O(1).
func (t *Table) Locate(flat int) (interval, offset int, err error) {
	last := t.countGram*t.samples + 1
	switch {
	case flat < 0 || flat > last:
		return 0, 0, builderErrorf("Locate", "%w: flat index %d not in [0,%d]", ErrOutOfRange, flat, last)
	case flat == 0:
		return 0, PreSampleOffset, nil
	case flat == last:
		return t.countGram, 0, nil
	}

	return (flat - 1) / t.samples, (flat - 1) % t.samples, nil
}

// ReferenceIndex returns the flat slot of reference point k ∈ [0,countGram].
func (t *Table) ReferenceIndex(k int) (int, error) {
	return t.Index(k, 0)
}

// SampleLocation returns the abscissa of a flat slot:
// g(n₀+k) + j·sub[k], with g(n₀) − sub[0] for slot 0 (j = −1).
// The result has the precision of the reference locations.
func (t *Table) SampleLocation(flat int) (*big.Float, error) {
	k, j, err := t.Locate(flat)
	if err != nil {
		return nil, err
	}
	p := t.Points[k]
	if k == t.countGram {
		return new(big.Float).Copy(p.Location), nil
	}
	if p.SubIntervalLength == nil {
		return nil, builderErrorf("SampleLocation", "%w: point %d has no sub-interval length", ErrInvariant, k)
	}

	step := new(big.Float).SetPrec(p.Location.Prec()).SetInt64(int64(j))
	step.Mul(step, p.SubIntervalLength)

	return step.Add(p.Location, step), nil
}
