// SPDX-License-Identifier: MIT
// Package: turing/gram
//
// verify.go — structural self-check of a Table.
//
// Verify checks:
//   • sizes: countGram+1 points, countGram·S+2 values;
//   • locations strictly increasing, parity alternating and equal to (−1)ⁿ;
//   • sub·S == interval within half an ulp of the interval length per sample;
//   • Index/Locate form a bijection covering every slot exactly once.

package gram

import (
	"math/big"
)

// Verify returns nil when every structural invariant holds, else an error
// wrapping ErrInvariant.
// Complexity: O(countGram·S) time, O(countGram·S) memory.
func (t *Table) Verify() error {
	const method = "Verify"

	if len(t.Points) != t.countGram+1 || len(t.Values) != SampleCount(t.countGram, t.samples) {
		return builderErrorf(method, "%w: %d points / %d values for a %d×%d grid",
			ErrInvariant, len(t.Points), len(t.Values), t.countGram, t.samples)
	}

	for k, p := range t.Points {
		if p.Index == nil || p.Location == nil {
			return builderErrorf(method, "%w: point %d is incomplete", ErrInvariant, k)
		}
	}

	for k := range t.Points {
		p := t.Points[k]
		want := 1
		if p.Index.Bit(0) == 1 {
			want = -1
		}
		if p.Parity != want {
			return builderErrorf(method, "%w: parity of n=%s is %d", ErrInvariant, p.Index, p.Parity)
		}
		if k == t.countGram {
			break
		}
		next := t.Points[k+1]
		if p.Location.Cmp(next.Location) >= 0 {
			return builderErrorf(method, "%w: location %d not below location %d", ErrInvariant, k, k+1)
		}
		if next.Parity != -p.Parity {
			return builderErrorf(method, "%w: parity does not alternate at %d", ErrInvariant, k)
		}
		if err := checkSubdivision(p, t.samples); err != nil {
			return builderErrorf(method, "interval %d: %w", k, err)
		}
	}

	seen := make([]bool, len(t.Values))
	mark := func(i, j int) error {
		flat, err := t.Index(i, j)
		if err != nil {
			return err
		}
		if seen[flat] {
			return builderErrorf(method, "%w: slot %d addressed twice", ErrInvariant, flat)
		}
		seen[flat] = true
		if bi, bj, err := t.Locate(flat); err != nil || bi != i || bj != j {
			return builderErrorf(method, "%w: Locate(%d) = (%d,%d), want (%d,%d)", ErrInvariant, flat, bi, bj, i, j)
		}

		return nil
	}
	if err := mark(0, PreSampleOffset); err != nil {
		return err
	}
	for i := 0; i < t.countGram; i++ {
		for j := 0; j < t.samples; j++ {
			if err := mark(i, j); err != nil {
				return err
			}
		}
	}
	if err := mark(t.countGram, 0); err != nil {
		return err
	}
	for flat, ok := range seen {
		if !ok {
			return builderErrorf(method, "%w: slot %d never addressed", ErrInvariant, flat)
		}
	}

	return nil
}

// checkSubdivision verifies |sub·S − interval| ≤ S·ulp(interval).
func checkSubdivision(p ReferencePoint, s int) error {
	if p.IntervalLength == nil || p.SubIntervalLength == nil {
		return ErrInvariant
	}
	prec := p.IntervalLength.Prec()
	back := new(big.Float).SetPrec(prec).SetInt64(int64(s))
	back.Mul(back, p.SubIntervalLength)

	diff := new(big.Float).SetPrec(prec).Sub(back, p.IntervalLength)
	diff.Abs(diff)

	// ulp(interval) = 2^(exp−prec); allow S of them.
	tol := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(float64(s)), p.IntervalLength.MantExp(nil)-int(prec))
	if diff.Cmp(tol) > 0 {
		return ErrInvariant
	}

	return nil
}
