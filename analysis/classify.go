// SPDX-License-Identifier: MIT
// Package: turing/analysis
//
// classify.go — Gram point goodness and expected zero-count parity.

package analysis

import "fmt"

// Classify — Gram point goodness and expected zero-count parity.
//
// Description:
//
//	A Gram point g(n) is good when Z(g(n)) has the sign (−1)ⁿ. Between two
//	points of equal goodness Z changes sign an odd number of times; between
//	a good and a bad point the count is even (possibly zero).
//
// Algorithm Outline:
//  1. Check len(parity) == len(refValues) ≥ 2 and parity[k] ∈ {+1, −1}.
//  2. isGood[k] = parity[k]·refValues[k] > 0 for every point
//     (an exact zero is bad).
//  3. expectOdd[k] = isGood[k] == isGood[k+1] for k ∈ [0, len−1).
//
// Inputs are not modified; both results are freshly allocated.
//
// Errors:
//   - ErrShape if the slices differ in length, hold fewer than 2 points
//     or a parity is not ±1.
//
// Complexity: O(n).
func Classify(parity []int, refValues []float64) (isGood, expectOdd []bool, err error) {
	if len(parity) != len(refValues) || len(parity) < 2 {
		return nil, nil, fmt.Errorf("Classify: %w: %d parities, %d values", ErrShape, len(parity), len(refValues))
	}

	isGood = make([]bool, len(parity))
	for k, p := range parity {
		if p != 1 && p != -1 {
			return nil, nil, fmt.Errorf("Classify: %w: parity[%d] = %d", ErrShape, k, p)
		}
		isGood[k] = float64(p)*refValues[k] > 0
	}

	expectOdd = make([]bool, len(parity)-1)
	for k := range expectOdd {
		expectOdd[k] = isGood[k] == isGood[k+1]
	}

	return isGood, expectOdd, nil
}
