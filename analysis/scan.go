// SPDX-License-Identifier: MIT
// Package: turing/analysis
//
// scan.go — rise/fall directions, sign changes and the Lehmer pattern.
//
// Contract:
//   • Inputs are read-only; every function returns freshly allocated slices.
//   • Index 0 carries no direction, crossing or Lehmer information.

package analysis

import "fmt"

// Directions — step-to-step movement of Z relative to zero.
//
// Description:
//
//	rise[i] is the change from the previous sample. Z is heading toward
//	zero unless the step and the new value share a sign; a zero value or a
//	zero step therefore counts as "toward zero".
//
// Algorithm Outline:
//  1. rise[0] = 0, towardZero[0] = false.
//  2. For i ≥ 1:
//     rise[i]       = v[i] − v[i−1]
//     towardZero[i] = ¬(rise[i]·v[i] > 0)
//
// Complexity: O(n) time, O(n) memory.
func Directions(values []float64) (rise []float64, towardZero []bool) {
	rise = make([]float64, len(values))
	towardZero = make([]bool, len(values))
	for i := 1; i < len(values); i++ {
		rise[i] = values[i] - values[i-1]
		towardZero[i] = !(rise[i]*values[i] > 0)
	}

	return rise, towardZero
}

// Crossings — sign changes per Gram interval.
//
// Description:
//
//	Every interval k owns S consecutive pairs (v[a−1], v[a]). A pair is a
//	crossing when its product is strictly negative; touching zero is not
//	a crossing.
//
// Algorithm Outline:
//  1. Check countGram, S ≥ 1 and len(values) == countGram·S+2.
//  2. For k ∈ [0, countGram), for a ∈ [k·S+2, k·S+S+1]:
//     if v[a]·v[a−1] < 0 { zeroCrossing[a] = true; zerosFound[k]++ }
//
// The pair (k·S+1, k·S) entering an interval's own reference sample is not
// counted, so zeroCrossing[0] and zeroCrossing[1] are always false. The last
// pair of interval k ends on the reference sample of interval k+1.
//
// Errors:
//   - ErrShape if countGram < 1, S < 1 or len(values) ≠ countGram·S+2.
//
// Complexity: O(countGram·S).
func Crossings(values []float64, countGram, samplesPerInterval int) (zeroCrossing []bool, zerosFound []int, err error) {
	s := samplesPerInterval
	if countGram < 1 || s < 1 || len(values) != countGram*s+2 {
		return nil, nil, fmt.Errorf("Crossings: %w: %d values for %d×%d grid", ErrShape, len(values), countGram, s)
	}

	zeroCrossing = make([]bool, len(values))
	zerosFound = make([]int, countGram)
	for k := 0; k < countGram; k++ {
		for a := k*s + 2; a <= k*s+s+1; a++ {
			if values[a]*values[a-1] < 0 {
				zeroCrossing[a] = true
				zerosFound[k]++
			}
		}
	}

	return zeroCrossing, zerosFound, nil
}

// DetectLehmer — near misses where Z turns back before reaching zero.
//
// Description:
//
//	A close pair of zeros between two samples leaves no sign change on the
//	grid, but Z approaches zero and then moves away from it. Such samples
//	are flagged; the flags never change zerosFound or isGood.
//
// Algorithm Outline:
//  1. Check len(towardZero) == len(zeroCrossing).
//  2. lehmer[0] = false.
//  3. For i ≥ 1:
//     lehmer[i] = ¬towardZero[i] ∧ ¬zeroCrossing[i] ∧ towardZero[i−1]
//
// Errors:
//   - ErrShape if the slices differ in length.
//
// Complexity: O(n).
func DetectLehmer(towardZero, zeroCrossing []bool) ([]bool, error) {
	if len(towardZero) != len(zeroCrossing) {
		return nil, fmt.Errorf("DetectLehmer: %w: %d directions, %d crossings", ErrShape, len(towardZero), len(zeroCrossing))
	}

	lehmer := make([]bool, len(towardZero))
	for i := 1; i < len(lehmer); i++ {
		lehmer[i] = !towardZero[i] && !zeroCrossing[i] && towardZero[i-1]
	}

	return lehmer, nil
}
