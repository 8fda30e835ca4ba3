package analysis_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/turing/analysis"
	"github.com/katalvlaran/turing/gram"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAnalyze
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two Gram intervals starting at n = 2, four samples each.
//	  interval 0: Z falls through zero once.
//	  interval 1: Z climbs toward zero, turns back (Lehmer flag at slot 8),
//	              then crosses into g(4).
//
// Complexity: O(countGram·S)
func ExampleAnalyze() {
	points := []gram.ReferencePoint{
		{Index: big.NewInt(2), Parity: 1},
		{Index: big.NewInt(3), Parity: -1},
		{Index: big.NewInt(4), Parity: 1},
	}
	values := []float64{
		0.8,
		1.0, 0.5, -0.3, -0.8,
		-1.0, -0.6, -0.2, -0.4,
		0.2,
	}

	tb, err := gram.NewTable(points, values, 2, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := analysis.Analyze(tb)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var flagged []int
	for i, l := range res.Lehmer {
		if l {
			flagged = append(flagged, i)
		}
	}
	fmt.Println("zeros found:", res.ZerosFound)
	fmt.Println("lehmer at:", flagged)
	for k := range res.ZerosFound {
		fmt.Printf("interval %d: %s\n", k, res.Verdict(k))
	}
	// Output:
	// zeros found: [1 1]
	// lehmer at: [8]
	// interval 0: as expected
	// interval 1: as expected
}
