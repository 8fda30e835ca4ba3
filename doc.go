// Package turing checks how many zeros of Hardy's Z function lie between
// consecutive Gram points, the bookkeeping half of Turing's method.
//
// 🚀 What does it do?
//
//	Starting at the Gram point g(n₀) at or below a target height, it
//		• samples Z on a uniform grid over countGram Gram intervals
//		• marks each Gram point good or bad by the sign of (−1)ⁿ·Z(g(n))
//		• counts sign changes per interval and checks their parity
//		• flags Lehmer-like near misses where Z turns back before zero
//		• reports K, the number of Gram blocks Rosser's rule must cover
//
// ✨ Packages, leaves first:
//
//	precision/ — scoped big.Float context, decimal parsing, π, ln
//	zeta/      — Riemann–Siegel and synthetic Z evaluators
//	gram/      — reference points, the flat sample grid and its index mapping
//	analysis/  — parity classifier, crossing scan, Lehmer detector
//	threshold/ — K = ⌈0.00313·ln²(G+100) + 0.1039·ln(G+100)⌉
//	report/    — report assembly, text/YAML/JSON rendering
//
// Grid layout for countGram = 2, S = 4:
//
//	slot:   0 | 1  2  3  4 | 5  6  7  8 | 9
//	        ↑   ↑            ↑            ↑
//	  g(n₀)−δ  g(n₀)       g(n₀+1)      g(n₀+2)
//
// The command line front end lives in cmd/turing:
//
//	go run ./cmd/turing -t 7005.0 -g 8 -c 16 -v
package turing
