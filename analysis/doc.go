// Package analysis classifies Gram points and scans the sample grid for sign
// changes and Lehmer-type near misses.
//
// 🚀 Stages (pure functions of their inputs):
//
//	Classify      isGood[k]      = parity[k]·Z(g_k) > 0              (exact zero is bad)
//	              expectOdd[k]   = isGood[k] == isGood[k+1]
//	Directions    rise[i]        = v[i] − v[i−1]
//	              towardZero[i]  = ¬(rise[i]·v[i] > 0)               (exact zero is toward)
//	Crossings     crossed(a)     = v[a]·v[a−1] < 0                   (exact zero is no crossing)
//	              for a ∈ [k·S+2, k·S+S+1] per interval k
//	DetectLehmer  lehmer[i]      = ¬towardZero[i] ∧ ¬zeroCrossing[i] ∧ towardZero[i−1]
//
// The two zero policies are intentionally asymmetric: a zero product
// is "bad" for Gram points but "toward zero" for directions.
//
// Analyze runs the four stages over a gram.Table without mutating it and
// returns a Result that owns all derived flags; rerunning it is idempotent.
package analysis
