// Package zeta provides gram.Evaluator implementations.
//
// 🚀 RiemannSiegel
//
//	The reference evaluator. Gram points and θ(t) are computed in big.Float
//	at the run precision (plus guard bits); Z(t) itself is evaluated in
//	float64 from the Riemann–Siegel main sum and its first remainder term:
//
//	  θ(t) ≈ t/2·ln(t/2π) − t/2 − π/8 + 1/(48t) + 7/(5760t³) + 31/(80640t⁵)
//	         + 127/(430080t⁷) + 511/(1216512t⁹)
//	  Z(t) ≈ 2·Σ_{n≤N} cos(θ(t) − t·ln n)/√n + (−1)^(N−1)·(t/2π)^(−1/4)·C₀(p)
//	  N = ⌊√(t/2π)⌋, p = frac(√(t/2π)), C₀(p) = cos(2π(p²−p−1/16))/cos(2πp)
//
//	g(n) solves θ(g) = nπ by Newton's method from a Lambert-W initial guess.
//	Batches are fanned out over an errgroup limited to the context's thread
//	hint; each goroutine owns one result slot.
//
//	Heights outside [MinHeight, MaxHeight] = [10, 1e10] are rejected
//	(ErrOutOfDomain). Below 10 the asymptotic θ is not monotone. Above 1e10
//	the float64 phases t·ln k carry absolute errors near 1e-5 rad per term
//	and grow linearly with t; by 1e16 neighbouring grid abscissae round to
//	the same float64. EvaluateBatch also rejects a step shorter than 1024
//	ulps of its last abscissa. The remainder is truncated after C₀, so the
//	absolute error of Z is about 0.13·t^(−3/4) for large t, plenty to
//	read signs at Gram points but not a certified bound.
//
// 🧪 Synthetic
//
//	A deterministic stand-in for demos and tests, in the spirit of sequence
//	generators: evenly spaced "Gram points" g(n) = origin + n·spacing and
//	Z(t) = A·cos(π(t−origin)/spacing), which obeys Gram's law exactly.
//	WithClosePair multiplies Z by (t−a)(t−b)/((t−m)²+h²), m=(a+b)/2,
//	h=(b−a)/2, planting two extra zeros at a and b (a Lehmer pair).
package zeta
