// Package gram builds the reference-point table and the flat sample grid used
// by Turing's method.
//
// 🚀 What is it?
//
//	Starting from a target height t, the Grid Builder asks an Evaluator for
//	the Gram index n₀ with g(n₀) ≤ t < g(n₀+1), locates countGram+1
//	consecutive Gram points g(n₀) … g(n₀+countGram), and samples Hardy's Z
//	on a uniform grid of S sub-intervals inside every Gram interval.
//
// 📐 Flat index mapping (load-bearing):
//
//	index 0                  one sub-interval before g(n₀)
//	index k·S + 1 + j        j sub-intervals past g(n₀+k),  k ∈ [0,countGram), j ∈ [0,S)
//	index countGram·S + 1    g(n₀+countGram) itself
//
//	Total: countGram·S + 2 slots, no gaps. The slot k·S+1 is both "sample 0
//	of interval k" and the right end of interval k−1's last pair; the final
//	slot plays the same role for interval countGram. Storage is shared, not
//	duplicated.
//
// ⚙️ Usage:
//
//	ctx, err := precision.New(256, 1, 0)
//	if err != nil {
//		return err
//	}
//	defer ctx.Close()
//
//	ev, err := zeta.NewRiemannSiegel(ctx)
//	if err != nil {
//		return err
//	}
//	tb, err := gram.Build(ctx, ev, gram.Request{
//		Target:             "7005.0",
//		CountGram:          8,
//		SamplesPerInterval: 8,
//	})
//
// The Table is write-once: Build fills it and later stages only read it.
//
// Errors are sentinels (ErrConfig, ErrCapacity, ErrEvaluator, ErrOutOfRange,
// ErrInvariant) wrapped with method context; match them with errors.Is.
package gram
