// Package precision owns the arbitrary-precision context of a verification run.
//
// 🚀 What is it for?
//
//	Every Gram point, interval length and sub-interval step is carried as a
//	*big.Float whose precision (in bits) is fixed once per run. Context holds
//	that precision together with the evaluator thread hint and debug flags,
//	and is the single place where new values are created:
//	  • Float()      — a zero value at the run precision
//	  • Parse(s)     — a validated non-negative decimal string ("Digits and '.' only")
//	  • Pi()         — π at the run precision (Gauss–Legendre, computed once)
//	  • Log(x)       — natural logarithm at x's precision
//
// ⚙️ Lifecycle:
//
//	ctx, err := precision.New(256, 1, 0)
//	if err != nil { ... }
//	defer ctx.Close()
//
//	t, err := ctx.Parse("7005.0")
//
// A closed Context refuses to create new values (ErrClosed); values created
// before Close remain usable, they are ordinary *big.Float.
package precision
