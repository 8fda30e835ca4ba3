// SPDX-License-Identifier: MIT
// Package: turing/zeta
//
// riemann_siegel.go — reference gram.Evaluator built on the Riemann–Siegel formula.
//
// Contract:
//   • All state is fixed by NewRiemannSiegel; methods only read it, so one
//     evaluator may serve concurrent callers.
//   • EvaluateBatch blocks until every sample is evaluated or one fails,
//     and returns the whole batch or nothing.
//   • Errors: ErrBadTarget, ErrOutOfDomain, ErrNoConvergence, ErrBadBatch.

package zeta

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/turing/gram"
	"github.com/katalvlaran/turing/precision"
)

// Height range accepted by the evaluator. Z is summed in float64, so above
// MaxHeight the phases t·ln k lose the accuracy needed to read signs.
const (
	MinHeight = 10
	MaxHeight = 1e10
)

// A batch step must span at least this many float64 ulps of its last abscissa.
const minStepULPs = 1024

// C₀ near its removable singularities at p = 1/4 and p = 3/4.
const (
	c0Singular = 1e-6
	c0Step     = 1e-4
)

// thetaSeries holds the rational coefficients of the 1/t, 1/t³, … terms of θ.
var thetaSeries = [][2]int64{
	{1, 48},
	{7, 5760},
	{31, 80640},
	{127, 430080},
	{511, 1216512},
}

// RiemannSiegel evaluates Gram points and Hardy's Z function.
type RiemannSiegel struct {
	prec    uint // working precision: run precision + guard bits
	outPrec uint // run precision
	threads int
	debug   int

	one      *big.Float
	pi       *big.Float
	twoPi    *big.Float
	piEighth *big.Float
	minT     *big.Float
	maxT     *big.Float
	series   []*big.Float

	cfg rsConfig
}

var _ gram.Evaluator = (*RiemannSiegel)(nil)

// NewRiemannSiegel creates an evaluator bound to ctx's precision, thread hint
// and debug flags. It fails if ctx is nil or closed.
func NewRiemannSiegel(ctx *precision.Context, opts ...Option) (*RiemannSiegel, error) {
	if ctx == nil {
		return nil, errors.New("NewRiemannSiegel: nil precision context")
	}
	if ctx.Closed() {
		return nil, fmt.Errorf("NewRiemannSiegel: %w", precision.ErrClosed)
	}

	cfg := newRSConfig(opts...)
	work := ctx.Prec() + guardBits
	r := &RiemannSiegel{
		prec:    work,
		outPrec: ctx.Prec(),
		threads: ctx.Threads(),
		debug:   ctx.DebugFlags(),
		pi:      precision.Pi(work),
		cfg:     cfg,
	}
	r.one = r.nf().SetInt64(1)
	r.twoPi = r.nf().SetMantExp(r.pi, 1)
	r.piEighth = r.nf().SetMantExp(r.pi, -3)
	r.minT = r.nf().SetInt64(MinHeight)
	r.maxT = r.nf().SetFloat64(MaxHeight)
	for _, c := range thetaSeries {
		coef := r.nf().SetInt64(c[0])
		r.series = append(r.series, coef.Quo(coef, r.nf().SetInt64(c[1])))
	}

	cfg.log.WithFields(logrus.Fields{
		"bits":    work,
		"threads": r.threads,
		"debug":   r.debug,
	}).Debug("riemann-siegel evaluator ready")

	return r, nil
}

// Threads returns the batch parallelism limit.
func (r *RiemannSiegel) Threads() int { return r.threads }

// LocateNearestIndex returns the largest n with g(n) ≤ target.
func (r *RiemannSiegel) LocateNearestIndex(target string, accuracy *big.Float) (*big.Int, error) {
	const method = "LocateNearestIndex"

	if err := precision.ValidateDecimal(target); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrBadTarget, err)
	}
	t, ok := r.nf().SetString(target)
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", method, target, ErrBadTarget)
	}
	if err := r.checkHeight(t); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	q := r.nf().Quo(r.theta(t), r.pi)
	n := floorInt(q)
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%s: %s lies below g(0): %w", method, target, ErrOutOfDomain)
	}

	// θ/π is exact only up to rounding; settle n against the Gram points.
	gn, err := r.gramPoint(n, accuracy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if gn.Cmp(t) > 0 {
		if n.Sign() == 0 {
			return nil, fmt.Errorf("%s: %s lies below g(0): %w", method, target, ErrOutOfDomain)
		}
		return n.Sub(n, big.NewInt(1)), nil
	}
	next := new(big.Int).Add(n, big.NewInt(1))
	gNext, err := r.gramPoint(next, accuracy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if gNext.Cmp(t) <= 0 {
		return next, nil
	}

	return n, nil
}

// ReferenceLocation returns g(index) at the run precision.
func (r *RiemannSiegel) ReferenceLocation(index *big.Int, accuracy *big.Float) (*big.Float, error) {
	if index == nil {
		return nil, fmt.Errorf("ReferenceLocation: nil index: %w", ErrOutOfDomain)
	}
	g, err := r.gramPoint(index, accuracy)
	if err != nil {
		return nil, fmt.Errorf("ReferenceLocation: %w", err)
	}
	if err = r.checkHeight(g); err != nil {
		return nil, fmt.Errorf("ReferenceLocation: g(%s): %w", index, err)
	}

	return new(big.Float).SetPrec(r.outPrec).Set(g), nil
}

// EvaluateBatch returns Z(start + j·step), j ∈ [0,count), using at most
// Threads() goroutines.
func (r *RiemannSiegel) EvaluateBatch(start, step *big.Float, count, tag int) (gram.Batch, error) {
	const method = "EvaluateBatch"

	if start == nil || step == nil || count < 1 {
		return gram.Batch{}, fmt.Errorf("%s: batch %d, count %d: %w", method, tag, count, ErrBadBatch)
	}
	if count > 1 {
		if err := r.checkResolution(start, step, count); err != nil {
			return gram.Batch{}, fmt.Errorf("%s: batch %d: %w", method, tag, err)
		}
	}

	out := make([]float64, count)
	var g errgroup.Group
	g.SetLimit(r.threads)
	for j := 0; j < count; j++ {
		g.Go(func() error {
			x := r.nf().SetInt64(int64(j))
			x.Mul(x, step)
			x.Add(x, start)

			v, err := r.Z(x)
			if err != nil {
				return fmt.Errorf("sample %d: %w", j, err)
			}
			out[j] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return gram.Batch{}, fmt.Errorf("%s: batch %d: %w", method, tag, err)
	}

	return gram.Batch{Tag: tag, Values: out}, nil
}

// Theta returns the Riemann–Siegel θ(t) at the working precision.
func (r *RiemannSiegel) Theta(t *big.Float) (*big.Float, error) {
	if err := r.checkHeight(t); err != nil {
		return nil, fmt.Errorf("Theta: %w", err)
	}

	return r.theta(t), nil
}

// Z returns Hardy's Z(t).
func (r *RiemannSiegel) Z(t *big.Float) (float64, error) {
	if err := r.checkHeight(t); err != nil {
		return 0, fmt.Errorf("Z: %w", err)
	}

	th, _ := r.reduce(r.theta(t), r.twoPi).Float64()
	tf, _ := t.Float64()

	return riemannSiegelSum(th, tf), nil
}

func (r *RiemannSiegel) nf() *big.Float {
	return new(big.Float).SetPrec(r.prec)
}

// checkHeight accepts t ∈ [MinHeight, MaxHeight].
func (r *RiemannSiegel) checkHeight(t *big.Float) error {
	if t == nil || t.IsInf() || t.Cmp(r.minT) < 0 || t.Cmp(r.maxT) > 0 {
		return fmt.Errorf("t=%v, need [%d, %g]: %w", t, MinHeight, MaxHeight, ErrOutOfDomain)
	}

	return nil
}

// checkResolution rejects batches whose float64 abscissae cannot be told
// apart: |step| must cover minStepULPs ulps of the last abscissa.
func (r *RiemannSiegel) checkResolution(start, step *big.Float, count int) error {
	end := r.nf().SetInt64(int64(count - 1))
	end.Mul(end, step)
	end.Add(end, start)
	if err := r.checkHeight(end); err != nil {
		return err
	}

	endF, _ := end.Float64()
	stepF, _ := step.Float64()
	ulp := math.Nextafter(math.Abs(endF), math.Inf(1)) - math.Abs(endF)
	if math.Abs(stepF) < minStepULPs*ulp {
		return fmt.Errorf("step %g below float64 resolution %g at t=%g: %w", stepF, ulp, endF, ErrOutOfDomain)
	}

	return nil
}

// theta evaluates the asymptotic expansion of θ; t ≥ MinHeight.
func (r *RiemannSiegel) theta(t *big.Float) *big.Float {
	tw := r.nf().Set(t)

	ln := bigfloat.Log(r.nf().Quo(tw, r.twoPi))
	half := r.nf().SetMantExp(tw, -1)

	th := r.nf().Mul(half, ln)
	th.Sub(th, half)
	th.Sub(th, r.piEighth)

	inv := r.nf().Quo(r.one, tw)
	inv2 := r.nf().Mul(inv, inv)
	term := r.nf().Set(inv)
	for _, c := range r.series {
		th.Add(th, r.nf().Mul(term, c))
		term.Mul(term, inv2)
	}

	return th
}

// thetaPrime is ½·ln(t/2π), the leading term of θ'(t).
func (r *RiemannSiegel) thetaPrime(t *big.Float) *big.Float {
	ln := bigfloat.Log(r.nf().Quo(t, r.twoPi))

	return ln.SetMantExp(ln, -1)
}

// reduce returns x mod period in [0, period).
func (r *RiemannSiegel) reduce(x, period *big.Float) *big.Float {
	q := r.nf().Quo(x, period)
	qi, _ := q.Int(nil)
	out := r.nf().SetInt(qi)
	out.Mul(out, period)
	out.Sub(x, out)
	if out.Sign() < 0 {
		out.Add(out, period)
	}

	return out
}

// riemannSiegelSum evaluates the main sum plus the C₀ remainder term.
func riemannSiegelSum(theta, t float64) float64 {
	a := math.Sqrt(t / (2 * math.Pi))
	fn := math.Floor(a)
	p := a - fn
	n := int(fn)

	var sum float64
	for k := 1; k <= n; k++ {
		fk := float64(k)
		sum += math.Cos(theta-t*math.Log(fk)) / math.Sqrt(fk)
	}

	rem := c0(p) / math.Sqrt(a)
	if n%2 == 0 {
		rem = -rem
	}

	return 2*sum + rem
}

// c0 is the first Riemann–Siegel remainder coefficient.
func c0(p float64) float64 {
	if math.Abs(math.Cos(2*math.Pi*p)) < c0Singular {
		return (c0Raw(p-c0Step) + c0Raw(p+c0Step)) / 2
	}

	return c0Raw(p)
}

func c0Raw(p float64) float64 {
	return math.Cos(2*math.Pi*(p*p-p-1.0/16)) / math.Cos(2*math.Pi*p)
}

// floorInt returns ⌊x⌋.
func floorInt(x *big.Float) *big.Int {
	z, acc := x.Int(nil)
	if acc == big.Above {
		z.Sub(z, big.NewInt(1))
	}

	return z
}
