package zeta_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/turing/precision"
	"github.com/katalvlaran/turing/zeta"
)

// First Gram points, g(n) with θ(g(n)) = nπ.
var knownGram = []float64{17.8455995405, 23.1702827012, 27.6701822178}

func newRS(t *testing.T, threads int) *zeta.RiemannSiegel {
	t.Helper()

	ctx, err := precision.New(precision.DefaultBits, threads, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })

	rs, err := zeta.NewRiemannSiegel(ctx)
	require.NoError(t, err)

	return rs
}

func accuracy16() *big.Float {
	acc, _, _ := big.ParseFloat("5e-17", 10, precision.DefaultBits, big.ToNearestEven)

	return acc
}

// TestRiemannSiegel_GramPoints checks g(0..2) and θ(g(n)) = nπ.
func TestRiemannSiegel_GramPoints(t *testing.T) {
	t.Parallel()

	rs := newRS(t, 1)
	for n, want := range knownGram {
		g, err := rs.ReferenceLocation(big.NewInt(int64(n)), accuracy16())
		require.NoError(t, err)
		assert.Equal(t, precision.DefaultBits, g.Prec())

		got, _ := g.Float64()
		assert.InDelta(t, want, got, 1e-6, "g(%d)", n)

		th, err := rs.Theta(g)
		require.NoError(t, err)
		thf, _ := th.Float64()
		assert.InDelta(t, float64(n)*math.Pi, thf, 1e-12, "θ(g(%d))", n)
	}
}

// TestRiemannSiegel_LocateNearestIndex verifies g(n) ≤ t < g(n+1).
func TestRiemannSiegel_LocateNearestIndex(t *testing.T) {
	t.Parallel()

	rs := newRS(t, 1)

	n, err := rs.LocateNearestIndex("20", accuracy16())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n.Int64())

	n, err = rs.LocateNearestIndex("23.2", accuracy16())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.Int64())

	for _, target := range []string{"100", "1000.5", "7005.0", "123456.789"} {
		n, err := rs.LocateNearestIndex(target, accuracy16())
		require.NoError(t, err, target)

		tv, _, err := big.ParseFloat(target, 10, precision.DefaultBits, big.ToNearestEven)
		require.NoError(t, err)

		lo, err := rs.ReferenceLocation(n, accuracy16())
		require.NoError(t, err)
		hi, err := rs.ReferenceLocation(new(big.Int).Add(n, big.NewInt(1)), accuracy16())
		require.NoError(t, err)

		assert.LessOrEqual(t, lo.Cmp(tv), 0, "g(n) ≤ %s", target)
		assert.Equal(t, 1, hi.Cmp(tv), "%s < g(n+1)", target)
	}
}

// TestRiemannSiegel_Domain rejects malformed and too low targets.
func TestRiemannSiegel_Domain(t *testing.T) {
	t.Parallel()

	rs := newRS(t, 1)
	for _, bad := range []string{"", "-20", "2e3", "abc"} {
		_, err := rs.LocateNearestIndex(bad, accuracy16())
		assert.ErrorIs(t, err, zeta.ErrBadTarget, "target %q", bad)
	}
	for _, low := range []string{"5", "12", "17.8"} {
		_, err := rs.LocateNearestIndex(low, accuracy16())
		assert.ErrorIs(t, err, zeta.ErrOutOfDomain, "target %q", low)
	}

	_, err := rs.ReferenceLocation(big.NewInt(-1), nil)
	assert.ErrorIs(t, err, zeta.ErrOutOfDomain)
	_, err = rs.Z(big.NewFloat(3))
	assert.ErrorIs(t, err, zeta.ErrOutOfDomain)
	_, err = rs.EvaluateBatch(big.NewFloat(20), big.NewFloat(0.1), 0, 3)
	assert.ErrorIs(t, err, zeta.ErrBadBatch)
	_, err = rs.EvaluateBatch(big.NewFloat(3), big.NewFloat(0.1), 4, 3)
	assert.ErrorIs(t, err, zeta.ErrOutOfDomain)
}

// TestRiemannSiegel_HeightCeiling: the float64 main sum is only trusted up
// to MaxHeight; beyond it every entry point reports ErrOutOfDomain.
func TestRiemannSiegel_HeightCeiling(t *testing.T) {
	t.Parallel()

	rs := newRS(t, 1)

	v, err := rs.Z(big.NewFloat(zeta.MaxHeight))
	require.NoError(t, err)
	assert.False(t, math.IsNaN(v))

	_, err = rs.Z(big.NewFloat(zeta.MaxHeight + 1))
	assert.ErrorIs(t, err, zeta.ErrOutOfDomain)

	_, err = rs.LocateNearestIndex("10000000000000000", nil)
	assert.ErrorIs(t, err, zeta.ErrOutOfDomain)

	_, err = rs.ReferenceLocation(big.NewInt(100_000_000_000), nil)
	assert.ErrorIs(t, err, zeta.ErrOutOfDomain)

	// A batch that would run past the ceiling is refused up front.
	_, err = rs.EvaluateBatch(big.NewFloat(zeta.MaxHeight-1), big.NewFloat(1), 3, 0)
	assert.ErrorIs(t, err, zeta.ErrOutOfDomain)
}

// TestRiemannSiegel_StepResolution: abscissae closer than the float64 grid
// can separate are refused instead of collapsing onto one value.
func TestRiemannSiegel_StepResolution(t *testing.T) {
	t.Parallel()

	rs := newRS(t, 1)

	_, err := rs.EvaluateBatch(big.NewFloat(1e9), big.NewFloat(1e-9), 4, 2)
	assert.ErrorIs(t, err, zeta.ErrOutOfDomain)
	_, err = rs.EvaluateBatch(big.NewFloat(100), big.NewFloat(0), 2, 2)
	assert.ErrorIs(t, err, zeta.ErrOutOfDomain)

	// A single sample has no step to resolve.
	b, err := rs.EvaluateBatch(big.NewFloat(1e9), big.NewFloat(0), 1, 2)
	require.NoError(t, err)
	assert.Len(t, b.Values, 1)
}

// TestRiemannSiegel_NoConvergence: one Newton step cannot reach 10⁻¹⁶.
func TestRiemannSiegel_NoConvergence(t *testing.T) {
	t.Parallel()

	ctx, err := precision.New(precision.DefaultBits, 1, 0)
	require.NoError(t, err)
	defer ctx.Close()

	rs, err := zeta.NewRiemannSiegel(ctx, zeta.WithMaxIterations(1))
	require.NoError(t, err)

	_, err = rs.ReferenceLocation(big.NewInt(1000), accuracy16())
	assert.ErrorIs(t, err, zeta.ErrNoConvergence)
}

// TestRiemannSiegel_ZeroCount counts the nine zeros in (18, 50):
// 21.02, 25.01, 30.42, 32.94, 37.59, 40.92, 43.33, 48.01, 49.77.
func TestRiemannSiegel_ZeroCount(t *testing.T) {
	t.Parallel()

	rs := newRS(t, 4)
	b, err := rs.EvaluateBatch(big.NewFloat(18), big.NewFloat(0.02), 1601, 7)
	require.NoError(t, err)
	require.Equal(t, 7, b.Tag)
	require.Len(t, b.Values, 1601)

	var changes int
	for i := 1; i < len(b.Values); i++ {
		if b.Values[i]*b.Values[i-1] < 0 {
			changes++
		}
	}
	assert.Equal(t, 9, changes)
}

// TestRiemannSiegel_GramsLaw: (−1)ⁿ·Z(g(n)) > 0 holds for n < 126.
func TestRiemannSiegel_GramsLaw(t *testing.T) {
	t.Parallel()

	rs := newRS(t, 1)
	for n := int64(0); n < 10; n++ {
		g, err := rs.ReferenceLocation(big.NewInt(n), accuracy16())
		require.NoError(t, err)
		z, err := rs.Z(g)
		require.NoError(t, err)

		sign := 1.0
		if n%2 == 1 {
			sign = -1
		}
		assert.Greater(t, sign*z, 0.0, "Gram's law at n=%d (Z=%g)", n, z)
	}
}

// TestRiemannSiegel_ThreadsAgree compares serial and parallel batches and
// checks that no goroutine outlives the batch.
func TestRiemannSiegel_ThreadsAgree(t *testing.T) {
	defer goleak.VerifyNone(t)

	serial := newRS(t, 1)
	parallel := newRS(t, 8)
	assert.Equal(t, 8, parallel.Threads())

	start := big.NewFloat(7005)
	step := big.NewFloat(0.125)

	a, err := serial.EvaluateBatch(start, step, 64, 0)
	require.NoError(t, err)
	b, err := parallel.EvaluateBatch(start, step, 64, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Values, b.Values)
}

// TestNewRiemannSiegel_Context rejects nil and closed contexts.
func TestNewRiemannSiegel_Context(t *testing.T) {
	t.Parallel()

	_, err := zeta.NewRiemannSiegel(nil)
	assert.Error(t, err)

	ctx, err := precision.New(precision.DefaultBits, 1, 0)
	require.NoError(t, err)
	require.NoError(t, ctx.Close())
	_, err = zeta.NewRiemannSiegel(ctx)
	assert.ErrorIs(t, err, precision.ErrClosed)

	assert.Panics(t, func() { zeta.WithMaxIterations(0) })
	assert.Panics(t, func() { zeta.WithLogger(nil) })
}
