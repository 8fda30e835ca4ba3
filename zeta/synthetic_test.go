package zeta_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turing/precision"
	"github.com/katalvlaran/turing/zeta"
)

func newSynthetic(t *testing.T, opts ...zeta.SyntheticOption) *zeta.Synthetic {
	t.Helper()

	ctx, err := precision.New(128, 1, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })

	s, err := zeta.NewSynthetic(ctx, opts...)
	require.NoError(t, err)

	return s
}

// TestSynthetic_GramPoints checks the linear index/location relation.
func TestSynthetic_GramPoints(t *testing.T) {
	t.Parallel()

	s := newSynthetic(t, zeta.WithOrigin("10"), zeta.WithSpacing("0.5"))

	n, err := s.LocateNearestIndex("12.3", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n.Int64())

	n, err = s.LocateNearestIndex("12", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n.Int64(), "a target on a Gram point belongs to it")

	g, err := s.ReferenceLocation(big.NewInt(4), nil)
	require.NoError(t, err)
	assert.Equal(t, "12", g.Text('f', -1))

	_, err = s.LocateNearestIndex("9.5", nil)
	assert.ErrorIs(t, err, zeta.ErrOutOfDomain)
	_, err = s.LocateNearestIndex("x", nil)
	assert.ErrorIs(t, err, zeta.ErrBadTarget)
	_, err = s.ReferenceLocation(big.NewInt(-1), nil)
	assert.ErrorIs(t, err, zeta.ErrOutOfDomain)
}

// TestSynthetic_GramsLaw: (−1)ⁿ·Z(g(n)) = A exactly.
func TestSynthetic_GramsLaw(t *testing.T) {
	t.Parallel()

	s := newSynthetic(t, zeta.WithAmplitude(2))
	for n := int64(7000); n < 7010; n++ {
		g, err := s.ReferenceLocation(big.NewInt(n), nil)
		require.NoError(t, err)

		want := 2.0
		if n%2 == 1 {
			want = -2
		}
		assert.Equal(t, want, s.Z(g), "n=%d", n)
	}
}

// TestSynthetic_ClosePair: a fine grid sees the two planted zeros plus the
// regular one at the interval midpoint.
func TestSynthetic_ClosePair(t *testing.T) {
	t.Parallel()

	s := newSynthetic(t, zeta.WithClosePair(7005.06266, 7005.10056))

	b, err := s.EvaluateBatch(big.NewFloat(7005), big.NewFloat(0.001), 1000, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Tag)

	var changes int
	for i := 1; i < len(b.Values); i++ {
		if b.Values[i]*b.Values[i-1] < 0 {
			changes++
		}
	}
	assert.Equal(t, 3, changes)

	// Far from the pair the factor is close to 1.
	far := s.Z(big.NewFloat(7010.25))
	assert.InDelta(t, math.Cos(math.Pi/4), far, 1e-3)
}

// TestSynthetic_Errors covers batch validation and option panics.
func TestSynthetic_Errors(t *testing.T) {
	t.Parallel()

	s := newSynthetic(t)
	_, err := s.EvaluateBatch(nil, big.NewFloat(1), 1, 0)
	assert.ErrorIs(t, err, zeta.ErrBadBatch)
	_, err = s.EvaluateBatch(big.NewFloat(1), big.NewFloat(1), 0, 0)
	assert.ErrorIs(t, err, zeta.ErrBadBatch)

	_, err = zeta.NewSynthetic(nil)
	assert.Error(t, err)

	assert.Panics(t, func() { zeta.WithOrigin("-1") })
	assert.Panics(t, func() { zeta.WithSpacing("0") })
	assert.Panics(t, func() { zeta.WithSpacing("1e2") })
	assert.Panics(t, func() { zeta.WithAmplitude(0) })
	assert.Panics(t, func() { zeta.WithAmplitude(math.Inf(1)) })
	assert.Panics(t, func() { zeta.WithClosePair(2, 1) })
}
