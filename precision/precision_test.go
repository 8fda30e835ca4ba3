package precision_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turing/precision"
)

// piDigits are the first 60 decimals of π.
const piDigits = "3.141592653589793238462643383279502884197169399375105820974944"

// TestNew_RejectsBadArguments checks the bits/threads bounds.
func TestNew_RejectsBadArguments(t *testing.T) {
	t.Parallel()

	_, err := precision.New(precision.MinBits-1, 1, 0)
	assert.ErrorIs(t, err, precision.ErrBadPrecision)

	_, err = precision.New(precision.MaxBits+1, 1, 0)
	assert.ErrorIs(t, err, precision.ErrBadPrecision)

	_, err = precision.New(precision.DefaultBits, 0, 0)
	assert.ErrorIs(t, err, precision.ErrBadThreads)
}

// TestContext_Accessors verifies that New stores its arguments.
func TestContext_Accessors(t *testing.T) {
	t.Parallel()

	ctx, err := precision.New(128, 4, 2311)
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, uint(128), ctx.Prec())
	assert.Equal(t, 4, ctx.Threads())
	assert.Equal(t, 2311, ctx.DebugFlags())
	assert.Equal(t, uint(128), ctx.Float().Prec())
	assert.Equal(t, uint(128), ctx.FromInt(big.NewInt(7)).Prec())
}

// TestContext_Pi compares π against the known decimal expansion.
func TestContext_Pi(t *testing.T) {
	t.Parallel()

	ctx, err := precision.New(precision.DefaultBits, 1, 0)
	require.NoError(t, err)
	defer ctx.Close()

	pi, err := ctx.Pi()
	require.NoError(t, err)

	want, _, err := big.ParseFloat(piDigits, 10, precision.DefaultBits, big.ToNearestEven)
	require.NoError(t, err)

	diff := new(big.Float).Sub(pi, want)
	diff.Abs(diff)
	// 60 decimals ≈ 199 bits; the reference itself is the limiting factor.
	assert.True(t, diff.Cmp(big.NewFloat(1e-58)) < 0, "π off by %s", diff.Text('e', 5))

	// Pi hands out copies.
	pi.SetInt64(3)
	again, err := ctx.Pi()
	require.NoError(t, err)
	f, _ := again.Float64()
	assert.InDelta(t, math.Pi, f, 1e-15)
}

// TestContext_Parse covers valid and malformed decimal targets.
func TestContext_Parse(t *testing.T) {
	t.Parallel()

	ctx, err := precision.New(precision.DefaultBits, 1, 0)
	require.NoError(t, err)
	defer ctx.Close()

	x, err := ctx.Parse("7005.06266")
	require.NoError(t, err)
	assert.Equal(t, precision.DefaultBits, x.Prec())
	assert.Equal(t, "7005.06266", x.Text('f', 5))

	for _, bad := range []string{"", ".", "-1", "1e5", "1.2.3", " 12", "0x10"} {
		_, err := ctx.Parse(bad)
		assert.ErrorIs(t, err, precision.ErrParse, "input %q", bad)
	}
}

// TestContext_Close verifies idempotent Close and ErrClosed afterwards.
func TestContext_Close(t *testing.T) {
	t.Parallel()

	ctx, err := precision.New(precision.DefaultBits, 1, 0)
	require.NoError(t, err)

	kept, err := ctx.Parse("1.5")
	require.NoError(t, err)

	require.NoError(t, ctx.Close())
	require.NoError(t, ctx.Close())
	assert.True(t, ctx.Closed())

	_, err = ctx.Parse("2")
	assert.ErrorIs(t, err, precision.ErrClosed)
	_, err = ctx.Pi()
	assert.ErrorIs(t, err, precision.ErrClosed)

	// Values created before Close stay valid.
	assert.Equal(t, "1.5", kept.Text('f', 1))
}

// TestDecimalPlaces counts fractional digits.
func TestDecimalPlaces(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"7005":       0,
		"7005.":      0,
		"7005.1":     1,
		"7005.06266": 5,
		".25":        2,
	}
	for in, want := range cases {
		assert.Equal(t, want, precision.DecimalPlaces(in), "input %q", in)
	}
}

// TestLogExpCeil checks the guarded transcendental helpers.
func TestLogExpCeil(t *testing.T) {
	t.Parallel()

	x := new(big.Float).SetPrec(128).SetInt64(100)
	ln, err := precision.Log(x)
	require.NoError(t, err)
	f, _ := ln.Float64()
	assert.InDelta(t, math.Log(100), f, 1e-15)

	e, err := precision.Exp(ln)
	require.NoError(t, err)
	f, _ = e.Float64()
	assert.InDelta(t, 100, f, 1e-12)

	_, err = precision.Log(new(big.Float))
	assert.ErrorIs(t, err, precision.ErrDomain)
	_, err = precision.Log(big.NewFloat(-1))
	assert.ErrorIs(t, err, precision.ErrDomain)
	_, err = precision.Exp(new(big.Float).SetInf(false))
	assert.ErrorIs(t, err, precision.ErrDomain)

	ceilCases := []struct {
		in   float64
		want int64
	}{
		{0.5449, 1},
		{1, 1},
		{1.0000001, 2},
		{0, 0},
		{-0.5, 0},
		{-1.5, -1},
	}
	for _, c := range ceilCases {
		got, err := precision.Ceil(big.NewFloat(c.in))
		require.NoError(t, err)
		assert.Equal(t, c.want, got.Int64(), "ceil(%v)", c.in)
	}
}
