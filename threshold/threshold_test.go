package threshold_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turing/threshold"
)

// TestK_AtZero: ln 100 ≈ 4.60517, 0.00313·21.2076 + 0.1039·4.60517 ≈ 0.5449 → K = 1.
func TestK_AtZero(t *testing.T) {
	t.Parallel()

	k, err := threshold.K(new(big.Float))
	require.NoError(t, err)
	assert.Equal(t, 1, k)
}

// TestK_MatchesFloat64 compares against a float64 rendition at moderate heights.
func TestK_MatchesFloat64(t *testing.T) {
	t.Parallel()

	for _, g := range []float64{14.5, 1000, 7005.06, 1e6, 1e12, 1e20} {
		ln := math.Log(g + threshold.Window)
		want := int(math.Ceil(0.00313*ln*ln + 0.1039*ln))

		got, err := threshold.K(new(big.Float).SetPrec(256).SetFloat64(g))
		require.NoError(t, err)
		assert.Equal(t, want, got, "G = %g", g)
	}
}

// TestK_BeyondFloat64 handles heights that overflow float64.
func TestK_BeyondFloat64(t *testing.T) {
	t.Parallel()

	g, _, err := big.ParseFloat("1e400", 10, 256, big.ToNearestEven)
	require.NoError(t, err)

	// ln(1e400) ≈ 921.03: 0.00313·848296 + 0.1039·921.03 ≈ 2750.8 → 2751.
	k, err := threshold.K(g)
	require.NoError(t, err)
	assert.Equal(t, 2751, k)
}

// TestK_Domain rejects nil, infinite and too negative inputs.
func TestK_Domain(t *testing.T) {
	t.Parallel()

	_, err := threshold.K(nil)
	assert.ErrorIs(t, err, threshold.ErrDomain)
	_, err = threshold.K(new(big.Float).SetInf(false))
	assert.ErrorIs(t, err, threshold.ErrDomain)
	_, err = threshold.K(big.NewFloat(-100))
	assert.ErrorIs(t, err, threshold.ErrDomain)
	_, err = threshold.K(big.NewFloat(-250))
	assert.ErrorIs(t, err, threshold.ErrDomain)
}
