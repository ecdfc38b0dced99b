// SPDX-License-Identifier: MIT

package complexnum_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mandelbrot/complexnum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naivePow multiplies z into One p times.
func naivePow(z complexnum.Complex, p int) complexnum.Complex {
	result := complexnum.One
	for i := 0; i < p; i++ {
		result = result.Mul(z)
	}

	return result
}

// mustPow is Pow for exponents known to be valid.
func mustPow(t *testing.T, z complexnum.Complex, p int) complexnum.Complex {
	t.Helper()
	r, err := z.Pow(p)
	require.NoError(t, err, "z=%v p=%d", z, p)

	return r
}

// TestPow_SmallExponents checks the base cases exactly against Mul.
func TestPow_SmallExponents(t *testing.T) {
	for _, z := range append(samples, complexnum.Zero) {
		assertComplexEqual(t, complexnum.One, mustPow(t, z, 0), "z^0")
		assertComplexEqual(t, z, mustPow(t, z, 1), "z^1")
		assertComplexEqual(t, z.Mul(z), mustPow(t, z, 2), "z^2")
		assertComplexEqual(t, z.Mul(z).Mul(z), mustPow(t, z, 3), "z^3")
	}
}

// TestPow_ZeroBase verifies 0^0 = 1 and 0^p = 0 for p > 0.
func TestPow_ZeroBase(t *testing.T) {
	assertComplexEqual(t, complexnum.One, mustPow(t, complexnum.Zero, 0))
	for p := 1; p <= 8; p++ {
		assertComplexEqual(t, complexnum.Zero, mustPow(t, complexnum.Zero, p), "p=%d", p)
	}
}

// TestPow_GaussianIntegersExact compares squaring with repeated multiplication
// on integer-valued inputs, where every product is exactly representable.
func TestPow_GaussianIntegersExact(t *testing.T) {
	bases := []complexnum.Complex{
		complexnum.New(1, 1),
		complexnum.New(2, -1),
		complexnum.New(-1, 2),
		complexnum.New(-2, 2),
		complexnum.New(3, 0),
		complexnum.I,
	}
	for _, z := range bases {
		for p := 0; p <= 20; p++ {
			assertComplexEqual(t, naivePow(z, p), mustPow(t, z, p), "z=%v p=%d", z, p)
		}
	}

	assertComplexEqual(t, complexnum.FromReal(-1024), mustPow(t, complexnum.New(1, 1), 20), "(1+i)^20 = (2i)^10")
}

// TestPow_MatchesNaive compares against repeated multiplication on arbitrary inputs.
func TestPow_MatchesNaive(t *testing.T) {
	for _, z := range samples {
		for p := 0; p <= 20; p++ {
			want := naivePow(z, p)
			got := mustPow(t, z, p)
			eps := 1e-12 * math.Max(1, want.Modulus())
			assertComplexNear(t, want, got, eps)
		}
	}
}

// TestPow_LargeExponent checks deep recursion on values with exact powers.
func TestPow_LargeExponent(t *testing.T) {
	assertComplexEqual(t, complexnum.I, mustPow(t, complexnum.I, 1_000_001))
	assertComplexEqual(t, complexnum.FromReal(-1), mustPow(t, complexnum.I, 1_000_002))
	assertComplexEqual(t, complexnum.One, mustPow(t, complexnum.One, math.MaxInt))
	assertComplexEqual(t, complexnum.FromReal(math.Ldexp(1, 1000)), mustPow(t, complexnum.FromReal(2), 1000))
}

// TestPow_NegativeExponent verifies p < 0 is rejected for every base.
func TestPow_NegativeExponent(t *testing.T) {
	for _, z := range []complexnum.Complex{complexnum.Zero, complexnum.One, complexnum.New(2, 3)} {
		_, err := z.Pow(-1)
		assert.ErrorIs(t, err, complexnum.ErrNegativeExponent, "z=%v", z)
	}

	_, err := complexnum.I.Pow(math.MinInt)
	assert.ErrorIs(t, err, complexnum.ErrNegativeExponent)
}
