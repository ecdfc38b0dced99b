// SPDX-License-Identifier: MIT

package complexnum

import (
	"math"

	"github.com/katalvlaran/mandelbrot/floatcmp"
)

// hashSeed and hashPrime drive the order-sensitive pair combiner in Hash.
const (
	hashSeed  uint64 = 17
	hashPrime uint64 = 31
)

// Equal reports whether z and b have identical components under the total
// order of floatcmp.Compare.
//
// Behavior highlights:
//   - Exact, not tolerance-based; see ApproxEqual for that.
//   - Reflexive even for NaN components, unlike ==.
//   - -0 and +0 are equal, as with ==.
func (z Complex) Equal(b Complex) bool {
	return floatcmp.Equal(z.re, b.re) && floatcmp.Equal(z.im, b.im)
}

// IsZero reports whether z Equal Zero. Signed zeros count as zero.
func (z Complex) IsZero() bool {
	return z.Equal(Zero)
}

// Hash returns a hash of z consistent with Equal: a.Equal(b) ⇒ a.Hash() == b.Hash().
//
// The canonical bit patterns of re and im are folded in that order, so
// (x, y) and (y, x) generally hash differently.
func (z Complex) Hash() uint64 {
	h := hashSeed
	h = h*hashPrime + floatcmp.Bits(z.re)
	h = h*hashPrime + floatcmp.Bits(z.im)

	return h
}

// ApproxEqual reports whether |z.re - b.re| <= eps and |z.im - b.im| <= eps.
//
// eps defaults to DefaultEpsilon and is set with WithEpsilon. Components that
// are Equal (including matching infinities and NaNs) always pass.
//
// Complexity: O(len(opts)).
func (z Complex) ApproxEqual(b Complex, opts ...Option) bool {
	o := gatherOptions(opts...)

	return closeTo(z.re, b.re, o.eps) && closeTo(z.im, b.im, o.eps)
}

func closeTo(a, b, eps float64) bool {
	if floatcmp.Equal(a, b) {
		return true
	}

	return math.Abs(a-b) <= eps
}
