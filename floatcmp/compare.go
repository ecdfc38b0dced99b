// SPDX-License-Identifier: MIT

package floatcmp

import "math"

// canonicalNaN is the single bit pattern every NaN maps to.
const canonicalNaN uint64 = 0x7ff8000000000000

// Compare returns -1, 0 or +1 depending on whether a sorts before, together
// with, or after b in the total order described in the package doc.
//
// Complexity: O(1), no allocations.
func Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}

	// At least one side is NaN.
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	default:
		return -1
	}
}

// Equal reports whether a and b are the same value under Compare.
// It differs from == only in that Equal(NaN, NaN) is true.
func Equal(a, b float64) bool {
	return Compare(a, b) == 0
}

// Bits returns the IEEE-754 representation of x, with -0 folded into +0 and
// every NaN collapsed to one canonical quiet NaN.
func Bits(x float64) uint64 {
	switch {
	case math.IsNaN(x):
		return canonicalNaN
	case x == 0:
		return 0
	}

	return math.Float64bits(x)
}
