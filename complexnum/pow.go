// SPDX-License-Identifier: MIT

package complexnum

// Pow returns z raised to the non-negative integer power p.
//
// Algorithm (exponentiation by squaring):
//  1. p == 0 → One, for every z including Zero (0⁰ = 1 by convention).
//  2. half = (z·z)^(p/2), with p/2 truncated.
//  3. If p is odd, multiply half by z once more.
//
// The recursion depth is ⌊log₂ p⌋ + 1 and every step is a plain Mul, so the
// result is fully determined by the sequence of multiplications above.
//
// Errors:
//   - ErrNegativeExponent if p < 0.
//
// Complexity: O(log p) multiplications.
func (z Complex) Pow(p int) (Complex, error) {
	if p < 0 {
		return Complex{}, ErrNegativeExponent
	}

	return z.pow(p), nil
}

// pow assumes p >= 0.
func (z Complex) pow(p int) Complex {
	if p == 0 {
		return One
	}

	result := z.Mul(z).pow(p / 2)
	if p%2 == 1 {
		result = result.Mul(z)
	}

	return result
}
