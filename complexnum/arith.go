// SPDX-License-Identifier: MIT

package complexnum

import "math"

// Add returns z + b.
func (z Complex) Add(b Complex) Complex {
	return Complex{re: z.re + b.re, im: z.im + b.im}
}

// Sub returns z - b.
func (z Complex) Sub(b Complex) Complex {
	return Complex{re: z.re - b.re, im: z.im - b.im}
}

// Neg returns -z, the c for which z + c = 0.
func (z Complex) Neg() Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Conj returns the conjugate re - im·i. z·Conj(z) = |z|².
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Mul returns z · b using the schoolbook formula
//
//	(a+bi)(c+di) = (ac - bd) + (ad + bc)i
//
// with no fused or compensated steps, so results are reproducible.
func (z Complex) Mul(b Complex) Complex {
	return Complex{
		re: z.re*b.re - z.im*b.im,
		im: z.re*b.im + z.im*b.re,
	}
}

// Scale returns λ·z.
func (z Complex) Scale(lambda float64) Complex {
	return Complex{re: lambda * z.re, im: lambda * z.im}
}

// SquaredModulus returns re² + im² without taking a square root.
func (z Complex) SquaredModulus() float64 {
	return z.re*z.re + z.im*z.im
}

// Modulus returns |z| = sqrt(re² + im²).
//
// This is computed from SquaredModulus and is therefore subject to overflow
// for components beyond ~1e154; it is not math.Hypot.
func (z Complex) Modulus() float64 {
	return math.Sqrt(z.SquaredModulus())
}

// Arg returns the phase angle of z in [-π, π], i.e. atan2(im, re). The sign of a zero
// imaginary part selects between -π and π on the negative real axis.
func (z Complex) Arg() float64 {
	return math.Atan2(z.im, z.re)
}

// Reciprocal returns 1/z.
//
// Errors:
//   - ErrDivideByZero if z Equal Zero, or if re² + im² evaluates to 0
//     because the squares of tiny components underflow.
//
// Complexity: O(1).
func (z Complex) Reciprocal() (Complex, error) {
	m, err := divisorModulus(z)
	if err != nil {
		return Complex{}, err
	}

	return Complex{re: z.re / m, im: -z.im / m}, nil
}

// Div returns z / b:
//
//	(a+bi)/(c+di) = ((ac + bd) + (bc - ad)i) / (c² + d²)
//
// Errors:
//   - ErrDivideByZero under the same conditions as Reciprocal, applied to b.
func (z Complex) Div(b Complex) (Complex, error) {
	m, err := divisorModulus(b)
	if err != nil {
		return Complex{}, err
	}

	return Complex{
		re: (z.re*b.re + z.im*b.im) / m,
		im: (z.im*b.re - z.re*b.im) / m,
	}, nil
}

// divisorModulus validates d as a divisor and returns its squared modulus.
// The Equal(Zero) check runs first; m == 0 catches underflow.
func divisorModulus(d Complex) (float64, error) {
	if d.Equal(Zero) {
		return 0, ErrDivideByZero
	}

	m := d.SquaredModulus()
	if m == 0 {
		return 0, ErrDivideByZero
	}

	return m, nil
}
