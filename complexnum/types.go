// SPDX-License-Identifier: MIT

package complexnum

import (
	"math"
	"strconv"
)

// Complex is the complex number re + im·i.
//
// The zero value is Zero. All methods use value receivers and never modify
// the receiver.
type Complex struct {
	re float64
	im float64
}

// Shared constants. They are plain values; copying one yields an independent
// Complex, so no caller can alter another's view.
var (
	// Zero is 0 + 0i.
	Zero = New(0, 0)

	// One is 1 + 0i, the multiplicative identity.
	One = New(1, 0)

	// I is 0 + 1i, the number whose square is -1.
	I = New(0, 1)
)

// New returns re + im·i. Components are stored verbatim: no normalization,
// NaN and ±Inf are accepted.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromReal returns x + 0i.
func FromReal(x float64) Complex {
	return Complex{re: x}
}

// Rotation returns the unit complex number cos θ + i·sin θ.
func Rotation(radians float64) Complex {
	return Complex{re: math.Cos(radians), im: math.Sin(radians)}
}

// FromComplex128 converts a built-in complex128.
func FromComplex128(c complex128) Complex {
	return Complex{re: real(c), im: imag(c)}
}

// Real returns the real part.
func (z Complex) Real() float64 { return z.re }

// Imag returns the imaginary part.
func (z Complex) Imag() float64 { return z.im }

// Complex128 converts z to the built-in complex128.
func (z Complex) Complex128() complex128 {
	return complex(z.re, z.im)
}

// String renders z as Complex{real=<re>, imaginary=<im>}.
// The format is meant for logs and test failures, not for parsing.
func (z Complex) String() string {
	return "Complex{real=" + formatFloat(z.re) + ", imaginary=" + formatFloat(z.im) + "}"
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
