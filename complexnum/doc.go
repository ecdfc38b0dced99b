// SPDX-License-Identifier: MIT

// Package complexnum implements an immutable complex-number value type.
//
// 🚀 What is a Complex?
//
//	A Complex holds the pair (re, im) and stands for re + im·i. Its fields are
//	unexported: once built, a value never changes and every operation returns
//	a new value. Values can be copied, compared and shared across goroutines
//	without locking.
//
// ✨ Key features:
//   - constructors: New, FromReal, Rotation, FromComplex128
//   - arithmetic: Add, Sub, Neg, Conj, Mul, Scale, Div, Reciprocal
//   - magnitude: SquaredModulus, Modulus, Arg
//   - Pow: integer powers by repeated squaring, O(log p) multiplications
//   - Equal/Hash: a consistent pair built on floatcmp's total order
//   - ApproxEqual: tolerance-based comparison configured via Option
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mandelbrot/complexnum"
//
//	z := complexnum.New(1, 2)
//	w := z.Mul(complexnum.I).Add(complexnum.One) // (1+2i)·i + 1 = -1 + i
//
//	q, err := z.Div(w)
//	if errors.Is(err, complexnum.ErrDivideByZero) {
//	  // w was zero
//	}
//
//	p, err := z.Pow(5)
//
// Errors:
//   - ErrDivideByZero     — Div or Reciprocal with a zero divisor.
//   - ErrNegativeExponent — Pow with p < 0.
//
// Overflow to ±Inf or NaN is ordinary IEEE-754 behavior and is not reported.
//
// Equality:
//
//	Equal is NOT the same as ==. It compares components with
//	floatcmp.Equal, under which NaN equals NaN (and -0 equals +0).
//	Use Equal whenever a Hash-consistent notion of identity is needed.
package complexnum
