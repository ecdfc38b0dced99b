// SPDX-License-Identifier: MIT

// Package mandelbrot is the numeric groundwork for escape-time fractal
// rendering: an immutable complex-number type with exact, well-defined
// arithmetic.
//
// 🚀 What is in the module?
//
//	A small, dependency-light set of pure packages:
//		• complexnum: the Complex value type (add, multiply, divide, powers, …)
//		• floatcmp:   a total order on float64 used for Equal/Hash consistency
//
// ✨ Why this shape?
//
//   - Immutable values – safe to share across goroutines with no locks
//   - Explicit errors – division by zero and negative powers return sentinels
//   - Deterministic – every operation is a fixed sequence of float64 steps
//
// Under the hood:
//
//	complexnum/ — Complex, Zero/One/I, arithmetic, Pow, Equal/Hash, ApproxEqual
//	floatcmp/   — Compare, Equal, Bits
//	examples/   — runnable demo (roots of unity)
//
// Quick example, one step of z ← z² + c:
//
//	z = z.Mul(z).Add(c)
//
//	go get github.com/katalvlaran/mandelbrot/complexnum
package mandelbrot
