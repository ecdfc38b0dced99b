// SPDX-License-Identifier: MIT

package complexnum

import "errors"

// Sentinels are returned unwrapped; match them with errors.Is.
var (
	// ErrDivideByZero is returned by Div and Reciprocal when the divisor is
	// Zero or its squared modulus evaluates to 0 (signed zero, underflow).
	ErrDivideByZero = errors.New("complexnum: divide by zero")

	// ErrNegativeExponent is returned by Pow for p < 0.
	ErrNegativeExponent = errors.New("complexnum: negative exponent")
)
