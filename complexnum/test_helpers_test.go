// SPDX-License-Identifier: MIT

package complexnum_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mandelbrot/complexnum"
	"github.com/stretchr/testify/assert"
)

// samples is a fixed set of finite, non-zero values spanning all four
// quadrants, both axes and a few awkward magnitudes.
var samples = []complexnum.Complex{
	complexnum.One,
	complexnum.I,
	complexnum.New(1, 2),
	complexnum.New(-3, 4),
	complexnum.New(-0.5, -0.25),
	complexnum.New(2.75, -1e-3),
	complexnum.New(1e6, 1e-6),
	complexnum.New(-7, 0),
	complexnum.New(0, -13),
	complexnum.New(0.1, 0.2),
}

// assertComplexEqual fails unless got Equal want, printing both via String.
func assertComplexEqual(t *testing.T, want, got complexnum.Complex, msgAndArgs ...interface{}) {
	t.Helper()
	if !want.Equal(got) {
		assert.Fail(t, fmt.Sprintf("want %v, got %v", want, got), msgAndArgs...)
	}
}

// assertComplexNear fails unless got is within eps of want, per component.
func assertComplexNear(t *testing.T, want, got complexnum.Complex, eps float64) {
	t.Helper()
	assert.Truef(t, want.ApproxEqual(got, complexnum.WithEpsilon(eps)), "want %v ±%g, got %v", want, eps, got)
}
