// SPDX-License-Identifier: MIT

package complexnum

import "math"

// DefaultEpsilon is the absolute per-component tolerance of ApproxEqual.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "complexnum: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
// Fields are unexported; callers pass ...Option.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the tolerance used by ApproxEqual.
//
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies opts over the defaults; later options win.
func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
