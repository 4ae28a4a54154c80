// SPDX-License-Identifier: MIT

package approx

import "math"

// DefaultEpsilon is the relative tolerance used when WithEpsilon is absent.
const DefaultEpsilon = 1e-15

const panicEpsilonInvalid = "approx: WithEpsilon: eps must be non-negative and not NaN"

// Option configures a comparator.
type Option func(*Options)

// Options holds the comparison policy. Fields are unexported; use WithX.
type Options struct {
	eps float64
}

// WithEpsilon sets the relative tolerance. +Inf accepts every pair of
// finite values.
//
// Panics:
//   - panicEpsilonInvalid if eps is NaN or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
