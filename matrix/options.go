// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Only Inverse consumes options today; shape handling is fixed by the types.
package matrix

import "math"

// Defaults.
const (
	// DefaultEpsilon is the pivot magnitude at or below which Inverse
	// reports ErrSingular.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf enables the finite-value scan in Inverse.
	DefaultValidateNaNInf = true
)

// Panic messages for invalid option values.
const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the numeric policy of a single call. Fields are unexported;
// use the WithX constructors.
type Options struct {
	eps            float64
	validateNaNInf bool
}

// WithEpsilon sets the singularity threshold used by Inverse.
//
// Inputs:
//   - eps: finite, eps >= 0. Zero accepts any non-zero pivot.
//
// Panics:
//   - panicEpsilonInvalid if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes Inverse reject NaN/±Inf inputs with ErrNaNInf.
// This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf skips the finite-value scan; non-finite input then
// propagates through the elimination.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user options over the defaults, in order
// (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
