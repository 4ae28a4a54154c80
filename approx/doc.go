// Package approx compares floating-point values and vectors for near
// equality, for tests and for code that cannot rely on exact rounding.
//
// The comparison:
//
//   - Exactly equal operands (including ±Inf against itself) are equal.
//   - When either side is zero, or both are below the smallest normal value
//     of the element type, the absolute difference must be below
//     eps × MinNormal.
//   - Otherwise the relative difference |a-b| / (|a|+|b|) must be below eps;
//     the denominator is capped at the largest finite value so huge
//     operands do not overflow it.
//
// The default tolerance is 1e-15:
//
//	approx.Of(1.0).Equal(1 + 1e-16)                        // true
//	approx.Vec(v, approx.WithEpsilon(1e-6)).Equal(w)       // elementwise
//
// NaN is never approximately equal to anything.
package approx
