// Package numeric is the scalar layer of lvlinalg: element-type constraints,
// runtime classification of element types, scalar type promotion and the
// overflow-aware reductions every aggregate norm is built on.
//
// What's inside:
//
//   - Real / Integer / Float / Signed / Unsigned constraints (golang.org/x/exp/constraints).
//   - Kind, a closed tag for every built-in arithmetic type, and KindOf[T].
//   - Promote / PromoteAll: the usual arithmetic conversions used to decide the
//     element type of a mixed operation (int∘float64 → float64, uint8∘int8 → int32, …).
//   - Hypot / FastHypot and PHypot / FastPHypot: Euclidean and p-norm reductions.
//     The safe variants take the cheap path first and only rescale by the largest
//     magnitude when the naive sum overflows to +Inf or underflows below the
//     normal range.
//   - NormSquarer / SumNormSquared: squared norm over complex or quaternion
//     sequences.
//   - LeftFold / RightFold over slices with a fixed evaluation order.
//
// Usage:
//
//	k, _ := numeric.Promote(numeric.Int, numeric.Float64) // Float64
//	h := numeric.Hypot(1e200, 1e200)                     // 1.414213562373095e+200
//
// All functions are pure and safe for concurrent use.
package numeric
