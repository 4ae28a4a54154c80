// Package lvlinalg is a small-dimension linear algebra toolkit for
// graphics, geometry and signal code: fixed-capacity vectors and matrices
// over every built-in numeric type, with complex numbers and quaternions
// built on the same storage.
//
// 🚀 What is lvlinalg?
//
//	A generic, allocation-free library that brings together:
//		• Scalars: element constraints, type promotion, overflow-safe hypot
//		• Vectors: 1..8 elements, packed or padded layout, map/fold, norms
//		• Matrices: up to 8×8, products, determinant, inverse, LU, statistics
//		• Complex numbers and quaternions as 2- and 4-element vectors
//		• Camera transforms, bounding volumes, named colors, radix-2 FFT
//		• Relative tolerance comparison for floating-point results
//
// ✨ Why choose lvlinalg?
//
//   - Value semantics: every type is a comparable fixed-size array
//   - Mixed element types: int∘float64 promotes to float64 through vector.Promote
//   - Shape safety: mismatched operands panic with typed, inspectable errors
//   - Debug assertions: bounds checks compile away with -tags lvlinalg_release
//
// Packages:
//
//	numeric/  constraints, Kind, Promote, Hypot/PHypot, folds
//	shape/    shapes, layouts and the broadcasting/promotion rules
//	vector/   Vector[T], arithmetic, geometry, swizzles, encoding
//	matrix/   Matrix[T], products, Inverse, LU, Covariance
//	cplx/     Complex[T] as a 2-vector
//	quat/     Quaternion[T], rotation, Slerp, RotationMatrix
//	camera/   Ortho, Perspective, LookAt, Viewport, Project
//	geom/     AABB, Sphere, Segment
//	color/    RGBA, CSS names, hex codecs
//	fft/      in-place radix-2 transforms over Complex[T]
//	approx/   Approx / VecApprox relative comparisons
//
// Quick example:
//
//	a := vector.New(1.0, 2, 3)
//	b := vector.New(0.5, 0.5, 0.5)
//	s := vector.Add(a, b) // Vector[float64]{1.5, 2.5, 3.5}
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/lvlinalg
package lvlinalg
