// Package quat provides Quaternion[T], w + xi + yj + zk stored as a 4-vector.
//
// Slot 0 holds the real part w; slots 1..3 hold the imaginary 3-vector
// (x, y, z). Real and Imag are views of those slots, and W X Y Z name them
// individually. Vector returns the underlying 4-vector unchanged.
//
// Shape reports the Quaternion kind: quaternion∘{scalar, complex,
// quaternion} promotes to a quaternion, and a quaternion never combines
// elementwise with a vector or a matrix.
//
// Besides the ring operations (Add, Sub, Mul as the Hamilton product, Conj,
// Dot, NormSquared), float quaternions support Norm, Normalize, Inverse,
// Exp, Log, Sqrt and rotation helpers (FromAxisAngle, Rotate,
// RotationMatrix, Slerp). Log and Sqrt have domain preconditions that are
// asserted in debug builds.
package quat
