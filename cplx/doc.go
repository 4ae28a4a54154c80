// Package cplx provides Complex[T], a complex number stored as a 2-vector.
//
// Complex embeds vector.Vector[T]: Real and Imag are the same slots as the
// vector's X and Y, so every vector view and helper (At, All, Hash, String,
// AppendBinary, ...) works on a complex number directly. Shape reports the
// Complex kind, so promotion treats it as a scalar-like value: complex∘scalar
// and complex∘complex are complex, complex∘quaternion is a quaternion, and
// complex∘vector or complex∘matrix has no common type.
//
// Arithmetic (Add, Sub, Mul, Div, Conj, NormSquared) works for any real
// element type; the transcendental functions (Abs, Arg, Exp, Log, Sqrt, Pow,
// Polar) need a float element type.
//
//	i := cplx.New(0.0, 1.0)
//	fmt.Println(cplx.Mul(cplx.New(3.0, 4.0), i)) // (-4, 3)
package cplx
