// SPDX-License-Identifier: MIT

package numeric

// NormSquarer is an aggregate scalar, such as a complex number or a
// quaternion, that reports its own squared magnitude.
type NormSquarer[T Real] interface {
	NormSquared() T
}

// SumNormSquared returns Σ xi.NormSquared() over aggregate elements, left to
// right. It is the squared Euclidean norm of a sequence whose elements are
// themselves complex numbers or quaternions. An empty sequence yields 0.
//
//	e := numeric.SumNormSquared[float64](spectrum...)
func SumNormSquared[T Real, E NormSquarer[T]](xs ...E) T {
	var sum T
	for _, x := range xs {
		sum += x.NormSquared()
	}
	return sum
}
