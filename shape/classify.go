// SPDX-License-Identifier: MIT

package shape

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// Of classifies a dynamic value: aggregates report their own Descriptor
// through Shaper, built-in arithmetic scalars become ScalarOf(kind).
//
// Errors:
//   - ErrUnclassified for anything else (strings, structs, nil, ...).
func Of(x any) (Descriptor, error) {
	if s, ok := x.(Shaper); ok {
		return s.Shape(), nil
	}
	if k := numeric.KindOfValue(x); k.Valid() {
		return ScalarOf(k), nil
	}
	return Descriptor{}, errors.Wrapf(ErrUnclassified, "%T", x)
}

// PromoteValues classifies a and b and returns Promote of their shapes.
func PromoteValues(a, b any) (Descriptor, error) {
	da, err := Of(a)
	if err != nil {
		return Descriptor{}, err
	}
	db, err := Of(b)
	if err != nil {
		return Descriptor{}, err
	}
	return Promote(da, db)
}

// IsScalar reports whether x classifies as a scalar.
func IsScalar(x any) bool { return is(x, Scalar) }

// IsComplex reports whether x classifies as a complex number.
func IsComplex(x any) bool { return is(x, Complex) }

// IsQuaternion reports whether x classifies as a quaternion.
func IsQuaternion(x any) bool { return is(x, Quaternion) }

// IsVector reports whether x classifies as a vector.
func IsVector(x any) bool { return is(x, Vector) }

// IsMatrix reports whether x classifies as a matrix.
func IsMatrix(x any) bool { return is(x, Matrix) }

func is(x any, k Kind) bool {
	d, err := Of(x)
	return err == nil && d.Kind == k
}
