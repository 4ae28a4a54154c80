// SPDX-License-Identifier: MIT

package shape

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// rule resolves one (left, right) shape pair once the element kinds have
// been promoted.
type rule func(a, b Descriptor, elem numeric.Kind) (Descriptor, error)

// promotions is the elementwise rule table, indexed [left.Kind][right.Kind].
// Every cell is populated; undefined pairs map to noCommon explicitly.
var promotions = [kindCount][kindCount]rule{
	Scalar: {
		Scalar:     toScalar,
		Complex:    toComplex,
		Quaternion: toQuaternion,
		Vector:     toVector,
		Matrix:     toMatrix,
	},
	Complex: {
		Scalar:     toComplex,
		Complex:    toComplex,
		Quaternion: toQuaternion,
		Vector:     noCommon,
		Matrix:     noCommon,
	},
	Quaternion: {
		Scalar:     toQuaternion,
		Complex:    toQuaternion,
		Quaternion: toQuaternion,
		Vector:     noCommon,
		Matrix:     noCommon,
	},
	Vector: {
		Scalar:     toVector,
		Complex:    noCommon,
		Quaternion: noCommon,
		Vector:     toVector,
		Matrix:     noCommon,
	},
	Matrix: {
		Scalar:     toMatrix,
		Complex:    noCommon,
		Quaternion: noCommon,
		Vector:     noCommon,
		Matrix:     toMatrix,
	},
}

// Promote returns the result Descriptor of an elementwise operation a∘b.
//
// Rules:
//   - scalar∘scalar → scalar of the promoted element kind.
//   - complex∘{scalar,complex} → complex; quaternion∘{scalar,complex,quaternion}
//     → quaternion (all symmetric).
//   - vector∘scalar → vector of the same length; vector∘vector requires
//     equal lengths.
//   - matrix∘scalar → matrix; matrix∘matrix requires equal dimensions.
//   - vector∘matrix, matrix∘vector and any vector/matrix paired with a
//     complex or quaternion have no elementwise promotion (see Product for
//     the linear-algebra products).
//
// The result layout is Combine(a.Layout, b.Layout); scalars are neutral.
//
// Errors:
//   - ErrInvalidDescriptor for malformed operands.
//   - ErrNoCommonType for pairs without a rule (and invalid element kinds).
//   - ErrIncompatibleShape for same-kind operands of different size.
//
// Complexity: O(1).
func Promote(a, b Descriptor) (Descriptor, error) {
	if err := validatePair(a, b); err != nil {
		return Descriptor{}, err
	}
	elem, err := numeric.Promote(a.Elem, b.Elem)
	if err != nil {
		return Descriptor{}, errors.Mark(err, ErrNoCommonType)
	}
	return promotions[a.Kind][b.Kind](a, b, elem)
}

// PromoteAll chains Promote pairwise from left to right.
func PromoteAll(ds ...Descriptor) (Descriptor, error) {
	if len(ds) == 0 {
		return Descriptor{}, errors.Wrap(ErrInvalidDescriptor, "no operands")
	}
	acc := ds[0]
	if err := acc.Validate(); err != nil {
		return Descriptor{}, err
	}
	var err error
	for _, d := range ds[1:] {
		if acc, err = Promote(acc, d); err != nil {
			return Descriptor{}, err
		}
	}
	return acc, nil
}

// Product returns the result Descriptor of the linear-algebra product a×b.
//
// Rules:
//   - matrix(r×k) × matrix(k×c) → matrix(r×c).
//   - matrix(r×c) × vector(c) → vector(r).
//   - vector(r) × matrix(r×c) → vector(c).
//   - a scalar on either side is the elementwise scaling (Promote).
//   - every other pair has no product (ErrNoCommonType).
//
// Errors: as Promote, plus ErrIncompatibleShape for inner-dimension mismatch.
func Product(a, b Descriptor) (Descriptor, error) {
	if err := validatePair(a, b); err != nil {
		return Descriptor{}, err
	}
	if a.Kind == Scalar || b.Kind == Scalar {
		return Promote(a, b)
	}
	elem, err := numeric.Promote(a.Elem, b.Elem)
	if err != nil {
		return Descriptor{}, errors.Mark(err, ErrNoCommonType)
	}
	l := Combine(a.Layout, b.Layout)

	switch {
	case a.Kind == Matrix && b.Kind == Matrix:
		if a.Cols != b.Rows {
			return Descriptor{}, Mismatch("product", a, b)
		}
		return MatrixOf(elem, a.Rows, b.Cols, l), nil
	case a.Kind == Matrix && b.Kind == Vector:
		if a.Cols != b.Len {
			return Descriptor{}, Mismatch("product", a, b)
		}
		return VectorOf(elem, a.Rows, l), nil
	case a.Kind == Vector && b.Kind == Matrix:
		if a.Len != b.Rows {
			return Descriptor{}, Mismatch("product", a, b)
		}
		return VectorOf(elem, b.Cols, l), nil
	default:
		return noCommon(a, b, elem)
	}
}

func validatePair(a, b Descriptor) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return b.Validate()
}

func toScalar(_, _ Descriptor, elem numeric.Kind) (Descriptor, error) {
	return ScalarOf(elem), nil
}

func toComplex(a, b Descriptor, elem numeric.Kind) (Descriptor, error) {
	return ComplexOf(elem, Combine(a.Layout, b.Layout)), nil
}

func toQuaternion(a, b Descriptor, elem numeric.Kind) (Descriptor, error) {
	return QuaternionOf(elem, Combine(a.Layout, b.Layout)), nil
}

func toVector(a, b Descriptor, elem numeric.Kind) (Descriptor, error) {
	if a.Kind == Vector && b.Kind == Vector && a.Len != b.Len {
		return Descriptor{}, Mismatch("promote", a, b)
	}
	n := a.Len
	if a.Kind == Scalar {
		n = b.Len
	}
	return VectorOf(elem, n, Combine(a.Layout, b.Layout)), nil
}

func toMatrix(a, b Descriptor, elem numeric.Kind) (Descriptor, error) {
	if a.Kind == Matrix && b.Kind == Matrix && (a.Rows != b.Rows || a.Cols != b.Cols) {
		return Descriptor{}, Mismatch("promote", a, b)
	}
	m := a
	if a.Kind == Scalar {
		m = b
	}
	return MatrixOf(elem, m.Rows, m.Cols, Combine(a.Layout, b.Layout)), nil
}

func noCommon(a, b Descriptor, _ numeric.Kind) (Descriptor, error) {
	return Descriptor{}, errors.Wrapf(ErrNoCommonType, "%s and %s", a, b)
}
