// SPDX-License-Identifier: MIT

package numeric

import "github.com/cockroachdb/errors"

// Promote returns the common element kind of a binary operation between
// scalars of kinds a and b, following the usual arithmetic conversions.
//
// Rules (first match wins):
//  1. Any float operand: float64 if either side is float64, else float32.
//  2. Integers narrower than 32 bits are first promoted to int32.
//  3. Same kind after step 2: that kind.
//  4. Same signedness: the wider kind; at equal width the fixed-width kind
//     (int64 over int) so results do not depend on GOARCH.
//  5. Mixed signedness: the unsigned kind when it is at least as wide as the
//     signed kind, otherwise the signed kind (it can represent every value).
//
// Errors:
//   - ErrInvalidKind if either operand is not a valid arithmetic kind.
//
// Complexity: O(1).
func Promote(a, b Kind) (Kind, error) {
	if !a.Valid() || !b.Valid() {
		return Invalid, errors.Wrapf(ErrInvalidKind, "promote(%s, %s)", a, b)
	}
	if a.IsFloat() || b.IsFloat() {
		if a == Float64 || b == Float64 {
			return Float64, nil
		}
		return Float32, nil
	}

	a, b = integerPromote(a), integerPromote(b)
	if a == b {
		return a, nil
	}
	if a.IsSigned() == b.IsSigned() {
		return wider(a, b), nil
	}

	s, u := a, b
	if u.IsSigned() {
		s, u = b, a
	}
	if u.Bits() >= s.Bits() {
		return u, nil
	}
	return s, nil
}

// PromoteAll chains Promote pairwise from left to right:
// PromoteAll(a, b, c) == Promote(Promote(a, b), c).
func PromoteAll(kinds ...Kind) (Kind, error) {
	if len(kinds) == 0 {
		return Invalid, ErrNoOperands
	}
	acc := kinds[0]
	if !acc.Valid() {
		return Invalid, errors.Wrapf(ErrInvalidKind, "promote(%s)", acc)
	}
	var err error
	for _, k := range kinds[1:] {
		if acc, err = Promote(acc, k); err != nil {
			return Invalid, err
		}
	}
	return acc, nil
}

// CommonKind is Promote over the static element types T and U.
// Both kinds are always valid, so the error is discarded.
func CommonKind[T, U Real]() Kind {
	k, _ := Promote(KindOf[T](), KindOf[U]())
	return k
}

// integerPromote widens sub-32-bit integers to int32.
func integerPromote(k Kind) Kind {
	if k.Bits() < 32 {
		return Int32
	}
	return k
}

// wider picks the wider of two kinds of equal signedness.
func wider(a, b Kind) Kind {
	switch {
	case a.Bits() > b.Bits():
		return a
	case b.Bits() > a.Bits():
		return b
	case a.platform():
		return b
	default:
		return a
	}
}
