// SPDX-License-Identifier: MIT

package numeric

import "strconv"

// Format renders x in its shortest round-trip form: integers in base 10,
// floats with strconv's 'g' verb at their own bit size (so float32(0.1)
// prints as "0.1", not "0.10000000149011612").
func Format[T Real](x T) string {
	k := KindOf[T]()
	switch {
	case k.IsFloat():
		return strconv.FormatFloat(float64(x), 'g', -1, k.Bits())
	case k.IsSigned():
		return strconv.FormatInt(int64(x), 10)
	default:
		return strconv.FormatUint(uint64(x), 10)
	}
}
