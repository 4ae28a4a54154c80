// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/lvlinalg/internal/check"

// Swizzle returns the vector (v[idx[0]], v[idx[1]], …). Indices may repeat and
// the result length is len(idx), which must be within [1, MaxLen]:
//
//	New(10, 20, 30, 40).Swizzle(3, 0) // (40, 10)
//	New(1, 2, 3).Swizzle(2, 1, 0)     // (3, 2, 1)
//
// The result keeps v's layout.
func (v Vector[T]) Swizzle(idx ...int) Vector[T] {
	mustLen("vector.Swizzle", len(idx))
	out := empty[T](len(idx), v.layout)
	for k, i := range idx {
		check.Index(i, v.Len())
		out.e[k] = v.e[i]
	}
	return out
}
