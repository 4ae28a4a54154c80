// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvlinalg/vector"
)

var (
	sinkF float64
	sinkV vector.Vector[float64]
)

func BenchmarkAdd4(b *testing.B) {
	x, y := vector.New(1.0, 2, 3, 4), vector.New(4.0, 3, 2, 1)
	for i := 0; i < b.N; i++ {
		sinkV = vector.Add(x, y)
	}
}

func BenchmarkDot3(b *testing.B) {
	x, y := vector.New(1.0, 2, 3), vector.New(4.0, 5, 6)
	for i := 0; i < b.N; i++ {
		sinkF = vector.Dot(x, y)
	}
}

func BenchmarkNorm3(b *testing.B) {
	x := vector.New(1.0, 2, 3)
	for i := 0; i < b.N; i++ {
		sinkF = vector.Norm(x)
	}
}

func BenchmarkFastNorm3(b *testing.B) {
	x := vector.New(1.0, 2, 3)
	for i := 0; i < b.N; i++ {
		sinkF = vector.FastNorm(x)
	}
}

func BenchmarkNorm3_Overflow(b *testing.B) {
	x := vector.New(1e200, 1e200, 1e200)
	for i := 0; i < b.N; i++ {
		sinkF = vector.Norm(x)
	}
}
