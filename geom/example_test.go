// SPDX-License-Identifier: MIT

package geom_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/geom"
	"github.com/katalvlaran/lvlinalg/vector"
)

func ExampleSegment_IntersectsAABB() {
	box := geom.NewAABB(vector.New(1.0, 1, 1), vector.New(2.0, 2, 2))
	ray := geom.Segment[float64]{A: vector.New(0.0, 0, 0), B: vector.New(3.0, 3, 3)}
	miss := geom.Segment[float64]{A: vector.New(0.0, 3, 0), B: vector.New(3.0, 3, 3)}
	fmt.Println(ray.IntersectsAABB(box), miss.IntersectsAABB(box))
	// Output:
	// true false
}
