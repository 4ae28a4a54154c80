// Package geom provides the bounding volumes and primitive intersection
// tests used around the vector types: axis-aligned boxes, spheres and line
// segments in 1 to 4 dimensions over float element types.
//
// All arguments of one test must share a dimension; a mismatch panics with
// shape.ErrIncompatibleShape like every vector operation. Boundaries are
// closed: touching volumes intersect.
//
// ToR3 and FromR3 convert 3-vectors to and from github.com/golang/geo/r3
// for code that already uses the s2 geometry stack.
package geom
