// Package shape is the type-promotion algebra of lvlinalg.
//
// Every numeric value belongs to one of five shapes: scalar, complex,
// quaternion, vector or matrix. A Descriptor records the shape together with
// the element Kind, the length (vectors) or dimensions (matrices) and the
// storage Layout. Promote decides the result Descriptor of an elementwise
// operation between two operands; Product decides the result of a
// linear-algebra product (matrix×matrix, matrix×vector, vector×matrix).
//
// The rule tables are total: every pair of shapes is either mapped to a
// result or explicitly rejected with ErrNoCommonType. Mismatched lengths and
// dimensions are rejected with ErrIncompatibleShape; nothing is broadcast
// across mismatched sizes and nothing is coerced silently.
//
//	a := shape.VectorOf(numeric.Int, 3, shape.Packed)
//	b := shape.VectorOf(numeric.Float64, 3, shape.Padded)
//	r, _ := shape.Promote(a, b) // vector<float64,3>
//
// The vector, matrix, cplx and quat packages consult these tables at their
// call boundaries and panic with the returned error, so a shape error always
// fires before any arithmetic runs.
package shape
