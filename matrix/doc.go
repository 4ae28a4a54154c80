// Package matrix provides Matrix[T], a fixed-size R×C numeric grid with
// 1 <= R, C <= MaxDim (8), and the linear-algebra kernels built on it.
//
// The matrix package provides:
//
//   - Storage: row-major values in one backing array; the shape is fixed at
//     construction. Padded (default) and Packed layouts as for vectors; the
//     padded footprint rounds every row up to a power of two.
//   - Construction: New, NewPacked, Zeros, Identity, Broadcast, Generate,
//     FromRows, FromCols; access by (row, col) with Row/Col vector views.
//   - Elementwise suite: Map/Map2/Map3/Fold, Add, Sub, Hadamard, Div, Mod,
//     the scalar forms and compound assignment.
//   - Linear algebra: Mul (R×K · K×C), MulVec, VecMul, Transpose, Trace,
//     Determinant (Laplace expansion, exact for integers) and Inverse
//     (Gauss-Jordan with partial pivoting).
//   - Validators returning the same errors the operations panic with, for
//     callers whose shapes are only known at run time.
//
// Error policy:
//
//   - Shape errors (mismatched dimensions, a non-square Determinant) are
//     programmer errors and panic with an error matching
//     shape.ErrIncompatibleShape before any computation.
//   - Inverse returns ErrSingular when no usable pivot exists and ErrNaNInf
//     for non-finite input; these depend on the data, not on the types.
//
// Matrices are plain values: copying never aliases, no operation allocates
// on the heap, and concurrent reads are safe.
package matrix
