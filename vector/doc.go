// Package vector provides Vector[T], the fixed-length numeric aggregate at
// the centre of lvlinalg, together with the map/fold engine every
// arithmetic, geometric and norm operation is built from.
//
// What's inside:
//
//   - Storage: a Vector holds up to MaxLen elements in one backing array.
//     Its logical length (1..MaxLen) is fixed at construction and never
//     changes. Slots beyond the length stay zero and never take part in
//     equality, hashing, iteration or reductions.
//   - Layout: Padded (default) rounds the physical footprint up to a power
//     of two and aligns to the SIMD width; Packed stores exactly Len slots.
//     A result is packed only when every vector operand was packed.
//   - Named views: X Y Z W, R G B A and the grouped XY XYZ RG RGB views all
//     index the same backing slots; a write through one is visible through
//     every other name for that slot.
//   - Construction: New, NewPacked, Broadcast, Generate, GenerateIndexed,
//     Compose (grouped vector + scalar parts), TypeCast, Iota, Unit.
//   - map/fold: Map, Map2 … Map6, MapN, Fold/LeftFold/RightFold.
//   - Operators: Add Sub Mul Div Mod, scalar forms, Neg/Pos and compound
//     *Assign methods.
//   - Norms: Dot, Cross, NormSquared, Norm (overflow-safe), FastNorm, PNorm,
//     Distance, Normalize and their Fast variants.
//   - Equality (exact, layout-blind), Hash, String "(v0, v1, …)", binary
//     encoding of the physical footprint.
//
// Shape errors:
//
// Combining vectors of different length is a programmer error. Every
// operation panics at the call boundary, before computing anything, with an
// error matching shape.ErrIncompatibleShape. Code with dynamic lengths can
// pre-check with Compatible, which returns that error instead.
//
// Mixed element types never coerce silently: use Promote[R] to convert both
// operands to their common element type first,
//
//	a := vector.New(1, 2, 3)                  // Vector[int]
//	b := vector.New(0.5, 0.5, 0.5)            // Vector[float64]
//	sum := vector.Add(vector.Promote[float64](a, b))
//	fmt.Println(sum)                          // (1.5, 2.5, 3.5)
//
// and Promote panics with shape.ErrNoCommonType when R is not the common
// type of the operands.
//
// Bounds:
//
// At, Set, the named accessors, Swizzle and Unit check their index in
// default builds and panic with an assertion failure. With
// -tags lvlinalg_release the checks compile away.
//
// All values are plain copyable structs. Concurrent reads are safe;
// concurrent writes to one Vector need external synchronization.
package vector
