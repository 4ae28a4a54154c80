// Package camera builds the 4×4 view and projection matrices of a
// right-handed camera with OpenGL clip conventions: the camera looks down
// -Z and visible depth maps to [-1, 1] in normalized device coordinates.
//
// Matrices are row-major matrix.Matrix[T] values meant for column vectors,
// so a world point p projects as matrix.MulVec(proj, matrix.MulVec(view, p)).
//
// Degenerate arguments (an empty frustum, a zero aspect ratio, an up
// vector parallel to the view direction) are preconditions asserted in
// debug builds.
package camera
