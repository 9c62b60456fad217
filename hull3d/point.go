package hull3d

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Point is a location in 3D space. It is an alias for mgl64.Vec3, so the
// full vector arithmetic of the mathgl package (Add, Sub, Mul, Dot, Cross,
// Len, Normalize) is available on every point.
type Point = mgl64.Vec3

// epsilon is the half-width of the zero band used by the orientation and
// visibility predicates: machine epsilon for float64.
const epsilon = 0x1p-52

// Sign4 classifies the orientation of the tetrahedron abcd. It returns the
// sign of the determinant of the 4x4 matrix whose rows are the four points
// extended with a unit coordinate: -1 when the determinant is below
// -epsilon, 0 within the band, +1 above.
//
// A result of 0 means the four points are affinely dependent (coplanar).
func Sign4(a, b, c, d Point) int {
	// Mat4 is column-major, but det(M) = det(M^T), so filling the literal
	// row-wise is equivalent.
	det := mgl64.Mat4{
		a[0], a[1], a[2], 1,
		b[0], b[1], b[2], 1,
		c[0], c[1], c[2], 1,
		d[0], d[1], d[2], 1,
	}.Det()

	if det < -epsilon {
		return -1
	}
	if det > epsilon {
		return 1
	}

	return 0
}

// visibleFromPoint reports whether p lies strictly above the plane spanned
// by the triangle (v1, v2, v3), where the triangle is wound counter-
// clockwise as seen from its outside. Equivalent in sign to Sign4 with a
// negative threshold, but uses the direct dot-product form: one cross and
// one dot instead of a 4x4 determinant per test.
func visibleFromPoint(v1, v2, v3, p Point) bool {
	normal := v2.Sub(v1).Cross(v3.Sub(v1))
	return p.Sub(v1).Dot(normal) > epsilon
}

// visible reports whether p lies strictly above the supporting plane of f,
// i.e. whether p and f are in conflict.
func visible(f *Face, p Point) bool {
	he := f.Outer
	return visibleFromPoint(
		he.From.Position,
		he.Next.From.Position,
		he.Next.Next.From.Position,
		p,
	)
}
