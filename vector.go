package physics2d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ==================== VECTOR MATH ====================

// Vec2 is the module's 2D vector type. Core arithmetic — Add, Sub, Dot,
// scalar Mul — is mgl64's own: mathgl is a general linear-algebra package,
// not an OpenGL-specific one, and mgl64.Vec2 needs no adapting to serve as
// a plain 2D vector here. Operations mathgl has no 2D-specific notion of
// (the scalar cross product, the perpendicular rotation, contact-geometry
// distance queries) are free functions wrapping it below, the same layering
// used elsewhere in the ecosystem to add collision-specific vector ops on
// top of mgl64.Vec3.
type Vec2 = mgl64.Vec2

// NewVec2 builds a Vec2 from its components.
func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Scale returns v scaled by scalar.
func Scale(v Vec2, scalar float64) Vec2 {
	return v.Mul(scalar)
}

// Div returns v with both components divided by scalar.
func Div(v Vec2, scalar float64) Vec2 {
	return Vec2{v.X() / scalar, v.Y() / scalar}
}

// Neg returns v with both components negated.
func Neg(v Vec2) Vec2 {
	return v.Mul(-1)
}

// Cross returns the 2D (scalar) cross product. In two dimensions the cross
// product of two vectors has no direction, only a signed magnitude.
func Cross(a, b Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// CrossScalar rotates s*v by 90 degrees; the 2D analogue of the 3D cross
// product between a scalar (angular) quantity and a vector.
func CrossScalar(s float64, v Vec2) Vec2 {
	return Vec2{-s * v.Y(), s * v.X()}
}

// Perp returns v rotated 90 degrees counter-clockwise: (-y, x).
func Perp(v Vec2) Vec2 {
	return Vec2{-v.Y(), v.X()}
}

// LengthSquared returns v's squared length, avoiding the square root.
func LengthSquared(v Vec2) float64 {
	return v.Dot(v)
}

// Length returns v's length.
func Length(v Vec2) float64 {
	return v.Len()
}

// Normalise returns a unit vector in the direction of v, or the zero vector
// when v's magnitude is at or below normaliseEpsilon. mgl64's own
// Normalize is not used here since it has no such guard against a
// near-zero-length input; the manual length-check-then-Mul is the same
// defensive pattern used elsewhere before normalising an mgl64 vector.
func Normalise(v Vec2) Vec2 {
	length := Length(v)
	if length <= normaliseEpsilon {
		return Vec2{}
	}
	return v.Mul(1.0 / length)
}

// DistanceSquared returns the squared distance between a and b.
func DistanceSquared(a, b Vec2) float64 {
	return LengthSquared(a.Sub(b))
}

// Distance returns the distance between a and b.
func Distance(a, b Vec2) float64 {
	return Length(a.Sub(b))
}

// Fixed numeric tolerances, not configurable at runtime: they define what
// "equal enough" and "zero enough" mean throughout the pipeline.
const (
	normaliseEpsilon        = 1e-6
	closelyEqualTolerance   = 1e-3
	contactMergeToleranceSq = 1e-4
	positionalSlop          = 0.01
)

// closelyEqual reports whether a and b differ by less than
// closelyEqualTolerance, used for microsettling and contact-point
// deduplication.
func closelyEqual(a, b float64) bool {
	return math.Abs(a-b) < closelyEqualTolerance
}

// vecCloselyEqual reports whether a and b are closely equal component-wise.
func vecCloselyEqual(a, b Vec2) bool {
	return closelyEqual(a.X(), b.X()) && closelyEqual(a.Y(), b.Y())
}

// pointSegmentDistanceSquared returns the squared distance from p to the
// closest point on segment ab, and that closest point itself. The
// projection parameter is clamped to [0,1]; a degenerate (zero-length)
// segment collapses to the distance from p to a.
func pointSegmentDistanceSquared(a, b, p Vec2) (float64, Vec2) {
	ab := b.Sub(a)
	abLengthSquared := LengthSquared(ab)
	if abLengthSquared <= 0 {
		return DistanceSquared(p, a), a
	}

	t := p.Sub(a).Dot(ab) / abLengthSquared

	var contact Vec2
	switch {
	case t <= 0:
		contact = a
	case t >= 1:
		contact = b
	default:
		contact = a.Add(Scale(ab, t))
	}

	return DistanceSquared(p, contact), contact
}
