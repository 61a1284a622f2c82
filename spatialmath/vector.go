package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// degenerateLength is the length below which a vector is treated as having no direction.
const degenerateLength = 1e-9

// R3VectorAlmostEqual compares two r3.Vectors component-wise.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon && math.Abs(a.Z-b.Z) <= epsilon
}

// SignedAngleAbout returns the angle in (-pi, pi] that rotates from onto to about axis, measured after projecting
// both vectors onto the plane normal to axis. Positive angles follow the right-hand rule. If the axis or either
// projection is too short to have a direction the result is zero rather than NaN.
func SignedAngleAbout(from, to, axis r3.Vector) float64 {
	if axis.Norm() < degenerateLength {
		return 0
	}
	axis = axis.Normalize()
	a := from.Sub(axis.Mul(from.Dot(axis)))
	b := to.Sub(axis.Mul(to.Dot(axis)))
	if a.Norm() < degenerateLength || b.Norm() < degenerateLength {
		return 0
	}
	return math.Atan2(axis.Dot(a.Cross(b)), a.Dot(b))
}
