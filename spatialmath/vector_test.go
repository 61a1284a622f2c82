package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestSignedAngleAbout(t *testing.T) {
	z := r3.Vector{Z: 1}
	test.That(t, SignedAngleAbout(r3.Vector{X: 1}, r3.Vector{Y: 1}, z), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, SignedAngleAbout(r3.Vector{Y: 1}, r3.Vector{X: 1}, z), test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, SignedAngleAbout(r3.Vector{X: 2}, r3.Vector{X: 5}, z), test.ShouldAlmostEqual, 0.)
	test.That(t, math.Abs(SignedAngleAbout(r3.Vector{X: 1}, r3.Vector{X: -1}, z)), test.ShouldAlmostEqual, math.Pi)

	// out-of-plane components are ignored
	test.That(t, SignedAngleAbout(r3.Vector{X: 1, Z: 4}, r3.Vector{Y: 1, Z: -3}, z), test.ShouldAlmostEqual, math.Pi/2)

	// a flipped axis flips the sign
	test.That(t, SignedAngleAbout(r3.Vector{X: 1}, r3.Vector{Y: 1}, z.Mul(-1)), test.ShouldAlmostEqual, -math.Pi/2)
}

func TestSignedAngleAboutDegenerate(t *testing.T) {
	z := r3.Vector{Z: 1}
	angle := SignedAngleAbout(r3.Vector{}, r3.Vector{X: 1}, z)
	test.That(t, math.IsNaN(angle), test.ShouldBeFalse)
	test.That(t, angle, test.ShouldEqual, 0.)

	// parallel to the axis has no in-plane direction
	test.That(t, SignedAngleAbout(r3.Vector{Z: 3}, r3.Vector{X: 1}, z), test.ShouldEqual, 0.)
	test.That(t, SignedAngleAbout(r3.Vector{X: 1}, r3.Vector{Y: 1}, r3.Vector{}), test.ShouldEqual, 0.)
}

func TestR3VectorAlmostEqual(t *testing.T) {
	test.That(t, R3VectorAlmostEqual(r3.Vector{X: 1}, r3.Vector{X: 1 + 1e-10}, 1e-9), test.ShouldBeTrue)
	test.That(t, R3VectorAlmostEqual(r3.Vector{X: 1}, r3.Vector{Y: 1}, 1e-9), test.ShouldBeFalse)
}
