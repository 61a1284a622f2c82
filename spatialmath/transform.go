// Package spatialmath defines spatial mathematical operations: homogeneous transforms, poses, and the vector
// helpers the kinematics solvers are built from.
package spatialmath

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is an immutable 4x4 homogeneous transform. Rows and columns are addressed row-major through At, the
// bottom row is always [0 0 0 1], and every operation returns a new value rather than mutating its receiver.
// The zero Transform is the identity, and every constructor stores an exact identity that way, so == holds between
// exact identities. Anything computed should be compared with AlmostEqual.
type Transform struct {
	m mgl64.Mat4
}

func newTransform(m mgl64.Mat4) Transform {
	if m == mgl64.Ident4() {
		return Transform{}
	}
	return Transform{m}
}

// Identity returns the transform that leaves every point where it is.
func Identity() Transform {
	return Transform{}
}

// Translate returns a pure translation by (tx, ty, tz).
func Translate(tx, ty, tz float64) Transform {
	return newTransform(mgl64.Translate3D(tx, ty, tz))
}

// RotateX returns a rotation of angle radians about the X axis.
func RotateX(angle float64) Transform {
	return newTransform(mgl64.HomogRotate3DX(angle))
}

// RotateY returns a rotation of angle radians about the Y axis.
func RotateY(angle float64) Transform {
	return newTransform(mgl64.HomogRotate3DY(angle))
}

// RotateZ returns a rotation of angle radians about the Z axis.
func RotateZ(angle float64) Transform {
	return newTransform(mgl64.HomogRotate3DZ(angle))
}

// Compose returns a ∘ b: the transform that applies b first and then a. Walking a chain from base to tip is
// therefore Compose(parentWorld, childLocal).
func Compose(a, b Transform) Transform {
	return newTransform(a.mat().Mul4(b.mat()))
}

// Mul is the method form of Compose; t.Mul(b) applies b first and then t.
func (t Transform) Mul(b Transform) Transform {
	return Compose(t, b)
}

// the all-zero matrix is never affine, so it stands in for the identity.
func (t Transform) mat() mgl64.Mat4 {
	if t.m == (mgl64.Mat4{}) {
		return mgl64.Ident4()
	}
	return t.m
}

// At returns the element at the given row and column.
func (t Transform) At(row, col int) float64 {
	return t.mat().At(row, col)
}

// Translation returns the translational part of the transform, which is also where it sends the origin.
func (t Transform) Translation() r3.Vector {
	v := t.mat().Col(3)
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// Apply transforms a point.
func (t Transform) Apply(p r3.Vector) r3.Vector {
	v := t.mat().Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// ApplyDirection rotates a direction vector, ignoring translation.
func (t Transform) ApplyDirection(d r3.Vector) r3.Vector {
	v := t.mat().Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// Orientation returns the rotational part of the transform as a unit quaternion.
func (t Transform) Orientation() quat.Number {
	q := mgl64.Mat4ToQuat(t.mat()).Normalize()
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// AlmostEqual returns whether every element of the two transforms differs by no more than epsilon.
func (t Transform) AlmostEqual(other Transform, epsilon float64) bool {
	return t.mat().ApproxFuncEqual(other.mat(), func(a, b float64) bool {
		return math.Abs(a-b) <= epsilon
	})
}

// String prints the matrix one row per line.
func (t Transform) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		fmt.Fprintf(&sb, "[%.6f %.6f %.6f %.6f]", t.At(row, 0), t.At(row, 1), t.At(row, 2), t.At(row, 3))
		if row < 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
