package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Pose is a position and orientation in space. Poses are derived values: they are produced from transforms and
// never mutated afterwards.
type Pose struct {
	point       r3.Vector
	orientation quat.Number
}

// NewZeroPose returns a pose at the origin with no rotation.
func NewZeroPose() Pose {
	return Pose{orientation: quat.Number{Real: 1}}
}

// NewPose creates a pose from a point and an orientation quaternion. The quaternion is normalized; a zero
// quaternion is treated as no rotation.
func NewPose(point r3.Vector, orientation quat.Number) Pose {
	n := quat.Abs(orientation)
	if n == 0 {
		return Pose{point: point, orientation: quat.Number{Real: 1}}
	}
	return Pose{point: point, orientation: quat.Scale(1/n, orientation)}
}

// NewPoseFromPoint creates a pose at the given point with no rotation.
func NewPoseFromPoint(point r3.Vector) Pose {
	return Pose{point: point, orientation: quat.Number{Real: 1}}
}

// NewPoseFromTransform extracts the pose encoded by a homogeneous transform.
func NewPoseFromTransform(t Transform) Pose {
	return Pose{point: t.Translation(), orientation: t.Orientation()}
}

// Point returns the position of the pose.
func (p Pose) Point() r3.Vector {
	return p.point
}

// Orientation returns the unit quaternion describing the rotation of the pose.
func (p Pose) Orientation() quat.Number {
	return p.orientation
}

// Heading returns the rotation about the Z axis in radians, in (-pi, pi]. For a planar arm this is the absolute
// angle of the link ending at this pose.
func (p Pose) Heading() float64 {
	q := p.orientation
	return math.Atan2(2*(q.Real*q.Kmag+q.Imag*q.Jmag), 1-2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag))
}

func (p Pose) String() string {
	return fmt.Sprintf("{X:%.4f Y:%.4f Z:%.4f heading:%.4f}", p.point.X, p.point.Y, p.point.Z, p.Heading())
}

// PoseAlmostEqual returns whether two poses differ by no more than epsilon in position and orientation.
func PoseAlmostEqual(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.point, b.point, epsilon) && QuaternionAlmostEqual(a.orientation, b.orientation, epsilon)
}

// QuaternionAlmostEqual compares two unit quaternions as rotations, so q and -q are considered equal.
func QuaternionAlmostEqual(a, b quat.Number, epsilon float64) bool {
	return quat.Abs(quat.Sub(a, b)) <= epsilon || quat.Abs(quat.Add(a, b)) <= epsilon
}
