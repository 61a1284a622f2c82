package referenceframe

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/armkin/armkin/spatialmath"
)

func TestNewChain(t *testing.T) {
	c, err := NewChain([]float64{1, 2, 3})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Len(), test.ShouldEqual, 3)
	test.That(t, c.Angles(), test.ShouldResemble, []float64{0, 0, 0})
	test.That(t, c.Reach(), test.ShouldAlmostEqual, 6.)
	for _, l := range c.Limits() {
		test.That(t, l, test.ShouldResemble, Limit{Min: -math.Pi, Max: math.Pi})
	}
	test.That(t, c.Base().AlmostEqual(spatialmath.Identity(), 0), test.ShouldBeTrue)

	j, err := c.Joint(1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, j.Length, test.ShouldEqual, 2.)
	test.That(t, j.Axis, test.ShouldEqual, AxisZ)

	_, err = NewChain([]float64{0})
	test.That(t, err, test.ShouldBeNil)
}

func TestNewChainInvalid(t *testing.T) {
	_, err := NewChain(nil)
	test.That(t, errors.Is(err, ErrInvalidChainConfiguration), test.ShouldBeTrue)

	_, err = NewChain([]float64{1, -1, math.NaN()})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrInvalidChainConfiguration), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "link 1")
	test.That(t, err.Error(), test.ShouldContainSubstring, "link 2")

	_, err = NewChain([]float64{1, math.Inf(1)})
	test.That(t, errors.Is(err, ErrInvalidChainConfiguration), test.ShouldBeTrue)

	_, err = NewChain([]float64{1, 1}, WithJointLimit(2, DefaultLimit()))
	test.That(t, errors.Is(err, ErrIndexOutOfRange), test.ShouldBeTrue)

	_, err = NewChain([]float64{1, 1}, WithJointAxis(-1, AxisX))
	test.That(t, errors.Is(err, ErrIndexOutOfRange), test.ShouldBeTrue)

	_, err = NewChain([]float64{1, 1}, WithJointLimit(0, Limit{Min: 1, Max: -1}))
	test.That(t, errors.Is(err, ErrInvalidChainConfiguration), test.ShouldBeTrue)
}

func TestNewChainLimitExcludesZero(t *testing.T) {
	c, err := NewChain([]float64{1, 1}, WithJointLimit(1, Limit{Min: 0.5, Max: 1}))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, c.Angles(), test.ShouldResemble, []float64{0, 0.5})
}

func TestSetAngle(t *testing.T) {
	c, err := NewChain([]float64{1, 1, 1}, WithJointLimit(1, Limit{Min: -1, Max: 1}))
	test.That(t, err, test.ShouldBeNil)

	test.That(t, c.SetAngle(1, 0.25), test.ShouldBeNil)
	test.That(t, c.Angles()[1], test.ShouldEqual, 0.25)

	// out of range values land on the nearest bound
	test.That(t, c.SetAngle(1, 5), test.ShouldBeNil)
	test.That(t, c.Angles()[1], test.ShouldEqual, 1.)
	test.That(t, c.SetAngle(1, -5), test.ShouldBeNil)
	test.That(t, c.Angles()[1], test.ShouldEqual, -1.)
	test.That(t, c.SetAngle(0, 4), test.ShouldBeNil)
	test.That(t, c.Angles()[0], test.ShouldEqual, math.Pi)

	test.That(t, c.SetAngle(2, math.NaN()), test.ShouldBeNil)
	test.That(t, c.Angles()[2], test.ShouldEqual, 0.)

	err = c.SetAngle(3, 0)
	test.That(t, errors.Is(err, ErrIndexOutOfRange), test.ShouldBeTrue)
	err = c.SetAngle(-1, 0)
	test.That(t, errors.Is(err, ErrIndexOutOfRange), test.ShouldBeTrue)
	_, err = c.Joint(7)
	test.That(t, errors.Is(err, ErrIndexOutOfRange), test.ShouldBeTrue)
}

func TestSetAngles(t *testing.T) {
	c, err := NewChain([]float64{1, 1}, WithJointLimit(0, Limit{Min: -0.5, Max: 0.5}))
	test.That(t, err, test.ShouldBeNil)

	err = c.SetAngles([]float64{1})
	test.That(t, errors.Is(err, ErrIncorrectDoF), test.ShouldBeTrue)

	test.That(t, c.SetAngles([]float64{2, -0.3}), test.ShouldBeNil)
	test.That(t, c.Angles(), test.ShouldResemble, []float64{0.5, -0.3})
}

func TestChainCopies(t *testing.T) {
	c, err := NewChain([]float64{1, 1})
	test.That(t, err, test.ShouldBeNil)

	angles := c.Angles()
	angles[0] = 3
	test.That(t, c.Angles()[0], test.ShouldEqual, 0.)

	j, err := c.Joint(0)
	test.That(t, err, test.ShouldBeNil)
	j.Angle = 2
	test.That(t, c.Angles()[0], test.ShouldEqual, 0.)

	joints := c.Joints()
	joints[1].Length = 10
	test.That(t, c.Reach(), test.ShouldAlmostEqual, 2.)

	pos := c.Positions()
	pos[2] = r3.Vector{X: 100}
	test.That(t, c.EndEffector(), test.ShouldResemble, r3.Vector{X: 2})
}

func TestPositionsCache(t *testing.T) {
	c, err := NewChain([]float64{1, 1})
	test.That(t, err, test.ShouldBeNil)

	pos := c.Positions()
	test.That(t, len(pos), test.ShouldEqual, c.Len()+1)
	test.That(t, pos[0], test.ShouldResemble, r3.Vector{})
	test.That(t, c.EndEffector(), test.ShouldResemble, r3.Vector{X: 2})

	test.That(t, c.SetAngle(0, math.Pi/2), test.ShouldBeNil)
	test.That(t, spatialmath.R3VectorAlmostEqual(c.EndEffector(), r3.Vector{Y: 2}, 1e-12), test.ShouldBeTrue)

	test.That(t, c.SetAngles([]float64{0, math.Pi / 2}), test.ShouldBeNil)
	test.That(t, spatialmath.R3VectorAlmostEqual(c.EndEffector(), r3.Vector{X: 1, Y: 1}, 1e-12), test.ShouldBeTrue)
}

func TestParseAxis(t *testing.T) {
	for s, want := range map[string]Axis{"x": AxisX, "Y": AxisY, "z": AxisZ, "": AxisZ, " x ": AxisX} {
		a, err := ParseAxis(s)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, a, test.ShouldEqual, want)
	}
	_, err := ParseAxis("w")
	test.That(t, errors.Is(err, ErrInvalidChainConfiguration), test.ShouldBeTrue)
	test.That(t, AxisY.String(), test.ShouldEqual, "y")
}
