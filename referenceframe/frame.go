// Package referenceframe defines the joints and serial chains of an articulated arm and does the math of
// walking them from base to tip. Angles are in radians; lengths are in whatever unit the caller picks.
package referenceframe

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/r3"

	"github.com/armkin/armkin/spatialmath"
	"github.com/armkin/armkin/utils"
)

// Limit represents the limits of motion for a joint.
type Limit struct {
	Min float64
	Max float64
}

// DefaultLimit is the full revolution [-pi, pi] every joint gets unless told otherwise.
func DefaultLimit() Limit {
	return Limit{Min: -math.Pi, Max: math.Pi}
}

// Clamp returns the value in [Min, Max] closest to v.
func (l Limit) Clamp(v float64) float64 {
	return utils.Clamp(v, l.Min, l.Max)
}

// Fit returns v if it lies within the limit. Otherwise it returns v-2pi or v+2pi when one of them does, and the
// nearest bound when neither does.
func (l Limit) Fit(v float64) float64 {
	if l.Contains(v) {
		return v
	}
	for _, alt := range []float64{v - 2*math.Pi, v + 2*math.Pi} {
		if l.Contains(alt) {
			return alt
		}
	}
	return l.Clamp(v)
}

// Contains returns whether v lies within the limit, inclusive of its bounds.
func (l Limit) Contains(v float64) bool {
	return v >= l.Min && v <= l.Max
}

func (l Limit) valid() bool {
	return !math.IsNaN(l.Min) && !math.IsNaN(l.Max) && l.Min <= l.Max
}

// Axis names the local axis a revolute joint turns about.
type Axis int

// The zero Axis is Z, which makes a chain planar in its base's XY plane. X and Y turn a chain into a general
// spatial arm.
const (
	AxisZ Axis = iota
	AxisX
	AxisY
)

// ParseAxis converts "x", "y" or "z" (any case) to an Axis. An empty string is Z.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "z", "":
		return AxisZ, nil
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	default:
		return AxisZ, NewInvalidChainConfigurationError(fmt.Sprintf("unknown joint axis %q", s))
	}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// Vector returns the unit vector of the axis in the joint's local frame.
func (a Axis) Vector() r3.Vector {
	switch a {
	case AxisX:
		return r3.Vector{X: 1}
	case AxisY:
		return r3.Vector{Y: 1}
	default:
		return r3.Vector{Z: 1}
	}
}

// Rotation returns the rotation of angle radians about the axis.
func (a Axis) Rotation(angle float64) spatialmath.Transform {
	switch a {
	case AxisX:
		return spatialmath.RotateX(angle)
	case AxisY:
		return spatialmath.RotateY(angle)
	default:
		return spatialmath.RotateZ(angle)
	}
}

// Joint is a revolute joint followed by the rigid link it drives. Joints handed out by a Chain are copies;
// changing one does not change the chain.
type Joint struct {
	Name   string
	Length float64
	Angle  float64
	Limit  Limit
	Axis   Axis
}

// Transform is the pose of the end of this joint's link in the frame of the previous link's end: rotate by the
// joint angle, then move Length along the rotated X axis.
func (j Joint) Transform() spatialmath.Transform {
	return spatialmath.Compose(j.Axis.Rotation(j.Angle), spatialmath.Translate(j.Length, 0, 0))
}
