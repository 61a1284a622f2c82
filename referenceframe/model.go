package referenceframe

import (
	"math"

	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats"

	"github.com/armkin/armkin/spatialmath"
)

// Chain is a serial, non-branching arm: an ordered list of joints hanging off a fixed base. A Chain owns its
// joints and is meant to be driven by one caller at a time; it does no locking.
type Chain struct {
	name   string
	base   spatialmath.Transform
	joints []Joint

	// world positions of the base and each link end, nil when an angle has changed since the last walk.
	positions []r3.Vector
}

// ChainOption configures a chain while it is being built.
type ChainOption func(*Chain) error

// WithName sets the name of the chain.
func WithName(name string) ChainOption {
	return func(c *Chain) error {
		c.name = name
		return nil
	}
}

// WithBase places the base of the chain. The default base is the identity at the origin.
func WithBase(base spatialmath.Transform) ChainOption {
	return func(c *Chain) error {
		c.base = base
		return nil
	}
}

// WithJointLimit overrides the default [-pi, pi] limit of one joint.
func WithJointLimit(index int, limit Limit) ChainOption {
	return func(c *Chain) error {
		if err := c.checkIndex(index); err != nil {
			return err
		}
		if !limit.valid() {
			return NewInvalidLimitError(index, limit)
		}
		c.joints[index].Limit = limit
		return nil
	}
}

// WithJointAxis makes one joint turn about axis instead of Z.
func WithJointAxis(index int, axis Axis) ChainOption {
	return func(c *Chain) error {
		if err := c.checkIndex(index); err != nil {
			return err
		}
		c.joints[index].Axis = axis
		return nil
	}
}

// WithJointName names one joint.
func WithJointName(index int, name string) ChainOption {
	return func(c *Chain) error {
		if err := c.checkIndex(index); err != nil {
			return err
		}
		c.joints[index].Name = name
		return nil
	}
}

// NewChain builds a chain with one joint per link length, in base-to-tip order. Every angle starts at 0 (or the
// nearest bound, if a limit excludes 0). Every invalid length and option is reported, not just the first.
func NewChain(linkLengths []float64, opts ...ChainOption) (*Chain, error) {
	if len(linkLengths) == 0 {
		return nil, NewInvalidChainConfigurationError("chain must have at least one joint")
	}

	var errAll error
	joints := make([]Joint, len(linkLengths))
	for i, length := range linkLengths {
		if length < 0 || math.IsNaN(length) || math.IsInf(length, 0) {
			multierr.AppendInto(&errAll, NewInvalidLinkLengthError(i, length))
		}
		joints[i] = Joint{Length: length, Limit: DefaultLimit()}
	}
	if errAll != nil {
		return nil, errAll
	}

	c := &Chain{base: spatialmath.Identity(), joints: joints}
	for _, opt := range opts {
		multierr.AppendInto(&errAll, opt(c))
	}
	if errAll != nil {
		return nil, errAll
	}
	for i := range c.joints {
		c.joints[i].Angle = c.joints[i].Limit.Clamp(0)
	}
	return c, nil
}

func (c *Chain) checkIndex(index int) error {
	if index < 0 || index >= len(c.joints) {
		return NewIndexOutOfRangeError(index, len(c.joints))
	}
	return nil
}

// Name returns the name of the chain.
func (c *Chain) Name() string {
	return c.name
}

// Base returns the transform of the chain's base in the world.
func (c *Chain) Base() spatialmath.Transform {
	return c.base
}

// Len returns the number of joints.
func (c *Chain) Len() int {
	return len(c.joints)
}

// Joint returns a copy of the joint at index.
func (c *Chain) Joint(index int) (Joint, error) {
	if err := c.checkIndex(index); err != nil {
		return Joint{}, err
	}
	return c.joints[index], nil
}

// Joints returns a copy of every joint, base to tip.
func (c *Chain) Joints() []Joint {
	joints := make([]Joint, len(c.joints))
	copy(joints, c.joints)
	return joints
}

// Limits returns the limit of each joint, base to tip.
func (c *Chain) Limits() []Limit {
	limits := make([]Limit, 0, len(c.joints))
	for _, j := range c.joints {
		limits = append(limits, j.Limit)
	}
	return limits
}

// Reach returns the sum of the link lengths, the farthest the tip can get from the first joint.
func (c *Chain) Reach() float64 {
	lengths := make([]float64, 0, len(c.joints))
	for _, j := range c.joints {
		lengths = append(lengths, j.Length)
	}
	return floats.Sum(lengths)
}

// SetAngle sets the angle of one joint. Angles outside the joint's limit are clamped to the nearest bound rather
// than rejected; callers that need rejection must check Limit.Contains themselves. A NaN angle is ignored.
func (c *Chain) SetAngle(index int, angle float64) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	if math.IsNaN(angle) {
		return nil
	}
	c.joints[index].Angle = c.joints[index].Limit.Clamp(angle)
	c.positions = nil
	return nil
}

// SetAngles sets every joint angle at once, clamping each as SetAngle does.
func (c *Chain) SetAngles(angles []float64) error {
	if len(angles) != len(c.joints) {
		return NewIncorrectDoFError(len(angles), len(c.joints))
	}
	for i, angle := range angles {
		if math.IsNaN(angle) {
			continue
		}
		c.joints[i].Angle = c.joints[i].Limit.Clamp(angle)
	}
	c.positions = nil
	return nil
}

// Angles returns the current angle of each joint, base to tip.
func (c *Chain) Angles() []float64 {
	angles := make([]float64, 0, len(c.joints))
	for _, j := range c.joints {
		angles = append(angles, j.Angle)
	}
	return angles
}

// Positions returns the world position of the base followed by the end of every link, so it always has
// Len()+1 entries. The result is cached until an angle changes.
func (c *Chain) Positions() []r3.Vector {
	if c.positions == nil {
		frames := WorldTransforms(c)
		c.positions = make([]r3.Vector, 0, len(frames))
		for _, f := range frames {
			c.positions = append(c.positions, f.Translation())
		}
	}
	positions := make([]r3.Vector, len(c.positions))
	copy(positions, c.positions)
	return positions
}

// EndEffector returns the world position of the tip of the last link.
func (c *Chain) EndEffector() r3.Vector {
	if c.positions == nil {
		c.Positions()
	}
	return c.positions[len(c.positions)-1]
}
