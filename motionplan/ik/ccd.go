// Package ik solves inverse kinematics for serial chains by cyclic coordinate descent (CCD).
package ik

import (
	"github.com/golang/geo/r3"

	"github.com/armkin/armkin/logging"
	"github.com/armkin/armkin/referenceframe"
	"github.com/armkin/armkin/spatialmath"
)

// Result describes how a solve ended. Not reaching the target is a normal outcome, not an error: the arm is
// left as close as CCD could get it, which for an out of reach target means stretched out towards it.
type Result struct {
	ReachedTarget bool
	// Number of full tip-to-base sweeps performed.
	Iterations int
	// Distance from the end effector to the target when the solve returned.
	Distance float64
}

// Solve moves the chain's joints so its end effector approaches target and returns how it went. Each iteration
// first checks whether the end effector is within tolerance and stops if so. Otherwise it sweeps the joints from
// the tip to the base; each joint is turned about its own axis by the angle between the joint-to-end-effector and
// joint-to-target directions, scaled by the damping factor and fitted to the joint's limit, and the chain is
// walked again before the next joint so every correction sees the freshest end effector position.
//
// Undamped sweeps near full extension only unfold the arm a little each time, always in the same direction, so
// after each one the change it made is tried again scaled up, and kept only if it brings the end effector closer.
// A damped solve takes exactly the damped sweep.
//
// A sweep that leaves the chain no closer to a target it could reach means the arm is stuck lined up with it; the
// joints past the first are then bent slightly so the next sweep has something to work with.
//
// Invalid config fields are replaced with their defaults; Solve never fails.
func Solve(chain *referenceframe.Chain, target r3.Vector, cfg Config) Result {
	cfg = cfg.withDefaults()
	inReach := chain.Base().Translation().Distance(target) < chain.Reach()
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		dist := chain.EndEffector().Distance(target)
		if dist <= cfg.ToleranceDistance {
			return Result{ReachedTarget: true, Iterations: iter, Distance: dist}
		}
		before := chain.Angles()
		sweep(chain, target, cfg.DampingFactor)
		after := chain.EndEffector().Distance(target)
		if after > cfg.ToleranceDistance && cfg.DampingFactor == 1 {
			after = extrapolate(chain, target, before, after)
		}

		// A straight arm lined up with a target inside its reach gets no correction from any joint.
		if inReach && iter < cfg.MaxIterations-1 && after > cfg.ToleranceDistance && dist-after < stallProgress {
			nudge(chain)
		}
	}
	dist := chain.EndEffector().Distance(target)
	return Result{ReachedTarget: dist <= cfg.ToleranceDistance, Iterations: cfg.MaxIterations, Distance: dist}
}

// extrapolationSteps are the multiples of a sweep's change tried on top of it, largest first.
var extrapolationSteps = []float64{16, 8, 4, 2, 1}

// extrapolate continues the change the last sweep made from before along the same direction and keeps the first
// step that beats dist. It returns the resulting distance to target.
func extrapolate(chain *referenceframe.Chain, target r3.Vector, before []float64, dist float64) float64 {
	joints := chain.Joints()
	swept := chain.Angles()
	candidate := make([]float64, len(swept))
	for _, step := range extrapolationSteps {
		for i, a := range swept {
			candidate[i] = joints[i].Limit.Fit(a + step*(a-before[i]))
		}
		//nolint:errcheck
		chain.SetAngles(candidate)
		if d := chain.EndEffector().Distance(target); d < dist {
			return d
		}
	}
	//nolint:errcheck
	chain.SetAngles(swept)
	return dist
}

// stallProgress is the least a sweep must close the distance by to not count as stalled.
const stallProgress = 1e-6

// stallNudge is how far every joint past the first is bent to get a stalled chain moving again.
const stallNudge = 0.1

func nudge(chain *referenceframe.Chain) {
	for i, j := range chain.Joints() {
		if i == 0 {
			continue
		}
		//nolint:errcheck
		chain.SetAngle(i, j.Limit.Fit(j.Angle+stallNudge))
	}
}

func sweep(chain *referenceframe.Chain, target r3.Vector, damping float64) {
	joints := chain.Joints()
	for i := len(joints) - 1; i >= 0; i-- {
		frames := referenceframe.WorldTransforms(chain)
		// frames[i] is the frame joint i turns in
		pivot := frames[i].Translation()
		axis := frames[i].ApplyDirection(joints[i].Axis.Vector())
		effector := frames[len(frames)-1].Translation()

		delta := spatialmath.SignedAngleAbout(effector.Sub(pivot), target.Sub(pivot), axis) * damping
		if delta == 0 {
			continue
		}
		// a turn that crosses +/-pi comes back in on the other side instead of sticking to the bound
		joints[i].Angle = joints[i].Limit.Fit(joints[i].Angle + delta)
		// i always addresses a joint of this chain
		//nolint:errcheck
		chain.SetAngle(i, joints[i].Angle)
	}
}

// CCDSolver is a CCD solver with a validated Config and a logger.
type CCDSolver struct {
	cfg    Config
	logger logging.Logger
}

// NewCCDSolver creates a CCDSolver, rejecting configs Solve would have to patch up. Zero fields take their
// defaults.
func NewCCDSolver(logger logging.Logger, cfg Config) (*CCDSolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CCDSolver{cfg: cfg.withDefaults(), logger: logger}, nil
}

// Config returns the config the solver runs with, defaults filled in.
func (s *CCDSolver) Config() Config {
	return s.cfg
}

// Solve runs CCD on the chain towards target. See the package level Solve.
func (s *CCDSolver) Solve(chain *referenceframe.Chain, target r3.Vector) Result {
	res := Solve(chain, target, s.cfg)
	s.logger.Debugw("ccd solve",
		"chain", chain.Name(),
		"target", target,
		"reached", res.ReachedTarget,
		"iterations", res.Iterations,
		"distance", res.Distance,
	)
	return res
}
