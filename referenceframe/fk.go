package referenceframe

import (
	"github.com/armkin/armkin/spatialmath"
)

// WorldTransforms walks the chain from base to tip and returns the world transform of the base followed by the
// frame at the end of every link. Joint angles are local: each joint rotates relative to the link before it, and
// rotation accumulates through composition. For a planar chain the heading of link i is therefore the sum of
// the angles of joints 0..i.
func WorldTransforms(c *Chain) []spatialmath.Transform {
	frames := make([]spatialmath.Transform, 0, len(c.joints)+1)
	world := c.base
	frames = append(frames, world)
	for _, j := range c.joints {
		// parent first, then the joint's own rotation and link
		world = spatialmath.Compose(world, j.Transform())
		frames = append(frames, world)
	}
	return frames
}

// SolveFK returns the world pose of the base and of the end of every link for the chain's current angles. The
// last pose is the end effector.
func SolveFK(c *Chain) []spatialmath.Pose {
	frames := WorldTransforms(c)
	poses := make([]spatialmath.Pose, 0, len(frames))
	for _, f := range frames {
		poses = append(poses, spatialmath.NewPoseFromTransform(f))
	}
	return poses
}
