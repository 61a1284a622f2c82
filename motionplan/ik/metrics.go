package ik

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"github.com/armkin/armkin/referenceframe"
)

// JointDelta returns the L2 norm of the change between two angle vectors. A host can use it to see how far the
// arm moved between frames. Vectors of different lengths are infinitely far apart.
func JointDelta(from, to []float64) float64 {
	if len(from) != len(to) {
		return math.Inf(1)
	}
	diff := make([]float64, len(from))
	floats.SubTo(diff, to, from)
	// 2 is the L value returning a standard L2 Normalization
	return floats.Norm(diff, 2)
}

// WithinReach reports whether target is no farther from the chain's base than the sum of its link lengths. This
// is necessary for CCD to reach the target; for chains whose joints have limits it is not sufficient.
func WithinReach(chain *referenceframe.Chain, target r3.Vector) bool {
	return chain.Base().Translation().Distance(target) <= chain.Reach()
}

// PositionDistance returns the euclidean distance between two points.
func PositionDistance(a, b r3.Vector) float64 {
	return a.Distance(b)
}

// SquaredPositionDistance returns the squared euclidean distance between two points. It orders points the same
// way PositionDistance does without taking a square root.
func SquaredPositionDistance(a, b r3.Vector) float64 {
	return a.Sub(b).Norm2()
}
