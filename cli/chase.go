package cli

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/armkin/armkin/logging"
	"github.com/armkin/armkin/motionplan/ik"
	"github.com/armkin/armkin/referenceframe"
)

// frameResult is what one frame of a chase produced.
type frameResult struct {
	Target      r3.Vector
	EndEffector r3.Vector
	Angles      []float64
	ik.Result
}

// ChaseAction is the corresponding Action for the chase command.
func ChaseAction(c *cli.Context) error {
	level := logging.INFO
	if c.Bool(chaseFlagDebug) {
		level = logging.DEBUG
	}
	logger := logging.NewWriterLogger("chase", level, c.App.ErrWriter)
	//nolint:errcheck
	defer logger.Sync()

	chain, err := loadChain(c)
	if err != nil {
		return err
	}
	frames := c.Int(chaseFlagFrames)
	if frames <= 0 {
		return errors.Errorf("%s must be positive, got %d", chaseFlagFrames, frames)
	}
	solver, err := ik.NewCCDSolver(logger.Sublogger("ik"), ik.Config{
		MaxIterations:     c.Int(chaseFlagIterations),
		ToleranceDistance: c.Float64(chaseFlagTolerance),
		DampingFactor:     c.Float64(chaseFlagDamping),
	})
	if err != nil {
		return errors.Wrap(err, "invalid solver flags")
	}

	radius := c.Float64(chaseFlagRadius)
	if !ik.WithinReach(chain, chain.Base().Apply(r3.Vector{X: radius})) {
		logger.Warnw("target circle is out of reach, the arm will only stretch towards it",
			"radius", radius, "reach", chain.Reach())
	}

	results := chase(chain, solver, radius, frames)
	reached := 0
	for i, res := range results {
		if res.ReachedTarget {
			reached++
		}
		fmt.Fprintf(c.App.Writer, "frame %d target %s end effector %s distance %.4f iterations %d reached %t\n",
			i, formatPoint(res.Target), formatPoint(res.EndEffector), res.Distance, res.Iterations, res.ReachedTarget)
	}
	fmt.Fprintf(c.App.Writer, "reached %d/%d frames\n", reached, len(results))

	if path := c.String(chaseFlagPlot); path != "" {
		if err := savePlot(path, chain.Name(), results); err != nil {
			return err
		}
		logger.Infof("saved plot to %s", path)
	}
	return nil
}

// loadChain builds the chain from --chain when it is set and from --links otherwise.
func loadChain(c *cli.Context) (*referenceframe.Chain, error) {
	if path := c.String(chaseFlagChain); path != "" {
		chain, err := referenceframe.ParseChainJSONFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not load chain from %s", path)
		}
		return chain, nil
	}
	return referenceframe.NewChain(c.Float64Slice(chaseFlagLinks), referenceframe.WithName("links"))
}

// chase moves the target once around a circle of the given radius in the base's XY plane and solves the chain
// after it, carrying the angles from each frame into the next.
func chase(chain *referenceframe.Chain, solver *ik.CCDSolver, radius float64, frames int) []frameResult {
	results := make([]frameResult, 0, frames)
	for i := 0; i < frames; i++ {
		a := 2 * math.Pi * float64(i) / float64(frames)
		target := chain.Base().Apply(r3.Vector{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
		res := solver.Solve(chain, target)
		results = append(results, frameResult{
			Target:      target,
			EndEffector: chain.EndEffector(),
			Angles:      chain.Angles(),
			Result:      res,
		})
	}
	return results
}

func formatPoint(p r3.Vector) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z)
}
