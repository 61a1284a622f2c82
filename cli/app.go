// Package cli contains the chase command, a host that drives a chain after a moving target one frame at a time
// and reports where the arm ends up.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	chaseFlagChain      = "chain"
	chaseFlagLinks      = "links"
	chaseFlagFrames     = "frames"
	chaseFlagRadius     = "radius"
	chaseFlagIterations = "iterations"
	chaseFlagTolerance  = "tolerance"
	chaseFlagDamping    = "damping"
	chaseFlagPlot       = "plot"
	chaseFlagDebug      = "debug"
)

var app = &cli.App{
	Name:            "chase",
	Usage:           "solve a chain after a target moving around a circle",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    chaseFlagChain,
			Aliases: []string{"c"},
			Usage:   "load the chain from a JSON `FILE`",
		},
		&cli.Float64SliceFlag{
			Name:  chaseFlagLinks,
			Usage: "link lengths of a planar chain, base to tip, when no chain file is given",
			Value: cli.NewFloat64Slice(1, 1, 1),
		},
		&cli.IntFlag{
			Name:  chaseFlagFrames,
			Usage: "number of frames the target takes to go around the circle once",
			Value: 60,
		},
		&cli.Float64Flag{
			Name:  chaseFlagRadius,
			Usage: "radius of the target's circle around the chain's base",
			Value: 2,
		},
		&cli.IntFlag{
			Name:  chaseFlagIterations,
			Usage: "max CCD sweeps per frame",
			Value: 10,
		},
		&cli.Float64Flag{
			Name:  chaseFlagTolerance,
			Usage: "distance at which the target counts as reached",
			Value: 0.01,
		},
		&cli.Float64Flag{
			Name:  chaseFlagDamping,
			Usage: "fraction of each joint correction to apply, in (0, 1]",
			Value: 1,
		},
		&cli.StringFlag{
			Name:  chaseFlagPlot,
			Usage: "save a plot of the target and end effector paths to `FILE` (.png, .svg or .pdf)",
		},
		&cli.BoolFlag{
			Name:    chaseFlagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
	},
	Action: ChaseAction,
}

// NewApp returns a new app with the chase command, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
