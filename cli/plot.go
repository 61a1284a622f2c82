package cli

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const plotSize = 6 * vg.Inch

// savePlot draws the XY paths of the target and the end effector and saves them to path. The format follows the
// file extension.
func savePlot(path, title string, results []frameResult) error {
	targets := make(plotter.XYs, 0, len(results))
	effectors := make(plotter.XYs, 0, len(results))
	for _, res := range results {
		targets = append(targets, plotter.XY{X: res.Target.X, Y: res.Target.Y})
		effectors = append(effectors, plotter.XY{X: res.EndEffector.X, Y: res.EndEffector.Y})
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	targetLine, err := plotter.NewLine(targets)
	if err != nil {
		return errors.Wrap(err, "could not plot target path")
	}
	targetLine.LineStyle.Color = color.RGBA{R: 200, A: 255}
	targetLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	effectorPoints, err := plotter.NewScatter(effectors)
	if err != nil {
		return errors.Wrap(err, "could not plot end effector path")
	}
	effectorPoints.GlyphStyle.Color = color.RGBA{B: 200, A: 255}

	p.Add(plotter.NewGrid(), targetLine, effectorPoints)
	p.Legend.Add("target", targetLine)
	p.Legend.Add("end effector", effectorPoints)

	if err := p.Save(plotSize, plotSize, path); err != nil {
		return errors.Wrapf(err, "could not save plot to %s", path)
	}
	return nil
}
