package metrics

import (
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePlot renders per-class accuracy against the training pass index and
// writes it to path. The format follows the path's extension.
func SavePlot(h *History, path string) error {
	if h.Len() == 0 {
		return errors.New("plot: no passes recorded")
	}

	rects := make(plotter.XYs, 0, h.Len())
	circles := make(plotter.XYs, 0, h.Len())
	for _, p := range h.passes {
		x := float64(p.Iteration)
		rects = append(rects, plotter.XY{X: x, Y: p.Result.RectangleAccuracy()})
		circles = append(circles, plotter.XY{X: x, Y: p.Result.CircleAccuracy()})
	}

	p := plot.New()
	p.Title.Text = "iterations vs accuracy"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "accuracy"
	p.Y.Min = 0
	p.Y.Max = 1

	rectLine, err := plotter.NewLine(rects)
	if err != nil {
		return errors.Wrap(err, "plot rectangles")
	}
	rectLine.LineStyle.Color = color.RGBA{R: 200, A: 255}
	rectLine.LineStyle.Width = vg.Points(1.5)

	circleLine, err := plotter.NewLine(circles)
	if err != nil {
		return errors.Wrap(err, "plot circles")
	}
	circleLine.LineStyle.Color = color.RGBA{B: 200, A: 255}
	circleLine.LineStyle.Width = vg.Points(1.5)

	p.Add(plotter.NewGrid(), rectLine, circleLine)
	p.Legend.Add("rectangles", rectLine)
	p.Legend.Add("circles", circleLine)
	p.Legend.Top = false

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "save plot %s", path)
	}
	return nil
}
