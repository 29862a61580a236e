package pitch

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/orkonung/pitchplot/pkg/errors"
)

// segments is a plotter drawing independent line segments, one per
// start/end pair.
type segments struct {
	starts, ends plotter.XYs
	sty          draw.LineStyle
}

// Lines overlays straight segments between start and end coordinates, both
// in provider coordinates.
func (p *Pitch) Lines(plt *plot.Plot, xstart, ystart, xend, yend []float64, sty draw.LineStyle) error {
	if len(xstart) != len(ystart) {
		return errors.New(errors.ErrCodeLengthMismatch, "xstart and ystart must be the same size")
	}
	if len(xstart) != len(xend) {
		return errors.New(errors.ErrCodeLengthMismatch, "xstart and xend must be the same size")
	}
	if len(ystart) != len(yend) {
		return errors.New(errors.ErrCodeLengthMismatch, "ystart and yend must be the same size")
	}

	if sty.Color == nil {
		sty = draw.LineStyle{Color: p.theme.Line, Width: vg.Points(1)}
	}

	n := len(xstart)
	s := &segments{
		starts: make(plotter.XYs, n),
		ends:   make(plotter.XYs, n),
		sty:    sty,
	}
	for i := 0; i < n; i++ {
		sx, sy := p.Transform(xstart[i], ystart[i])
		ex, ey := p.Transform(xend[i], yend[i])
		s.starts[i] = plotter.XY{X: sx, Y: sy}
		s.ends[i] = plotter.XY{X: ex, Y: ey}
	}

	plt.Add(s)
	return nil
}

// Plot implements plot.Plotter.
func (s *segments) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i := range s.starts {
		line := []vg.Point{
			{X: trX(s.starts[i].X), Y: trY(s.starts[i].Y)},
			{X: trX(s.ends[i].X), Y: trY(s.ends[i].Y)},
		}
		c.StrokeLines(s.sty, c.ClipLinesXY(line)...)
	}
}

// DataRange implements plot.DataRanger.
func (s *segments) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, xys := range []plotter.XYs{s.starts, s.ends} {
		for _, xy := range xys {
			xmin = math.Min(xmin, xy.X)
			xmax = math.Max(xmax, xy.X)
			ymin = math.Min(ymin, xy.Y)
			ymax = math.Max(ymax, xy.Y)
		}
	}
	return xmin, xmax, ymin, ymax
}

var (
	_ plot.Plotter    = (*segments)(nil)
	_ plot.DataRanger = (*segments)(nil)
)
