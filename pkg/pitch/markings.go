package pitch

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// arcSegments is the number of line segments used to approximate a full
// ellipse. Arcs use a proportional share.
const arcSegments = 72

// markings is the plot.Plotter that draws the pitch itself: border, halfway
// line, centre circle and spot, penalty and six-yard boxes, penalty spots and
// arcs, corner arcs, and goals. It intentionally does not implement
// plot.DataRanger; the Pitch fixes the axis ranges so padding and half-pitch
// framing are respected.
type markings struct {
	pitch *Pitch
}

// Plot implements plot.Plotter.
func (m *markings) Plot(c draw.Canvas, plt *plot.Plot) {
	p := m.pitch
	trX, trY := plt.Transforms(&c)

	toCanvas := func(pt [2]float64) vg.Point {
		x, y := p.Transform(pt[0], pt[1])
		return vg.Point{X: trX(x), Y: trY(y)}
	}

	lineSty := draw.LineStyle{
		Color: p.theme.Line,
		Width: vg.Points(p.theme.LineWidth),
	}

	for _, path := range p.markingPaths() {
		pts := make([]vg.Point, len(path))
		for i, pt := range path {
			pts[i] = toCanvas(pt)
		}
		c.StrokeLines(lineSty, c.ClipLinesXY(pts)...)
	}

	goalSty := draw.LineStyle{
		Color: withAlpha(p.theme.Line, p.theme.GoalAlpha),
		Width: vg.Points(p.theme.LineWidth),
	}
	if p.goalType == GoalLine {
		// A line goal is just a heavier stroke on the goal line.
		goalSty.Width = vg.Points(p.theme.LineWidth * 3)
	}
	for _, path := range p.goalPaths() {
		pts := make([]vg.Point, len(path))
		for i, pt := range path {
			pts[i] = toCanvas(pt)
		}
		c.StrokeLines(goalSty, c.ClipLinesXY(pts)...)
	}

	// Centre and penalty spots.
	r := vg.Points(p.theme.SpotRadius)
	for _, spot := range p.spots() {
		center := toCanvas(spot)
		circle := make([]vg.Point, arcSegments/2)
		for i := range circle {
			theta := 2 * math.Pi * float64(i) / float64(len(circle))
			circle[i] = vg.Point{
				X: center.X + r*vg.Length(math.Cos(theta)),
				Y: center.Y + r*vg.Length(math.Sin(theta)),
			}
		}
		if clipped := c.ClipPolygonXY(circle); len(clipped) > 0 {
			c.FillPolygon(p.theme.Line, clipped)
		}
	}
}

// markingPaths returns the stroked pitch markings as polylines in provider
// coordinates (before orientation transforms).
func (p *Pitch) markingPaths() [][][2]float64 {
	d := p.dims
	length, width := d.Length, d.Width
	var paths [][][2]float64

	// Border and halfway line.
	paths = append(paths,
		[][2]float64{{0, 0}, {length, 0}, {length, width}, {0, width}, {0, 0}},
		[][2]float64{{length / 2, 0}, {length / 2, width}},
	)

	// Centre circle.
	paths = append(paths, ellipseArc(length/2, width/2, d.CircleRadiusX, d.CircleRadiusY, 0, 2*math.Pi))

	// Penalty areas and six-yard boxes, both ends.
	for _, box := range []struct{ l, w float64 }{
		{d.PenaltyAreaLength, d.PenaltyAreaWidth},
		{d.SixYardLength, d.SixYardWidth},
	} {
		y0 := (width - box.w) / 2
		y1 := y0 + box.w
		paths = append(paths,
			[][2]float64{{0, y0}, {box.l, y0}, {box.l, y1}, {0, y1}},
			[][2]float64{{length, y0}, {length - box.l, y0}, {length - box.l, y1}, {length, y1}},
		)
	}

	// Penalty arcs: only the part of the circle around the penalty spot that
	// pokes out of the penalty area.
	if d.CircleRadiusX > 0 && d.PenaltyAreaLength > d.PenaltySpot {
		cos := (d.PenaltyAreaLength - d.PenaltySpot) / d.CircleRadiusX
		if cos < 1 {
			t := math.Acos(cos)
			paths = append(paths,
				ellipseArc(d.PenaltySpot, width/2, d.CircleRadiusX, d.CircleRadiusY, -t, t),
				ellipseArc(length-d.PenaltySpot, width/2, d.CircleRadiusX, d.CircleRadiusY, math.Pi-t, math.Pi+t),
			)
		}
	}

	// Corner arcs.
	if d.CornerRadiusX > 0 {
		rx, ry := d.CornerRadiusX, d.CornerRadiusY
		paths = append(paths,
			ellipseArc(0, 0, rx, ry, 0, math.Pi/2),
			ellipseArc(length, 0, rx, ry, math.Pi/2, math.Pi),
			ellipseArc(length, width, rx, ry, math.Pi, 3*math.Pi/2),
			ellipseArc(0, width, rx, ry, 3*math.Pi/2, 2*math.Pi),
		)
	}

	return paths
}

// goalPaths returns the goal markings in provider coordinates.
func (p *Pitch) goalPaths() [][][2]float64 {
	d := p.dims
	y0 := (d.Width - d.GoalWidth) / 2
	y1 := y0 + d.GoalWidth

	if p.goalType == GoalBox {
		return [][][2]float64{
			{{0, y0}, {-d.GoalDepth, y0}, {-d.GoalDepth, y1}, {0, y1}},
			{{d.Length, y0}, {d.Length + d.GoalDepth, y0}, {d.Length + d.GoalDepth, y1}, {d.Length, y1}},
		}
	}
	return [][][2]float64{
		{{0, y0}, {0, y1}},
		{{d.Length, y0}, {d.Length, y1}},
	}
}

// spots returns the centre and penalty spot positions in provider
// coordinates.
func (p *Pitch) spots() [][2]float64 {
	d := p.dims
	return [][2]float64{
		{d.Length / 2, d.Width / 2},
		{d.PenaltySpot, d.Width / 2},
		{d.Length - d.PenaltySpot, d.Width / 2},
	}
}

// ellipseArc samples the arc of an axis-aligned ellipse from angle a0 to a1.
func ellipseArc(cx, cy, rx, ry, a0, a1 float64) [][2]float64 {
	n := int(math.Ceil(float64(arcSegments) * math.Abs(a1-a0) / (2 * math.Pi)))
	if n < 2 {
		n = 2
	}
	pts := make([][2]float64, n+1)
	for i := 0; i <= n; i++ {
		theta := a0 + (a1-a0)*float64(i)/float64(n)
		pts[i] = [2]float64{cx + rx*math.Cos(theta), cy + ry*math.Sin(theta)}
	}
	return pts
}

// withAlpha scales the opacity of c by a.
func withAlpha(c color.Color, a float64) color.Color {
	if c == nil || a >= 1 {
		return c
	}
	if a < 0 {
		a = 0
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(float64(nc.A) * a)
	return nc
}

var _ plot.Plotter = (*markings)(nil)
