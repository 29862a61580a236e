// Package quiver plots fields of arrows on a gonum/plot plot.
//
// Unlike a raw vector-field plot, arrows are described by their start and
// end coordinates; the direction vectors are derived internally. The plotter
// also knows how to flip its coordinates for vertically oriented pitches and
// renders a miniature arrow glyph when added to a plot legend.
package quiver

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/orkonung/pitchplot/pkg/errors"
)

// Default arrow style. The head sizes are multiples of the shaft width,
// matching the conventions of vector-field plots.
const (
	DefaultWidth          = 4.0 // shaft width in points
	DefaultHeadWidth      = 3.0 // head width as a multiple of the shaft width
	DefaultHeadLength     = 5.0 // head length as a multiple of the shaft width
	DefaultHeadAxisLength = 4.5 // head length at the shaft intersection
)

// Quiver is a plotter that draws a field of arrows with fixed on-page widths.
// Arrow positions and directions are in data coordinates; the shaft width and
// derived head sizes are in points so arrows keep their weight regardless of
// the axis scale.
//
// Quiver implements plot.Plotter, plot.DataRanger and plot.Thumbnailer, so a
// value can be passed directly to Legend.Add to get an arrow glyph as the
// legend entry.
type Quiver struct {
	// XYs holds the arrow start positions.
	XYs plotter.XYs

	// U and V hold the direction vectors in data units,
	// u = xend - xstart and v = yend - ystart.
	U, V []float64

	// Values holds optional scalars mapped through ColorMap to per-arrow
	// face colors. Empty when arrows use a single explicit Color.
	Values []float64

	// ColorMap maps Values to face colors. Ignored when Values is empty.
	ColorMap palette.ColorMap

	// Color is the face color used when no ColorMap is set.
	Color color.Color

	// LineStyle strokes the arrow outline. A zero Width disables the stroke.
	LineStyle draw.LineStyle

	// Width is the arrow shaft width.
	Width vg.Length

	// HeadWidth, HeadLength and HeadAxisLength size the arrow head as
	// multiples of Width. When HeadAxisLength equals HeadLength the head is
	// a plain triangle; smaller values sweep the barbs back.
	HeadWidth, HeadLength, HeadAxisLength float64

	// Alpha scales the opacity of the face color, in [0, 1].
	Alpha float64

	vertical bool
}

// Option configures a Quiver.
type Option func(*Quiver)

// Width sets the arrow shaft width in points.
func Width(points float64) Option {
	return func(q *Quiver) { q.Width = vg.Points(points) }
}

// HeadWidth sets the head width as a multiple of the shaft width.
func HeadWidth(m float64) Option { return func(q *Quiver) { q.HeadWidth = m } }

// HeadLength sets the head length as a multiple of the shaft width.
func HeadLength(m float64) Option { return func(q *Quiver) { q.HeadLength = m } }

// HeadAxisLength sets the head length at the shaft intersection as a
// multiple of the shaft width.
func HeadAxisLength(m float64) Option { return func(q *Quiver) { q.HeadAxisLength = m } }

// Color sets an explicit face color for all arrows.
// It has no effect when a color map is set.
func Color(c color.Color) Option { return func(q *Quiver) { q.Color = c } }

// ColorMap maps the given per-arrow values to face colors. The number of
// values must match the number of arrow locations.
func ColorMap(cm palette.ColorMap, values []float64) Option {
	return func(q *Quiver) {
		q.ColorMap = cm
		q.Values = values
	}
}

// Edge strokes the arrow outlines with the given line style.
func Edge(sty draw.LineStyle) Option { return func(q *Quiver) { q.LineStyle = sty } }

// Alpha sets the opacity of the arrow faces, in [0, 1].
func Alpha(a float64) Option { return func(q *Quiver) { q.Alpha = a } }

// Vertical flips the arrows for a vertically oriented pitch:
// the x coordinates are swapped with y, and u with v.
func Vertical() Option { return func(q *Quiver) { q.vertical = true } }

// New builds a Quiver from the start and end coordinates of each arrow.
// The direction vectors are computed as (xend-xstart, yend-ystart). All four
// slices must be the same size.
func New(xstart, ystart, xend, yend []float64, opts ...Option) (*Quiver, error) {
	if len(xstart) != len(ystart) {
		return nil, errors.New(errors.ErrCodeLengthMismatch, "xstart and ystart must be the same size")
	}
	if len(xstart) != len(xend) {
		return nil, errors.New(errors.ErrCodeLengthMismatch, "xstart and xend must be the same size")
	}
	if len(ystart) != len(yend) {
		return nil, errors.New(errors.ErrCodeLengthMismatch, "ystart and yend must be the same size")
	}

	q := &Quiver{
		Color:          color.Black,
		Width:          vg.Points(DefaultWidth),
		HeadWidth:      DefaultHeadWidth,
		HeadLength:     DefaultHeadLength,
		HeadAxisLength: DefaultHeadAxisLength,
		Alpha:          1,
	}
	for _, opt := range opts {
		opt(q)
	}

	n := len(xstart)
	if q.ColorMap != nil && len(q.Values) != n {
		return nil, errors.New(errors.ErrCodeLengthMismatch,
			"values must be the same size as the arrow locations")
	}

	q.XYs = make(plotter.XYs, n)
	q.U = make([]float64, n)
	q.V = make([]float64, n)
	for i := 0; i < n; i++ {
		x, y := xstart[i], ystart[i]
		u, v := xend[i]-xstart[i], yend[i]-ystart[i]
		if q.vertical {
			x, y = y, x
			u, v = v, u
		}
		q.XYs[i] = plotter.XY{X: x, Y: y}
		q.U[i] = u
		q.V[i] = v
	}

	if q.ColorMap != nil {
		rescaleColorMap(q.ColorMap, q.Values)
	}

	return q, nil
}

// rescaleColorMap widens the map's range to cover the given values when the
// caller has not set one.
func rescaleColorMap(cm palette.ColorMap, values []float64) {
	if len(values) == 0 || cm.Min() != cm.Max() {
		return
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if min == max {
		// Degenerate range. Nudge it so At does not reject the values.
		max = min + 1
	}
	cm.SetMin(min)
	cm.SetMax(max)
}

// Overhang reports the fraction by which the barbs extend beyond the point
// where the head meets the shaft: (headlength - headaxislength) / headlength.
func (q *Quiver) Overhang() float64 {
	if q.HeadLength == 0 {
		return 0
	}
	return (q.HeadLength - q.HeadAxisLength) / q.HeadLength
}

// Plot implements plot.Plotter.
func (q *Quiver) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i := range q.XYs {
		start := vg.Point{X: trX(q.XYs[i].X), Y: trY(q.XYs[i].Y)}
		end := vg.Point{X: trX(q.XYs[i].X + q.U[i]), Y: trY(q.XYs[i].Y + q.V[i])}

		poly := ArrowPolygon(start, end, q.Width,
			q.Width*vg.Length(q.HeadWidth),
			q.Width*vg.Length(q.HeadLength),
			q.Width*vg.Length(q.HeadAxisLength))
		if poly == nil {
			continue
		}

		if face := q.faceColor(i); face != nil {
			c.FillPolygon(face, c.ClipPolygonXY(poly))
		}
		if q.LineStyle.Width > 0 && q.LineStyle.Color != nil {
			outline := append(append([]vg.Point{}, poly...), poly[0])
			c.StrokeLines(q.LineStyle, c.ClipLinesXY(outline)...)
		}
	}
}

// faceColor returns the face color for arrow i, mapping Values through the
// color map when one is set and applying the alpha.
func (q *Quiver) faceColor(i int) color.Color {
	face := q.Color
	if q.ColorMap != nil && i < len(q.Values) {
		if col, err := q.ColorMap.At(q.Values[i]); err == nil {
			face = col
		}
	}
	return alphaColor(face, q.Alpha)
}

// DataRange implements plot.DataRanger. The range covers both the start and
// end point of every arrow.
func (q *Quiver) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for i := range q.XYs {
		for _, x := range []float64{q.XYs[i].X, q.XYs[i].X + q.U[i]} {
			xmin = math.Min(xmin, x)
			xmax = math.Max(xmax, x)
		}
		for _, y := range []float64{q.XYs[i].Y, q.XYs[i].Y + q.V[i]} {
			ymin = math.Min(ymin, y)
			ymax = math.Max(ymax, y)
		}
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer. The legend glyph is a static arrow
// spanning the thumbnail box, rebuilt from the plotter's stored shaft width,
// head multiples and colors so it matches the drawn arrows.
func (q *Quiver) Thumbnail(c *draw.Canvas) {
	y := (c.Min.Y + c.Max.Y) / 2
	start := vg.Point{X: c.Min.X, Y: y}
	end := vg.Point{X: c.Max.X, Y: y}

	poly := ArrowPolygon(start, end, q.Width,
		q.Width*vg.Length(q.HeadWidth),
		q.Width*vg.Length(q.HeadLength),
		q.Width*vg.Length(q.HeadAxisLength))
	if poly == nil {
		return
	}

	if face := q.faceColor(0); face != nil {
		c.FillPolygon(face, poly)
	}
	if q.LineStyle.Width > 0 && q.LineStyle.Color != nil {
		outline := append(append([]vg.Point{}, poly...), poly[0])
		c.StrokeLines(q.LineStyle, outline)
	}
}

// ArrowPolygon returns the outline of an arrow from start to end in canvas
// coordinates. The length includes the head; arrows shorter than headLength
// collapse to a pure head. A nil slice is returned for zero-length arrows.
//
// The polygon runs tail corner, shaft/head junction, barb, tip, barb,
// junction, tail corner.
func ArrowPolygon(start, end vg.Point, width, headWidth, headLength, headAxisLength vg.Length) []vg.Point {
	dx := float64(end.X - start.X)
	dy := float64(end.Y - start.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}

	ux, uy := dx/length, dy/length // unit direction
	px, py := -uy, ux              // unit perpendicular

	hl := float64(headLength)
	hal := float64(headAxisLength)
	if hl > length {
		scale := length / hl
		hl = length
		hal *= scale
	}

	halfW := float64(width) / 2
	halfHW := float64(headWidth) / 2

	// at is the point alongBack canvas units back from the tip,
	// offset aside units along the perpendicular.
	at := func(alongBack, aside float64) vg.Point {
		return vg.Point{
			X: end.X - vg.Length(ux*alongBack) + vg.Length(px*aside),
			Y: end.Y - vg.Length(uy*alongBack) + vg.Length(py*aside),
		}
	}

	return []vg.Point{
		{X: start.X + vg.Length(px*halfW), Y: start.Y + vg.Length(py*halfW)},
		at(hal, halfW),
		at(hl, halfHW),
		end,
		at(hl, -halfHW),
		at(hal, -halfW),
		{X: start.X - vg.Length(px*halfW), Y: start.Y - vg.Length(py*halfW)},
	}
}

// alphaColor scales the opacity of c by a.
func alphaColor(c color.Color, a float64) color.Color {
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

var (
	_ plot.Plotter     = (*Quiver)(nil)
	_ plot.DataRanger  = (*Quiver)(nil)
	_ plot.Thumbnailer = (*Quiver)(nil)
)
