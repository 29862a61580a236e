package pitch

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/orkonung/pitchplot/pkg/errors"
	"github.com/orkonung/pitchplot/pkg/marker"
)

// DefaultMarkerSize is the default marker area in points squared.
const DefaultMarkerSize = 100

// ScatterOption configures a scatter overlay.
type ScatterOption func(*scatterConfig)

type scatterConfig struct {
	size      float64
	sizes     []float64
	color     color.Color
	colorMap  palette.ColorMap
	values    []float64
	glyph     draw.GlyphDrawer
	rotations []float64
	alpha     float64
}

// Size sets a uniform marker size as an area in points squared.
func Size(area float64) ScatterOption {
	return func(c *scatterConfig) { c.size = area }
}

// Sizes sets per-marker sizes as areas in points squared. Must match the
// number of points.
func Sizes(areas []float64) ScatterOption {
	return func(c *scatterConfig) { c.sizes = areas }
}

// Color sets a uniform marker color. It has no effect when a color map
// is set.
func Color(col color.Color) ScatterOption {
	return func(c *scatterConfig) { c.color = col }
}

// ColorMap maps per-marker values to colors. The number of values must match
// the number of points.
func ColorMap(cm palette.ColorMap, values []float64) ScatterOption {
	return func(c *scatterConfig) {
		c.colorMap = cm
		c.values = values
	}
}

// Marker sets the glyph shape, e.g. draw.CircleGlyph{}, marker.Hexagon{},
// marker.Star{} or marker.Arrowhead{}.
func Marker(g draw.GlyphDrawer) ScatterOption {
	return func(c *scatterConfig) { c.glyph = g }
}

// Rotations rotates each marker clockwise by the given degrees, where zero
// degrees faces the direction of play (rightwards on a horizontal pitch,
// upwards on a vertical one). Must match the number of points.
func Rotations(degrees []float64) ScatterOption {
	return func(c *scatterConfig) { c.rotations = degrees }
}

// Alpha sets the marker opacity, in [0, 1].
func Alpha(a float64) ScatterOption {
	return func(c *scatterConfig) { c.alpha = a }
}

// Scatter overlays markers at the given provider coordinates. Marker sizes
// follow the familiar area-in-points-squared convention, so a size of 100
// draws a marker with a radius of about 5.6 points.
func (p *Pitch) Scatter(plt *plot.Plot, x, y []float64, opts ...ScatterOption) (*plotter.Scatter, error) {
	if len(x) != len(y) {
		return nil, errors.New(errors.ErrCodeLengthMismatch, "x and y must be the same size")
	}

	cfg := scatterConfig{
		size:  DefaultMarkerSize,
		color: p.theme.Line,
		glyph: draw.CircleGlyph{},
		alpha: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(x)
	if cfg.sizes != nil && len(cfg.sizes) != n {
		return nil, errors.New(errors.ErrCodeLengthMismatch, "sizes must be the same size as x and y")
	}
	if cfg.colorMap != nil && len(cfg.values) != n {
		return nil, errors.New(errors.ErrCodeLengthMismatch, "values must be the same size as x and y")
	}
	if cfg.rotations != nil && len(cfg.rotations) != n {
		return nil, errors.New(errors.ErrCodeLengthMismatch, "rotations must be the same size as x and y")
	}

	if cfg.colorMap != nil {
		rescaleColorMap(cfg.colorMap, cfg.values)
	}

	xys := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		px, py := p.Transform(x[i], y[i])
		xys[i] = plotter.XY{X: px, Y: py}
	}

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "scatter")
	}

	vertical := p.vertical
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		sty := draw.GlyphStyle{
			Color:  withAlpha(cfg.colorAt(i), cfg.alpha),
			Radius: radiusFromArea(cfg.sizeAt(i)),
			Shape:  cfg.glyph,
		}
		if cfg.rotations != nil {
			deg := cfg.rotations[i]
			if !vertical {
				// On a horizontal pitch the direction of play is to the
				// right; glyphs point up at zero rotation.
				deg += 90
			}
			sty.Shape = marker.Rotated{Glyph: cfg.glyph, Degrees: deg}
		}
		return sty
	}

	plt.Add(sc)
	return sc, nil
}

func (c *scatterConfig) sizeAt(i int) float64 {
	if c.sizes != nil {
		return c.sizes[i]
	}
	return c.size
}

func (c *scatterConfig) colorAt(i int) color.Color {
	if c.colorMap != nil && i < len(c.values) {
		if col, err := c.colorMap.At(c.values[i]); err == nil {
			return col
		}
	}
	return c.color
}

// radiusFromArea converts a marker area in points squared to a glyph radius.
func radiusFromArea(area float64) vg.Length {
	if area <= 0 {
		return 0
	}
	return vg.Points(math.Sqrt(area / math.Pi))
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
		max = min + 1
	}
	cm.SetMin(min)
	cm.SetMax(max)
}
