package pitch

import (
	"gonum.org/v1/plot"

	"github.com/orkonung/pitchplot/pkg/quiver"
)

// Arrows overlays a field of arrows from start to end coordinates, both in
// provider coordinates. The pitch's y inversion is applied here and its
// orientation is forwarded to the quiver, which swaps the x and y components
// on vertical pitches.
//
// The returned Quiver can be passed to plt.Legend.Add for an arrow-shaped
// legend entry.
func (p *Pitch) Arrows(plt *plot.Plot, xstart, ystart, xend, yend []float64, opts ...quiver.Option) (*quiver.Quiver, error) {
	ys := p.invertYs(ystart)
	ye := p.invertYs(yend)

	if p.vertical {
		opts = append(opts, quiver.Vertical())
	}
	q, err := quiver.New(xstart, ys, xend, ye, opts...)
	if err != nil {
		return nil, err
	}

	plt.Add(q)
	return q, nil
}

// LegendArrow adds a legend entry for the given arrow overlay. The glyph is
// the quiver's own thumbnail, so it carries the overlay's shaft width, head
// shape and colors.
func (p *Pitch) LegendArrow(plt *plot.Plot, label string, q *quiver.Quiver) {
	plt.Legend.Add(label, q)
}

// invertYs flips y values for inverted coordinate systems. The slice is
// copied; callers' data is never modified.
func (p *Pitch) invertYs(y []float64) []float64 {
	if !p.dims.InvertY {
		return y
	}
	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = p.dims.Width - v
	}
	return out
}
