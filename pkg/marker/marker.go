// Package marker provides extra scatter glyphs for pitch plots: an arrowhead
// for directional events, plus hexagon and star shapes for shot maps. All
// glyphs implement gonum/plot's draw.GlyphDrawer and can be combined with
// Rotated to point a marker along an event's direction of travel.
package marker

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Arrowhead is a filled arrowhead glyph pointing up. Combine with Rotated to
// point it along an event direction; on a horizontal pitch 0 degrees faces
// the direction of play after a 90 degree clockwise rotation.
type Arrowhead struct{}

// DrawGlyph implements draw.GlyphDrawer.
func (Arrowhead) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	// Swept-back arrowhead: tip, left barb, notch on the axis, right barb.
	pts := []vg.Point{
		{X: pt.X, Y: pt.Y + r},
		{X: pt.X - r, Y: pt.Y - r},
		{X: pt.X, Y: pt.Y - r*0.4},
		{X: pt.X + r, Y: pt.Y - r},
	}
	c.FillPolygon(sty.Color, pts)
}

// Hexagon is a filled regular hexagon glyph with a vertex at the top,
// matching the common pointy-top hexagon scatter marker.
type Hexagon struct{}

// DrawGlyph implements draw.GlyphDrawer.
func (Hexagon) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.FillPolygon(sty.Color, regularPolygon(pt, sty.Radius, 6, math.Pi/2))
}

// Star is a filled five-pointed star glyph.
type Star struct{}

// DrawGlyph implements draw.GlyphDrawer.
func (Star) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	const points = 5
	// Inner radius ratio for a regular pentagram.
	inner := sty.Radius * vg.Length(0.382)

	pts := make([]vg.Point, 0, 2*points)
	for i := 0; i < 2*points; i++ {
		r := sty.Radius
		if i%2 == 1 {
			r = inner
		}
		theta := math.Pi/2 + float64(i)*math.Pi/points
		pts = append(pts, vg.Point{
			X: pt.X + r*vg.Length(math.Cos(theta)),
			Y: pt.Y + r*vg.Length(math.Sin(theta)),
		})
	}
	c.FillPolygon(sty.Color, pts)
}

// Rotated wraps another glyph and draws it rotated clockwise by Degrees.
// Zero degrees leaves the glyph pointing up.
type Rotated struct {
	Glyph   draw.GlyphDrawer
	Degrees float64
}

// DrawGlyph implements draw.GlyphDrawer. The canvas is translated to the
// glyph position and rotated, and the wrapped glyph is drawn at the origin.
func (g Rotated) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	if g.Glyph == nil {
		return
	}
	c.Push()
	c.Translate(pt)
	c.Rotate(-g.Degrees * math.Pi / 180) // canvas rotation is anticlockwise
	g.Glyph.DrawGlyph(c, sty, vg.Point{})
	c.Pop()
}

// regularPolygon returns the n vertices of a regular polygon of radius r
// around pt, with the first vertex at angle phase.
func regularPolygon(pt vg.Point, r vg.Length, n int, phase float64) []vg.Point {
	pts := make([]vg.Point, n)
	for i := range pts {
		theta := phase + 2*math.Pi*float64(i)/float64(n)
		pts[i] = vg.Point{
			X: pt.X + r*vg.Length(math.Cos(theta)),
			Y: pt.Y + r*vg.Length(math.Sin(theta)),
		}
	}
	return pts
}

var (
	_ draw.GlyphDrawer = Arrowhead{}
	_ draw.GlyphDrawer = Hexagon{}
	_ draw.GlyphDrawer = Star{}
	_ draw.GlyphDrawer = Rotated{}
)
