package pitch

import (
	"math"
	"testing"

	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/orkonung/pitchplot/pkg/errors"
	"github.com/orkonung/pitchplot/pkg/marker"
)

func TestScatterLengthValidation(t *testing.T) {
	p, err := New(WithDimensions(UEFA()))
	if err != nil {
		t.Fatal(err)
	}
	plt := p.Draw()

	tests := []struct {
		name string
		x, y []float64
		opts []ScatterOption
	}{
		{"x and y", []float64{1, 2}, []float64{1}, nil},
		{"sizes", []float64{1, 2}, []float64{1, 2}, []ScatterOption{Sizes([]float64{10})}},
		{"values", []float64{1, 2}, []float64{1, 2}, []ScatterOption{ColorMap(moreland.Kindlmann(), []float64{0.5})}},
		{"rotations", []float64{1, 2}, []float64{1, 2}, []ScatterOption{Rotations([]float64{45})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Scatter(plt, tt.x, tt.y, tt.opts...)
			if !errors.Is(err, errors.ErrCodeLengthMismatch) {
				t.Errorf("error code = %q, want LENGTH_MISMATCH", errors.GetCode(err))
			}
		})
	}
}

func TestScatterGlyphStyles(t *testing.T) {
	p, err := New(WithDimensions(UEFA()))
	if err != nil {
		t.Fatal(err)
	}
	plt := p.Draw()

	sc, err := p.Scatter(plt, []float64{10, 20}, []float64{30, 40},
		Sizes([]float64{100, 400}),
		Marker(marker.Hexagon{}),
	)
	if err != nil {
		t.Fatal(err)
	}

	s0 := sc.GlyphStyleFunc(0)
	s1 := sc.GlyphStyleFunc(1)

	// Sizes are areas: quadrupling the area doubles the radius.
	if math.Abs(float64(s1.Radius)/float64(s0.Radius)-2) > 1e-9 {
		t.Errorf("radius ratio = %v, want 2", float64(s1.Radius)/float64(s0.Radius))
	}
	if _, ok := s0.Shape.(marker.Hexagon); !ok {
		t.Errorf("shape = %T, want marker.Hexagon", s0.Shape)
	}
}

func TestScatterRotationsWrapGlyph(t *testing.T) {
	p, err := New(WithDimensions(UEFA()))
	if err != nil {
		t.Fatal(err)
	}
	plt := p.Draw()

	sc, err := p.Scatter(plt, []float64{10}, []float64{30},
		Marker(marker.Arrowhead{}),
		Rotations([]float64{30}),
	)
	if err != nil {
		t.Fatal(err)
	}

	rot, ok := sc.GlyphStyleFunc(0).Shape.(marker.Rotated)
	if !ok {
		t.Fatalf("shape = %T, want marker.Rotated", sc.GlyphStyleFunc(0).Shape)
	}
	// Horizontal pitch: direction of play is to the right, so zero rotation
	// gets an extra quarter turn.
	if rot.Degrees != 120 {
		t.Errorf("degrees = %v, want 120", rot.Degrees)
	}

	pv, err := New(WithDimensions(UEFA()), Vertical())
	if err != nil {
		t.Fatal(err)
	}
	pltV := pv.Draw()
	scV, err := pv.Scatter(pltV, []float64{10}, []float64{30},
		Marker(marker.Arrowhead{}),
		Rotations([]float64{30}),
	)
	if err != nil {
		t.Fatal(err)
	}
	rotV := scV.GlyphStyleFunc(0).Shape.(marker.Rotated)
	if rotV.Degrees != 30 {
		t.Errorf("vertical degrees = %v, want 30", rotV.Degrees)
	}
}

func TestScatterTransformsCoordinates(t *testing.T) {
	p, err := New() // statsbomb, inverted y
	if err != nil {
		t.Fatal(err)
	}
	plt := p.Draw()

	sc, err := p.Scatter(plt, []float64{60}, []float64{20})
	if err != nil {
		t.Fatal(err)
	}
	x, y := sc.XY(0)
	if x != 60 || y != 60 {
		t.Errorf("plotted point = (%v, %v), want (60, 60)", x, y)
	}
}

func TestRadiusFromArea(t *testing.T) {
	if got := radiusFromArea(math.Pi * 25); math.Abs(float64(got-vg.Points(5))) > 1e-9 {
		t.Errorf("radiusFromArea(25pi) = %v, want 5pt", got)
	}
	if got := radiusFromArea(0); got != 0 {
		t.Errorf("radiusFromArea(0) = %v, want 0", got)
	}
	if got := radiusFromArea(-3); got != 0 {
		t.Errorf("radiusFromArea(-3) = %v, want 0", got)
	}
}

func TestRescaleColorMap(t *testing.T) {
	cm := moreland.Kindlmann()
	rescaleColorMap(cm, []float64{2, 8, 5})
	if cm.Min() != 2 || cm.Max() != 8 {
		t.Errorf("range = [%v, %v], want [2, 8]", cm.Min(), cm.Max())
	}

	// Caller-set ranges are preserved.
	cm2 := moreland.Kindlmann()
	cm2.SetMin(0)
	cm2.SetMax(1)
	rescaleColorMap(cm2, []float64{2, 8})
	if cm2.Min() != 0 || cm2.Max() != 1 {
		t.Errorf("range = [%v, %v], want [0, 1]", cm2.Min(), cm2.Max())
	}

	// A single repeated value still yields a non-degenerate range.
	cm3 := moreland.Kindlmann()
	rescaleColorMap(cm3, []float64{4, 4})
	if cm3.Min() == cm3.Max() {
		t.Error("degenerate range after rescale")
	}
}

func TestLinesValidationMessages(t *testing.T) {
	p, err := New(WithDimensions(UEFA()))
	if err != nil {
		t.Fatal(err)
	}
	plt := p.Draw()

	tests := []struct {
		name                       string
		xstart, ystart, xend, yend []float64
		want                       string
	}{
		{"ystart short", []float64{1, 2}, []float64{1}, []float64{3, 4}, []float64{3, 4}, "xstart and ystart must be the same size"},
		{"xend short", []float64{1, 2}, []float64{1, 2}, []float64{3}, []float64{3, 4}, "xstart and xend must be the same size"},
		{"yend short", []float64{1, 2}, []float64{1, 2}, []float64{3, 4}, []float64{3}, "ystart and yend must be the same size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Lines(plt, tt.xstart, tt.ystart, tt.xend, tt.yend, draw.LineStyle{})
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.UserMessage(err) != tt.want {
				t.Errorf("message = %q, want %q", errors.UserMessage(err), tt.want)
			}
		})
	}
}

func TestArrowsInvertsAndOrients(t *testing.T) {
	p, err := New() // statsbomb, inverted y
	if err != nil {
		t.Fatal(err)
	}
	plt := p.Draw()

	q, err := p.Arrows(plt, []float64{10}, []float64{20}, []float64{30}, []float64{50})
	if err != nil {
		t.Fatal(err)
	}
	// y is flipped: start y = 80-20 = 60, end y = 80-50 = 30, so v = -30.
	if q.XYs[0].Y != 60 {
		t.Errorf("start y = %v, want 60", q.XYs[0].Y)
	}
	if q.V[0] != -30 {
		t.Errorf("v = %v, want -30", q.V[0])
	}
	p.LegendArrow(plt, "pass", q)

	pv, err := New(Vertical())
	if err != nil {
		t.Fatal(err)
	}
	pltV := pv.Draw()
	qv, err := pv.Arrows(pltV, []float64{10}, []float64{20}, []float64{30}, []float64{50})
	if err != nil {
		t.Fatal(err)
	}
	// Vertical pitches swap the axes: the plotted x is the flipped y.
	if qv.XYs[0].X != 60 || qv.XYs[0].Y != 10 {
		t.Errorf("vertical start = (%v, %v), want (60, 10)", qv.XYs[0].X, qv.XYs[0].Y)
	}
}
