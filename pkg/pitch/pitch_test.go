package pitch

import (
	"math"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/orkonung/pitchplot/pkg/errors"
)

func TestPresetLookup(t *testing.T) {
	for _, name := range PresetNames() {
		d, err := Preset(name)
		if err != nil {
			t.Errorf("Preset(%q) error: %v", name, err)
			continue
		}
		if d.Name != name {
			t.Errorf("Preset(%q).Name = %q", name, d.Name)
		}
		if d.Length <= 0 || d.Width <= 0 {
			t.Errorf("Preset(%q) has non-positive extent", name)
		}
	}

	if _, err := Preset("bogus"); !errors.Is(err, errors.ErrCodeInvalidPreset) {
		t.Errorf("unknown preset error code = %q, want INVALID_PRESET", errors.GetCode(err))
	}
}

func TestTransformInvertY(t *testing.T) {
	p, err := New() // statsbomb: inverted y
	if err != nil {
		t.Fatal(err)
	}

	// StatsBomb y counts from the top of the pitch.
	x, y := p.Transform(60, 0)
	if x != 60 || y != 80 {
		t.Errorf("Transform(60, 0) = (%v, %v), want (60, 80)", x, y)
	}
	x, y = p.Transform(60, 80)
	if x != 60 || y != 0 {
		t.Errorf("Transform(60, 80) = (%v, %v), want (60, 0)", x, y)
	}
}

func TestTransformVerticalSwap(t *testing.T) {
	p, err := New(WithDimensions(UEFA()), Vertical())
	if err != nil {
		t.Fatal(err)
	}

	x, y := p.Transform(30, 10)
	if x != 10 || y != 30 {
		t.Errorf("vertical Transform(30, 10) = (%v, %v), want (10, 30)", x, y)
	}
}

func TestTransformNoInversionNoSwap(t *testing.T) {
	p, err := New(WithDimensions(UEFA()))
	if err != nil {
		t.Fatal(err)
	}
	x, y := p.Transform(30, 10)
	if x != 30 || y != 10 {
		t.Errorf("Transform(30, 10) = (%v, %v), want (30, 10)", x, y)
	}
}

func TestExtentHalfPitch(t *testing.T) {
	p, err := New(WithDimensions(UEFA()), Half(), WithPadding(Padding{Left: 2, Right: 2, Bottom: 2, Top: 2}))
	if err != nil {
		t.Fatal(err)
	}

	xmin, xmax, ymin, ymax := p.extent()
	if xmin != 105.0/2-2 {
		t.Errorf("half pitch xmin = %v, want %v", xmin, 105.0/2-2)
	}
	if xmax != 107 || ymin != -2 || ymax != 70 {
		t.Errorf("extent = (%v, %v, %v, %v)", xmin, xmax, ymin, ymax)
	}
}

func TestExtentVerticalHalf(t *testing.T) {
	p, err := New(WithDimensions(UEFA()), Vertical(), Half(), WithPadding(Padding{}))
	if err != nil {
		t.Fatal(err)
	}

	_, xmax, ymin, ymax := p.extent()
	if xmax != 68 {
		t.Errorf("vertical xmax = %v, want 68 (pitch width)", xmax)
	}
	if ymin != 105.0/2 || ymax != 105 {
		t.Errorf("vertical half y range = [%v, %v], want [52.5, 105]", ymin, ymax)
	}
}

func TestFigureSizeAspect(t *testing.T) {
	p, err := New(WithDimensions(Custom(100, 50)), WithPadding(Padding{}))
	if err != nil {
		t.Fatal(err)
	}

	w, h := p.FigureSize(vg.Points(800))
	if w != vg.Points(800) {
		t.Errorf("width = %v, want 800pt", w)
	}
	if math.Abs(float64(h-vg.Points(400))) > 1e-9 {
		t.Errorf("height = %v, want 400pt", h)
	}
}

func TestWithGoalTypeValidation(t *testing.T) {
	if _, err := New(WithGoalType("hexagonal")); err == nil {
		t.Error("expected error for unknown goal type")
	}
	if _, err := New(WithGoalType(GoalBox)); err != nil {
		t.Errorf("GoalBox: %v", err)
	}
}

func TestWithPresetAndThemeName(t *testing.T) {
	p, err := New(WithPreset("opta"), WithThemeName("night"))
	if err != nil {
		t.Fatal(err)
	}
	if p.Dimensions().Name != "opta" {
		t.Errorf("preset = %q, want opta", p.Dimensions().Name)
	}
	if p.Theme().Name != "night" {
		t.Errorf("theme = %q, want night", p.Theme().Name)
	}

	if _, err := New(WithPreset("wyscout-ultra")); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestDrawSetsRanges(t *testing.T) {
	p, err := New(WithDimensions(UEFA()), WithPadding(Padding{Left: 1, Right: 2, Bottom: 3, Top: 4}))
	if err != nil {
		t.Fatal(err)
	}

	plt := p.Draw()
	if plt.X.Min != -1 || plt.X.Max != 107 {
		t.Errorf("x range = [%v, %v], want [-1, 107]", plt.X.Min, plt.X.Max)
	}
	if plt.Y.Min != -3 || plt.Y.Max != 72 {
		t.Errorf("y range = [%v, %v], want [-3, 72]", plt.Y.Min, plt.Y.Max)
	}
	if plt.BackgroundColor != p.Theme().Pitch {
		t.Error("background color not taken from theme")
	}
}

func TestMarkingPathsGeometry(t *testing.T) {
	p, err := New(WithDimensions(UEFA()))
	if err != nil {
		t.Fatal(err)
	}

	paths := p.markingPaths()
	if len(paths) == 0 {
		t.Fatal("no marking paths")
	}

	// Every marking stays within the pitch rectangle.
	for _, path := range paths {
		for _, pt := range path {
			if pt[0] < -1e-9 || pt[0] > 105+1e-9 || pt[1] < -1e-9 || pt[1] > 68+1e-9 {
				t.Fatalf("marking point %v outside pitch", pt)
			}
		}
	}

	// Penalty spots sit at the standard distance from each goal line.
	spots := p.spots()
	if spots[1][0] != 11 || spots[2][0] != 94 {
		t.Errorf("penalty spots at x=%v and x=%v, want 11 and 94", spots[1][0], spots[2][0])
	}
}

func TestGoalPaths(t *testing.T) {
	pBox, _ := New(WithDimensions(UEFA()), WithGoalType(GoalBox))
	paths := pBox.goalPaths()
	if len(paths) != 2 {
		t.Fatalf("got %d goal paths, want 2", len(paths))
	}
	// Box goals extend behind the goal line.
	if paths[0][1][0] != -2 {
		t.Errorf("left box goal depth x = %v, want -2", paths[0][1][0])
	}

	pLine, _ := New(WithDimensions(UEFA()))
	paths = pLine.goalPaths()
	if len(paths[0]) != 2 {
		t.Errorf("line goal path has %d points, want 2", len(paths[0]))
	}
	wantY0 := (68 - 7.32) / 2
	if math.Abs(paths[0][0][1]-wantY0) > 1e-9 {
		t.Errorf("goal post y = %v, want %v", paths[0][0][1], wantY0)
	}
}

func TestEllipseArc(t *testing.T) {
	pts := ellipseArc(0, 0, 2, 1, 0, math.Pi)
	first, last := pts[0], pts[len(pts)-1]
	if math.Abs(first[0]-2) > 1e-9 || math.Abs(first[1]) > 1e-9 {
		t.Errorf("arc start = %v, want (2, 0)", first)
	}
	if math.Abs(last[0]+2) > 1e-9 || math.Abs(last[1]) > 1e-9 {
		t.Errorf("arc end = %v, want (-2, 0)", last)
	}
	for _, pt := range pts {
		v := pt[0]*pt[0]/4 + pt[1]*pt[1]
		if math.Abs(v-1) > 1e-9 {
			t.Errorf("arc point %v off the ellipse", pt)
		}
	}
}
