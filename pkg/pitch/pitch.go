// Package pitch draws soccer pitches with gonum/plot and overlays event
// markers on them.
//
// A Pitch couples a provider coordinate system (StatsBomb, Opta, metric) with
// a visual theme and an orientation. Draw returns a regular *plot.Plot with
// the pitch markings in place; the overlay helpers (Scatter, Arrows, Lines,
// Annotate) accept event data in provider coordinates and handle the y-axis
// inversion and vertical rotation internally, so the same data plots
// correctly on any orientation.
package pitch

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/orkonung/pitchplot/pkg/errors"
)

// GoalType selects how goals are drawn.
type GoalType string

const (
	// GoalLine draws a thickened segment on the goal line between the posts.
	GoalLine GoalType = "line"
	// GoalBox draws a shallow box behind the goal line.
	GoalBox GoalType = "box"
)

// Padding is the margin around the pitch in provider units.
type Padding struct {
	Left, Right, Bottom, Top float64
}

// Pitch describes a pitch to draw: coordinate system, theme, orientation
// and framing.
type Pitch struct {
	dims     Dimensions
	theme    Theme
	vertical bool
	half     bool
	pad      Padding
	goalType GoalType
}

// Option configures a Pitch.
type Option func(*Pitch) error

// WithDimensions sets the pitch coordinate system.
func WithDimensions(d Dimensions) Option {
	return func(p *Pitch) error {
		p.dims = d
		return nil
	}
}

// WithPreset sets the coordinate system by preset name
// (see PresetNames).
func WithPreset(name string) Option {
	return func(p *Pitch) error {
		d, err := Preset(name)
		if err != nil {
			return err
		}
		p.dims = d
		return nil
	}
}

// WithTheme sets the visual theme.
func WithTheme(t Theme) Option {
	return func(p *Pitch) error {
		p.theme = t
		return nil
	}
}

// WithThemeName sets a built-in theme by name (see ThemeNames).
func WithThemeName(name string) Option {
	return func(p *Pitch) error {
		t, err := ThemeByName(name)
		if err != nil {
			return err
		}
		p.theme = t
		return nil
	}
}

// Vertical rotates the pitch so the direction of play runs up the page.
func Vertical() Option {
	return func(p *Pitch) error {
		p.vertical = true
		return nil
	}
}

// Half restricts the view to the attacking half of the pitch.
func Half() Option {
	return func(p *Pitch) error {
		p.half = true
		return nil
	}
}

// WithPadding sets the margin around the pitch in provider units.
func WithPadding(pad Padding) Option {
	return func(p *Pitch) error {
		p.pad = pad
		return nil
	}
}

// WithGoalType selects the goal drawing style.
func WithGoalType(g GoalType) Option {
	return func(p *Pitch) error {
		switch g {
		case GoalLine, GoalBox:
			p.goalType = g
			return nil
		default:
			return errors.New(errors.ErrCodeInvalidInput, "unknown goal type %q", g)
		}
	}
}

// New creates a Pitch. The default is a horizontal StatsBomb pitch with the
// classic theme, line goals and a small uniform padding.
func New(opts ...Option) (*Pitch, error) {
	p := &Pitch{
		dims:     StatsBomb(),
		theme:    Classic(),
		pad:      Padding{Left: 4, Right: 4, Bottom: 4, Top: 4},
		goalType: GoalLine,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Dimensions returns the pitch coordinate system.
func (p *Pitch) Dimensions() Dimensions { return p.dims }

// Theme returns the pitch theme.
func (p *Pitch) Theme() Theme { return p.theme }

// IsVertical reports whether the pitch is drawn vertically.
func (p *Pitch) IsVertical() bool { return p.vertical }

// Transform maps provider coordinates to plot coordinates: the y axis is
// un-inverted for providers that count from the top, and x and y are swapped
// on vertical pitches.
func (p *Pitch) Transform(x, y float64) (float64, float64) {
	if p.dims.InvertY {
		y = p.dims.Width - y
	}
	if p.vertical {
		return y, x
	}
	return x, y
}

// Draw returns a new plot with the pitch drawn on it. Axes are hidden and
// the axis ranges are fixed to the pitch extent plus padding; overlays added
// afterwards keep the framing as long as they stay on the pitch.
func (p *Pitch) Draw() *plot.Plot {
	plt := plot.New()
	plt.HideAxes()
	plt.BackgroundColor = p.theme.Pitch

	xmin, xmax, ymin, ymax := p.extent()
	plt.X.Min, plt.X.Max = xmin, xmax
	plt.Y.Min, plt.Y.Max = ymin, ymax

	plt.Add(&markings{pitch: p})
	return plt
}

// extent returns the plot-coordinate bounding box of the framed pitch.
func (p *Pitch) extent() (xmin, xmax, ymin, ymax float64) {
	length, width := p.dims.Length, p.dims.Width
	if p.vertical {
		xmin, xmax = -p.pad.Left, width+p.pad.Right
		ymin, ymax = -p.pad.Bottom, length+p.pad.Top
		if p.half {
			ymin = length/2 - p.pad.Bottom
		}
		return xmin, xmax, ymin, ymax
	}
	xmin, xmax = -p.pad.Left, length+p.pad.Right
	ymin, ymax = -p.pad.Bottom, width+p.pad.Top
	if p.half {
		xmin = length/2 - p.pad.Left
	}
	return xmin, xmax, ymin, ymax
}

// FigureSize returns a figure size with the given base width whose aspect
// ratio matches the framed pitch, so circles stay round.
func (p *Pitch) FigureSize(base vg.Length) (w, h vg.Length) {
	xmin, xmax, ymin, ymax := p.extent()
	aspect := (ymax - ymin) / (xmax - xmin)
	return base, vg.Length(float64(base) * aspect)
}
