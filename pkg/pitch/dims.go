package pitch

import (
	"sort"

	"github.com/orkonung/pitchplot/pkg/errors"
)

// Dimensions describes a pitch coordinate system and the geometry of its
// markings, in provider units. Radii carry separate x and y components so
// coordinate systems with a non-uniform aspect (such as Opta's 100x100
// percentages) still draw round-looking circles.
type Dimensions struct {
	Name string

	// Length runs along the direction of play (the x axis in provider
	// coordinates), Width across it.
	Length, Width float64

	PenaltyAreaLength, PenaltyAreaWidth float64
	SixYardLength, SixYardWidth         float64

	// PenaltySpot is the distance of the penalty spot from the goal line.
	PenaltySpot float64

	// CircleRadiusX/Y size the centre circle and the penalty arcs.
	CircleRadiusX, CircleRadiusY float64
	CornerRadiusX, CornerRadiusY float64

	GoalWidth, GoalDepth float64

	// InvertY is set for providers whose y axis runs top to bottom
	// (StatsBomb, Wyscout). The pitch transform flips these back so event
	// data plots the right way up.
	InvertY bool
}

// StatsBomb returns the StatsBomb coordinate system: 120x80 with an
// inverted y axis.
func StatsBomb() Dimensions {
	return Dimensions{
		Name:              "statsbomb",
		Length:            120,
		Width:             80,
		PenaltyAreaLength: 18,
		PenaltyAreaWidth:  44,
		SixYardLength:     6,
		SixYardWidth:      20,
		PenaltySpot:       12,
		CircleRadiusX:     10,
		CircleRadiusY:     10,
		CornerRadiusX:     1,
		CornerRadiusY:     1,
		GoalWidth:         8,
		GoalDepth:         2,
		InvertY:           true,
	}
}

// UEFA returns a metric 105x68 pitch with standard marking distances.
func UEFA() Dimensions {
	return Dimensions{
		Name:              "uefa",
		Length:            105,
		Width:             68,
		PenaltyAreaLength: 16.5,
		PenaltyAreaWidth:  40.32,
		SixYardLength:     5.5,
		SixYardWidth:      18.32,
		PenaltySpot:       11,
		CircleRadiusX:     9.15,
		CircleRadiusY:     9.15,
		CornerRadiusX:     1,
		CornerRadiusY:     1,
		GoalWidth:         7.32,
		GoalDepth:         2,
		InvertY:           false,
	}
}

// Opta returns the Opta coordinate system: 100x100 percentages of a metric
// pitch, so marking distances and radii are scaled per axis.
func Opta() Dimensions {
	const realLength, realWidth = 105.0, 68.0
	return Dimensions{
		Name:              "opta",
		Length:            100,
		Width:             100,
		PenaltyAreaLength: 16.5 / realLength * 100,
		PenaltyAreaWidth:  40.32 / realWidth * 100,
		SixYardLength:     5.5 / realLength * 100,
		SixYardWidth:      18.32 / realWidth * 100,
		PenaltySpot:       11 / realLength * 100,
		CircleRadiusX:     9.15 / realLength * 100,
		CircleRadiusY:     9.15 / realWidth * 100,
		CornerRadiusX:     1 / realLength * 100,
		CornerRadiusY:     1 / realWidth * 100,
		GoalWidth:         7.32 / realWidth * 100,
		GoalDepth:         2 / realLength * 100,
		InvertY:           false,
	}
}

// Custom returns a metric-style pitch with the given playing area.
// Marking distances keep their standard metric values.
func Custom(length, width float64) Dimensions {
	d := UEFA()
	d.Name = "custom"
	d.Length = length
	d.Width = width
	return d
}

// presets maps preset names to dimension constructors.
var presets = map[string]func() Dimensions{
	"statsbomb": StatsBomb,
	"uefa":      UEFA,
	"opta":      Opta,
}

// Preset returns the named dimension preset.
func Preset(name string) (Dimensions, error) {
	if err := errors.ValidatePresetName(name); err != nil {
		return Dimensions{}, err
	}
	f, ok := presets[name]
	if !ok {
		return Dimensions{}, errors.New(errors.ErrCodeInvalidPreset, "unknown pitch preset %q", name)
	}
	return f(), nil
}

// PresetNames returns the available preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
