package pitch

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/orkonung/pitchplot/pkg/errors"
)

// Theme controls the colors and line weights of a drawn pitch.
type Theme struct {
	Name string

	// Pitch is the background fill, Line the color of all markings.
	Pitch color.Color
	Line  color.Color

	// LineWidth is the marking stroke width in points.
	LineWidth float64

	// SpotRadius is the radius of the centre and penalty spots in points.
	SpotRadius float64

	// GoalAlpha scales the opacity of the goal markings, in [0, 1].
	GoalAlpha float64
}

// Classic returns a white pitch with dark lines.
func Classic() Theme {
	return Theme{
		Name:       "classic",
		Pitch:      color.White,
		Line:       color.NRGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xff},
		LineWidth:  2,
		SpotRadius: 2,
		GoalAlpha:  1,
	}
}

// Grass returns a muted green pitch with white lines.
func Grass() Theme {
	return Theme{
		Name:       "grass",
		Pitch:      color.NRGBA{R: 0xaa, G: 0xbb, B: 0x97, A: 0xff},
		Line:       color.White,
		LineWidth:  2,
		SpotRadius: 2,
		GoalAlpha:  1,
	}
}

// Night returns a dark pitch suited to presentation graphics.
func Night() Theme {
	return Theme{
		Name:       "night",
		Pitch:      color.NRGBA{R: 0x22, G: 0x31, B: 0x2b, A: 0xff},
		Line:       color.NRGBA{R: 0xc7, G: 0xd5, B: 0xcc, A: 0xff},
		LineWidth:  2,
		SpotRadius: 2,
		GoalAlpha:  1,
	}
}

var themes = map[string]func() Theme{
	"classic": Classic,
	"grass":   Grass,
	"night":   Night,
}

// ThemeByName returns the named built-in theme.
func ThemeByName(name string) (Theme, error) {
	if err := errors.ValidateThemeName(name); err != nil {
		return Theme{}, err
	}
	f, ok := themes[name]
	if !ok {
		return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", name)
	}
	return f(), nil
}

// ThemeNames returns the available built-in theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// themeFile is the TOML representation of a theme. Colors are hex strings.
type themeFile struct {
	Name       string   `toml:"name"`
	PitchColor string   `toml:"pitch_color"`
	LineColor  string   `toml:"line_color"`
	LineWidth  *float64 `toml:"line_width"`
	SpotRadius *float64 `toml:"spot_radius"`
	GoalAlpha  *float64 `toml:"goal_alpha"`
}

// LoadTheme reads a theme from a TOML file. Missing fields fall back to the
// classic theme's values.
//
// Example file:
//
//	name = "night"
//	pitch_color = "#22312b"
//	line_color = "#c7d5cc"
//	line_width = 2.0
//	goal_alpha = 0.8
func LoadTheme(path string) (Theme, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "load theme %s", path)
	}
	return themeFromFile(tf)
}

// ParseTheme decodes a theme from TOML data.
func ParseTheme(data string) (Theme, error) {
	var tf themeFile
	if _, err := toml.Decode(data, &tf); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme")
	}
	return themeFromFile(tf)
}

func themeFromFile(tf themeFile) (Theme, error) {
	t := Classic()
	if tf.Name != "" {
		if err := errors.ValidateThemeName(tf.Name); err != nil {
			return Theme{}, err
		}
		t.Name = tf.Name
	}
	if tf.PitchColor != "" {
		c, err := ParseHexColor(tf.PitchColor)
		if err != nil {
			return Theme{}, err
		}
		t.Pitch = c
	}
	if tf.LineColor != "" {
		c, err := ParseHexColor(tf.LineColor)
		if err != nil {
			return Theme{}, err
		}
		t.Line = c
	}
	if tf.LineWidth != nil {
		t.LineWidth = *tf.LineWidth
	}
	if tf.SpotRadius != nil {
		t.SpotRadius = *tf.SpotRadius
	}
	if tf.GoalAlpha != nil {
		if *tf.GoalAlpha < 0 || *tf.GoalAlpha > 1 {
			return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "goal_alpha must be in [0, 1]")
		}
		t.GoalAlpha = *tf.GoalAlpha
	}
	return t, nil
}

// ParseHexColor parses #rgb, #rrggbb and #rrggbbaa color strings.
func ParseHexColor(s string) (color.NRGBA, error) {
	orig := s
	s = strings.TrimPrefix(s, "#")

	hexByte := func(sub string) (uint8, error) {
		var v uint8
		_, err := fmt.Sscanf(sub, "%02x", &v)
		return v, err
	}

	c := color.NRGBA{A: 0xff}
	var err error
	switch len(s) {
	case 3:
		expand := func(ch byte) string { return string([]byte{ch, ch}) }
		if c.R, err = hexByte(expand(s[0])); err == nil {
			if c.G, err = hexByte(expand(s[1])); err == nil {
				c.B, err = hexByte(expand(s[2]))
			}
		}
	case 8:
		if c.A, err = hexByte(s[6:8]); err != nil {
			break
		}
		fallthrough
	case 6:
		if c.R, err = hexByte(s[0:2]); err == nil {
			if c.G, err = hexByte(s[2:4]); err == nil {
				c.B, err = hexByte(s[4:6])
			}
		}
	default:
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidTheme, "invalid hex color %q", orig)
	}
	if err != nil {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidTheme, "invalid hex color %q", orig)
	}
	return c, nil
}
