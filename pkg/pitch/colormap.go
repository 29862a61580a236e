package pitch

import (
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/orkonung/pitchplot/pkg/errors"
)

// colorMaps maps names to gonum color map constructors. These are existing
// library maps, looked up by name for CLI and service use.
var colorMaps = map[string]func() palette.ColorMap{
	"bluered":           func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"kindlmann":         func() palette.ColorMap { return moreland.Kindlmann() },
	"extendedkindlmann": func() palette.ColorMap { return moreland.ExtendedKindlmann() },
	"blackbody":         func() palette.ColorMap { return moreland.BlackBody() },
	"extendedblackbody": func() palette.ColorMap { return moreland.ExtendedBlackBody() },
}

// ColorMapByName returns one of gonum's color maps by name
// (see ColorMapNames).
func ColorMapByName(name string) (palette.ColorMap, error) {
	f, ok := colorMaps[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown color map %q", name)
	}
	return f(), nil
}

// ColorMapNames returns the available color map names, sorted.
func ColorMapNames() []string {
	names := make([]string, 0, len(colorMaps))
	for name := range colorMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
