package pipeline

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/orkonung/pitchplot/pkg/errors"
	plotio "github.com/orkonung/pitchplot/pkg/io"
	"github.com/orkonung/pitchplot/pkg/pitch"
	"github.com/orkonung/pitchplot/pkg/quiver"
)

// valueSizeScale converts an event value (typically an expected-goals number
// in [0, 1]) to a marker area in points squared.
const valueSizeScale = 720

// Compose builds the pitch figure for the given events and options. The
// returned size preserves the pitch aspect ratio at the configured width.
func Compose(events []plotio.Event, opts Options) (*plot.Plot, vg.Length, vg.Length, error) {
	p, err := newPitch(opts)
	if err != nil {
		return nil, 0, 0, err
	}
	plt := p.Draw()

	switch opts.Kind {
	case KindShotMap:
		if err := composeShotMap(p, plt, events, opts); err != nil {
			return nil, 0, 0, err
		}
	case KindArrowMap:
		if err := composeArrowMap(p, plt, events, opts); err != nil {
			return nil, 0, 0, err
		}
	default:
		return nil, 0, 0, errors.New(errors.ErrCodeInvalidKind, "invalid kind: %q", opts.Kind)
	}

	for _, e := range events {
		if e.Label == "" {
			continue
		}
		if _, err := p.Annotate(plt, e.X, e.Y, e.Label); err != nil {
			return nil, 0, 0, err
		}
	}

	w, h := p.FigureSize(vg.Points(opts.Width))
	return plt, w, h, nil
}

func newPitch(opts Options) (*pitch.Pitch, error) {
	popts := []pitch.Option{pitch.WithPreset(opts.Preset)}
	if opts.CustomTheme != nil {
		popts = append(popts, pitch.WithTheme(*opts.CustomTheme))
	} else {
		popts = append(popts, pitch.WithThemeName(opts.Theme))
	}
	if opts.Vertical {
		popts = append(popts, pitch.Vertical())
	}
	if opts.Half {
		popts = append(popts, pitch.Half())
	}
	return pitch.New(popts...)
}

func composeShotMap(p *pitch.Pitch, plt *plot.Plot, events []plotio.Event, opts Options) error {
	x := make([]float64, len(events))
	y := make([]float64, len(events))
	for i, e := range events {
		x[i], y[i] = e.X, e.Y
	}

	sopts := []pitch.ScatterOption{pitch.Alpha(0.8)}
	if values, ok := eventValues(events); ok {
		sizes := make([]float64, len(values))
		for i, v := range values {
			sizes[i] = v * valueSizeScale
		}
		sopts = append(sopts, pitch.Sizes(sizes))

		if opts.ColorMap != "" {
			cm, err := pitch.ColorMapByName(opts.ColorMap)
			if err != nil {
				return err
			}
			sopts = append(sopts, pitch.ColorMap(cm, values))
		}
	}

	_, err := p.Scatter(plt, x, y, sopts...)
	return err
}

func composeArrowMap(p *pitch.Pitch, plt *plot.Plot, events []plotio.Event, opts Options) error {
	xs := make([]float64, len(events))
	ys := make([]float64, len(events))
	xe := make([]float64, len(events))
	ye := make([]float64, len(events))
	for i, e := range events {
		if !e.HasEnd() {
			return errors.New(errors.ErrCodeInvalidInput, "event %d: arrowmap requires end coordinates", i)
		}
		xs[i], ys[i] = e.X, e.Y
		xe[i], ye[i] = *e.EndX, *e.EndY
	}

	var qopts []quiver.Option
	if opts.ColorMap != "" {
		if values, ok := eventValues(events); ok {
			cm, err := pitch.ColorMapByName(opts.ColorMap)
			if err != nil {
				return err
			}
			qopts = append(qopts, quiver.ColorMap(cm, values))
		}
	}

	_, err := p.Arrows(plt, xs, ys, xe, ye, qopts...)
	return err
}

// eventValues collects per-event values. It reports false unless every event
// carries one, since partial value sets cannot drive sizes or color maps.
func eventValues(events []plotio.Event) ([]float64, bool) {
	values := make([]float64, len(events))
	for i, e := range events {
		if e.Value == nil {
			return nil, false
		}
		values[i] = *e.Value
	}
	return values, len(values) > 0
}
