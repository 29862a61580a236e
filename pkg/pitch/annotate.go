package pitch

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/orkonung/pitchplot/pkg/errors"
)

// Annotate places a text label at the given provider coordinates, colored
// with the theme's line color.
func (p *Pitch) Annotate(plt *plot.Plot, x, y float64, text string) (*plotter.Labels, error) {
	px, py := p.Transform(x, y)
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: px, Y: py}},
		Labels: []string{text},
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "annotate")
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = p.theme.Line
	}
	plt.Add(labels)
	return labels, nil
}
