// Package io provides JSON import for event data and figure export to
// image formats.
//
// # Event Format
//
// Event files are JSON objects with a single "events" array:
//
//	{
//	  "events": [
//	    {"x": 110.2, "y": 38.5, "value": 0.31, "label": "Kane"},
//	    {"x": 85.0, "y": 40.0, "end_x": 110.0, "end_y": 38.0}
//	  ]
//	}
//
// Required per event:
//   - x, y: Start coordinates in the provider coordinate system
//
// Optional:
//   - end_x, end_y: End coordinates, required together; arrow overlays need them
//   - value: Scalar mapped to marker size or color (e.g. expected goals)
//   - label: Annotation text
//
// # Export
//
// Figures export to PNG, SVG and PDF. Use [Export] to write to a file path
// with the format inferred from the extension, or [Write] to write a chosen
// format to any io.Writer:
//
//	plt := p.Draw()
//	err := io.Export(plt, w, h, "shots.png")
package io

// Supported export formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

// Formats returns the supported export formats.
func Formats() []string {
	return []string{FormatPDF, FormatPNG, FormatSVG}
}
