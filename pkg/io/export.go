package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// baseDPI is the raster resolution at scale 1.
const baseDPI = 96

// WritePNG rasterizes the plot at the given size. Scale multiplies the DPI,
// so a scale of 2 doubles the pixel dimensions without changing the layout.
func WritePNG(plt *plot.Plot, width, height vg.Length, scale float64, w io.Writer) error {
	if scale <= 0 {
		scale = 1
	}
	c := vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseDPI(int(baseDPI*scale)),
	)
	plt.Draw(draw.New(c))
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// WriteSVG writes the plot as a vector SVG.
func WriteSVG(plt *plot.Plot, width, height vg.Length, w io.Writer) error {
	c := vgsvg.New(width, height)
	plt.Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// WritePDF writes the plot as a single-page PDF.
func WritePDF(plt *plot.Plot, width, height vg.Length, w io.Writer) error {
	c := vgpdf.New(width, height)
	plt.Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// Write writes the plot to w in the named format (see Formats). The scale
// parameter only affects raster formats.
func Write(plt *plot.Plot, width, height vg.Length, scale float64, format string, w io.Writer) error {
	switch format {
	case FormatPNG:
		return WritePNG(plt, width, height, scale, w)
	case FormatSVG:
		return WriteSVG(plt, width, height, w)
	case FormatPDF:
		return WritePDF(plt, width, height, w)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Export writes the plot to a file, inferring the format from the path
// extension.
func Export(plt *plot.Plot, width, height vg.Length, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(plt, width, height, 1, format, f)
}
