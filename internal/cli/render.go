package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orkonung/pitchplot/pkg/errors"
	plotio "github.com/orkonung/pitchplot/pkg/io"
	"github.com/orkonung/pitchplot/pkg/pipeline"
	"github.com/orkonung/pitchplot/pkg/pitch"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	kind      string  // render kind: "shotmap" or "arrowmap"
	preset    string  // pitch coordinate preset: "statsbomb", "uefa", "opta"
	theme     string  // built-in theme name
	themeFile string  // path to a TOML theme file (overrides --theme)
	vertical  bool    // rotate the pitch so play runs up the page
	half      bool    // restrict to the attacking half
	output    string  // output file path (or base path for multiple formats)
	width     float64 // figure width in points
	scale     float64 // raster scale factor for PNG
	cmap      string  // color map name for value-colored overlays
	noCache   bool    // disable the artifact cache
	refresh   bool    // re-render even if cached
	formats   []string
}

// renderCommand creates the render command for generating pitch figures.
//
// Default settings:
//   - kind: shotmap
//   - preset: statsbomb
//   - theme: classic
//   - format: png at 600pt width
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		kind:   pipeline.KindShotMap,
		preset: pipeline.DefaultPreset,
		theme:  pipeline.DefaultTheme,
		width:  pipeline.DefaultWidth,
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an event file to a pitch figure",
		Long: `Render reads a JSON event file and draws the events on a soccer pitch.

Shot maps scatter a marker per event, sized by its value (e.g. expected
goals). Arrow maps draw an arrow per event and require end coordinates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.output != "" {
				if err := errors.ValidateOutputPath(opts.output); err != nil {
					return err
				}
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", opts.kind, "render kind: shotmap (default), arrowmap")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", opts.preset, "coordinate preset: statsbomb (default), uefa, opta")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", opts.theme, "theme: classic (default), grass, night")
	cmd.Flags().StringVar(&opts.themeFile, "theme-file", "", "TOML theme file (overrides --theme)")
	cmd.Flags().BoolVar(&opts.vertical, "vertical", false, "rotate the pitch so play runs up the page")
	cmd.Flags().BoolVar(&opts.half, "half", false, "draw only the attacking half")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "figure width in points")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for png output")
	cmd.Flags().StringVar(&opts.cmap, "cmap", "", "color map for value-colored overlays (see themes --cmaps)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	return cmd
}

// runRender loads events, executes the pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	events, err := plotio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d events", len(events))

	popts, err := opts.pipelineOptions()
	if err != nil {
		return err
	}
	popts.Logger = logger

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Rendering "+opts.kind)
	spinner.Start()
	result, err := runner.Execute(ctx, events, popts)
	spinner.Stop()
	if err != nil {
		if spinner.Cancelled() {
			return ctx.Err()
		}
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d events", len(events)))

	paths, err := writeArtifacts(result.Artifacts, opts.formats, opts.output, input)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", opts.kind)
	printStats(result.Stats.EventCount, opts.formats, result.Cached)
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// pipelineOptions converts the flags to pipeline options, loading the theme
// file when one is given.
func (o *renderOpts) pipelineOptions() (pipeline.Options, error) {
	popts := pipeline.Options{
		Kind:     o.kind,
		Preset:   o.preset,
		Theme:    o.theme,
		Vertical: o.vertical,
		Half:     o.half,
		Width:    o.width,
		Scale:    o.scale,
		ColorMap: o.cmap,
		Formats:  o.formats,
		Refresh:  o.refresh,
	}
	if o.themeFile != "" {
		theme, err := pitch.LoadTheme(o.themeFile)
		if err != nil {
			return pipeline.Options{}, err
		}
		popts.CustomTheme = &theme
	}
	return popts, nil
}

// writeArtifacts writes each rendered format to its output path and returns
// the written paths.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(output, input, format, len(formats) > 1)
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath derives the output path for one format. With a single format the
// explicit --output path is used as-is; with multiple formats, or when no
// output is given, the path is the base name plus the format extension.
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	} else if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + format
}
