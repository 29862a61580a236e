// Package pipeline provides the core render pipeline for pitchplot.
//
// This package implements the complete compose → export pipeline that can be
// used by CLI and service components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Compose: Build the pitch figure and overlay the event data
//  2. Export: Encode the figure in the requested formats (PNG, SVG, PDF)
//
// Rendering is deterministic in the event data and options, so artifacts are
// cached under content-derived keys.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Kind:    pipeline.KindShotMap,
//	    Preset:  "statsbomb",
//	    Theme:   "grass",
//	    Formats: []string{"png"},
//	}
//	result, err := runner.Execute(ctx, events, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/orkonung/pitchplot/pkg/errors"
	plotio "github.com/orkonung/pitchplot/pkg/io"
	"github.com/orkonung/pitchplot/pkg/pitch"
)

// Render kinds.
const (
	// KindShotMap scatters a marker per event, sized by its value.
	KindShotMap = "shotmap"

	// KindArrowMap draws an arrow per event from start to end coordinates.
	KindArrowMap = "arrowmap"
)

// Defaults applied by SetDefaults.
const (
	DefaultPreset = "statsbomb"
	DefaultTheme  = "classic"

	// DefaultWidth is the figure width in points.
	DefaultWidth = 600.0

	// DefaultScale is the raster scale factor for PNG output.
	DefaultScale = 1.0
)

// ValidKinds is the set of supported render kinds.
var ValidKinds = map[string]bool{
	KindShotMap:  true,
	KindArrowMap: true,
}

// Options contains all configuration for the render pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	Kind     string  `json:"kind"`
	Preset   string  `json:"preset,omitempty"`
	Theme    string  `json:"theme,omitempty"`
	Vertical bool    `json:"vertical,omitempty"`
	Half     bool    `json:"half,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
	ColorMap string  `json:"color_map,omitempty"`

	Formats []string `json:"formats,omitempty"`

	// Refresh skips cache reads and overwrites cached artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)

	// CustomTheme overrides Theme when non-nil, for themes loaded from files.
	CustomTheme *pitch.Theme `json:"-"`

	// Logger receives the run's progress logs. Execute falls back to the
	// runner's logger when nil.
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run in logs and service responses.
	ID uuid.UUID

	// EventsHash is the content hash of the event data.
	EventsHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// Cached reports whether all artifacts came from cache.
	Cached bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EventCount  int
	ComposeTime time.Duration
	ExportTime  time.Duration
}

// ValidateKind checks that a render kind is valid.
func ValidateKind(kind string) error {
	if !ValidKinds[kind] {
		return errors.New(errors.ErrCodeInvalidKind, "invalid kind: %q (must be one of: shotmap, arrowmap)", kind)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f, plotio.Formats()...); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaults applies defaults for unset fields.
func (o *Options) SetDefaults() {
	if o.Preset == "" {
		o.Preset = DefaultPreset
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{plotio.FormatPNG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks required fields and applies defaults.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := ValidateKind(o.Kind); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := pitch.Preset(o.Preset); err != nil {
		return err
	}
	if o.CustomTheme == nil {
		if _, err := pitch.ThemeByName(o.Theme); err != nil {
			return err
		}
	}
	if o.ColorMap != "" {
		if _, err := pitch.ColorMapByName(o.ColorMap); err != nil {
			return err
		}
	}
	if o.Width < 0 || o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width and scale must be positive")
	}
	return nil
}
