package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/orkonung/pitchplot/pkg/cache"
	"github.com/orkonung/pitchplot/pkg/errors"
	plotio "github.com/orkonung/pitchplot/pkg/io"
	"github.com/orkonung/pitchplot/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and service can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete compose → export pipeline with caching.
func (r *Runner) Execute(ctx context.Context, events []plotio.Event, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}

	result := &Result{
		ID:        uuid.New(),
		Artifacts: make(map[string][]byte),
	}
	result.Stats.EventCount = len(events)

	eventData, err := plotio.MarshalEvents(events)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash events")
	}
	result.EventsHash = cache.Hash(eventData)

	// Try to get all formats from cache
	if !opts.Refresh {
		allCached := true
		for _, format := range opts.Formats {
			key := r.renderKey(result.EventsHash, opts, format)
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, "render")
				allCached = false
				break
			}
			observability.Cache().OnCacheHit(ctx, "render")
			result.Artifacts[format] = data
		}
		if allCached && len(result.Artifacts) == len(opts.Formats) {
			result.Cached = true
			opts.Logger.Debug("all artifacts cached",
				"render_id", result.ID,
				"formats", opts.Formats)
			return result, nil
		}
		// Partial hits are discarded and everything is re-rendered so all
		// formats come from the same compose pass.
		result.Artifacts = make(map[string][]byte)
	}

	// Stage 1: Compose
	composeStart := time.Now()
	observability.Render().OnComposeStart(ctx, opts.Kind, len(events))
	plt, w, h, err := Compose(events, opts)
	result.Stats.ComposeTime = time.Since(composeStart)
	observability.Render().OnComposeComplete(ctx, opts.Kind, result.Stats.ComposeTime, err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("composed figure",
		"render_id", result.ID,
		"kind", opts.Kind,
		"events", len(events),
		"duration", result.Stats.ComposeTime)

	// Stage 2: Export
	exportStart := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)
	for _, format := range opts.Formats {
		var buf bytes.Buffer
		if err := plotio.Write(plt, w, h, opts.Scale, format, &buf); err != nil {
			observability.Render().OnRenderComplete(ctx, opts.Formats, time.Since(exportStart), err)
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "export %s", format)
		}
		result.Artifacts[format] = buf.Bytes()
	}
	result.Stats.ExportTime = time.Since(exportStart)
	observability.Render().OnRenderComplete(ctx, opts.Formats, result.Stats.ExportTime, nil)

	// Cache each format
	for format, data := range result.Artifacts {
		key := r.renderKey(result.EventsHash, opts, format)
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "render", len(data))
	}

	opts.Logger.Info("exported artifacts",
		"render_id", result.ID,
		"formats", opts.Formats,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// renderKey builds the cache key for one output format.
func (r *Runner) renderKey(eventsHash string, opts Options, format string) string {
	theme := opts.Theme
	if opts.CustomTheme != nil {
		// Custom themes are keyed by name; name collisions between different
		// custom themes are accepted since the file cache is per-user.
		theme = "custom:" + opts.CustomTheme.Name
	}
	return r.Keyer.RenderKey(eventsHash, cache.RenderKeyOpts{
		Kind:     opts.Kind,
		Preset:   opts.Preset,
		Theme:    theme,
		Format:   format,
		Vertical: opts.Vertical,
		Half:     opts.Half,
		Width:    opts.Width,
		Scale:    opts.Scale,
		ColorMap: opts.ColorMap,
	})
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
