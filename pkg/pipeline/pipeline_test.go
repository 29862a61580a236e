package pipeline

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/orkonung/pitchplot/pkg/cache"
	"github.com/orkonung/pitchplot/pkg/errors"
	plotio "github.com/orkonung/pitchplot/pkg/io"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func fptr(v float64) *float64 { return &v }

func shotEvents() []plotio.Event {
	return []plotio.Event{
		{X: 110.2, Y: 38.5, Value: fptr(0.31)},
		{X: 105.0, Y: 42.0, Value: fptr(0.08)},
	}
}

func passEvents() []plotio.Event {
	return []plotio.Event{
		{X: 60, Y: 40, EndX: fptr(90), EndY: fptr(30)},
		{X: 90, Y: 30, EndX: fptr(110), EndY: fptr(38)},
	}
}

func TestOptionsValidateDefaults(t *testing.T) {
	opts := Options{Kind: KindShotMap}
	if err := opts.Validate(); err != nil {
		t.Fatal(err)
	}
	if opts.Preset != DefaultPreset || opts.Theme != DefaultTheme {
		t.Errorf("defaults not applied: preset=%q theme=%q", opts.Preset, opts.Theme)
	}
	if opts.Width != DefaultWidth || opts.Scale != DefaultScale {
		t.Errorf("size defaults not applied: width=%v scale=%v", opts.Width, opts.Scale)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != plotio.FormatPNG {
		t.Errorf("format default not applied: %v", opts.Formats)
	}
}

func TestExecuteLogsThroughOptionsLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	runner := NewRunner(nil, nil, testLogger())
	defer runner.Close()

	opts := Options{Kind: KindShotMap, Formats: []string{"svg"}, Logger: logger}
	if _, err := runner.Execute(context.Background(), shotEvents(), opts); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("composed figure")) {
		t.Errorf("per-run logger saw no compose log, got: %s", buf.String())
	}
}

func TestOptionsValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing kind", Options{}, errors.ErrCodeInvalidKind},
		{"unknown kind", Options{Kind: "heatmap"}, errors.ErrCodeInvalidKind},
		{"unknown format", Options{Kind: KindShotMap, Formats: []string{"bmp"}}, errors.ErrCodeInvalidFormat},
		{"unknown preset", Options{Kind: KindShotMap, Preset: "wyscout-ultra"}, errors.ErrCodeInvalidPreset},
		{"unknown theme", Options{Kind: KindShotMap, Theme: "neon"}, errors.ErrCodeInvalidTheme},
		{"unknown colormap", Options{Kind: KindShotMap, ColorMap: "rainbow"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestComposeShotMap(t *testing.T) {
	opts := Options{Kind: KindShotMap, ColorMap: "kindlmann"}
	opts.SetDefaults()

	plt, w, h, err := Compose(shotEvents(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if plt == nil {
		t.Fatal("nil plot")
	}
	if w <= 0 || h <= 0 {
		t.Errorf("figure size = (%v, %v)", w, h)
	}
	// Horizontal StatsBomb pitch is wider than tall.
	if h >= w {
		t.Errorf("h = %v >= w = %v for a horizontal pitch", h, w)
	}
}

func TestComposeArrowMapRequiresEnds(t *testing.T) {
	opts := Options{Kind: KindArrowMap}
	opts.SetDefaults()

	if _, _, _, err := Compose(passEvents(), opts); err != nil {
		t.Fatalf("arrowmap with ends: %v", err)
	}

	_, _, _, err := Compose(shotEvents(), opts)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %q, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestComposeVerticalAspect(t *testing.T) {
	opts := Options{Kind: KindShotMap, Vertical: true}
	opts.SetDefaults()

	_, w, h, err := Compose(shotEvents(), opts)
	if err != nil {
		t.Fatal(err)
	}
	// Vertical pitch is taller than wide.
	if h <= w {
		t.Errorf("h = %v <= w = %v for a vertical pitch", h, w)
	}
}

func TestExecuteProducesArtifacts(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, testLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), shotEvents(), Options{
		Kind:    KindShotMap,
		Formats: []string{"png", "svg"},
		Logger:  testLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Cached {
		t.Error("first run should not be cached")
	}
	if result.Stats.EventCount != 2 {
		t.Errorf("event count = %d", result.Stats.EventCount)
	}
	if len(result.Artifacts) != 2 {
		t.Fatalf("got %d artifacts, want 2", len(result.Artifacts))
	}
	if !bytes.HasPrefix(result.Artifacts["png"], []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("png artifact missing signature")
	}
	if !bytes.Contains(result.Artifacts["svg"], []byte("<svg")) {
		t.Error("svg artifact missing <svg element")
	}
}

func TestExecuteUsesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, testLogger())
	defer runner.Close()

	opts := Options{Kind: KindArrowMap, Formats: []string{"svg"}, Logger: testLogger()}
	ctx := context.Background()

	first, err := runner.Execute(ctx, passEvents(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Error("first run should miss the cache")
	}

	second, err := runner.Execute(ctx, passEvents(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Error("second run should hit the cache")
	}
	if !bytes.Equal(first.Artifacts["svg"], second.Artifacts["svg"]) {
		t.Error("cached artifact differs from rendered one")
	}
	if first.EventsHash != second.EventsHash {
		t.Error("event hash is not deterministic")
	}

	// Different options miss the cache.
	vopts := opts
	vopts.Vertical = true
	third, err := runner.Execute(ctx, passEvents(), vopts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached {
		t.Error("changed options should miss the cache")
	}
}

func TestExecuteRefreshSkipsCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, testLogger())
	defer runner.Close()

	opts := Options{Kind: KindShotMap, Formats: []string{"svg"}, Logger: testLogger()}
	ctx := context.Background()

	if _, err := runner.Execute(ctx, shotEvents(), opts); err != nil {
		t.Fatal(err)
	}

	opts.Refresh = true
	result, err := runner.Execute(ctx, shotEvents(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.Cached {
		t.Error("refresh should bypass the cache")
	}
}

func TestNewRunnerNilDefaults(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	if runner.Cache == nil || runner.Keyer == nil || runner.Logger == nil {
		t.Error("nil arguments should be replaced with defaults")
	}

	// A nil cache means caching is disabled, not broken.
	result, err := runner.Execute(context.Background(), shotEvents(), Options{
		Kind:    KindShotMap,
		Formats: []string{"svg"},
		Logger:  testLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Cached {
		t.Error("null cache should never report cached results")
	}
}
