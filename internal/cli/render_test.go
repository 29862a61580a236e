package cli

import (
	"context"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/orkonung/pitchplot/pkg/pipeline"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		format string
		multi  bool
		want   string
	}{
		{"explicit single", "out.png", "events.json", "png", false, "out.png"},
		{"derived from input", "", "shots/events.json", "svg", false, "shots/events.svg"},
		{"multi strips extension", "figure.png", "events.json", "svg", true, "figure.svg"},
		{"multi base path", "figure", "events.json", "pdf", true, "figure.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.output, tt.input, tt.format, tt.multi)
			if got != tt.want {
				t.Errorf("outputPath(%q, %q, %q, %v) = %q, want %q",
					tt.output, tt.input, tt.format, tt.multi, got, tt.want)
			}
		})
	}
}

func TestPipelineOptionsThemeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	data := `
name = "custom-night"
pitch_color = "#22312b"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := renderOpts{
		kind:      pipeline.KindShotMap,
		themeFile: path,
		formats:   []string{"png"},
	}
	popts, err := opts.pipelineOptions()
	if err != nil {
		t.Fatal(err)
	}
	if popts.CustomTheme == nil {
		t.Fatal("CustomTheme not set")
	}
	if popts.CustomTheme.Name != "custom-night" {
		t.Errorf("theme name = %q", popts.CustomTheme.Name)
	}
	if popts.CustomTheme.Pitch != (color.NRGBA{R: 0x22, G: 0x31, B: 0x2b, A: 0xff}) {
		t.Errorf("pitch color = %v", popts.CustomTheme.Pitch)
	}

	opts.themeFile = filepath.Join(dir, "missing.toml")
	if _, err := opts.pipelineOptions(); err == nil {
		t.Error("expected error for missing theme file")
	}
}

func TestRunRenderPropagatesComposeError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "events.json")
	// Arrow maps require end coordinates; these events have none.
	data := `{"events": [{"x": 50, "y": 30}, {"x": 60, "y": 40}]}`
	if err := os.WriteFile(input, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	opts := renderOpts{
		kind:    pipeline.KindArrowMap,
		preset:  pipeline.DefaultPreset,
		theme:   pipeline.DefaultTheme,
		width:   pipeline.DefaultWidth,
		scale:   pipeline.DefaultScale,
		formats: []string{"png"},
		output:  filepath.Join(dir, "out.png"),
		noCache: true,
	}
	ctx := withLogger(context.Background(), c.Logger)
	err := c.runRender(ctx, input, &opts)
	if err == nil {
		t.Fatal("runRender returned nil for a failing arrowmap render")
	}
	if _, statErr := os.Stat(opts.output); statErr == nil {
		t.Error("artifact written despite render failure")
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "events.json")

	artifacts := map[string][]byte{
		"png": {0x89, 'P', 'N', 'G'},
		"svg": []byte("<svg/>"),
	}
	paths, err := writeArtifacts(artifacts, []string{"png", "svg"}, "", input)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	for i, want := range []string{filepath.Join(dir, "events.png"), filepath.Join(dir, "events.svg")} {
		if paths[i] != want {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want)
		}
		data, err := os.ReadFile(paths[i])
		if err != nil || len(data) == 0 {
			t.Errorf("artifact %q not written", paths[i])
		}
	}
}
