package pitch

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/orkonung/pitchplot/pkg/errors"
)

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		th, err := ThemeByName(name)
		if err != nil {
			t.Errorf("ThemeByName(%q) error: %v", name, err)
			continue
		}
		if th.Name != name {
			t.Errorf("ThemeByName(%q).Name = %q", name, th.Name)
		}
		if th.Pitch == nil || th.Line == nil {
			t.Errorf("theme %q has nil colors", name)
		}
	}

	if _, err := ThemeByName("neon"); !errors.Is(err, errors.ErrCodeInvalidTheme) {
		t.Errorf("unknown theme error code = %q, want INVALID_THEME", errors.GetCode(err))
	}
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme(`
name = "midnight"
pitch_color = "#22312b"
line_color = "#c7d5cc"
line_width = 1.5
goal_alpha = 0.8
`)
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "midnight" {
		t.Errorf("name = %q", th.Name)
	}
	if th.Pitch != (color.NRGBA{R: 0x22, G: 0x31, B: 0x2b, A: 0xff}) {
		t.Errorf("pitch color = %v", th.Pitch)
	}
	if th.LineWidth != 1.5 {
		t.Errorf("line width = %v", th.LineWidth)
	}
	if th.GoalAlpha != 0.8 {
		t.Errorf("goal alpha = %v", th.GoalAlpha)
	}
	// Unset fields fall back to the classic theme.
	if th.SpotRadius != Classic().SpotRadius {
		t.Errorf("spot radius = %v, want classic default", th.SpotRadius)
	}
}

func TestParseThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", `name = `},
		{"bad color", `pitch_color = "#zzz"`},
		{"alpha out of range", `goal_alpha = 1.5`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTheme(tt.data); !errors.Is(err, errors.ErrCodeInvalidTheme) {
				t.Errorf("error code = %q, want INVALID_THEME", errors.GetCode(err))
			}
		})
	}
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	if err := os.WriteFile(path, []byte(`line_color = "#fff"`), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadTheme(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Line != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("line color = %v", th.Line)
	}

	if _, err := LoadTheme(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#aabb97", color.NRGBA{R: 0xaa, G: 0xbb, B: 0x97, A: 0xff}},
		{"22312b", color.NRGBA{R: 0x22, G: 0x31, B: 0x2b, A: 0xff}},
		{"#11223380", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "#ff", "#ggg", "#12345", "red"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q) succeeded, want error", in)
		}
	}
}

func TestColorMapByName(t *testing.T) {
	for _, name := range ColorMapNames() {
		cm, err := ColorMapByName(name)
		if err != nil {
			t.Errorf("ColorMapByName(%q) error: %v", name, err)
			continue
		}
		if cm == nil {
			t.Errorf("ColorMapByName(%q) returned nil", name)
		}
	}
	if _, err := ColorMapByName("rainbow9000"); err == nil {
		t.Error("expected error for unknown color map")
	}
}
