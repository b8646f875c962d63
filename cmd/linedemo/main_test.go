package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gogpu/linekit"
	"github.com/gogpu/linekit/text"
)

func testSettings() settings {
	return settings{
		FontSize:    16,
		Output:      "linedemo.png",
		Width:       64,
		Height:      32,
		Supersample: 2,
		Foreground:  "#000",
		Accent:      "#f00",
		Background:  "#fff",
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { linekit.SetLogger(nil) })

	root := newApp(io.Discard, testSettings()).rootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGeometryCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"classify diagonal", []string{"classify", "0", "0", "10", "5"}, "direction=Diagonal slope=NonSteep m=0.5 c=0\n"},
		{"classify vertical", []string{"classify", "3", "0", "3", "8"}, "direction=Vertical slope=Steep"},
		{"intersect", []string{"intersect", "0", "0", "10", "10", "0", "10", "10", "0"}, "5 5 angle="},
		{"intersect parallel", []string{"intersect", "0", "0", "10", "0", "0", "5", "10", "5"}, "parallel distance=5\n"},
		{"intersect outside", []string{"intersect", "0", "0", "1", "1", "5", "0", "6", "2"}, "none\n"},
		{"stroke", []string{"stroke", "--width", "2", "0", "0", "10", "0"}, "0 1 10 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if !strings.HasPrefix(out, tt.want) {
				t.Errorf("output = %q, want prefix %q", out, tt.want)
			}
		})
	}
}

func TestStrokeCommand_FourSides(t *testing.T) {
	out, err := execute(t, "stroke", "--one-sided", "--width", "3", "1", "1", "5", "4")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "\n"); n != 4 {
		t.Errorf("printed %d sides, want 4:\n%s", n, out)
	}
}

func TestGeometryCommands_BadArgs(t *testing.T) {
	for _, args := range [][]string{
		{"classify", "0", "0", "x", "1"},
		{"classify", "0", "0"},
		{"intersect", "1", "2", "3"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestLayoutCommand(t *testing.T) {
	out, err := execute(t, "layout", "--filter", "digits", "ab12")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d glyphs, want 2:\n%s", len(lines), out)
	}
	if lines[0] != "0:2 '1' x=0.00 y=0.00" {
		t.Errorf("first glyph = %q", lines[0])
	}
}

func TestLayoutCommand_Truncation(t *testing.T) {
	out, err := execute(t, "layout", "--max", "2", "abcdef")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "ellipsis"); n != 3 {
		t.Errorf("got %d ellipsis glyphs, want 3:\n%s", n, out)
	}
}

func TestLayoutCommand_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte("filter = \"letters\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "layout", "--config", path, "a1b")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("got %d glyphs, want 2:\n%s", n, out)
	}

	// Flags override the file.
	out, err = execute(t, "layout", "--config", path, "--filter", "digits", "a1b")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "'1'") || strings.Count(out, "\n") != 1 {
		t.Errorf("flag override output:\n%s", out)
	}
}

func TestLayoutCommand_Errors(t *testing.T) {
	if _, err := execute(t, "layout", "--filter", "vowels", "abc"); err == nil {
		t.Error("unknown filter should fail")
	}
	if _, err := execute(t, "layout", "--config", filepath.Join(t.TempDir(), "missing.toml"), "abc"); err == nil {
		t.Error("missing config should fail")
	}
	if _, err := execute(t, "layout", "--size", "0", "abc"); err == nil {
		t.Error("zero size should fail")
	}
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if _, err := execute(t, "render", "--angle", "10", "-o", path, "Hi"); err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("image size = %v, want 64x32", b.Size())
	}

	// Something other than the background was drawn.
	bg := img.At(0, 0)
	drawn := false
	for y := 0; y < 32 && !drawn; y++ {
		for x := 0; x < 64; x++ {
			if img.At(x, y) != bg {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Error("rendered image is blank")
	}
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("LINEDEMO_FONT_SIZE", "20")
	t.Setenv("LINEDEMO_SUPERSAMPLE", "0")
	s, err := loadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s.FontSize != 20 {
		t.Errorf("FontSize = %v, want 20", s.FontSize)
	}
	if s.Output != "linedemo.png" || s.Width != 640 {
		t.Errorf("defaults not applied: %+v", s)
	}
	if s.Supersample != 1 {
		t.Errorf("Supersample = %d, want clamped to 1", s.Supersample)
	}

	t.Setenv("LINEDEMO_FONT_SIZE", "-4")
	if _, err := loadSettings(); err == nil {
		t.Error("negative font size should fail")
	}
	t.Setenv("LINEDEMO_FONT_SIZE", "big")
	if _, err := loadSettings(); err == nil {
		t.Error("non-numeric font size should fail")
	}
}

func TestLoadConfig_Default(t *testing.T) {
	cfg, unknown, err := loadConfig("")
	if err != nil || unknown != nil {
		t.Fatalf("loadConfig(\"\") = %v, %v", unknown, err)
	}
	if cfg.Filter != text.FilterNone || cfg.MaxVisible != 0 {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}

	path := filepath.Join(t.TempDir(), "c.toml")
	if err := os.WriteFile(path, []byte("max_visible = 3\nfont = \"serif\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, unknown, err = loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxVisible != 3 {
		t.Errorf("MaxVisible = %d, want 3", cfg.MaxVisible)
	}
	if len(unknown) != 1 || unknown[0] != "font" {
		t.Errorf("unknown keys = %v, want [font]", unknown)
	}
}
