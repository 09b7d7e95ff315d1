package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"rasterplot"}, args...))
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	summary := filepath.Join(dir, "summary.md")

	_, err := runApp(t, "render",
		"--example", "line",
		"--width", "120",
		"--height", "100",
		"--output-dir", dir,
		"--summary", summary,
		"--quiet",
	)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "line.png"))
	if err != nil {
		t.Fatalf("expected line.png: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 100 {
		t.Errorf("expected 120x100 output, got %dx%d", b.Dx(), b.Dy())
	}

	data, err := os.ReadFile(summary)
	if err != nil {
		t.Fatalf("expected summary: %v", err)
	}
	if !strings.Contains(string(data), "line") {
		t.Errorf("summary should mention the scene:\n%s", data)
	}
}

func TestRenderCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rasterplot.yaml")
	yaml := "example: snowflake\nbackend: gogpu\nwidth: 64\nheight: 64\nformat: bmp\noutput_dir: " + dir + "\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := runApp(t, "render", "--config", cfgPath, "--quiet"); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "snowflake.bmp")); err != nil {
		t.Errorf("expected snowflake.bmp: %v", err)
	}
}

func TestRenderCommand_PresetFlagWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rasterplot.yaml")
	yaml := "example: snowflake\nwidth: 64\nheight: 64\noutput_dir: " + dir + "\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := runApp(t, "render", "--config", cfgPath, "--preset", "print", "--quiet"); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "snowflake.tiff")); err != nil {
		t.Errorf("expected the print preset's tiff output: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "snowflake.png")); err == nil {
		t.Error("screen preset output should not be written")
	}
}

func TestRenderCommand_DebugOutput(t *testing.T) {
	dir := t.TempDir()
	debugDir := filepath.Join(dir, "debug")

	_, err := runApp(t, "render",
		"--example", "histogram",
		"--width", "200",
		"--height", "200",
		"--output-dir", dir,
		"--debug",
		"--debug-dir", debugDir,
		"--quiet",
	)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, name := range []string{"layout.json", "calls.json", "surface.png"} {
		if _, err := os.Stat(filepath.Join(debugDir, "histogram", name)); err != nil {
			t.Errorf("expected debug file %s: %v", name, err)
		}
	}
}

func TestRenderCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown backend", []string{"--backend", "cairo"}},
		{"unknown format", []string{"--format", "gif"}},
		{"unknown example", []string{"--example", "pie"}},
		{"bad log level", []string{"--log-level", "loud"}},
		{"missing config", []string{"--config", "does-not-exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", "--output-dir", t.TempDir(), "--quiet"}, tt.args...)
			if _, err := runApp(t, args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWatchCommand_RequiresConfig(t *testing.T) {
	if _, err := runApp(t, "watch", "--quiet"); err == nil {
		t.Error("expected error without --config")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("expected version in output, got %q", out)
	}
}
