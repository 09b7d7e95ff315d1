// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/rasterplot/pkg/orchestrator"
	"github.com/user/rasterplot/pkg/ports"
	"github.com/user/rasterplot/pkg/rasterplot"
)

// Preset names.
const (
	PresetScreen = "screen"
	PresetPrint  = "print"
)

// Config represents the full configuration file for rasterplot.
type Config struct {
	// Scenes
	Example string `yaml:"example"`
	Preset  string `yaml:"preset"`

	// Rasterizer
	Backend string `yaml:"backend"`
	Workers int    `yaml:"workers"`

	// Canvas
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"` // empty keeps each scene's own background

	// Output
	OutputDir string  `yaml:"output_dir"`
	Format    string  `yaml:"format"`
	Quality   int     `yaml:"quality"`
	Scale     float64 `yaml:"scale"`
	Summary   string  `yaml:"summary"`

	// Logging
	LogLevel ports.LogLevel `yaml:"log_level"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with the screen preset's values.
func Defaults() Config {
	return PresetDefaults(PresetScreen)
}

// PresetDefaults returns a Config filled from the named preset.
// Unknown names use the screen preset.
func PresetDefaults(preset string) Config {
	var b *rasterplot.ConfigBuilder
	if preset == PresetPrint {
		b = rasterplot.NewPrintConfigBuilder()
	} else {
		preset = PresetScreen
		b = rasterplot.NewConfigBuilder()
	}
	rc := b.Build()

	return Config{
		Example: "all",
		Preset:  preset,

		Backend: rc.Backend,
		Workers: rc.Workers,

		Width:  rc.Width,
		Height: rc.Height,

		OutputDir: ".",
		Format:    rc.Format.String(),
		Quality:   rc.Quality,
		Scale:     rc.Scale,

		LogLevel: ports.LevelInfo,

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
// Keys missing from the file keep their preset values.
func LoadFromFile(path string) (Config, error) {
	return LoadFromFileWithPreset(path, "")
}

// LoadFromFileWithPreset is LoadFromFile with the preset forced to preset.
// An empty preset uses the one the file names.
func LoadFromFileWithPreset(path, preset string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PresetDefaults(preset), err
	}
	return ParseWithPreset(data, preset)
}

// Parse decodes YAML configuration over the defaults of the preset it names.
func Parse(data []byte) (Config, error) {
	return ParseWithPreset(data, "")
}

// ParseWithPreset decodes YAML configuration over the defaults of preset,
// which also replaces the file's own preset key. An empty preset uses the
// one the file names.
func ParseWithPreset(data []byte, preset string) (Config, error) {
	if preset == "" {
		var head struct {
			Preset string `yaml:"preset"`
		}
		if err := yaml.Unmarshal(data, &head); err != nil {
			return Defaults(), fmt.Errorf("parse config: %w", err)
		}
		preset = head.Preset
	}

	cfg := PresetDefaults(preset)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.Preset = PresetDefaults(preset).Preset
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Backend != rasterplot.BackendGG && c.Backend != rasterplot.BackendGoGPU {
		return fmt.Errorf("unknown backend %q (want gg or gogpu)", c.Backend)
	}
	if _, err := ports.ParseImageFormat(c.Format); err != nil {
		return err
	}
	if c.Scale < 0 {
		return fmt.Errorf("scale must not be negative, got %v", c.Scale)
	}
	if c.Background != "" {
		if _, err := ParseColor(c.Background); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" into a backend color.
func ParseColor(hex string) (ports.BackendColor, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 && len(s) != 8 {
		return ports.Black, fmt.Errorf("invalid color %q", hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ports.Black, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	alpha := 1.0
	if len(s) == 8 {
		alpha = float64(v&0xff) / 255
		v >>= 8
	}
	c := ports.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
	c.Alpha = alpha
	return c, nil
}

// Builder returns a rasterplot.ConfigBuilder seeded with c's values.
// Call Validate first; invalid values are coerced by the builder.
func (c Config) Builder() *rasterplot.ConfigBuilder {
	var b *rasterplot.ConfigBuilder
	if c.Preset == PresetPrint {
		b = rasterplot.NewPrintConfigBuilder()
	} else {
		b = rasterplot.NewConfigBuilder()
	}

	b.WithWidth(c.Width).
		WithHeight(c.Height).
		WithBackend(c.Backend).
		WithWorkers(c.Workers).
		WithQuality(c.Quality).
		WithScale(c.Scale)

	if format, err := ports.ParseImageFormat(c.Format); err == nil {
		b.WithFormat(format)
	}
	if c.Background != "" {
		if bg, err := ParseColor(c.Background); err == nil {
			b.WithBackground(bg)
		}
	}
	return b
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() (orchestrator.Config, error) {
	if _, err := ports.ParseImageFormat(c.Format); err != nil {
		return orchestrator.Config{}, err
	}
	return c.Builder().Build().ToOrchestratorConfig(c.OutputDir), nil
}
