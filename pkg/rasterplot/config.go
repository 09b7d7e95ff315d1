// Package rasterplot provides a high-level API for rendering chart scenes to images.
package rasterplot

import (
	"runtime"

	"github.com/user/rasterplot/pkg/orchestrator"
	"github.com/user/rasterplot/pkg/ports"
)

// Backend names accepted by NewTargetFactory.
const (
	BackendGG    = "gg"
	BackendGoGPU = "gogpu"
)

// Minimum canvas edge in pixels.
const MinCanvasSize = 16

// Config represents the configuration for rendering a set of scenes.
type Config struct {
	// Canvas size
	Width  int // Canvas width (min: 16)
	Height int // Canvas height (min: 16)

	// Style
	Background ports.BackendColor // Replaces each scene's background when set via WithBackground

	// Rasterizer
	Backend string // "gg" or "gogpu"
	Workers int    // Parallel render jobs (0 = number of CPUs)

	// Output
	Format  ports.ImageFormat
	Quality int     // JPEG quality (1-100)
	Scale   float64 // Output scale factor (1.0 = canvas size)

	overrideBackground bool
}

// OverridesBackground reports whether WithBackground was applied.
func (c Config) OverridesBackground() bool {
	return c.overrideBackground
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with screen preset defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: screenDefaults(),
	}
}

// NewPrintConfigBuilder creates a new ConfigBuilder with print preset defaults.
func NewPrintConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: printDefaults(),
	}
}

// screenDefaults returns the screen preset configuration.
func screenDefaults() Config {
	return Config{
		Width:  800,
		Height: 800,

		Background: ports.White,

		Backend: BackendGG,
		Workers: 4,

		Format:  ports.FormatPNG,
		Quality: 90,
		Scale:   1.0,
	}
}

// printDefaults returns the print preset configuration.
func printDefaults() Config {
	return Config{
		Width:  2400,
		Height: 2400,

		Background: ports.White,

		Backend: BackendGG,
		Workers: 4,

		// Lossless, rendered large and downsampled
		Format:  ports.FormatTIFF,
		Quality: 100,
		Scale:   0.5,
	}
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	if cfg.Width < MinCanvasSize {
		cfg.Width = MinCanvasSize
	}
	if cfg.Height < MinCanvasSize {
		cfg.Height = MinCanvasSize
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if cfg.Quality < 1 {
		cfg.Quality = 1
	} else if cfg.Quality > 100 {
		cfg.Quality = 100
	}

	if cfg.Scale <= 0 {
		cfg.Scale = 1.0
	}

	if cfg.Backend != BackendGoGPU {
		cfg.Backend = BackendGG
	}

	return cfg
}

// WithWidth sets the canvas width.
// Values below MinCanvasSize will be raised to it.
func (b *ConfigBuilder) WithWidth(width int) *ConfigBuilder {
	b.config.Width = width
	return b
}

// WithHeight sets the canvas height.
func (b *ConfigBuilder) WithHeight(height int) *ConfigBuilder {
	b.config.Height = height
	return b
}

// WithBackground replaces every scene's background color.
func (b *ConfigBuilder) WithBackground(c ports.BackendColor) *ConfigBuilder {
	b.config.Background = c
	b.config.overrideBackground = true
	return b
}

// WithBackend selects the rasterizer. Unknown names fall back to "gg".
func (b *ConfigBuilder) WithBackend(name string) *ConfigBuilder {
	b.config.Backend = name
	return b
}

// WithWorkers sets the number of parallel render jobs.
// Use 0 for one per CPU.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.config.Workers = n
	return b
}

// WithFormat sets the output image format.
func (b *ConfigBuilder) WithFormat(format ports.ImageFormat) *ConfigBuilder {
	b.config.Format = format
	return b
}

// WithQuality sets the JPEG quality (1-100).
func (b *ConfigBuilder) WithQuality(quality int) *ConfigBuilder {
	b.config.Quality = quality
	return b
}

// WithScale sets the output scale factor.
func (b *ConfigBuilder) WithScale(scale float64) *ConfigBuilder {
	b.config.Scale = scale
	return b
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig(outputDir string) orchestrator.Config {
	return orchestrator.Config{
		CanvasWidth:  c.Width,
		CanvasHeight: c.Height,
		OutputDir:    outputDir,
		Format:       c.Format,
		Quality:      c.Quality,
		Scale:        c.Scale,
	}
}
