// Package main provides the CLI entry point for rasterplot.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/rasterplot/pkg/adapters/configwatch"
	"github.com/user/rasterplot/pkg/adapters/filesink"
	"github.com/user/rasterplot/pkg/adapters/imagecodec"
	"github.com/user/rasterplot/pkg/adapters/logger"
	"github.com/user/rasterplot/pkg/adapters/nullsink"
	"github.com/user/rasterplot/pkg/adapters/osfilesystem"
	"github.com/user/rasterplot/pkg/config"
	"github.com/user/rasterplot/pkg/demo"
	"github.com/user/rasterplot/pkg/orchestrator"
	"github.com/user/rasterplot/pkg/ports"
	"github.com/user/rasterplot/pkg/rasterplot"
	"github.com/user/rasterplot/pkg/stages/encode"
	"github.com/user/rasterplot/pkg/stages/layout"
	"github.com/user/rasterplot/pkg/stages/render"
	"github.com/user/rasterplot/pkg/summarizer"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "rasterplot",
		Usage:   l10n.T("Render chart scenes to images with a software rasterizer"),
		Version: version,
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  l10n.T("Render example scenes to image files"),
				Flags:  renderFlags(),
				Action: renderAction,
			},
			{
				Name:   "watch",
				Usage:  l10n.T("Re-render whenever the configuration file changes"),
				Flags:  renderFlags(),
				Action: watchAction,
			},
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, l10n.F("rasterplot version %s", version))
					return nil
				},
			},
		},
	}
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		// Scenes
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file"), Category: l10n.T("Scenes")},
		&cli.StringFlag{Name: "example", Aliases: []string{"e"}, Usage: l10n.T("Scene to render (histogram, line, snowflake, all)"), Category: l10n.T("Scenes")},
		&cli.StringFlag{Name: "preset", Aliases: []string{"p"}, Value: config.PresetScreen, Usage: l10n.T("Preset (screen, print)"), Category: l10n.T("Scenes")},

		// Rasterizer
		&cli.StringFlag{Name: "backend", Aliases: []string{"b"}, Usage: l10n.T("Rasterizer (gg, gogpu)"), Category: l10n.T("Rasterizer")},
		&cli.IntFlag{Name: "workers", Aliases: []string{"j"}, Usage: l10n.T("Parallel render jobs (0 = number of CPUs)"), Category: l10n.T("Rasterizer")},

		// Canvas and output
		&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Canvas width in pixels"), Category: l10n.T("Canvas and Output")},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Canvas height in pixels"), Category: l10n.T("Canvas and Output")},
		&cli.StringFlag{Name: "background", Usage: l10n.T("Background color (hex, e.g., #ffffff)"), Category: l10n.T("Canvas and Output")},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: l10n.T("Image format (png, jpeg, bmp, tiff)"), Category: l10n.T("Canvas and Output")},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("JPEG quality (1-100)"), Category: l10n.T("Canvas and Output")},
		&cli.Float64Flag{Name: "scale", Usage: l10n.T("Output scale factor"), Category: l10n.T("Canvas and Output")},
		&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: l10n.T("Output directory"), Category: l10n.T("Canvas and Output")},
		&cli.StringFlag{Name: "summary", Usage: l10n.T("Output execution summary to file (Markdown format)"), Category: l10n.T("Canvas and Output")},

		// Debug
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},

		// Logging
		&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
	}
}

// renderAction executes the render command.
func renderAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(cfg, c.Bool("quiet"))

	ctx, cancel := withSignals(c.Context, log)
	defer cancel()

	return runOnce(ctx, cfg, log)
}

// watchAction renders once, then again after each change to the config file.
func watchAction(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		return errors.New(l10n.T("--config is required for watch"))
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(cfg, c.Bool("quiet"))

	ctx, cancel := withSignals(c.Context, log)
	defer cancel()

	if err := runOnce(ctx, cfg, log); err != nil {
		log.Error(l10n.F("Failed to render: %s", err.Error()))
	}

	watcher := configwatch.New(configwatch.DefaultDebounce, log)
	err = watcher.Watch(ctx, path, func() {
		next, err := loadConfig(c)
		if err != nil {
			log.Error(l10n.F("Failed to load configuration: %s", err.Error()))
			return
		}
		if err := runOnce(ctx, next, log); err != nil {
			log.Error(l10n.F("Failed to render: %s", err.Error()))
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadConfig reads the config file (or preset defaults) and applies flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	var cfg config.Config
	// An explicit --preset seeds the defaults under the file's values.
	preset := ""
	if c.IsSet("preset") {
		preset = c.String("preset")
	}

	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFileWithPreset(path, preset)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.PresetDefaults(c.String("preset"))
	}

	if c.IsSet("example") {
		cfg.Example = c.String("example")
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("background") {
		cfg.Background = c.String("background")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("quality") {
		cfg.Quality = c.Int("quality")
	}
	if c.IsSet("scale") {
		cfg.Scale = c.Float64("scale")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("summary") {
		cfg.Summary = c.String("summary")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		if err := cfg.LogLevel.UnmarshalText([]byte(c.String("log-level"))); err != nil {
			return cfg, err
		}
	}

	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config, quiet bool) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(cfg.LogLevel)
}

// withSignals cancels the returned context on SIGINT or SIGTERM.
func withSignals(parent context.Context, log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			log.Warn(l10n.T("Interrupted, shutting down..."))
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// runOnce wires the pipeline for cfg and renders every selected scene.
func runOnce(ctx context.Context, cfg config.Config, log ports.Logger) error {
	start := time.Now()

	scenes, err := demo.Lookup(cfg.Example)
	if err != nil {
		return err
	}

	rc := cfg.Builder().Build()
	factory, err := rasterplot.NewTargetFactory(rc.Backend)
	if err != nil {
		return err
	}

	// Create adapters
	fs := osfilesystem.New()
	codec := imagecodec.New()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, codec)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	layoutStage := layout.NewStage()
	renderStage := render.NewStage(factory, sink, log, rc.Workers)
	encodeStage := encode.NewStage(codec, log)

	// Create orchestrator
	orch := orchestrator.New(layoutStage, renderStage, encodeStage, fs, sink, log)

	result, err := orch.Run(ctx, rc.ToOrchestratorConfig(cfg.OutputDir), rc.PrepareScenes(scenes))
	if err != nil {
		return err
	}

	if cfg.Summary != "" {
		summary := buildSummary(cfg, rc, result, time.Since(start))
		writer := summarizer.NewWriter(
			summarizer.NewMarkdownFormatter(summarizer.WithTranslator(l10n.T), summarizer.WithVersion(version)),
			fs,
		)
		if err := writer.Write(cfg.Summary, summary); err != nil {
			log.Error(l10n.F("Failed to write summary: %s", err.Error()))
		} else {
			log.Info(l10n.F("Summary saved to %s", cfg.Summary))
		}
	}

	return nil
}

func buildSummary(cfg config.Config, rc rasterplot.Config, result orchestrator.RunResult, elapsed time.Duration) *summarizer.Summary {
	b := summarizer.NewBuilder().WithRun(summarizer.RunInfo{
		Backend:    rc.Backend,
		Format:     rc.Format.String(),
		Workers:    rc.Workers,
		Scale:      rc.Scale,
		OutputDir:  cfg.OutputDir,
		DurationMs: elapsed.Milliseconds(),
	})
	for _, s := range result.Scenes {
		b.AddScene(summarizer.SceneInfo{
			Name:         s.Name,
			Caption:      s.Caption,
			CanvasWidth:  s.CanvasWidth,
			CanvasHeight: s.CanvasHeight,
			OutputWidth:  s.OutputWidth,
			OutputHeight: s.OutputHeight,
			Calls:        s.Calls,
			RenderMs:     s.RenderMs,
			FileSize:     s.FileSize,
			Path:         s.Path,
		})
	}
	return b.Build()
}
