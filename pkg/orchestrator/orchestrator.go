// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/rasterplot/pkg/pipeline"
	"github.com/user/rasterplot/pkg/ports"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Canvas
	CanvasWidth  int
	CanvasHeight int

	// Output
	OutputDir string
	Format    ports.ImageFormat
	Quality   int
	Scale     float64
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:  800,
		CanvasHeight: 800,
		OutputDir:    ".",
		Format:       ports.FormatPNG,
		Quality:      90,
		Scale:        1,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult]
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult]
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs          ports.FileSystem
	sink        ports.DebugSink
	logger      ports.Logger
}

// New creates a new Orchestrator.
func New(
	layoutStage pipeline.Stage[pipeline.LayoutInput, pipeline.LayoutResult],
	renderStage pipeline.Stage[pipeline.RenderInput, pipeline.RenderResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		layoutStage: layoutStage,
		renderStage: renderStage,
		encodeStage: encodeStage,
		fs:          fs,
		sink:        sink,
		logger:      logger,
	}
}

// Run lays out, renders, encodes and writes every scene.
func (o *Orchestrator) Run(ctx context.Context, config Config, scenes []pipeline.Scene) (RunResult, error) {
	start := time.Now()
	if len(scenes) == 0 {
		return RunResult{}, fmt.Errorf("no scenes to render")
	}
	o.logger.Info(l10n.F("Rendering %d scenes", len(scenes)))

	// 1. Layout
	jobs := make([]pipeline.RenderJob, 0, len(scenes))
	for _, scene := range scenes {
		layout, err := o.layoutStage.Execute(ctx, pipeline.LayoutInput{
			CanvasWidth:  config.CanvasWidth,
			CanvasHeight: config.CanvasHeight,
			Frame:        scene.Frame,
		})
		if err != nil {
			o.logger.Error(l10n.F("Failed to calculate layout: %s", err))
			return RunResult{}, fmt.Errorf("layout stage: %s: %w", scene.Name, err)
		}
		o.logger.Debug(l10n.F("Layout for %s: plot %dx%d at (%d, %d)",
			scene.Name, layout.Plot.Width, layout.Plot.Height, layout.Plot.X, layout.Plot.Y))

		if o.sink.Enabled() {
			if data, err := json.MarshalIndent(layout, "", "  "); err == nil {
				if err := o.sink.SaveLayoutJSON(scene.Name, data); err != nil {
					o.logger.Warn(l10n.F("Failed to save debug output for %s: %v", scene.Name, err))
				}
			}
		}
		jobs = append(jobs, pipeline.RenderJob{Scene: scene, Layout: layout})
	}

	// 2. Render
	rendered, err := o.renderStage.Execute(ctx, pipeline.RenderInput{Jobs: jobs})
	if err != nil {
		o.logger.Error(l10n.F("Failed to render: %s", err))
		return RunResult{}, fmt.Errorf("render stage: %w", err)
	}

	// 3. Encode
	encodeInput := pipeline.EncodeInput{
		Scenes:  rendered.Scenes,
		Format:  config.Format,
		Quality: config.Quality,
		Scale:   config.Scale,
	}
	encoded, err := o.encodeStage.Execute(ctx, encodeInput)
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode image: %s", err))
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}
	if len(encoded.Images) != len(rendered.Scenes) {
		return RunResult{}, fmt.Errorf("encode stage: got %d images for %d scenes", len(encoded.Images), len(rendered.Scenes))
	}

	// 4. Write outputs
	result := RunResult{Scenes: make([]SceneResult, 0, len(encoded.Images))}
	for i, img := range encoded.Images {
		path := OutputPath(config.OutputDir, img.Name, config.Format)
		if err := o.fs.WriteFile(path, img.Data); err != nil {
			o.logger.Error(l10n.F("Failed to write output: %s", err))
			return RunResult{}, fmt.Errorf("write output: %w", err)
		}
		o.logger.Info(l10n.F("Output saved to %s", path))

		r := rendered.Scenes[i]
		b := r.Image.Bounds()
		result.Scenes = append(result.Scenes, SceneResult{
			Name:         img.Name,
			Caption:      jobs[i].Scene.Caption,
			Path:         path,
			CanvasWidth:  b.Dx(),
			CanvasHeight: b.Dy(),
			OutputWidth:  img.Width,
			OutputHeight: img.Height,
			Calls:        r.CallCount,
			RenderMs:     r.DurationMs,
			FileSize:     int64(len(img.Data)),
		})
	}

	result.DurationMs = time.Since(start).Milliseconds()
	o.logger.Info(l10n.T("Pipeline completed successfully"))
	return result, nil
}

// OutputPath returns where a scene's image is written.
func OutputPath(dir, scene string, format ports.ImageFormat) string {
	return filepath.Join(dir, scene+format.Extension())
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	Scenes     []SceneResult
	DurationMs int64
}

// SceneResult describes one written scene.
type SceneResult struct {
	Name         string
	Caption      string
	Path         string
	CanvasWidth  int
	CanvasHeight int
	OutputWidth  int
	OutputHeight int
	Calls        int
	RenderMs     int64
	FileSize     int64
}
