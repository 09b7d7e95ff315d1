// Package render implements the scene rendering stage.
package render

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/user/rasterplot/pkg/adapters/rasterbackend"
	"github.com/user/rasterplot/pkg/adapters/tracebackend"
	"github.com/user/rasterplot/pkg/chart"
	"github.com/user/rasterplot/pkg/pipeline"
	"github.com/user/rasterplot/pkg/ports"
)

// Stage renders scenes onto software surfaces.
// Every job gets its own target and backend; nothing is shared between workers.
type Stage struct {
	factory    ports.TargetFactory
	sink       ports.DebugSink
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new render stage.
func NewStage(factory ports.TargetFactory, sink ports.DebugSink, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		factory:    factory,
		sink:       sink,
		logger:     logger.WithComponent("render"),
		numWorkers: numWorkers,
	}
}

// Execute renders all jobs and returns them in input order.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	if len(input.Jobs) == 0 {
		return pipeline.RenderResult{Scenes: []pipeline.RenderedScene{}}, nil
	}

	workers := min(s.numWorkers, len(input.Jobs))
	s.logger.Debug("Rendering %d scenes with %d workers on %s", len(input.Jobs), workers, s.factory.Name())

	result, err := s.executeParallel(ctx, input, workers)
	if err != nil {
		return result, err
	}

	s.logger.Debug("Rendering completed")
	return result, nil
}

// indexedScene holds a scene with its original index for sorting.
type indexedScene struct {
	index int
	scene pipeline.RenderedScene
}

// executeParallel renders scenes using a worker pool.
func (s *Stage) executeParallel(ctx context.Context, input pipeline.RenderInput, workers int) (pipeline.RenderResult, error) {
	numJobs := len(input.Jobs)
	jobs := make(chan int, numJobs)
	results := make(chan indexedScene, numJobs)
	errChan := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go s.worker(ctx, &wg, input, jobs, results, errChan)
	}

	for i := 0; i < numJobs; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
		close(errChan)
	}()

	scenes := make([]indexedScene, 0, numJobs)
	for result := range results {
		scenes = append(scenes, result)
		s.saveDebug(result.scene)
	}

	if err := <-errChan; err != nil {
		return pipeline.RenderResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return pipeline.RenderResult{}, err
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].index < scenes[j].index
	})

	rendered := make([]pipeline.RenderedScene, len(scenes))
	for i, sc := range scenes {
		rendered[i] = sc.scene
	}
	return pipeline.RenderResult{Scenes: rendered}, nil
}

// worker renders scenes from the jobs channel.
func (s *Stage) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	input pipeline.RenderInput,
	jobs <-chan int,
	results chan<- indexedScene,
	errChan chan<- error,
) {
	defer wg.Done()

	for idx := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job := input.Jobs[idx]
		scene, err := s.RenderScene(job)
		if err != nil {
			select {
			case errChan <- fmt.Errorf("render scene %q: %w", job.Scene.Name, err):
			default:
			}
			return
		}

		results <- indexedScene{index: idx, scene: scene}
	}
}

// RenderScene draws a single job on a fresh target.
func (s *Stage) RenderScene(job pipeline.RenderJob) (pipeline.RenderedScene, error) {
	start := time.Now()
	canvas := job.Layout.Canvas

	dt, err := s.factory.NewTarget(canvas.Width, canvas.Height, color.Transparent)
	if err != nil {
		return pipeline.RenderedScene{}, fmt.Errorf("create target: %w", err)
	}
	if c, ok := dt.(io.Closer); ok {
		defer c.Close()
	}

	backend, err := rasterbackend.New(dt)
	if err != nil {
		return pipeline.RenderedScene{}, err
	}
	traced := tracebackend.New(backend, s.logger.WithComponent("render/"+job.Scene.Name))

	root := chart.NewRoot(traced)
	if err := root.Fill(job.Scene.Background); err != nil {
		return pipeline.RenderedScene{}, fmt.Errorf("fill background: %w", err)
	}
	if job.Scene.Draw != nil {
		plot := root.Sub(job.Layout.Plot.Rect())
		if err := job.Scene.Draw(plot); err != nil {
			return pipeline.RenderedScene{}, err
		}
	}
	if err := root.Present(); err != nil {
		return pipeline.RenderedScene{}, err
	}

	callLog, err := json.Marshal(traced)
	if err != nil {
		return pipeline.RenderedScene{}, fmt.Errorf("encode call log: %w", err)
	}

	return pipeline.RenderedScene{
		Name:       job.Scene.Name,
		Image:      snapshot(dt.Image()),
		CallLog:    callLog,
		CallCount:  len(traced.Calls()),
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}

func (s *Stage) saveDebug(scene pipeline.RenderedScene) {
	if !s.sink.Enabled() {
		return
	}
	if err := s.sink.SaveCallLog(scene.Name, scene.CallLog); err != nil {
		s.logger.Warn("Failed to save debug output for %s: %v", scene.Name, err)
	}
	if err := s.sink.SaveSurface(scene.Name, scene.Image); err != nil {
		s.logger.Warn("Failed to save debug output for %s: %v", scene.Name, err)
	}
}

// snapshot copies img so it outlives the target that produced it.
func snapshot(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(out, out.Bounds(), img, b.Min, xdraw.Src)
	return out
}
