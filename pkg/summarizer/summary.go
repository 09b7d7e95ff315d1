package summarizer

import "time"

// Summary contains all data collected during a render run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Run settings and totals
	Run RunInfo

	// Per-scene results in render order
	Scenes []SceneInfo
}

// RunInfo describes how the run was configured.
type RunInfo struct {
	Backend    string
	Format     string
	Workers    int
	Scale      float64
	OutputDir  string
	DurationMs int64
}

// SceneInfo contains the outcome of one scene.
type SceneInfo struct {
	Name         string
	Caption      string
	CanvasWidth  int
	CanvasHeight int
	OutputWidth  int
	OutputHeight int
	Calls        int
	RenderMs     int64
	FileSize     int64
	Path         string
}

// TotalBytes sums the output sizes of all scenes.
func (s *Summary) TotalBytes() int64 {
	var total int64
	for _, sc := range s.Scenes {
		total += sc.FileSize
	}
	return total
}

// TotalCalls sums the backend calls of all scenes.
func (s *Summary) TotalCalls() int {
	total := 0
	for _, sc := range s.Scenes {
		total += sc.Calls
	}
	return total
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithRun sets run information.
func (b *Builder) WithRun(run RunInfo) *Builder {
	b.summary.Run = run
	return b
}

// AddScene appends a scene result.
func (b *Builder) AddScene(scene SceneInfo) *Builder {
	b.summary.Scenes = append(b.summary.Scenes, scene)
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
