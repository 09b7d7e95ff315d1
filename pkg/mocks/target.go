package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/rasterplot/pkg/ports"
	"github.com/user/rasterplot/pkg/raster"
)

// TargetCall records one DrawTarget invocation.
type TargetCall struct {
	Method string
	Rect   [4]float64
	Path   *raster.Path
	Source raster.Source
	Stroke raster.StrokeStyle
	Opts   raster.DrawOptions
}

// DrawTarget is a mock implementation of ports.DrawTarget.
// It records calls and paints nothing.
type DrawTarget struct {
	mu    sync.Mutex
	W, H  int
	calls []TargetCall

	FillRectFunc func(x, y, w, h float64, src raster.Source, opts raster.DrawOptions) error
	StrokeFunc   func(p *raster.Path, src raster.Source, style raster.StrokeStyle, opts raster.DrawOptions) error
	FillFunc     func(p *raster.Path, src raster.Source, opts raster.DrawOptions) error
}

// NewDrawTarget creates a new mock DrawTarget of the given size.
func NewDrawTarget(width, height int) *DrawTarget {
	return &DrawTarget{W: width, H: height}
}

func (m *DrawTarget) Width() int  { return m.W }
func (m *DrawTarget) Height() int { return m.H }

func (m *DrawTarget) FillRect(x, y, w, h float64, src raster.Source, opts raster.DrawOptions) error {
	m.record(TargetCall{Method: "FillRect", Rect: [4]float64{x, y, w, h}, Source: src, Opts: opts})
	if m.FillRectFunc != nil {
		return m.FillRectFunc(x, y, w, h, src, opts)
	}
	return nil
}

func (m *DrawTarget) Stroke(p *raster.Path, src raster.Source, style raster.StrokeStyle, opts raster.DrawOptions) error {
	m.record(TargetCall{Method: "Stroke", Path: p, Source: src, Stroke: style, Opts: opts})
	if m.StrokeFunc != nil {
		return m.StrokeFunc(p, src, style, opts)
	}
	return nil
}

func (m *DrawTarget) Fill(p *raster.Path, src raster.Source, opts raster.DrawOptions) error {
	m.record(TargetCall{Method: "Fill", Path: p, Source: src, Opts: opts})
	if m.FillFunc != nil {
		return m.FillFunc(p, src, opts)
	}
	return nil
}

func (m *DrawTarget) Image() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.W, m.H))
}

func (m *DrawTarget) record(c TargetCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
}

// Calls returns the recorded calls (for test verification).
func (m *DrawTarget) Calls() []TargetCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]TargetCall(nil), m.calls...)
}

// LastCall returns the most recent call, or false if none.
func (m *DrawTarget) LastCall() (TargetCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return TargetCall{}, false
	}
	return m.calls[len(m.calls)-1], true
}

var _ ports.DrawTarget = (*DrawTarget)(nil)

// TargetFactory is a mock implementation of ports.TargetFactory.
type TargetFactory struct {
	NewTargetFunc func(width, height int, bg color.Color) (ports.DrawTarget, error)
}

func (m *TargetFactory) Name() string { return "mock" }

func (m *TargetFactory) NewTarget(width, height int, bg color.Color) (ports.DrawTarget, error) {
	if m.NewTargetFunc != nil {
		return m.NewTargetFunc(width, height, bg)
	}
	return NewDrawTarget(width, height), nil
}

var _ ports.TargetFactory = (*TargetFactory)(nil)
