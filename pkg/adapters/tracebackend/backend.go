// Package tracebackend wraps a ports.DrawingBackend and records every call.
package tracebackend

import (
	"encoding/json"
	"sync"

	"github.com/user/rasterplot/pkg/ports"
)

// Call is one recorded backend invocation.
type Call struct {
	Op   string         `json:"op"`
	Args map[string]any `json:"args,omitempty"`
	Err  string         `json:"error,omitempty"`
}

// Backend forwards to an inner backend, recording calls in order.
type Backend struct {
	inner  ports.DrawingBackend
	logger ports.Logger

	mu    sync.Mutex
	calls []Call
}

// New wraps inner. logger receives one debug line per call.
func New(inner ports.DrawingBackend, logger ports.Logger) *Backend {
	return &Backend{
		inner:  inner,
		logger: logger,
	}
}

// Calls returns a copy of the recorded calls.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Call(nil), b.calls...)
}

// MarshalJSON encodes the call log.
func (b *Backend) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Calls())
}

// Size returns the inner backend size. It is not recorded.
func (b *Backend) Size() (uint32, uint32) {
	return b.inner.Size()
}

// EnsurePrepared forwards and records the call.
func (b *Backend) EnsurePrepared() error {
	return b.record("ensure_prepared", nil, b.inner.EnsurePrepared())
}

// Present forwards and records the call.
func (b *Backend) Present() error {
	return b.record("present", nil, b.inner.Present())
}

// DrawPixel forwards and records the point and color.
func (b *Backend) DrawPixel(point ports.Coord, color ports.BackendColor) error {
	err := b.inner.DrawPixel(point, color)
	return b.record("draw_pixel", map[string]any{
		"point": point,
		"color": styleArgs(color),
	}, err)
}

// DrawLine forwards and records the endpoints and style.
func (b *Backend) DrawLine(from, to ports.Coord, style ports.BackendStyle) error {
	err := b.inner.DrawLine(from, to, style)
	return b.record("draw_line", map[string]any{
		"from":  from,
		"to":    to,
		"style": styleArgs(style),
	}, err)
}

// DrawRect forwards and records the corners, style and fill flag.
func (b *Backend) DrawRect(upperLeft, bottomRight ports.Coord, style ports.BackendStyle, fill bool) error {
	err := b.inner.DrawRect(upperLeft, bottomRight, style, fill)
	return b.record("draw_rect", map[string]any{
		"upper_left":   upperLeft,
		"bottom_right": bottomRight,
		"style":        styleArgs(style),
		"fill":         fill,
	}, err)
}

// DrawPath forwards and records the point count and style.
func (b *Backend) DrawPath(path []ports.Coord, style ports.BackendStyle) error {
	err := b.inner.DrawPath(path, style)
	return b.record("draw_path", map[string]any{
		"points": len(path),
		"style":  styleArgs(style),
	}, err)
}

// DrawCircle forwards and records the center, radius, style and fill flag.
func (b *Backend) DrawCircle(center ports.Coord, radius uint32, style ports.BackendStyle, fill bool) error {
	err := b.inner.DrawCircle(center, radius, style, fill)
	return b.record("draw_circle", map[string]any{
		"center": center,
		"radius": radius,
		"style":  styleArgs(style),
		"fill":   fill,
	}, err)
}

// FillPolygon forwards and records the vertex count and style.
func (b *Backend) FillPolygon(vertices []ports.Coord, style ports.BackendStyle) error {
	err := b.inner.FillPolygon(vertices, style)
	return b.record("fill_polygon", map[string]any{
		"vertices": len(vertices),
		"style":    styleArgs(style),
	}, err)
}

// record logs the call and appends it to the log. It returns err unchanged.
func (b *Backend) record(op string, args map[string]any, err error) error {
	c := Call{Op: op, Args: args}
	if err != nil {
		c.Err = err.Error()
		b.logger.Debug("%s failed: %v", op, err)
	} else {
		b.logger.Debug("%s", op)
	}

	b.mu.Lock()
	b.calls = append(b.calls, c)
	b.mu.Unlock()
	return err
}

func styleArgs(style ports.BackendStyle) map[string]any {
	c := style.Color()
	return map[string]any{
		"rgb":   c.RGB,
		"alpha": c.Alpha,
		"width": style.StrokeWidth(),
	}
}

// Ensure Backend implements ports.DrawingBackend
var _ ports.DrawingBackend = (*Backend)(nil)
