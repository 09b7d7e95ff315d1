package mocks

import (
	"sync"

	"github.com/user/rasterplot/pkg/ports"
)

// BackendCall records one DrawingBackend invocation.
type BackendCall struct {
	Op     string
	Points []ports.Coord
	Radius uint32
	Style  ports.BackendStyle
	Fill   bool
}

// DrawingBackend is a mock implementation of ports.DrawingBackend.
type DrawingBackend struct {
	mu    sync.Mutex
	W, H  uint32
	calls []BackendCall

	// Err, when set, is returned by every drawing call.
	Err error
}

// NewDrawingBackend creates a new mock DrawingBackend of the given size.
func NewDrawingBackend(width, height uint32) *DrawingBackend {
	return &DrawingBackend{W: width, H: height}
}

func (m *DrawingBackend) Size() (uint32, uint32) { return m.W, m.H }

func (m *DrawingBackend) EnsurePrepared() error {
	return m.record(BackendCall{Op: "ensure_prepared"})
}

func (m *DrawingBackend) Present() error {
	return m.record(BackendCall{Op: "present"})
}

func (m *DrawingBackend) DrawPixel(point ports.Coord, color ports.BackendColor) error {
	return m.record(BackendCall{Op: "draw_pixel", Points: []ports.Coord{point}, Style: color})
}

func (m *DrawingBackend) DrawLine(from, to ports.Coord, style ports.BackendStyle) error {
	return m.record(BackendCall{Op: "draw_line", Points: []ports.Coord{from, to}, Style: style})
}

func (m *DrawingBackend) DrawRect(upperLeft, bottomRight ports.Coord, style ports.BackendStyle, fill bool) error {
	return m.record(BackendCall{Op: "draw_rect", Points: []ports.Coord{upperLeft, bottomRight}, Style: style, Fill: fill})
}

func (m *DrawingBackend) DrawPath(path []ports.Coord, style ports.BackendStyle) error {
	return m.record(BackendCall{Op: "draw_path", Points: append([]ports.Coord(nil), path...), Style: style})
}

func (m *DrawingBackend) DrawCircle(center ports.Coord, radius uint32, style ports.BackendStyle, fill bool) error {
	return m.record(BackendCall{Op: "draw_circle", Points: []ports.Coord{center}, Radius: radius, Style: style, Fill: fill})
}

func (m *DrawingBackend) FillPolygon(vertices []ports.Coord, style ports.BackendStyle) error {
	return m.record(BackendCall{Op: "fill_polygon", Points: append([]ports.Coord(nil), vertices...), Style: style, Fill: true})
}

func (m *DrawingBackend) record(c BackendCall) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
	return m.Err
}

// Calls returns the recorded calls (for test verification).
func (m *DrawingBackend) Calls() []BackendCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]BackendCall(nil), m.calls...)
}

// CallsOf returns the recorded calls with the given op.
func (m *DrawingBackend) CallsOf(op string) []BackendCall {
	var out []BackendCall
	for _, c := range m.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

var _ ports.DrawingBackend = (*DrawingBackend)(nil)
