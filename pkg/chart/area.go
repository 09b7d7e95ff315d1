// Package chart is a small immediate-mode plotting layer over
// ports.DrawingBackend. It draws no text; caption and label bands are
// reserved space only.
package chart

import (
	"github.com/user/rasterplot/pkg/ports"
)

// Rect is a half-open pixel rectangle [X0, X1) x [Y0, Y1).
type Rect struct {
	X0 int32 `json:"x0"`
	Y0 int32 `json:"y0"`
	X1 int32 `json:"x1"`
	Y1 int32 `json:"y1"`
}

// Width returns the rectangle width, or 0 if empty.
func (r Rect) Width() int32 {
	return max(r.X1-r.X0, 0)
}

// Height returns the rectangle height, or 0 if empty.
func (r Rect) Height() int32 {
	return max(r.Y1-r.Y0, 0)
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Inset shrinks the rectangle by the given amounts, never past empty.
func (r Rect) Inset(top, right, bottom, left int32) Rect {
	out := Rect{X0: r.X0 + left, Y0: r.Y0 + top, X1: r.X1 - right, Y1: r.Y1 - bottom}
	if out.X1 < out.X0 {
		out.X1 = out.X0
	}
	if out.Y1 < out.Y0 {
		out.Y1 = out.Y0
	}
	return out
}

// Area is a rectangular region of a backend's surface.
type Area struct {
	backend ports.DrawingBackend
	rect    Rect
}

// NewRoot returns the area covering the whole surface of b.
func NewRoot(b ports.DrawingBackend) Area {
	w, h := b.Size()
	return Area{backend: b, rect: Rect{X1: int32(w), Y1: int32(h)}}
}

// Sub returns the area for r on the same backend. r is in surface coordinates.
func (a Area) Sub(r Rect) Area {
	return Area{backend: a.backend, rect: r}
}

// Rect returns the area's rectangle in surface coordinates.
func (a Area) Rect() Rect {
	return a.rect
}

// Backend returns the backend the area draws to.
func (a Area) Backend() ports.DrawingBackend {
	return a.backend
}

// Margin returns the area shrunk by the given margins.
func (a Area) Margin(top, right, bottom, left int32) Area {
	return a.Sub(a.rect.Inset(top, right, bottom, left))
}

// Fill paints the whole area with color.
func (a Area) Fill(color ports.BackendColor) error {
	if a.rect.Empty() {
		return nil
	}
	if err := a.backend.EnsurePrepared(); err != nil {
		return err
	}
	return a.backend.DrawRect(
		ports.Pt(a.rect.X0, a.rect.Y0),
		ports.Pt(a.rect.X1, a.rect.Y1),
		color.Filled(),
		true,
	)
}

// Present flushes the backend.
func (a Area) Present() error {
	return a.backend.Present()
}
