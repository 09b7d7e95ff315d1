// Package rasterbackend implements ports.DrawingBackend on top of a
// software rasterizer exposed as a ports.DrawTarget.
package rasterbackend

import (
	"errors"

	"github.com/user/rasterplot/pkg/ports"
	"github.com/user/rasterplot/pkg/raster"
)

// Operation names reported in DrawingError.Op.
const (
	OpDrawPixel   = "draw_pixel"
	OpDrawLine    = "draw_line"
	OpDrawRect    = "draw_rect"
	OpDrawPath    = "draw_path"
	OpDrawCircle  = "draw_circle"
	OpFillPolygon = "fill_polygon"
)

// Backend draws onto a borrowed DrawTarget.
// It owns no pixels and must not outlive the target. It is not safe for
// concurrent use; give every goroutine its own target and Backend.
type Backend struct {
	dt     ports.DrawTarget
	width  uint32
	height uint32
}

// New binds a Backend to dt, capturing its size.
// The target must not be resized afterwards.
func New(dt ports.DrawTarget) (*Backend, error) {
	if dt == nil {
		return nil, ports.NewDrawingError("new", errors.New("nil draw target"))
	}
	w, h := dt.Width(), dt.Height()
	if w < 0 || h < 0 {
		return nil, ports.NewDrawingError("new", errors.New("negative surface size"))
	}
	return &Backend{
		dt:     dt,
		width:  uint32(w),
		height: uint32(h),
	}, nil
}

// Size returns the width and height captured at construction.
func (b *Backend) Size() (uint32, uint32) {
	return b.width, b.height
}

// EnsurePrepared does nothing; the target needs no staging.
func (b *Backend) EnsurePrepared() error {
	return nil
}

// Present does nothing; the target is immediately visible.
func (b *Backend) Present() error {
	return nil
}

// DrawPixel fills the 1x1 rectangle at point.
// Out-of-bounds points are clipped by the target.
func (b *Backend) DrawPixel(point ports.Coord, color ports.BackendColor) error {
	err := b.dt.FillRect(float64(point.X), float64(point.Y), 1, 1, convertColor(color), raster.DefaultDrawOptions())
	return wrap(OpDrawPixel, err)
}

// DrawLine strokes the segment from one point to another.
func (b *Backend) DrawLine(from, to ports.Coord, style ports.BackendStyle) error {
	p := polyline([]ports.Coord{from, to})
	err := b.dt.Stroke(p, convertColor(style.Color()), strokeStyle(style), raster.DefaultDrawOptions())
	return wrap(OpDrawLine, err)
}

// DrawRect fills or outlines the rectangle spanned by two opposite corners.
// The filled area does not depend on which corner comes first.
func (b *Backend) DrawRect(upperLeft, bottomRight ports.Coord, style ports.BackendStyle, fill bool) error {
	src := convertColor(style.Color())

	if fill {
		x := min(upperLeft.X, bottomRight.X)
		y := min(upperLeft.Y, bottomRight.Y)
		w := absDiff(upperLeft.X, bottomRight.X)
		h := absDiff(upperLeft.Y, bottomRight.Y)
		err := b.dt.FillRect(float64(x), float64(y), w, h, src, raster.DefaultDrawOptions())
		return wrap(OpDrawRect, err)
	}

	err := b.dt.Stroke(rectOutline(upperLeft, bottomRight), src, strokeStyle(style), raster.DefaultDrawOptions())
	return wrap(OpDrawRect, err)
}

// DrawPath strokes the open polyline through path.
// Fewer than two points paint nothing.
func (b *Backend) DrawPath(path []ports.Coord, style ports.BackendStyle) error {
	if len(path) < 2 {
		return nil
	}
	err := b.dt.Stroke(polyline(path), convertColor(style.Color()), strokeStyle(style), raster.DefaultDrawOptions())
	return wrap(OpDrawPath, err)
}

// DrawCircle fills or outlines the full circle around center.
// A zero radius paints nothing.
func (b *Backend) DrawCircle(center ports.Coord, radius uint32, style ports.BackendStyle, fill bool) error {
	if radius == 0 {
		return nil
	}

	p := circle(center, radius)
	src := convertColor(style.Color())

	var err error
	if fill {
		err = b.dt.Fill(p, src, raster.DefaultDrawOptions())
	} else {
		err = b.dt.Stroke(p, src, strokeStyle(style), raster.DefaultDrawOptions())
	}
	return wrap(OpDrawCircle, err)
}

// FillPolygon fills the closed polygon through vertices.
// Stroke width is ignored; fewer than three vertices paint nothing.
func (b *Backend) FillPolygon(vertices []ports.Coord, style ports.BackendStyle) error {
	if len(vertices) < 3 {
		return nil
	}
	err := b.dt.Fill(polygon(vertices), convertColor(style.Color()), raster.DefaultDrawOptions())
	return wrap(OpFillPolygon, err)
}

// wrap reports a target failure as a backend error of op.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return ports.NewDrawingError(op, err)
}

func absDiff(a, b int32) float64 {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return float64(d)
}

// Ensure Backend implements ports.DrawingBackend
var _ ports.DrawingBackend = (*Backend)(nil)
