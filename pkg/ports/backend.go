// Package ports defines interfaces for external dependencies.
package ports

import (
	"errors"
	"fmt"
)

// Coord is a point in surface pixel coordinates.
type Coord struct {
	X int32
	Y int32
}

// Pt is shorthand for building a Coord.
func Pt(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int32) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// BackendColor is an 8-bit RGB color with a floating-point alpha in [0, 1].
type BackendColor struct {
	RGB   [3]uint8
	Alpha float64
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) BackendColor {
	return BackendColor{RGB: [3]uint8{r, g, b}, Alpha: 1}
}

// Mix returns the color with its alpha multiplied by value.
func (c BackendColor) Mix(value float64) BackendColor {
	c.Alpha *= value
	return c
}

// Filled returns a fill style in this color.
func (c BackendColor) Filled() ShapeStyle {
	return ShapeStyle{Paint: c, Filled: true}
}

// Stroke returns an outline style in this color with the given width.
func (c BackendColor) Stroke(width uint32) ShapeStyle {
	return ShapeStyle{Paint: c, Width: width}
}

// Color implements BackendStyle so a bare color can be drawn with.
func (c BackendColor) Color() BackendColor { return c }

// StrokeWidth implements BackendStyle; a bare color strokes 1px wide.
func (c BackendColor) StrokeWidth() uint32 { return 1 }

var (
	_ BackendStyle = BackendColor{}
	_ BackendStyle = ShapeStyle{}
)

// Common colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
	Red   = RGB(255, 0, 0)
	Green = RGB(0, 255, 0)
	Blue  = RGB(0, 0, 255)
)

// BackendStyle describes how a primitive is painted.
type BackendStyle interface {
	// Color returns the paint color.
	Color() BackendColor

	// StrokeWidth returns the outline width in pixels.
	StrokeWidth() uint32
}

// ShapeStyle is the concrete BackendStyle used by callers.
type ShapeStyle struct {
	Paint  BackendColor
	Filled bool
	Width  uint32
}

// Color implements BackendStyle.
func (s ShapeStyle) Color() BackendColor { return s.Paint }

// StrokeWidth implements BackendStyle.
func (s ShapeStyle) StrokeWidth() uint32 { return s.Width }

// WithWidth returns a copy of the style with the given stroke width.
func (s ShapeStyle) WithWidth(width uint32) ShapeStyle {
	s.Width = width
	return s
}

// ErrBackend is the single error category reported by drawing backends.
var ErrBackend = errors.New("drawing backend error")

// DrawingError reports a failed drawing operation.
// It matches ErrBackend with errors.Is and unwraps to the rasterizer's cause.
type DrawingError struct {
	Op  string
	Err error
}

// NewDrawingError wraps err as a backend failure of op.
func NewDrawingError(op string, err error) *DrawingError {
	return &DrawingError{Op: op, Err: err}
}

func (e *DrawingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, ErrBackend)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrBackend, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DrawingError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrBackend.
func (e *DrawingError) Is(target error) bool {
	return target == ErrBackend
}

// DrawingBackend is the capability contract a charting layer draws through.
// Calls are synchronous and single-threaded; each one mutates the bound
// surface in place before returning.
type DrawingBackend interface {
	// Size returns the surface dimensions captured when the backend was created.
	Size() (width, height uint32)

	// EnsurePrepared is a staging hook called before drawing.
	EnsurePrepared() error

	// Present is a flush hook called after drawing.
	Present() error

	// DrawPixel paints one pixel.
	DrawPixel(point Coord, color BackendColor) error

	// DrawLine strokes a straight line.
	DrawLine(from, to Coord, style BackendStyle) error

	// DrawRect fills or outlines the axis-aligned rectangle spanned by two corners.
	DrawRect(upperLeft, bottomRight Coord, style BackendStyle, fill bool) error

	// DrawPath strokes an open polyline.
	DrawPath(path []Coord, style BackendStyle) error

	// DrawCircle fills or outlines a full circle.
	DrawCircle(center Coord, radius uint32, style BackendStyle, fill bool) error

	// FillPolygon fills the polygon through vertices, closing it implicitly.
	FillPolygon(vertices []Coord, style BackendStyle) error
}
