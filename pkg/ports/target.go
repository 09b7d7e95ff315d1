package ports

import (
	"image"
	"image/color"

	"github.com/user/rasterplot/pkg/raster"
)

// DrawTarget abstracts a software rasterizer that owns a pixel buffer.
// Width and height are fixed for the target's lifetime.
type DrawTarget interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// FillRect fills the axis-aligned rectangle at (x, y) of size w x h.
	FillRect(x, y, w, h float64, src raster.Source, opts raster.DrawOptions) error

	// Stroke paints the outline of p.
	Stroke(p *raster.Path, src raster.Source, style raster.StrokeStyle, opts raster.DrawOptions) error

	// Fill paints the interior of p using the non-zero winding rule.
	// Open subpaths are closed implicitly.
	Fill(p *raster.Path, src raster.Source, opts raster.DrawOptions) error

	// Image returns the surface contents.
	Image() image.Image
}

// TargetFactory allocates draw targets for one rasterizer implementation.
type TargetFactory interface {
	// Name returns the rasterizer name used in configuration ("gg", "gogpu").
	Name() string

	// NewTarget creates a width x height target cleared to bg.
	NewTarget(width, height int, bg color.Color) (DrawTarget, error)
}
