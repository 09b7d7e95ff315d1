// Package ggtarget provides a draw target implementation using the gg library.
package ggtarget

import (
	"errors"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/user/rasterplot/pkg/ports"
	"github.com/user/rasterplot/pkg/raster"
)

// Target implements ports.DrawTarget by drawing into a caller-owned *image.RGBA.
type Target struct {
	dc  *gg.Context
	img *image.RGBA
}

// New binds a target to img. Pixels are drawn in place; img must have
// its origin at (0, 0).
func New(img *image.RGBA) *Target {
	return &Target{
		dc:  gg.NewContextForRGBA(img),
		img: img,
	}
}

// Width returns the surface width.
func (t *Target) Width() int {
	return t.dc.Width()
}

// Height returns the surface height.
func (t *Target) Height() int {
	return t.dc.Height()
}

// FillRect fills a rectangle. Empty rectangles paint nothing.
func (t *Target) FillRect(x, y, w, h float64, src raster.Source, opts raster.DrawOptions) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	t.dc.ClearPath()
	t.dc.SetColor(opts.Apply(src).NRGBA())
	t.dc.DrawRectangle(x, y, w, h)
	t.dc.Fill()
	return nil
}

// Stroke strokes a path with the given width.
func (t *Target) Stroke(p *raster.Path, src raster.Source, style raster.StrokeStyle, opts raster.DrawOptions) error {
	if !p.Drawable() {
		return nil
	}
	t.dc.SetColor(opts.Apply(src).NRGBA())
	t.dc.SetLineWidth(style.EffectiveWidth())
	t.replay(p)
	t.dc.Stroke()
	return nil
}

// Fill fills a path with the non-zero winding rule.
func (t *Target) Fill(p *raster.Path, src raster.Source, opts raster.DrawOptions) error {
	if !p.Drawable() {
		return nil
	}
	t.dc.SetColor(opts.Apply(src).NRGBA())
	t.dc.SetFillRule(gg.FillRuleWinding)
	t.replay(p)
	t.dc.Fill()
	return nil
}

// Image returns the bound image.
func (t *Target) Image() image.Image {
	return t.img
}

// replay translates path segments into gg path calls.
func (t *Target) replay(p *raster.Path) {
	t.dc.ClearPath()
	for _, s := range p.Segments() {
		switch s.Verb {
		case raster.VerbMove:
			t.dc.MoveTo(s.X, s.Y)
		case raster.VerbLine:
			t.dc.LineTo(s.X, s.Y)
		case raster.VerbArc:
			// gg joins the arc to the current point with a line, or starts a new subpath.
			t.dc.DrawArc(s.X, s.Y, s.Radius, s.Start, s.Start+s.Sweep)
		case raster.VerbClose:
			t.dc.ClosePath()
		}
	}
}

// Ensure Target implements ports.DrawTarget
var _ ports.DrawTarget = (*Target)(nil)

// Factory creates gg-backed targets.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Name returns "gg".
func (f *Factory) Name() string {
	return "gg"
}

// NewTarget allocates a width x height RGBA buffer cleared to bg.
func (f *Factory) NewTarget(width, height int, bg color.Color) (ports.DrawTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("surface size must be positive")
	}
	t := New(image.NewRGBA(image.Rect(0, 0, width, height)))
	t.dc.SetColor(bg)
	t.dc.Clear()
	return t, nil
}

// Ensure Factory implements ports.TargetFactory
var _ ports.TargetFactory = (*Factory)(nil)
