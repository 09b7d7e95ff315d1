// Package gogputarget provides a draw target implementation using the
// gogpu/gg software renderer.
package gogputarget

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/user/rasterplot/pkg/ports"
	"github.com/user/rasterplot/pkg/raster"
)

// Target implements ports.DrawTarget on a caller-owned *gg.Context.
type Target struct {
	ctx *gg.Context
}

// New binds a target to ctx. The context's transform is expected to be the identity.
func New(ctx *gg.Context) *Target {
	return &Target{ctx: ctx}
}

// Width returns the surface width.
func (t *Target) Width() int {
	return t.ctx.Width()
}

// Height returns the surface height.
func (t *Target) Height() int {
	return t.ctx.Height()
}

// FillRect fills a rectangle. Empty rectangles paint nothing.
func (t *Target) FillRect(x, y, w, h float64, src raster.Source, opts raster.DrawOptions) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	t.ctx.ClearPath()
	t.setSource(opts.Apply(src))
	t.ctx.DrawRectangle(x, y, w, h)
	if err := t.ctx.Fill(); err != nil {
		return fmt.Errorf("fill rect: %w", err)
	}
	return nil
}

// Stroke strokes a path with the given width.
func (t *Target) Stroke(p *raster.Path, src raster.Source, style raster.StrokeStyle, opts raster.DrawOptions) error {
	if !p.Drawable() {
		return nil
	}
	t.setSource(opts.Apply(src))
	t.ctx.SetLineWidth(style.EffectiveWidth())
	t.replay(p)
	if err := t.ctx.Stroke(); err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	return nil
}

// Fill fills a path with the non-zero winding rule.
func (t *Target) Fill(p *raster.Path, src raster.Source, opts raster.DrawOptions) error {
	if !p.Drawable() {
		return nil
	}
	t.setSource(opts.Apply(src))
	t.ctx.SetFillRule(gg.FillRuleNonZero)
	t.replay(p)
	if err := t.ctx.Fill(); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	return nil
}

// Image returns a snapshot of the surface.
func (t *Target) Image() image.Image {
	return t.ctx.Image()
}

// Close releases the context.
func (t *Target) Close() error {
	return t.ctx.Close()
}

func (t *Target) setSource(src raster.Source) {
	t.ctx.SetRGBA(
		float64(src.R)/255,
		float64(src.G)/255,
		float64(src.B)/255,
		float64(src.A)/255,
	)
}

// replay translates path segments into gg path calls.
func (t *Target) replay(p *raster.Path) {
	t.ctx.ClearPath()
	hasCurrent := false
	for _, s := range p.Segments() {
		switch s.Verb {
		case raster.VerbMove:
			t.ctx.MoveTo(s.X, s.Y)
			hasCurrent = true
		case raster.VerbLine:
			if hasCurrent {
				t.ctx.LineTo(s.X, s.Y)
			} else {
				t.ctx.MoveTo(s.X, s.Y)
			}
			hasCurrent = true
		case raster.VerbArc:
			// DrawArc only opens a subpath on an empty path, so connect it explicitly.
			x0, y0 := s.ArcStart()
			if hasCurrent {
				t.ctx.LineTo(x0, y0)
			} else {
				t.ctx.MoveTo(x0, y0)
			}
			if s.Radius > 0 && s.Sweep != 0 {
				t.ctx.DrawArc(s.X, s.Y, s.Radius, s.Start, s.Start+s.Sweep)
			}
			hasCurrent = true
		case raster.VerbClose:
			t.ctx.ClosePath()
		}
	}
}

// Ensure Target implements ports.DrawTarget
var _ ports.DrawTarget = (*Target)(nil)

// Factory creates gogpu-backed targets.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Name returns "gogpu".
func (f *Factory) Name() string {
	return "gogpu"
}

// NewTarget allocates a width x height context cleared to bg.
func (f *Factory) NewTarget(width, height int, bg color.Color) (ports.DrawTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("surface size must be positive")
	}
	ctx := gg.NewContext(width, height)
	ctx.ClearWithColor(gg.FromColor(bg))
	return New(ctx), nil
}

// Ensure Factory implements ports.TargetFactory
var _ ports.TargetFactory = (*Factory)(nil)
