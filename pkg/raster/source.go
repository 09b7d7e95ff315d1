// Package raster defines the vocabulary shared by draw targets:
// solid sources, stroke styles, draw options and paths.
package raster

import "image/color"

// Source is a solid paint with straight (non-premultiplied) 8-bit alpha.
type Source struct {
	R, G, B, A uint8
}

// NRGBA returns the source as a straight-alpha color.
func (s Source) NRGBA() color.NRGBA {
	return color.NRGBA{R: s.R, G: s.G, B: s.B, A: s.A}
}

// WithAlpha returns the source with its alpha scaled by factor.
// A factor of 1 or more leaves the source unchanged.
func (s Source) WithAlpha(factor float64) Source {
	if factor >= 1 {
		return s
	}
	if factor <= 0 {
		s.A = 0
		return s
	}
	s.A = uint8(float64(s.A)*factor + 0.5)
	return s
}

// StrokeStyle controls how path outlines are rendered.
// Only the width is honoured; joins and caps are the target's defaults.
type StrokeStyle struct {
	Width float64
}

// DefaultStrokeWidth is the width used when none is given.
const DefaultStrokeWidth = 1.0

// DefaultStrokeStyle returns the rasterizer's default stroke geometry.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{Width: DefaultStrokeWidth}
}

// EffectiveWidth returns the width to stroke with, falling back to the
// default for non-positive values.
func (s StrokeStyle) EffectiveWidth() float64 {
	if s.Width <= 0 {
		return DefaultStrokeWidth
	}
	return s.Width
}

// DrawOptions carries per-operation compositing settings.
// The zero value is equivalent to DefaultDrawOptions.
type DrawOptions struct {
	// Alpha is a global opacity multiplier applied on top of the source
	// alpha. Zero means unset and is treated as 1.
	Alpha float64
}

// Apply returns src with the options' alpha multiplier applied.
func (o DrawOptions) Apply(src Source) Source {
	if o.Alpha == 0 {
		return src
	}
	return src.WithAlpha(o.Alpha)
}

// DefaultDrawOptions returns fully opaque source-over options.
func DefaultDrawOptions() DrawOptions {
	return DrawOptions{Alpha: 1}
}
