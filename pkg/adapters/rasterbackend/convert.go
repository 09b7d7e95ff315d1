package rasterbackend

import (
	"math"

	"github.com/user/rasterplot/pkg/ports"
	"github.com/user/rasterplot/pkg/raster"
)

// convertColor maps a contract color to the rasterizer's solid source.
// Alpha in [0, 1] becomes round(alpha*255), clamped to [0, 255]; RGB passes through.
func convertColor(c ports.BackendColor) raster.Source {
	return raster.Source{
		R: c.RGB[0],
		G: c.RGB[1],
		B: c.RGB[2],
		A: alpha8(c.Alpha),
	}
}

func alpha8(alpha float64) uint8 {
	if math.IsNaN(alpha) {
		return 0
	}
	a := math.Round(alpha * 255)
	if a <= 0 {
		return 0
	}
	if a >= 255 {
		return 255
	}
	return uint8(a)
}

// strokeStyle maps the style's stroke width onto the rasterizer's stroke geometry.
func strokeStyle(style ports.BackendStyle) raster.StrokeStyle {
	s := raster.DefaultStrokeStyle()
	if w := style.StrokeWidth(); w > 0 {
		s.Width = float64(w)
	}
	return s
}
