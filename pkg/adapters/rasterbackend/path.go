package rasterbackend

import (
	"math"

	"github.com/user/rasterplot/pkg/ports"
	"github.com/user/rasterplot/pkg/raster"
)

// polyline builds an open path: a move to the first point, then a line to each following one.
func polyline(points []ports.Coord) *raster.Path {
	b := raster.NewPathBuilder()
	appendPoints(b, points)
	return b.Finish()
}

// polygon builds the same path as polyline and closes it back to the first point.
func polygon(points []ports.Coord) *raster.Path {
	b := raster.NewPathBuilder()
	if appendPoints(b, points) {
		b.Close()
	}
	return b.Finish()
}

func appendPoints(b *raster.PathBuilder, points []ports.Coord) bool {
	for i, p := range points {
		if i == 0 {
			b.MoveTo(float64(p.X), float64(p.Y))
		} else {
			b.LineTo(float64(p.X), float64(p.Y))
		}
	}
	return len(points) > 0
}

// rectOutline builds the closed 5-point outline of the rectangle spanned by a and b.
func rectOutline(a, b ports.Coord) *raster.Path {
	return polyline([]ports.Coord{
		a,
		{X: b.X, Y: a.Y},
		b,
		{X: a.X, Y: b.Y},
		a,
	})
}

// circle builds a full 0..2π arc around center.
func circle(center ports.Coord, radius uint32) *raster.Path {
	return raster.NewPathBuilder().
		Arc(float64(center.X), float64(center.Y), float64(radius), 0, 2*math.Pi).
		Close().
		Finish()
}
