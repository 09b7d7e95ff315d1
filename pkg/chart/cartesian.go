package chart

import (
	"math"

	"github.com/user/rasterplot/pkg/ports"
)

// Range is a closed data interval.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Point is a data-space coordinate.
type Point struct {
	X float64
	Y float64
}

// Element is something a Cartesian coordinate system can draw.
type Element interface {
	Draw(c *Cartesian) error
}

// Cartesian maps data ranges onto an area with y pointing up.
type Cartesian struct {
	area Area
	x    Range
	y    Range
}

// NewCartesian builds a coordinate system over area.
func NewCartesian(area Area, x, y Range) *Cartesian {
	return &Cartesian{area: area, x: x, y: y}
}

// Area returns the plotting area.
func (c *Cartesian) Area() Area {
	return c.area
}

// XRange returns the x data range.
func (c *Cartesian) XRange() Range { return c.x }

// YRange returns the y data range.
func (c *Cartesian) YRange() Range { return c.y }

// Map converts a data point to surface pixels. The range minimum lands
// on the left (or bottom) pixel and the maximum on the right (or top).
func (c *Cartesian) Map(p Point) ports.Coord {
	r := c.area.Rect()
	px := float64(r.X0) + scale(p.X, c.x)*float64(r.Width()-1)
	py := float64(r.Y1-1) - scale(p.Y, c.y)*float64(r.Height()-1)
	return ports.Pt(int32(math.Round(px)), int32(math.Round(py)))
}

// MapAll converts a slice of points.
func (c *Cartesian) MapAll(points []Point) []ports.Coord {
	out := make([]ports.Coord, len(points))
	for i, p := range points {
		out[i] = c.Map(p)
	}
	return out
}

// Draw draws elements in order.
func (c *Cartesian) Draw(elements ...Element) error {
	for _, e := range elements {
		if err := e.Draw(c); err != nil {
			return err
		}
	}
	return nil
}

func scale(v float64, r Range) float64 {
	span := r.Span()
	if span == 0 {
		return 0
	}
	return (v - r.Min) / span
}
