package chart

import (
	"sort"

	"github.com/user/rasterplot/pkg/ports"
)

// Bar is one histogram bucket.
type Bar struct {
	Value uint32
	Count uint32
}

// Bucket counts occurrences of each value, ordered by value.
func Bucket(data []uint32) []Bar {
	counts := make(map[uint32]uint32)
	for _, v := range data {
		counts[v]++
	}
	bars := make([]Bar, 0, len(counts))
	for v, n := range counts {
		bars = append(bars, Bar{Value: v, Count: n})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Value < bars[j].Value })
	return bars
}

// Histogram draws one vertical bar per bucket. Bucket v spans [v, v+1)
// on the x axis, inset by Margin pixels on each side.
type Histogram struct {
	Data   []uint32
	Style  ports.BackendStyle
	Margin int32
}

// Draw implements Element.
func (h Histogram) Draw(c *Cartesian) error {
	b := c.Area().Backend()
	for _, bar := range Bucket(h.Data) {
		ul := c.Map(Point{X: float64(bar.Value), Y: float64(bar.Count)}).Add(h.Margin, 0)
		br := c.Map(Point{X: float64(bar.Value + 1), Y: c.YRange().Min}).Add(-h.Margin, 0)
		if br.X <= ul.X {
			continue
		}
		// Counts above the y range are cut at the top of the area.
		ul.Y = max(ul.Y, c.Area().Rect().Y0)
		if err := b.DrawRect(ul, br, h.Style, true); err != nil {
			return err
		}
	}
	return nil
}

// LineSeries draws an open polyline through its points.
type LineSeries struct {
	Points []Point
	Style  ports.BackendStyle
}

// Draw implements Element.
func (l LineSeries) Draw(c *Cartesian) error {
	return c.Area().Backend().DrawPath(c.MapAll(l.Points), l.Style)
}

// PointSeries draws a circle marker at each point.
type PointSeries struct {
	Points []Point
	Radius uint32
	Style  ports.BackendStyle
	Filled bool
}

// Draw implements Element.
func (p PointSeries) Draw(c *Cartesian) error {
	b := c.Area().Backend()
	for _, pt := range p.Points {
		if err := b.DrawCircle(c.Map(pt), p.Radius, p.Style, p.Filled); err != nil {
			return err
		}
	}
	return nil
}

// Polygon fills the closed shape through its points.
type Polygon struct {
	Points []Point
	Style  ports.BackendStyle
}

// Draw implements Element.
func (p Polygon) Draw(c *Cartesian) error {
	return c.Area().Backend().FillPolygon(c.MapAll(p.Points), p.Style)
}

// PathElement strokes its points as given. Repeat the first point to close it.
type PathElement struct {
	Points []Point
	Style  ports.BackendStyle
}

// Draw implements Element.
func (p PathElement) Draw(c *Cartesian) error {
	return c.Area().Backend().DrawPath(c.MapAll(p.Points), p.Style)
}
