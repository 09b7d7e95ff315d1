package demo

import (
	"math"

	"github.com/user/rasterplot/pkg/chart"
)

// snowflakeSeed is the equilateral triangle the curve grows from.
var snowflakeSeed = []chart.Point{
	{X: 0, Y: 1},
	{X: math.Sqrt(3) / 2, Y: -0.5},
	{X: -math.Sqrt(3) / 2, Y: -0.5},
}

// KochStep replaces every edge of the closed polygon with four edges,
// bending the middle third outwards.
func KochStep(points []chart.Point) []chart.Point {
	out := make([]chart.Point, 0, len(points)*4)
	sin60 := math.Sqrt(0.75)
	for i, start := range points {
		end := points[(i+1)%len(points)]
		tx, ty := (end.X-start.X)/3, (end.Y-start.Y)/3
		sx, sy := tx*0.5-ty*sin60, ty*0.5+tx*sin60

		out = append(out,
			start,
			chart.Point{X: start.X + tx, Y: start.Y + ty},
			chart.Point{X: start.X + tx + sx, Y: start.Y + ty + sy},
			chart.Point{X: start.X + tx*2, Y: start.Y + ty*2},
		)
	}
	return out
}

// Snowflake returns the vertices of the Koch snowflake after n iterations.
func Snowflake(iterations int) []chart.Point {
	points := append([]chart.Point(nil), snowflakeSeed...)
	for i := 0; i < iterations; i++ {
		points = KochStep(points)
	}
	return points
}
