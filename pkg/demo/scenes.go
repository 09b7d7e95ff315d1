// Package demo provides the built-in example charts.
package demo

import (
	"fmt"
	"sort"

	"github.com/user/rasterplot/pkg/chart"
	"github.com/user/rasterplot/pkg/pipeline"
	"github.com/user/rasterplot/pkg/ports"
)

// Scene names.
const (
	Histogram = "histogram"
	Line      = "line"
	Koch      = "snowflake"
)

// HistogramData is the sample the histogram scene buckets.
var HistogramData = []uint32{0, 1, 1, 1, 4, 2, 5, 7, 8, 6, 4, 2, 1, 8, 3, 3, 3, 4, 4, 3, 3, 3}

// LinePoints is the series the line scene plots.
var LinePoints = []chart.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 8, Y: 7}}

// SnowflakeIterations is how many Koch steps the snowflake scene applies.
const SnowflakeIterations = 6

var builders = map[string]func() pipeline.Scene{
	Histogram: HistogramScene,
	Line:      LineScene,
	Koch:      SnowflakeScene,
}

// Names returns the available scene names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a scene name, or "all" for every scene in Names order.
func Lookup(name string) ([]pipeline.Scene, error) {
	if name == "all" {
		scenes := make([]pipeline.Scene, 0, len(builders))
		for _, n := range Names() {
			scenes = append(scenes, builders[n]())
		}
		return scenes, nil
	}
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown example %q (available: %v, all)", name, Names())
	}
	return []pipeline.Scene{build()}, nil
}

// HistogramScene buckets HistogramData into translucent red bars over a
// horizontal-only grid.
func HistogramScene() pipeline.Scene {
	return pipeline.Scene{
		Name:       Histogram,
		Caption:    "Histogram Test",
		Frame:      pipeline.Frame{Margin: 5, CaptionHeight: 50, XLabelArea: 35, YLabelArea: 40},
		Background: ports.White,
		Draw: func(plot chart.Area) error {
			c := chart.NewCartesian(plot, chart.Range{Min: 0, Max: 10}, chart.Range{Min: 0, Max: 10})

			mesh := chart.DefaultMesh()
			mesh.DisableX = true
			mesh.BoldStyle = ports.White.Mix(0.3)

			return c.Draw(
				mesh,
				chart.Histogram{
					Data:   HistogramData,
					Style:  ports.Red.Mix(0.5).Filled(),
					Margin: 5,
				},
			)
		},
	}
}

// LineScene plots LinePoints as a line with filled circle markers.
func LineScene() pipeline.Scene {
	return pipeline.Scene{
		Name:       Line,
		Caption:    "This is our first plot",
		Frame:      pipeline.Frame{Margin: 10, CaptionHeight: 40, XLabelArea: 20, YLabelArea: 40},
		Background: ports.White,
		Draw: func(plot chart.Area) error {
			c := chart.NewCartesian(plot, chart.Range{Min: 0, Max: 10}, chart.Range{Min: 0, Max: 10})

			mesh := chart.DefaultMesh()
			mesh.XLines = 5
			mesh.YLines = 5

			return c.Draw(
				mesh,
				chart.LineSeries{Points: LinePoints, Style: ports.Red},
				chart.PointSeries{Points: LinePoints, Radius: 5, Style: ports.Red, Filled: true},
			)
		},
	}
}

// SnowflakeScene fills a Koch snowflake and traces its closed outline.
func SnowflakeScene() pipeline.Scene {
	return pipeline.Scene{
		Name:       Koch,
		Caption:    "Koch's Snowflake",
		Frame:      pipeline.Frame{CaptionHeight: 50},
		Background: ports.White,
		Draw: func(plot chart.Area) error {
			c := chart.NewCartesian(plot, chart.Range{Min: -2, Max: 2}, chart.Range{Min: -1.5, Max: 1.5})

			vertices := Snowflake(SnowflakeIterations)
			outline := append(append([]chart.Point(nil), vertices...), vertices[0])

			return c.Draw(
				chart.Polygon{Points: vertices, Style: ports.Red.Mix(0.2)},
				chart.PathElement{Points: outline, Style: ports.Red},
			)
		},
	}
}
