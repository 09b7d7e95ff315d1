// Package layout implements the layout calculation stage.
package layout

import (
	"context"
	"fmt"

	"github.com/user/rasterplot/pkg/pipeline"
)

// Stage calculates where a scene's caption, label bands and plot go.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new layout stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute calculates the layout based on the input parameters.
func (s *Stage) Execute(ctx context.Context, input pipeline.LayoutInput) (pipeline.LayoutResult, error) {
	if input.CanvasWidth <= 0 || input.CanvasHeight <= 0 {
		return pipeline.LayoutResult{}, fmt.Errorf("invalid canvas size %dx%d", input.CanvasWidth, input.CanvasHeight)
	}
	f := input.Frame
	if f.Margin < 0 || f.CaptionHeight < 0 || f.XLabelArea < 0 || f.YLabelArea < 0 {
		return pipeline.LayoutResult{}, fmt.Errorf("negative frame size: %+v", f)
	}
	return ComputeLayout(input), nil
}

// ComputeLayout performs the layout calculation.
// This is exposed as a standalone function for testing and reuse.
//
// The canvas is inset by the margin, capped at half its size. The caption takes the top band of
// what remains, the y label band runs down the left edge beside the
// plot, and the x label band sits under the plot. Bands that do not fit
// are shrunk; the plot may end up empty.
func ComputeLayout(input pipeline.LayoutInput) pipeline.LayoutResult {
	f := input.Frame

	mx := min(f.Margin, input.CanvasWidth/2)
	my := min(f.Margin, input.CanvasHeight/2)
	inner := pipeline.Rectangle{
		X:      mx,
		Y:      my,
		Width:  input.CanvasWidth - mx*2,
		Height: input.CanvasHeight - my*2,
	}

	captionHeight := min(f.CaptionHeight, inner.Height)
	caption := pipeline.Rectangle{
		X:      inner.X,
		Y:      inner.Y,
		Width:  inner.Width,
		Height: captionHeight,
	}

	body := pipeline.Rectangle{
		X:      inner.X,
		Y:      inner.Y + captionHeight,
		Width:  inner.Width,
		Height: inner.Height - captionHeight,
	}

	yLabelWidth := min(f.YLabelArea, body.Width)
	xLabelHeight := min(f.XLabelArea, body.Height)

	plot := pipeline.Rectangle{
		X:      body.X + yLabelWidth,
		Y:      body.Y,
		Width:  body.Width - yLabelWidth,
		Height: body.Height - xLabelHeight,
	}

	return pipeline.LayoutResult{
		Canvas: pipeline.Dimension{
			Width:  input.CanvasWidth,
			Height: input.CanvasHeight,
		},
		Caption: caption,
		YLabel: pipeline.Rectangle{
			X:      body.X,
			Y:      plot.Y,
			Width:  yLabelWidth,
			Height: plot.Height,
		},
		XLabel: pipeline.Rectangle{
			X:      plot.X,
			Y:      plot.Y + plot.Height,
			Width:  plot.Width,
			Height: xLabelHeight,
		},
		Plot: plot,
	}
}
