package pipeline

import (
	"image"

	"github.com/user/rasterplot/pkg/chart"
	"github.com/user/rasterplot/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rectangle represents a rectangular area.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect converts the rectangle to chart pixel bounds.
func (r Rectangle) Rect() chart.Rect {
	return chart.Rect{
		X0: int32(r.X),
		Y0: int32(r.Y),
		X1: int32(r.X + r.Width),
		Y1: int32(r.Y + r.Height),
	}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rectangle) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Scene is one chart to render.
type Scene struct {
	Name       string
	Caption    string
	Frame      Frame
	Background ports.BackendColor

	// Draw paints the chart body into the plot area.
	Draw func(plot chart.Area) error
}

// Frame reserves space around a scene's plot area.
type Frame struct {
	Margin        int `json:"margin"`
	CaptionHeight int `json:"caption_height"`
	XLabelArea    int `json:"x_label_area"`
	YLabelArea    int `json:"y_label_area"`
}

// =============================================================================
// Layout Stage Types
// =============================================================================

// LayoutInput contains parameters for layout calculation.
type LayoutInput struct {
	CanvasWidth  int
	CanvasHeight int
	Frame        Frame
}

// DefaultLayoutInput returns LayoutInput with default values.
func DefaultLayoutInput() LayoutInput {
	return LayoutInput{
		CanvasWidth:  800,
		CanvasHeight: 800,
		Frame: Frame{
			Margin:        5,
			CaptionHeight: 50,
			XLabelArea:    35,
			YLabelArea:    40,
		},
	}
}

// LayoutResult contains the calculated areas of a scene.
type LayoutResult struct {
	Canvas  Dimension `json:"canvas"`
	Caption Rectangle `json:"caption"`
	YLabel  Rectangle `json:"y_label"`
	XLabel  Rectangle `json:"x_label"`
	Plot    Rectangle `json:"plot"`
}

// =============================================================================
// Render Stage Types
// =============================================================================

// RenderJob pairs a scene with its computed layout.
type RenderJob struct {
	Scene  Scene
	Layout LayoutResult
}

// RenderInput contains the scenes to render.
type RenderInput struct {
	Jobs []RenderJob
}

// RenderResult contains rendered scenes in input order.
type RenderResult struct {
	Scenes []RenderedScene
}

// RenderedScene is a finished surface plus its drawing trace.
type RenderedScene struct {
	Name       string
	Image      image.Image
	CallLog    []byte // JSON array of recorded backend calls
	CallCount  int
	DurationMs int64
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for image encoding.
type EncodeInput struct {
	Scenes  []RenderedScene
	Format  ports.ImageFormat
	Quality int     // JPEG quality 1-100
	Scale   float64 // Output scale factor; 0 or 1 keeps the surface size
}

// DefaultEncodeInput returns EncodeInput with default values.
func DefaultEncodeInput() EncodeInput {
	return EncodeInput{
		Format:  ports.FormatPNG,
		Quality: 90,
		Scale:   1,
	}
}

// EncodeResult contains the encoded images in input order.
type EncodeResult struct {
	Images []EncodedImage
}

// EncodedImage is one encoded output file.
type EncodedImage struct {
	Name   string
	Data   []byte
	Width  int
	Height int
}
