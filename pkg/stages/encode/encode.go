// Package encode implements the image encoding stage.
package encode

import (
	"context"
	"fmt"
	"math"

	"github.com/user/rasterplot/pkg/pipeline"
	"github.com/user/rasterplot/pkg/ports"
)

// Stage encodes rendered surfaces into image files.
type Stage struct {
	codec  ports.ImageCodec
	logger ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(codec ports.ImageCodec, logger ports.Logger) *Stage {
	return &Stage{
		codec:  codec,
		logger: logger.WithComponent("encode"),
	}
}

// Execute encodes every scene, optionally scaling it first.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if len(input.Scenes) == 0 {
		return result, fmt.Errorf("no scenes to encode")
	}
	if input.Scale < 0 || math.IsNaN(input.Scale) {
		return result, fmt.Errorf("invalid scale %v", input.Scale)
	}

	images := make([]pipeline.EncodedImage, 0, len(input.Scenes))
	for _, scene := range input.Scenes {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		img := scene.Image
		if input.Scale > 0 && input.Scale != 1 {
			b := img.Bounds()
			w := max(int(math.Round(float64(b.Dx())*input.Scale)), 1)
			h := max(int(math.Round(float64(b.Dy())*input.Scale)), 1)
			img = s.codec.ResizeImage(img, w, h)
		}

		data, err := s.codec.EncodeImage(img, input.Format, input.Quality)
		if err != nil {
			return result, fmt.Errorf("encode %s: %w", scene.Name, err)
		}
		s.logger.Debug("Encoded %s: %d bytes", scene.Name, len(data))

		b := img.Bounds()
		images = append(images, pipeline.EncodedImage{
			Name:   scene.Name,
			Data:   data,
			Width:  b.Dx(),
			Height: b.Dy(),
		})
	}

	result.Images = images
	return result, nil
}
