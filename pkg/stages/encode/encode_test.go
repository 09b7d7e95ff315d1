package encode

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/user/rasterplot/pkg/adapters/imagecodec"
	"github.com/user/rasterplot/pkg/adapters/logger"
	"github.com/user/rasterplot/pkg/mocks"
	"github.com/user/rasterplot/pkg/pipeline"
	"github.com/user/rasterplot/pkg/ports"
)

func scenes(names ...string) []pipeline.RenderedScene {
	out := make([]pipeline.RenderedScene, len(names))
	for i, n := range names {
		out[i] = pipeline.RenderedScene{Name: n, Image: image.NewRGBA(image.Rect(0, 0, 80, 60))}
	}
	return out
}

func TestStage_Execute(t *testing.T) {
	codec := mocks.NewImageCodec()
	stage := NewStage(codec, logger.NewNoop())

	input := pipeline.DefaultEncodeInput()
	input.Scenes = scenes("histogram", "line")

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(result.Images))
	}
	if result.Images[0].Name != "histogram" || result.Images[1].Name != "line" {
		t.Errorf("order not preserved: %s, %s", result.Images[0].Name, result.Images[1].Name)
	}
	if string(result.Images[0].Data) != "png:80x60" {
		t.Errorf("unexpected data %q", result.Images[0].Data)
	}
	if codec.EncodeCount() != 2 {
		t.Errorf("expected 2 encodes, got %d", codec.EncodeCount())
	}
}

func TestStage_Scale(t *testing.T) {
	stage := NewStage(imagecodec.New(), logger.NewNoop())

	input := pipeline.DefaultEncodeInput()
	input.Scenes = scenes("snowflake")
	input.Scale = 0.5

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	img := result.Images[0]
	if img.Width != 40 || img.Height != 30 {
		t.Errorf("expected 40x30, got %dx%d", img.Width, img.Height)
	}
	if len(img.Data) == 0 {
		t.Error("expected encoded data")
	}
}

func TestStage_NoScenes(t *testing.T) {
	stage := NewStage(mocks.NewImageCodec(), logger.NewNoop())

	if _, err := stage.Execute(context.Background(), pipeline.DefaultEncodeInput()); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestStage_InvalidScale(t *testing.T) {
	stage := NewStage(mocks.NewImageCodec(), logger.NewNoop())

	input := pipeline.DefaultEncodeInput()
	input.Scenes = scenes("x")
	input.Scale = -2
	if _, err := stage.Execute(context.Background(), input); err == nil {
		t.Error("expected error for negative scale")
	}
}

func TestStage_EncoderError(t *testing.T) {
	codec := mocks.NewImageCodec()
	codec.EncodeImageFunc = func(image.Image, ports.ImageFormat, int) ([]byte, error) {
		return nil, errors.New("disk full")
	}
	stage := NewStage(codec, logger.NewNoop())

	input := pipeline.DefaultEncodeInput()
	input.Scenes = scenes("x")
	if _, err := stage.Execute(context.Background(), input); err == nil {
		t.Error("expected encoder error")
	}
}

func TestStage_Cancelled(t *testing.T) {
	stage := NewStage(mocks.NewImageCodec(), logger.NewNoop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := pipeline.DefaultEncodeInput()
	input.Scenes = scenes("x")
	if _, err := stage.Execute(ctx, input); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
