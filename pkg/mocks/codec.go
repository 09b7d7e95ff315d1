package mocks

import (
	"fmt"
	"image"
	"sync"

	"github.com/user/rasterplot/pkg/ports"
)

// ImageCodec is a mock implementation of ports.ImageCodec.
// Encoded output is a short text tag naming the format and bounds.
type ImageCodec struct {
	mu      sync.Mutex
	encoded int

	EncodeImageFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
}

// NewImageCodec creates a new mock ImageCodec.
func NewImageCodec() *ImageCodec {
	return &ImageCodec{}
}

func (m *ImageCodec) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	return nil, fmt.Errorf("mock codec cannot decode %s", format)
}

func (m *ImageCodec) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.mu.Lock()
	m.encoded++
	m.mu.Unlock()
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	b := img.Bounds()
	return []byte(fmt.Sprintf("%s:%dx%d", format, b.Dx(), b.Dy())), nil
}

func (m *ImageCodec) ResizeImage(img image.Image, width, height int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// EncodeCount returns how many images were encoded.
func (m *ImageCodec) EncodeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.encoded
}

var _ ports.ImageCodec = (*ImageCodec)(nil)
