package ports

import (
	"fmt"
	"image"
	"strings"
)

// ImageCodec abstracts raster image encoding for surface output.
type ImageCodec interface {
	// DecodeImage decodes image data into an image.Image.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	// Quality is only used by lossy formats.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
	FormatBMP
	FormatTIFF
)

// String returns the format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// Extension returns the file extension for the format, with leading dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatBMP:
		return ".bmp"
	case FormatTIFF:
		return ".tiff"
	default:
		return ".png"
	}
}

// ParseImageFormat parses a format name such as "png" or "jpg".
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return FormatPNG, fmt.Errorf("unsupported image format: %q", s)
	}
}
