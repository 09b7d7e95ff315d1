// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/rasterplot/pkg/ports"
)

// Sink saves debug output under <baseDir>/<scene>/.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	codec   ports.ImageCodec
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, codec ports.ImageCodec) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		codec:   codec,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveLayoutJSON saves the chart layout as layout.json.
func (s *Sink) SaveLayoutJSON(scene string, data []byte) error {
	return s.fs.WriteFile(s.path(scene, "layout.json"), data)
}

// SaveCallLog saves the recorded backend calls as calls.json.
func (s *Sink) SaveCallLog(scene string, data []byte) error {
	return s.fs.WriteFile(s.path(scene, "calls.json"), data)
}

// SaveSurface saves the unscaled surface as surface.png.
func (s *Sink) SaveSurface(scene string, img image.Image) error {
	data, err := s.codec.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode surface: %w", err)
	}
	return s.fs.WriteFile(s.path(scene, "surface.png"), data)
}

func (s *Sink) path(scene, name string) string {
	return filepath.Join(s.baseDir, scene, name)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
