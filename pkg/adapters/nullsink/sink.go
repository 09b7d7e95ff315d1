// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/rasterplot/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveLayoutJSON does nothing.
func (s *Sink) SaveLayoutJSON(scene string, data []byte) error {
	return nil
}

// SaveCallLog does nothing.
func (s *Sink) SaveCallLog(scene string, data []byte) error {
	return nil
}

// SaveSurface does nothing.
func (s *Sink) SaveSurface(scene string, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
