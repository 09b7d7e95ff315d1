package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// Every method is keyed by scene name so concurrent scenes never collide.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveLayoutJSON saves the computed chart layout as JSON.
	SaveLayoutJSON(scene string, data []byte) error

	// SaveCallLog saves the recorded drawing calls as JSON.
	SaveCallLog(scene string, data []byte) error

	// SaveSurface saves the rendered surface before output scaling.
	SaveSurface(scene string, img image.Image) error
}
