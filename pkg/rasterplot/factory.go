package rasterplot

import (
	"fmt"

	"github.com/user/rasterplot/pkg/adapters/ggtarget"
	"github.com/user/rasterplot/pkg/adapters/gogputarget"
	"github.com/user/rasterplot/pkg/pipeline"
	"github.com/user/rasterplot/pkg/ports"
)

// NewTargetFactory returns the draw target factory registered under name.
func NewTargetFactory(name string) (ports.TargetFactory, error) {
	switch name {
	case BackendGG, "":
		return ggtarget.NewFactory(), nil
	case BackendGoGPU:
		return gogputarget.NewFactory(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

// PrepareScenes returns a copy of scenes with the config's background applied.
func (c Config) PrepareScenes(scenes []pipeline.Scene) []pipeline.Scene {
	out := make([]pipeline.Scene, len(scenes))
	copy(out, scenes)
	if c.overrideBackground {
		for i := range out {
			out[i].Background = c.Background
		}
	}
	return out
}
