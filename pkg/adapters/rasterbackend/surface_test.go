package rasterbackend

import (
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/user/rasterplot/pkg/adapters/ggtarget"
	"github.com/user/rasterplot/pkg/adapters/gogputarget"
	"github.com/user/rasterplot/pkg/ports"
)

// rasterizers lists the real targets. lastLinePixel is the right-most
// column each one paints for a default stroke from x=0 to x=10 on the
// top edge: gg covers the end cap partially, gogpu stops at the end point.
var rasterizers = []struct {
	name          string
	factory       ports.TargetFactory
	lastLinePixel int
}{
	{"gg", ggtarget.NewFactory(), 10},
	{"gogpu", gogputarget.NewFactory(), 9},
}

func newTargetSurface(t *testing.T, f ports.TargetFactory, w, h int) (*Backend, ports.DrawTarget) {
	t.Helper()
	dt, err := f.NewTarget(w, h, color.White)
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}
	if c, ok := dt.(io.Closer); ok {
		t.Cleanup(func() { _ = c.Close() })
	}
	b, err := New(dt)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b, dt
}

func painted(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r>>8 < 250 || g>>8 < 250 || b>>8 < 250
}

func TestBackend_DrawLine_TopEdge(t *testing.T) {
	for _, rz := range rasterizers {
		t.Run(rz.name, func(t *testing.T) {
			b, dt := newTargetSurface(t, rz.factory, 20, 8)

			if err := b.DrawLine(ports.Pt(0, 0), ports.Pt(10, 0), ports.Black); err != nil {
				t.Fatalf("DrawLine failed: %v", err)
			}

			img := dt.Image()
			for x := 0; x <= rz.lastLinePixel; x++ {
				if !painted(img, x, 0) {
					t.Errorf("expected (%d, 0) to be painted", x)
				}
			}
			if painted(img, 12, 0) {
				t.Error("pixel past the line end changed")
			}
			if painted(img, 5, 3) {
				t.Error("pixel below the line changed")
			}
		})
	}
}

func TestBackend_DrawCircle_ZeroRadiusOutline(t *testing.T) {
	for _, rz := range rasterizers {
		t.Run(rz.name, func(t *testing.T) {
			b, dt := newTargetSurface(t, rz.factory, 9, 9)

			if err := b.DrawCircle(ports.Pt(4, 4), 0, ports.Black, false); err != nil {
				t.Fatalf("DrawCircle failed: %v", err)
			}

			img := dt.Image()
			for y := 0; y < 9; y++ {
				for x := 0; x < 9; x++ {
					if x == 4 && y == 4 {
						continue
					}
					if painted(img, x, y) {
						t.Errorf("pixel (%d, %d) changed", x, y)
					}
				}
			}
		})
	}
}
