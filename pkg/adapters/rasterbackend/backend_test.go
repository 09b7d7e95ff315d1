package rasterbackend

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/user/rasterplot/pkg/adapters/ggtarget"
	"github.com/user/rasterplot/pkg/mocks"
	"github.com/user/rasterplot/pkg/ports"
	"github.com/user/rasterplot/pkg/raster"
)

func newSurface(t *testing.T, w, h int) (*Backend, *image.RGBA) {
	t.Helper()
	target, err := ggtarget.NewFactory().NewTarget(w, h, color.White)
	if err != nil {
		t.Fatalf("NewTarget failed: %v", err)
	}
	b, err := New(target)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b, target.Image().(*image.RGBA)
}

func isWhite(c color.RGBA) bool {
	return c.R == 255 && c.G == 255 && c.B == 255
}

func TestNew_NilTarget(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ports.ErrBackend) {
		t.Errorf("expected backend error, got %v", err)
	}
}

func TestBackend_Size(t *testing.T) {
	b, err := New(mocks.NewDrawTarget(640, 480))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w, h := b.Size()
	if w != 640 || h != 480 {
		t.Errorf("Size() = (%d, %d), want (640, 480)", w, h)
	}

	b, _ = New(mocks.NewDrawTarget(0, 0))
	if w, h := b.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = (%d, %d), want (0, 0)", w, h)
	}
}

func TestBackend_LifecycleIsNoop(t *testing.T) {
	dt := mocks.NewDrawTarget(10, 10)
	b, _ := New(dt)

	for i := 0; i < 3; i++ {
		if err := b.EnsurePrepared(); err != nil {
			t.Errorf("EnsurePrepared failed: %v", err)
		}
		if err := b.Present(); err != nil {
			t.Errorf("Present failed: %v", err)
		}
	}
	if len(dt.Calls()) != 0 {
		t.Errorf("lifecycle calls touched the target: %v", dt.Calls())
	}
}

func TestBackend_DrawPixel(t *testing.T) {
	dt := mocks.NewDrawTarget(10, 10)
	b, _ := New(dt)

	if err := b.DrawPixel(ports.Pt(3, 4), ports.Red.Mix(0.2)); err != nil {
		t.Fatalf("DrawPixel failed: %v", err)
	}

	call, ok := dt.LastCall()
	if !ok || call.Method != "FillRect" {
		t.Fatalf("expected FillRect, got %+v", call)
	}
	if call.Rect != [4]float64{3, 4, 1, 1} {
		t.Errorf("unexpected rect: %v", call.Rect)
	}
	// Alpha is converted the same way as for every other primitive.
	if call.Source.A != 51 {
		t.Errorf("expected alpha 51, got %d", call.Source.A)
	}
}

func TestBackend_DrawPixel_Painted(t *testing.T) {
	b, img := newSurface(t, 10, 10)

	if err := b.DrawPixel(ports.Pt(2, 2), ports.Black); err != nil {
		t.Fatalf("DrawPixel failed: %v", err)
	}
	if c := img.RGBAAt(2, 2); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("expected black pixel, got %v", c)
	}
	if c := img.RGBAAt(3, 3); !isWhite(c) {
		t.Errorf("neighbour pixel changed: %v", c)
	}
}

func TestBackend_DrawPixel_OutOfBounds(t *testing.T) {
	b, _ := newSurface(t, 10, 10)

	for _, p := range []ports.Coord{ports.Pt(-5, -5), ports.Pt(100, 3), ports.Pt(3, 100)} {
		if err := b.DrawPixel(p, ports.Red); err != nil {
			t.Errorf("DrawPixel(%v) failed: %v", p, err)
		}
	}
}

func TestBackend_DrawLine_UsesStrokeWidth(t *testing.T) {
	dt := mocks.NewDrawTarget(10, 10)
	b, _ := New(dt)

	if err := b.DrawLine(ports.Pt(0, 0), ports.Pt(9, 9), ports.Green.Stroke(5)); err != nil {
		t.Fatalf("DrawLine failed: %v", err)
	}

	call, _ := dt.LastCall()
	if call.Method != "Stroke" {
		t.Fatalf("expected Stroke, got %s", call.Method)
	}
	if call.Stroke.Width != 5 {
		t.Errorf("expected width 5, got %v", call.Stroke.Width)
	}
	if call.Path.Len() != 2 {
		t.Errorf("expected 2 segments, got %d", call.Path.Len())
	}
}

func TestBackend_DrawLine_Painted(t *testing.T) {
	b, img := newSurface(t, 20, 20)

	if err := b.DrawLine(ports.Pt(0, 10), ports.Pt(19, 10), ports.Black.Stroke(3)); err != nil {
		t.Fatalf("DrawLine failed: %v", err)
	}
	if c := img.RGBAAt(10, 10); isWhite(c) {
		t.Error("expected line pixel to be painted")
	}
	if c := img.RGBAAt(10, 2); !isWhite(c) {
		t.Errorf("pixel far from the line changed: %v", c)
	}
}

func TestBackend_DrawLine_Degenerate(t *testing.T) {
	b, _ := newSurface(t, 10, 10)

	if err := b.DrawLine(ports.Pt(5, 5), ports.Pt(5, 5), ports.Black); err != nil {
		t.Errorf("zero-length line failed: %v", err)
	}
}

func TestBackend_DrawRect_Filled(t *testing.T) {
	b, img := newSurface(t, 20, 20)

	if err := b.DrawRect(ports.Pt(0, 0), ports.Pt(10, 10), ports.Red.Filled(), true); err != nil {
		t.Fatalf("DrawRect failed: %v", err)
	}

	if c := img.RGBAAt(5, 5); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("expected red at (5,5), got %v", c)
	}
	if c := img.RGBAAt(15, 15); !isWhite(c) {
		t.Errorf("expected white at (15,15), got %v", c)
	}
}

func TestBackend_DrawRect_CornerOrder(t *testing.T) {
	pairs := [][2]ports.Coord{
		{ports.Pt(2, 3), ports.Pt(12, 9)},
		{ports.Pt(12, 9), ports.Pt(2, 3)},
		{ports.Pt(12, 3), ports.Pt(2, 9)},
		{ports.Pt(2, 9), ports.Pt(12, 3)},
	}

	var want *image.RGBA
	for i, pair := range pairs {
		b, img := newSurface(t, 16, 16)
		if err := b.DrawRect(pair[0], pair[1], ports.Blue, true); err != nil {
			t.Fatalf("DrawRect failed: %v", err)
		}
		if i == 0 {
			want = img
			continue
		}
		for j := range img.Pix {
			if img.Pix[j] != want.Pix[j] {
				t.Fatalf("corner order %d painted a different area", i)
			}
		}
	}
}

func TestBackend_DrawRect_FillCall(t *testing.T) {
	dt := mocks.NewDrawTarget(20, 20)
	b, _ := New(dt)

	if err := b.DrawRect(ports.Pt(10, 8), ports.Pt(4, 2), ports.Red, true); err != nil {
		t.Fatalf("DrawRect failed: %v", err)
	}
	call, _ := dt.LastCall()
	if call.Rect != [4]float64{4, 2, 6, 6} {
		t.Errorf("unexpected rect: %v", call.Rect)
	}
}

func TestBackend_DrawRect_Outline(t *testing.T) {
	dt := mocks.NewDrawTarget(20, 20)
	b, _ := New(dt)

	if err := b.DrawRect(ports.Pt(1, 1), ports.Pt(8, 8), ports.Red.Stroke(2), false); err != nil {
		t.Fatalf("DrawRect failed: %v", err)
	}
	call, _ := dt.LastCall()
	if call.Method != "Stroke" || call.Path.Len() != 5 || call.Stroke.Width != 2 {
		t.Errorf("unexpected outline call: %+v", call)
	}
}

func TestBackend_DrawRect_ZeroArea(t *testing.T) {
	b, img := newSurface(t, 10, 10)

	if err := b.DrawRect(ports.Pt(5, 5), ports.Pt(5, 5), ports.Red, true); err != nil {
		t.Fatalf("DrawRect failed: %v", err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if !isWhite(img.RGBAAt(x, y)) {
				t.Fatalf("zero-area rect painted (%d,%d)", x, y)
			}
		}
	}
}

func TestBackend_DrawPath(t *testing.T) {
	dt := mocks.NewDrawTarget(20, 20)
	b, _ := New(dt)

	if err := b.DrawPath(nil, ports.Black); err != nil {
		t.Errorf("empty path failed: %v", err)
	}
	if err := b.DrawPath([]ports.Coord{ports.Pt(1, 1)}, ports.Black); err != nil {
		t.Errorf("single point path failed: %v", err)
	}
	if len(dt.Calls()) != 0 {
		t.Errorf("degenerate paths reached the target: %d calls", len(dt.Calls()))
	}

	path := []ports.Coord{ports.Pt(0, 0), ports.Pt(5, 5), ports.Pt(8, 7)}
	if err := b.DrawPath(path, ports.Black.Stroke(3)); err != nil {
		t.Fatalf("DrawPath failed: %v", err)
	}
	call, _ := dt.LastCall()
	if call.Path.Len() != 3 {
		t.Errorf("expected 3 segments, got %d", call.Path.Len())
	}
	for _, s := range call.Path.Segments() {
		if s.Verb == raster.VerbClose {
			t.Error("polyline must stay open")
		}
	}
	if call.Stroke.Width != 3 {
		t.Errorf("expected width 3, got %v", call.Stroke.Width)
	}
}

func TestBackend_DrawCircle(t *testing.T) {
	b, img := newSurface(t, 40, 40)

	if err := b.DrawCircle(ports.Pt(20, 20), 10, ports.Red, true); err != nil {
		t.Fatalf("DrawCircle failed: %v", err)
	}
	if c := img.RGBAAt(20, 20); c.R != 255 || c.G != 0 {
		t.Errorf("expected filled center, got %v", c)
	}
	if c := img.RGBAAt(2, 2); !isWhite(c) {
		t.Errorf("corner changed: %v", c)
	}

	b, img = newSurface(t, 40, 40)
	if err := b.DrawCircle(ports.Pt(20, 20), 10, ports.Black.Stroke(2), false); err != nil {
		t.Fatalf("DrawCircle failed: %v", err)
	}
	if c := img.RGBAAt(20, 20); !isWhite(c) {
		t.Errorf("outline filled the center: %v", c)
	}
	if c := img.RGBAAt(30, 20); isWhite(c) {
		t.Error("expected outline pixel to be painted")
	}
}

func TestBackend_DrawCircle_ZeroRadius(t *testing.T) {
	dt := mocks.NewDrawTarget(10, 10)
	b, _ := New(dt)

	if err := b.DrawCircle(ports.Pt(5, 5), 0, ports.Red, true); err != nil {
		t.Errorf("zero radius failed: %v", err)
	}
	if len(dt.Calls()) != 0 {
		t.Error("zero radius reached the target")
	}
}

func TestBackend_FillPolygon(t *testing.T) {
	b, img := newSurface(t, 20, 20)

	tri := []ports.Coord{ports.Pt(0, 0), ports.Pt(10, 0), ports.Pt(5, 10)}
	if err := b.FillPolygon(tri, ports.Black); err != nil {
		t.Fatalf("FillPolygon failed: %v", err)
	}
	if c := img.RGBAAt(5, 3); isWhite(c) {
		t.Error("expected interior pixel to be painted")
	}
	if c := img.RGBAAt(0, 9); !isWhite(c) {
		t.Errorf("expected (0,9) untouched, got %v", c)
	}
	if c := img.RGBAAt(9, 9); !isWhite(c) {
		t.Errorf("expected (9,9) untouched, got %v", c)
	}
}

func TestBackend_FillPolygon_Degenerate(t *testing.T) {
	dt := mocks.NewDrawTarget(10, 10)
	b, _ := New(dt)

	if err := b.FillPolygon([]ports.Coord{ports.Pt(1, 1), ports.Pt(2, 2)}, ports.Red); err != nil {
		t.Errorf("two-vertex polygon failed: %v", err)
	}
	if len(dt.Calls()) != 0 {
		t.Error("degenerate polygon reached the target")
	}
}

func TestBackend_LaterDrawsOcclude(t *testing.T) {
	b, img := newSurface(t, 20, 20)

	if err := b.DrawRect(ports.Pt(0, 0), ports.Pt(20, 20), ports.Red, true); err != nil {
		t.Fatal(err)
	}
	if err := b.DrawRect(ports.Pt(5, 5), ports.Pt(15, 15), ports.Blue, true); err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(10, 10); c.B != 255 || c.R != 0 {
		t.Errorf("expected blue on top, got %v", c)
	}
	if c := img.RGBAAt(2, 2); c.R != 255 || c.B != 0 {
		t.Errorf("expected red outside, got %v", c)
	}
}

func TestBackend_TranslucentBlend(t *testing.T) {
	b, img := newSurface(t, 10, 10)

	if err := b.DrawRect(ports.Pt(0, 0), ports.Pt(10, 10), ports.Black.Mix(0.5), true); err != nil {
		t.Fatal(err)
	}
	c := img.RGBAAt(5, 5)
	if c.R < 120 || c.R > 135 {
		t.Errorf("expected mid gray, got %v", c)
	}
}

func TestBackend_TargetErrorIsWrapped(t *testing.T) {
	cause := errors.New("surface lost")
	dt := mocks.NewDrawTarget(10, 10)
	dt.StrokeFunc = func(*raster.Path, raster.Source, raster.StrokeStyle, raster.DrawOptions) error {
		return cause
	}
	dt.FillFunc = func(*raster.Path, raster.Source, raster.DrawOptions) error {
		return cause
	}
	dt.FillRectFunc = func(float64, float64, float64, float64, raster.Source, raster.DrawOptions) error {
		return cause
	}
	b, _ := New(dt)

	ops := []struct {
		op  string
		run func() error
	}{
		{OpDrawPixel, func() error { return b.DrawPixel(ports.Pt(1, 1), ports.Red) }},
		{OpDrawLine, func() error { return b.DrawLine(ports.Pt(0, 0), ports.Pt(5, 5), ports.Red) }},
		{OpDrawRect, func() error { return b.DrawRect(ports.Pt(0, 0), ports.Pt(5, 5), ports.Red, true) }},
		{OpDrawRect, func() error { return b.DrawRect(ports.Pt(0, 0), ports.Pt(5, 5), ports.Red, false) }},
		{OpDrawPath, func() error { return b.DrawPath([]ports.Coord{ports.Pt(0, 0), ports.Pt(5, 5)}, ports.Red) }},
		{OpDrawCircle, func() error { return b.DrawCircle(ports.Pt(5, 5), 3, ports.Red, true) }},
		{OpDrawCircle, func() error { return b.DrawCircle(ports.Pt(5, 5), 3, ports.Red, false) }},
		{OpFillPolygon, func() error {
			return b.FillPolygon([]ports.Coord{ports.Pt(0, 0), ports.Pt(5, 0), ports.Pt(0, 5)}, ports.Red)
		}},
	}

	for _, tt := range ops {
		err := tt.run()
		if !errors.Is(err, ports.ErrBackend) {
			t.Errorf("%s: expected backend error, got %v", tt.op, err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("%s: cause not preserved: %v", tt.op, err)
		}
		var de *ports.DrawingError
		if errors.As(err, &de) && de.Op != tt.op {
			t.Errorf("expected op %s, got %s", tt.op, de.Op)
		}
	}

	// The backend stays usable once the target recovers.
	dt.FillRectFunc = nil
	if err := b.DrawPixel(ports.Pt(1, 1), ports.Red); err != nil {
		t.Errorf("draw after failure returned %v", err)
	}
}
