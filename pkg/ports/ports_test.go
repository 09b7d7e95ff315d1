package ports

import (
	"errors"
	"strings"
	"testing"
)

func TestDrawingError_IsBackendError(t *testing.T) {
	cause := errors.New("surface corrupted")
	err := error(NewDrawingError("draw_line", cause))

	if !errors.Is(err, ErrBackend) {
		t.Error("expected errors.Is(err, ErrBackend)")
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is(err, cause)")
	}

	var de *DrawingError
	if !errors.As(err, &de) || de.Op != "draw_line" {
		t.Errorf("expected DrawingError with op draw_line, got %v", err)
	}
	if !strings.Contains(err.Error(), "surface corrupted") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestBackendColor_Styles(t *testing.T) {
	c := Red.Mix(0.5)
	if c.Alpha != 0.5 {
		t.Errorf("expected alpha 0.5, got %v", c.Alpha)
	}
	if c.RGB != [3]uint8{255, 0, 0} {
		t.Errorf("expected red channels, got %v", c.RGB)
	}

	filled := c.Filled()
	if !filled.Filled || filled.Color() != c {
		t.Errorf("unexpected filled style: %+v", filled)
	}

	stroke := Blue.Stroke(3)
	if stroke.Filled || stroke.StrokeWidth() != 3 {
		t.Errorf("unexpected stroke style: %+v", stroke)
	}

	if Black.StrokeWidth() != 1 || Black.Color() != Black {
		t.Error("bare color should act as a 1px style")
	}
}

func TestParseImageFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ImageFormat
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{".jpg", FormatJPEG, false},
		{"jpeg", FormatJPEG, false},
		{"bmp", FormatBMP, false},
		{"tif", FormatTIFF, false},
		{"webp", FormatPNG, true},
	}

	for _, tt := range tests {
		got, err := ParseImageFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseImageFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseImageFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if FormatJPEG.Extension() != ".jpg" || FormatTIFF.Extension() != ".tiff" {
		t.Error("unexpected extensions")
	}
}

func TestLogLevel_UnmarshalText(t *testing.T) {
	var l LogLevel
	if err := l.UnmarshalText([]byte("warn")); err != nil || l != LevelWarn {
		t.Errorf("expected warn, got %v (%v)", l, err)
	}
	if err := l.UnmarshalText([]byte("info")); err != nil || l != LevelInfo {
		t.Errorf("expected info, got %v (%v)", l, err)
	}
	if err := l.UnmarshalText([]byte("verbose")); err == nil {
		t.Error("expected error for unknown level")
	}
	if ParseLogLevel("verbose") != LevelInfo {
		t.Error("ParseLogLevel should default to info")
	}
}
