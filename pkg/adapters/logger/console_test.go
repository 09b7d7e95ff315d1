package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/rasterplot/pkg/ports"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelInfo, &out, &errOut)

	log.Debug("hidden %d", 1)
	log.Info("rendered %d scenes", 3)
	log.Warn("careful")
	log.Error("broken: %s", "disk")

	if strings.Contains(out.String(), "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out.String(), "rendered 3 scenes") {
		t.Errorf("missing info line in %q", out.String())
	}
	if !strings.Contains(errOut.String(), "careful") || !strings.Contains(errOut.String(), "broken: disk") {
		t.Errorf("warn and error should go to the error stream, got %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelDebug, &out, &out).WithComponent("render")

	log.Debug("job %d", 2)

	if got := out.String(); got != "[render] job 2\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelQuiet, &out, &out)

	log.Error("nothing")

	if out.Len() != 0 {
		t.Errorf("quiet logger wrote %q", out.String())
	}
}

func TestNoopLogger_WithComponent(t *testing.T) {
	log := NewNoop()
	if got := log.WithComponent("render"); got != ports.Logger(log) {
		t.Errorf("expected the same no-op logger, got %T", got)
	}
	log.Error("dropped %d", 1)
}
