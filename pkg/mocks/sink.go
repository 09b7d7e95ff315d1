package mocks

import (
	"image"
	"sync"

	"github.com/user/rasterplot/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Layouts  map[string][]byte
	CallLogs map[string][]byte
	Surfaces map[string]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:  enabled,
		Layouts:  make(map[string][]byte),
		CallLogs: make(map[string][]byte),
		Surfaces: make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveLayoutJSON(scene string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Layouts[scene] = data
	return nil
}

func (m *DebugSink) SaveCallLog(scene string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallLogs[scene] = data
	return nil
}

func (m *DebugSink) SaveSurface(scene string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Surfaces[scene] = img
	return nil
}

// CallLog returns the saved call log for scene (for test verification).
func (m *DebugSink) CallLog(scene string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.CallLogs[scene]
	return data, ok
}

var _ ports.DebugSink = (*DebugSink)(nil)
