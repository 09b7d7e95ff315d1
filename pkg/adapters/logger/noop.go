package logger

import "github.com/user/rasterplot/pkg/ports"

// NoopLogger discards every message.
// The CLI uses it for --quiet and tests use it to silence stages.
type NoopLogger struct{}

// NewNoop creates a logger that writes nothing.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

// Debug discards the message.
func (l *NoopLogger) Debug(msg string, args ...interface{}) {}

// Info discards the message.
func (l *NoopLogger) Info(msg string, args ...interface{}) {}

// Warn discards the message.
func (l *NoopLogger) Warn(msg string, args ...interface{}) {}

// Error discards the message.
func (l *NoopLogger) Error(msg string, args ...interface{}) {}

// WithComponent returns l; there is no prefix to carry.
func (l *NoopLogger) WithComponent(component string) ports.Logger {
	return l
}

// Ensure NoopLogger implements ports.Logger
var _ ports.Logger = (*NoopLogger)(nil)
