package ports

import "context"

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating parent directories as needed.
	// Readers never observe a partially written file.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}

// ConfigWatcher reports changes to a configuration file.
type ConfigWatcher interface {
	// Watch calls onChange each time the file at path is written or
	// replaced, until ctx is cancelled. It blocks and returns ctx.Err()
	// on cancellation, or the first watcher error.
	Watch(ctx context.Context, path string, onChange func()) error
}
