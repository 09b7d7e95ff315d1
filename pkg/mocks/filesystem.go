package mocks

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/user/rasterplot/pkg/ports"
)

// FileSystem is an in-memory ports.FileSystem.
// Like the OS adapter, WriteFile creates parent directories. It is safe
// for the concurrent writes made by render workers.
type FileSystem struct {
	mu     sync.RWMutex
	files  map[string][]byte
	dirs   map[string]bool
	writes []string

	// WriteFileFunc, when set, replaces WriteFile entirely.
	WriteFileFunc func(path string, data []byte) error
	// MkdirAllFunc, when set, replaces MkdirAll entirely.
	MkdirAllFunc func(path string) error
}

// NewFileSystem creates an empty in-memory FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

// ReadFile returns a copy of the stored contents.
func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

// WriteFile stores a copy of data and records the write.
func (m *FileSystem) WriteFile(path string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data)
	}
	path = filepath.Clean(path)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirs(filepath.Dir(path))
	m.files[path] = append([]byte(nil), data...)
	m.writes = append(m.writes, path)
	return nil
}

// MkdirAll records path and its parents as directories.
func (m *FileSystem) MkdirAll(path string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markDirs(filepath.Clean(path))
	return nil
}

// Exists reports whether a file or directory was recorded at path.
func (m *FileSystem) Exists(path string) (bool, error) {
	path = filepath.Clean(path)
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}

// Remove deletes the file or directory entry at path.
func (m *FileSystem) Remove(path string) error {
	path = filepath.Clean(path)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	delete(m.dirs, path)
	return nil
}

func (m *FileSystem) markDirs(dir string) {
	for dir != "." && dir != string(filepath.Separator) && !m.dirs[dir] {
		m.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
}

// GetFile returns the stored contents of path.
func (m *FileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(path)]
	return data, ok
}

// Paths returns every stored file path, sorted.
func (m *FileSystem) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Writes returns the written paths in call order, including rewrites.
func (m *FileSystem) Writes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.writes...)
}

var _ ports.FileSystem = (*FileSystem)(nil)
