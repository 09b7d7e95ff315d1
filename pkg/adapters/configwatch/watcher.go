// Package configwatch reports configuration file changes using fsnotify.
package configwatch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/user/rasterplot/pkg/ports"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 300 * time.Millisecond

// Watcher implements ports.ConfigWatcher.
type Watcher struct {
	debounce time.Duration
	logger   ports.Logger
}

// New creates a watcher. A non-positive debounce uses DefaultDebounce.
func New(debounce time.Duration, logger ports.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		debounce: debounce,
		logger:   logger.WithComponent("watch"),
	}
}

// Watch blocks until ctx is cancelled, calling onChange after each burst
// of writes to path.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// The parent directory is watched so editors that save by rename are seen.
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	w.logger.Debug("Watching %s", absPath)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			eventAbs, _ := filepath.Abs(event.Name)
			if eventAbs != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer = nil
			fire = nil
			w.logger.Info("Configuration changed: %s", path)
			onChange()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
}

// Ensure Watcher implements ports.ConfigWatcher
var _ ports.ConfigWatcher = (*Watcher)(nil)
