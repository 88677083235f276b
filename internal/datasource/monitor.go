package datasource

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Monitor watches one input file and invokes a handler when it is
// rewritten. Editors and exports often produce bursts of write events,
// so triggers within the debounce window collapse into one.
type Monitor struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewMonitor watches the directory containing path; only events for
// path itself trigger the handler.
func NewMonitor(path string, debounce time.Duration) (*Monitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	return &Monitor{
		path:     path,
		debounce: debounce,
		watcher:  watcher,
	}, nil
}

// Watch blocks, invoking handler on each (debounced) rewrite of the
// watched file, until the context is cancelled or the watcher fails.
func (m *Monitor) Watch(ctx context.Context, handler func(string)) error {
	var lastTrigger time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-m.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(m.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if time.Since(lastTrigger) < m.debounce {
				continue
			}
			lastTrigger = time.Now()

			slog.Info("Input file changed", "path", m.path, "op", event.Op.String())
			handler(m.path)
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// Close stops the underlying watcher.
func (m *Monitor) Close() error {
	return m.watcher.Close()
}
