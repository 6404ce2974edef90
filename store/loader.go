// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Loader reads a YAML config file and watches it for changes.
type Loader struct {
	path     string
	log      *slog.Logger
	mu       sync.RWMutex
	current  *Config
	onChange []func(*Config)
}

// NewLoader creates a Loader and performs the initial load.
// A nil logger discards reload failures.
func NewLoader(path string, log *slog.Logger) (*Loader, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	l := &Loader{path: path, log: log}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	l.current = cfg

	return l, nil
}

// Config returns the current (latest) configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked whenever the config reloads.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload forces an immediate re-read of the config file. On error the
// previous config stays current.
func (l *Loader) Reload() (*Config, error) {
	cfg, err := LoadConfig(l.path)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*Config), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}

	return cfg, nil
}

// Watch starts a background goroutine that hot-reloads the config on file
// changes. The parent directory is watched and events are filtered by file
// name, so editors that save by writing a temp file and renaming it over the
// config keep triggering reloads. Removing the file keeps the previous
// config; recreating it reloads. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	target := filepath.Clean(l.path)
	dir := filepath.Dir(target)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", dir, err)
	}

	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				switch {
				case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
					if _, err := l.Reload(); err != nil {
						l.log.Warn("config reload failed, keeping previous", "path", l.path, "err", err)
					}
				case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
					l.log.Debug("config file moved away, keeping previous", "path", l.path, "op", ev.Op.String())
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.log.Warn("config watcher error", "path", l.path, "err", err)
			case <-done:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }, nil
}
