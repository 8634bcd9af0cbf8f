package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/viewkit/internal/debounce"
	"github.com/alexisbeaulieu97/viewkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/viewkit/internal/ports"
)

// ReloadFunc receives the outcome of every debounced reload.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads a configuration file when it changes on disk.
type Watcher struct {
	path   string
	wait   time.Duration
	lookup LookupFunc
	logger ports.Logger
}

// NewWatcher creates a watcher for path. Bursts of filesystem events within
// wait collapse into one reload; a non-positive wait uses debounce.DefaultWait.
func NewWatcher(path string, wait time.Duration, logger ports.Logger) *Watcher {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Watcher{
		path:   path,
		wait:   wait,
		logger: logger.With("component", "config_watcher"),
	}
}

// WithLookup sets the environment lookup applied on every reload.
func (w *Watcher) WithLookup(lookup LookupFunc) *Watcher {
	w.lookup = lookup
	return w
}

// Run blocks until ctx is done, calling onReload after each change. The
// parent directory is watched so editors that replace the file are seen.
func (w *Watcher) Run(ctx context.Context, onReload ReloadFunc) error {
	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	d := debounce.New(w.wait)
	defer d.Cancel()

	reload := func() {
		cfg, err := Load(abs)
		if err == nil {
			err = ApplyEnv(cfg, w.lookup)
		}
		if err != nil {
			w.logger.Warn(ctx, "config reload failed", "path", abs, "error", err)
			onReload(nil, err)
			return
		}
		w.logger.Info(ctx, "config reloaded", "path", abs)
		onReload(cfg, nil)
	}

	w.logger.Debug(ctx, "watching config", "path", abs)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			d.Trigger(reload)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn(ctx, "file watcher error", "error", err)
		}
	}
}
