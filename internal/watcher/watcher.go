// Package watcher reloads the settings file into the registry when it
// changes on disk.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-settings-registry/internal/logger"
	"github.com/MKhiriev/go-settings-registry/internal/settings"
)

// DefaultDebounce is the quiet period after the last file event before a
// reload is triggered.
const DefaultDebounce = 500 * time.Millisecond

// Loader merges a settings file into the registry.
type Loader interface {
	ProcessConfigFile(path string) (settings.StatusCode, error)
}

// FileWatcher is a workers.Worker that watches a single settings file.
//
// The parent directory is watched rather than the file itself so that
// editors and atomic writers that replace the file by rename are picked up.
type FileWatcher struct {
	path     string
	loader   Loader
	debounce time.Duration
	logger   *logger.Logger

	// OnReload, if set, is called after every reload attempt with its result.
	OnReload func(err error)
}

// NewFileWatcher returns a watcher for path. A non-positive debounce selects
// [DefaultDebounce].
func NewFileWatcher(path string, loader Loader, debounce time.Duration, log *logger.Logger) *FileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = logger.Nop()
	}

	return &FileWatcher{
		path:     filepath.Clean(path),
		loader:   loader,
		debounce: debounce,
		logger:   log.WithComponent("watcher"),
	}
}

// Run watches the file until ctx is cancelled. Reload failures are logged
// and do not stop the watcher.
func (w *FileWatcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch settings directory: %w", err)
	}

	w.logger.Info().Str("path", w.path).Msg("watching settings file for changes")

	var (
		mu    sync.Mutex
		timer *time.Timer
		wg    sync.WaitGroup
	)
	defer func() {
		mu.Lock()
		if timer != nil && timer.Stop() {
			wg.Done()
		}
		mu.Unlock()
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("settings watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			w.logger.Debug().Str("op", event.Op.String()).Msg("settings file changed")

			mu.Lock()
			if timer != nil && timer.Stop() {
				wg.Done()
			}
			wg.Add(1)
			timer = time.AfterFunc(w.debounce, func() {
				defer wg.Done()
				if ctx.Err() != nil {
					return
				}
				w.reload()
			})
			mu.Unlock()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("settings watcher error")
		}
	}
}

func (w *FileWatcher) reload() {
	_, err := w.loader.ProcessConfigFile(w.path)

	switch {
	case err == nil:
		w.logger.Info().Msg("settings file reloaded")
	case errors.Is(err, settings.ErrInvalidConfigurationValue):
		w.logger.Warn().Err(err).Msg("reloaded settings failed validation")
	default:
		w.logger.Error().Err(err).Msg("settings reload failed")
	}

	if w.OnReload != nil {
		w.OnReload(err)
	}
}
