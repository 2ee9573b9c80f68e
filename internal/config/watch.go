package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last write before a
// reload.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc receives the result of a reload.
type ReloadFunc func(cfg *Config, err error)

// Watch reloads the file at path each time it is written, created or
// renamed into place, and passes the result to fn. The file's directory is
// watched so editors that save by rename are seen. Watching stops when ctx
// is done. fn runs on the watcher goroutine.
func Watch(ctx context.Context, path string, fn ReloadFunc) error {
	return watch(ctx, path, DefaultDebounce, fn)
}

func watch(ctx context.Context, path string, debounce time.Duration, fn ReloadFunc) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer fsw.Close()

		timer := time.NewTimer(debounce)
		timer.Stop()
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					timer.Reset(debounce)
				}

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				fn(nil, fmt.Errorf("watching %s: %w", abs, err))

			case <-timer.C:
				fn(Load(abs))
			}
		}
	}()
	return nil
}
