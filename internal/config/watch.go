package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchOption customizes Watch.
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce *debouncer
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(window time.Duration) WatchOption {
	return func(o *watchOptions) {
		o.debounce = newDebouncer(window)
	}
}

// Watch reloads path whenever it changes on disk and reports the result to
// onChange. A reload that fails passes a nil config and the error; the
// caller keeps whatever it had. Watching stops when ctx is done.
//
// The parent directory is watched rather than the file so editors that
// save by rename keep being observed.
func Watch(ctx context.Context, path string, onChange func(*Config, error), opts ...WatchOption) error {
	if path == "" {
		return fmt.Errorf("watch config: empty path")
	}
	if onChange == nil {
		return fmt.Errorf("watch config: nil callback")
	}

	o := watchOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.debounce == nil {
		o.debounce = newDebouncer(DefaultDebounce)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	target = filepath.Clean(target)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch config: %w", err)
	}

	reload := func() {
		if ctx.Err() != nil {
			return
		}
		onChange(Load(target))
	}

	go func() {
		defer w.Close()
		defer o.debounce.stop()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					o.debounce.trigger(reload)
				}
			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				onChange(nil, fmt.Errorf("watch config: %w", werr))
			}
		}
	}()

	return nil
}
