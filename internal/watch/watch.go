// Package watch reports changes to a single file without blocking the
// caller's tick.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is how long a file must be quiet after its last event before
// Poll reports it changed. Editors and image tools often write in several
// steps.
const Debounce = 250 * time.Millisecond

// File watches one path. The zero value is not usable; use New.
type File struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	pending  time.Time
	log      *slog.Logger
}

// New watches path by watching its directory, so that replace-by-rename
// saves are seen.
func New(path string, debounce time.Duration, log *slog.Logger) (*File, error) {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	err = w.Add(filepath.Dir(path))
	if err != nil {
		w.Close()
		return nil, err
	}
	if debounce < 0 {
		debounce = Debounce
	}
	return &File{
		path:     path,
		watcher:  w,
		debounce: debounce,
		log:      log.With(slog.String("component", "watch")),
	}, nil
}

// Path returns the watched path.
func (f *File) Path() string { return f.path }

// Poll drains pending events and reports whether the file changed and has
// since been quiet for the debounce period as of now.
func (f *File) Poll(now time.Time) bool {
	for {
		select {
		case ev, ok := <-f.watcher.Events:
			if !ok {
				return false
			}
			if filepath.Clean(ev.Name) != f.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			f.pending = now
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return false
			}
			f.log.LogAttrs(context.Background(), slog.LevelWarn, "watch", slog.String("path", f.path), slog.Any("error", err))
		default:
			if f.pending.IsZero() || now.Sub(f.pending) < f.debounce {
				return false
			}
			f.pending = time.Time{}
			return true
		}
	}
}

// Close stops watching.
func (f *File) Close() error { return f.watcher.Close() }
