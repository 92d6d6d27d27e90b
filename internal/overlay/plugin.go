// Package overlay implements the overlay plugin: it owns the overlay state
// and ties image loading, sizing, playback and dragging together.
package overlay

import (
	"context"
	"errors"
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"oshi-overlay/internal/anim"
	"oshi-overlay/internal/core"
	"oshi-overlay/internal/drag"
	"oshi-overlay/internal/fit"
	"oshi-overlay/internal/imagestore"
	"oshi-overlay/internal/input"
	"oshi-overlay/internal/settings"
	"oshi-overlay/internal/watch"
)

// ErrDisabled is returned when an image is applied while the overlay is off.
var ErrDisabled = errors.New("overlay is disabled")

// DefaultRect is where the overlay starts before an image sizes it.
var DefaultRect = core.Rect{X: 100, Y: 100, W: 200, H: 200}

// State is a snapshot of the overlay state.
type State struct {
	FilePath  string
	Rect      core.Rect
	MaxWidth  int
	MaxHeight int
	Dragging  bool
}

// Options configures a Plugin.
type Options struct {
	// Watch reloads the current image when its file changes.
	Watch bool
	Log   *slog.Logger
}

// Plugin is the overlay. It is driven from a single goroutine.
type Plugin struct {
	log      *slog.Logger
	settings *settings.Facade
	store    *imagestore.Store
	clock    *anim.Clock
	drag     drag.Controller

	enabled bool
	rect    core.Rect
	path    string

	watch   bool
	watcher *watch.File
	now     func() time.Time
}

var _ core.Plugin = (*Plugin)(nil)

// New returns a disabled plugin using s for bounds and persistence.
func New(s *settings.Facade, opts Options) *Plugin {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Plugin{
		log:      log.With(slog.String("component", "overlay")),
		settings: s,
		store:    imagestore.New(log),
		clock:    anim.NewClock(nil),
		rect:     DefaultRect,
		watch:    opts.Watch,
		now:      time.Now,
	}
}

// Settings returns the settings facade.
func (p *Plugin) Settings() *settings.Facade { return p.settings }

// Enabled reports whether the overlay is on.
func (p *Plugin) Enabled() bool { return p.enabled }

// Toggle turns the overlay on or off. Turning it on restores the last
// applied image; turning it off discards the image and overlay state.
func (p *Plugin) Toggle(enabled bool) {
	if enabled == p.enabled {
		return
	}
	p.enabled = enabled
	if enabled {
		p.rect = DefaultRect
		if last := p.settings.LastImagePath(); last != "" {
			p.load(last)
		}
		return
	}
	p.store.Clear()
	p.clock.SetDelays(nil)
	p.drag.Cancel()
	p.stopWatching()
	p.rect = DefaultRect
	p.path = ""
}

// Update advances playback by dt and lets the drag controller consume
// pointer events from q.
func (p *Plugin) Update(dt time.Duration, q *input.Queue) {
	if !p.enabled {
		return
	}
	if p.store.Current() != nil {
		p.drag.Handle(q, &p.rect)
	}
	p.clock.Tick(dt)
	if p.watcher != nil && p.watcher.Poll(p.now()) {
		path := p.watcher.Path()
		p.log.LogAttrs(context.Background(), slog.LevelInfo, "image changed on disk", slog.String("path", path))
		p.load(path)
	}
}

// Draw hands the current frame to s.
func (p *Plugin) Draw(s core.Surface) {
	if frame := p.CurrentFrame(); frame != nil {
		s.DrawFrame(frame, p.rect)
	}
}

// Save persists the settings.
func (p *Plugin) Save() error {
	err := p.settings.Save()
	if err != nil {
		p.log.LogAttrs(context.Background(), slog.LevelError, "save settings", slog.Any("error", err))
	}
	return err
}

// CurrentFrame returns the frame to display, or nil when nothing should be
// drawn.
func (p *Plugin) CurrentFrame() image.Image {
	img := p.store.Current()
	if !p.enabled || img == nil {
		return nil
	}
	i := p.clock.Frame()
	if i < 0 || i >= len(img.Frames) {
		return nil
	}
	return img.Frames[i].Image
}

// Image returns the loaded image, or nil.
func (p *Plugin) Image() *imagestore.Image { return p.store.Current() }

// Frame returns the index of the frame being shown.
func (p *Plugin) Frame() int { return p.clock.Frame() }

// Loop returns the duration of one pass through the animation.
func (p *Plugin) Loop() time.Duration {
	if !p.clock.Active() {
		return 0
	}
	return p.clock.Loop()
}

// State returns a snapshot of the overlay state.
func (p *Plugin) State() State {
	w, h := p.settings.Bounds()
	return State{
		FilePath:  p.path,
		Rect:      p.rect,
		MaxWidth:  w,
		MaxHeight: h,
		Dragging:  p.drag.Dragging(),
	}
}

// Dragging reports whether the overlay is being dragged.
func (p *Plugin) Dragging() bool { return p.drag.Dragging() }

// SetScreen records the screen size used to clamp the bounds.
func (p *Plugin) SetScreen(size core.Size) { p.settings.SetScreen(size) }

// ApplyPath loads the image at raw, after stripping quotes and whitespace,
// and records it as the image to restore on start. The path is recorded and
// saved even when loading fails. Nothing is loaded or recorded while the
// overlay is off; the error is ErrDisabled.
func (p *Plugin) ApplyPath(raw string) (string, error) {
	path := imagestore.CleanPath(raw)
	if !p.enabled {
		return path, ErrDisabled
	}
	err := p.load(path)
	p.settings.SetLastImagePath(path)
	p.Save()
	return path, err
}

// Show loads the image at raw like ApplyPath but does not record it, so the
// saved image is restored on the next start.
func (p *Plugin) Show(raw string) (string, error) {
	path := imagestore.CleanPath(raw)
	if !p.enabled {
		return path, ErrDisabled
	}
	return path, p.load(path)
}

// ApplyBounds applies the bound fields, saves, and re-lays out the overlay
// when at least one bound was accepted. The returned error wraps
// settings.ErrInvalidNumber for rejected fields.
func (p *Plugin) ApplyBounds() error {
	applied, err := p.settings.ApplyBounds()
	p.Save()
	if applied {
		p.relayout()
	}
	return err
}

// load replaces the current image with the one at path. A missing file
// leaves the current image, its path and its watcher untouched.
func (p *Plugin) load(path string) error {
	if !p.enabled {
		return ErrDisabled
	}
	img, err := p.store.Load(path)
	if err != nil {
		if errors.Is(err, imagestore.ErrDecode) {
			p.path = path
			p.clock.SetDelays(nil)
			p.watchPath(path)
		}
		return err
	}
	p.path = path
	p.clock.SetDelays(img.Delays())
	p.relayout()
	p.watchPath(path)
	return nil
}

// relayout resizes the rectangle to fit the current image in the bounds.
func (p *Plugin) relayout() {
	img := p.store.Current()
	if img == nil {
		return
	}
	maxW, maxH := p.settings.Bounds()
	p.rect.W, p.rect.H = fit.Compute(float64(img.Width), float64(img.Height), float64(maxW), float64(maxH))
}

func (p *Plugin) watchPath(path string) {
	if !p.watch {
		return
	}
	if p.watcher != nil && p.watcher.Path() == filepath.Clean(path) {
		return
	}
	p.stopWatching()
	w, err := watch.New(path, watch.Debounce, p.log)
	if err != nil {
		p.log.LogAttrs(context.Background(), slog.LevelWarn, "watch image", slog.String("path", path), slog.Any("error", err))
		return
	}
	p.watcher = w
}

func (p *Plugin) stopWatching() {
	if p.watcher == nil {
		return
	}
	p.watcher.Close()
	p.watcher = nil
}

// Close releases the file watcher.
func (p *Plugin) Close() { p.stopWatching() }
