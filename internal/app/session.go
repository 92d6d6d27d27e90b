package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"oshi-overlay/internal/core"
	"oshi-overlay/internal/input"
	"oshi-overlay/internal/overlay"
	"oshi-overlay/internal/panel"
)

// ErrQuit is returned by Tick when the user asked to close the overlay.
var ErrQuit = errors.New("quit requested")

// Session runs one overlay plugin and its panel, one tick at a time,
// independent of the window system.
type Session struct {
	plugin *overlay.Plugin
	panel  *panel.Panel
	queue  input.Queue
	log    *slog.Logger
}

// NewSession wires p and its panel together.
func NewSession(p *overlay.Plugin, pn *panel.Panel, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{plugin: p, panel: pn, log: log.With(slog.String("component", "app"))}
}

// Queue returns the event queue for the next tick.
func (s *Session) Queue() *input.Queue { return &s.queue }

// Plugin returns the overlay plugin.
func (s *Session) Plugin() *overlay.Plugin { return s.plugin }

// Panel returns the settings panel.
func (s *Session) Panel() *panel.Panel { return s.panel }

// ToggleOverlay turns the overlay on or off.
func (s *Session) ToggleOverlay() {
	on := !s.plugin.Enabled()
	s.log.LogAttrs(context.Background(), slog.LevelInfo, "toggle overlay", slog.Bool("enabled", on))
	s.plugin.Toggle(on)
}

// TogglePanel shows or hides the settings panel.
func (s *Session) TogglePanel() { s.panel.SetVisible(!s.panel.Visible()) }

// Resize records the window size and docks the panel to its right edge.
func (s *Session) Resize(w, h int) {
	s.plugin.SetScreen(core.Size{W: w, H: h})
	s.panel.Dock(w)
}

// Tick dispatches the queued events and advances the plugin by dt. A drag in
// progress sees pointer events before the panel does. An Escape key nobody
// handled ends the session with ErrQuit.
func (s *Session) Tick(dt time.Duration) error {
	defer s.queue.Reset()
	if s.plugin.Dragging() {
		s.plugin.Update(dt, &s.queue)
		s.panel.Handle(&s.queue)
	} else {
		s.panel.Handle(&s.queue)
		s.plugin.Update(dt, &s.queue)
	}

	quit := false
	s.queue.Each(func(e *input.Event) {
		if e.Kind == input.Key && e.Key == input.KeyEscape {
			e.Consume()
			quit = true
		}
	})
	if quit {
		return ErrQuit
	}
	return nil
}

// Close saves the settings and releases the plugin's resources.
func (s *Session) Close() error {
	err := s.plugin.Save()
	s.plugin.Close()
	return err
}
