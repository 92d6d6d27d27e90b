//go:build ebiten

package app

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"oshi-overlay/internal/core"
	"oshi-overlay/internal/ui"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session   *Session
	clock     *core.DeltaClock
	collector ui.Collector
	overlay   *ui.Overlay
	hud       *ui.HUD

	w, h int
}

// New constructs a Game for s, drawing panel text with face.
func New(s *Session, face font.Face) *Game {
	return &Game{
		session: s,
		clock:   core.NewDeltaClock(maxTick),
		overlay: ui.NewOverlay(s.Plugin()),
		hud:     ui.NewHUD(s.Panel(), face),
	}
}

// Update handles hotkeys, collects input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.session.TogglePanel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.session.ToggleOverlay()
	}
	g.collector.Collect(g.session.Queue())
	if err := g.session.Tick(g.clock.Tick()); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw renders the overlay, then the panel on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout uses the window size as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.session.Resize(g.w, g.h)
	}
	return outsideWidth, outsideHeight
}

// maxTick bounds the delta fed to the animation after a stalled frame.
const maxTick = 250 * time.Millisecond
