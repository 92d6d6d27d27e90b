//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/bbrks/wrap/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"oshi-overlay/internal/panel"
	"oshi-overlay/internal/render"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 220}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	warningColor    = color.RGBA{R: 255, G: 150, B: 70, A: 255}
	fieldBackground = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	fieldBorder     = color.RGBA{R: 120, G: 160, B: 230, A: 255}
	buttonColor     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonActive    = color.RGBA{R: 70, G: 110, B: 170, A: 255}
)

// HUD draws the settings panel.
type HUD struct {
	panel *panel.Panel
	face  font.Face
	pixel *ebiten.Image
	// charWidth approximates the advance of one rune for field clipping.
	charWidth int
}

// NewHUD constructs a HUD for p drawn with face.
func NewHUD(p *panel.Panel, face font.Face) *HUD {
	w := 7
	if adv, ok := face.GlyphAdvance('M'); ok && adv.Ceil() > 0 {
		w = adv.Ceil()
	}
	return &HUD{panel: p, face: face, pixel: render.Solid(color.White), charWidth: w}
}

// Draw paints the panel when it is visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.panel.Visible() {
		return
	}
	h.fill(screen, h.panel.Bounds(), panelBackground)
	for _, w := range h.panel.Layout() {
		switch w.Kind {
		case panel.Label:
			h.drawText(screen, w.Text, w.Rect, labelColor)
		case panel.Warning:
			h.drawWrapped(screen, w.Text, w.Rect, warningColor)
		case panel.Field:
			h.drawField(screen, w)
		case panel.Button:
			h.drawButton(screen, w)
		}
	}
}

func (h *HUD) drawField(screen *ebiten.Image, w panel.Widget) {
	if w.Active {
		h.fill(screen, w.Rect, fieldBorder)
		h.fill(screen, w.Rect.Inset(1), fieldBackground)
	} else {
		h.fill(screen, w.Rect, fieldBackground)
	}
	s := w.Text
	if w.Active {
		s += "_"
	}
	inner := w.Rect.Inset(4)
	s = panel.Tail(s, inner.Dx()/h.charWidth)
	h.drawText(screen, s, inner, labelColor)
}

func (h *HUD) drawButton(screen *ebiten.Image, w panel.Widget) {
	bg := buttonColor
	if w.Active {
		bg = buttonActive
	}
	h.fill(screen, w.Rect, bg)

	bounds := text.BoundString(h.face, w.Text)
	x := w.Rect.Min.X + (w.Rect.Dx()-bounds.Dx())/2
	y := w.Rect.Min.Y + (w.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, w.Text, h.face, x, y, labelColor)
}

// drawWrapped word-wraps s to the width of r and draws one line per
// panel.LineHeight, dropping lines that do not fit.
func (h *HUD) drawWrapped(screen *ebiten.Image, s string, r image.Rectangle, clr color.Color) {
	cols := r.Dx() / h.charWidth
	if cols <= 0 {
		return
	}
	wrapper := wrap.NewWrapper()
	wrapper.StripTrailingNewline = true
	wrapper.CutLongWords = true
	lines := strings.Split(wrapper.Wrap(s, cols), "\n")
	line := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+panel.LineHeight)
	for _, l := range lines {
		if line.Max.Y > r.Max.Y && line.Min.Y != r.Min.Y {
			return
		}
		h.drawText(screen, strings.TrimSpace(l), line, clr)
		line = line.Add(image.Pt(0, panel.LineHeight))
	}
}

// drawText writes s vertically centred in r, left aligned.
func (h *HUD) drawText(screen *ebiten.Image, s string, r image.Rectangle, clr color.Color) {
	m := h.face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	y := r.Min.Y + (r.Dy()-height)/2 + ascent
	text.Draw(screen, s, h.face, r.Min.X, y, clr)
}

func (h *HUD) fill(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(h.pixel, op)
}
