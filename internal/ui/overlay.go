//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"oshi-overlay/internal/core"
	"oshi-overlay/internal/overlay"
	"oshi-overlay/internal/render"
)

var dragOutline = color.RGBA{R: 255, G: 214, B: 90, A: 220}

// Overlay draws the overlay plugin's current frame.
type Overlay struct {
	plugin  *overlay.Plugin
	painter *render.FramePainter
	pixel   *ebiten.Image
	screen  *ebiten.Image
}

// NewOverlay constructs a view of p.
func NewOverlay(p *overlay.Plugin) *Overlay {
	return &Overlay{
		plugin:  p,
		painter: render.NewFramePainter(),
		pixel:   render.Solid(color.White),
	}
}

// Draw renders the plugin onto screen, outlining the image while it is
// being dragged.
func (o *Overlay) Draw(screen *ebiten.Image) {
	var frames []image.Image
	if img := o.plugin.Image(); img != nil {
		for _, f := range img.Frames {
			frames = append(frames, f.Image)
		}
	}
	o.painter.Retain(frames)

	o.screen = screen
	o.plugin.Draw(o)
	o.screen = nil

	if st := o.plugin.State(); st.Dragging {
		o.drawOutline(screen, st.Rect, 2, dragOutline)
	}
}

// DrawFrame implements core.Surface.
func (o *Overlay) DrawFrame(frame image.Image, r core.Rect) {
	if o.screen == nil {
		return
	}
	o.painter.Draw(o.screen, frame, r)
}

func (o *Overlay) drawOutline(screen *ebiten.Image, r core.Rect, thickness float64, col color.RGBA) {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H
	o.drawLine(screen, x0, y0, x1, y0, thickness, col)
	o.drawLine(screen, x1, y0, x1, y1, thickness, col)
	o.drawLine(screen, x1, y1, x0, y1, thickness, col)
	o.drawLine(screen, x0, y1, x0, y0, thickness, col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

var _ core.Surface = (*Overlay)(nil)
