//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"oshi-overlay/internal/core"
)

// FramePainter keeps one GPU image per decoded frame so a playing
// animation does not re-upload pixels every tick.
type FramePainter struct {
	cache map[image.Image]*ebiten.Image
	buf   []byte
}

// NewFramePainter returns an empty painter.
func NewFramePainter() *FramePainter {
	return &FramePainter{cache: make(map[image.Image]*ebiten.Image)}
}

// Retain drops cached frames that are not in keep.
func (fp *FramePainter) Retain(keep []image.Image) {
	live := make(map[image.Image]bool, len(keep))
	for _, f := range keep {
		live[f] = true
	}
	for f, img := range fp.cache {
		if !live[f] {
			img.Dispose()
			delete(fp.cache, f)
		}
	}
}

// Draw paints frame scaled into r on dst.
func (fp *FramePainter) Draw(dst *ebiten.Image, frame image.Image, r core.Rect) {
	img := fp.upload(frame)
	if img == nil {
		return
	}
	b := frame.Bounds()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	dst.DrawImage(img, op)
}

func (fp *FramePainter) upload(frame image.Image) *ebiten.Image {
	if img, ok := fp.cache[frame]; ok {
		return img
	}
	b := frame.Bounds()
	if b.Empty() {
		return nil
	}
	n := 4 * b.Dx() * b.Dy()
	if cap(fp.buf) < n {
		fp.buf = make([]byte, n)
	}
	fp.buf = fp.buf[:n]
	fillRGBA(fp.buf, frame)
	img := ebiten.NewImage(b.Dx(), b.Dy())
	img.WritePixels(fp.buf)
	fp.cache[frame] = img
	return img
}

// Solid is a 1x1 image of a single colour, stretched with GeoM to draw
// rectangles and lines.
func Solid(c color.Color) *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	buf := make([]byte, 4)
	fillSolidRGBA(buf, c)
	img.WritePixels(buf)
	return img
}
