package imagestore

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"time"

	"golang.org/x/image/draw"
)

// DefaultDelay is used for GIF frames with a missing or non-positive delay.
const DefaultDelay = 100 * time.Millisecond

func init() {
	Register(".gif", decodeGIF)
}

// decodeGIF decodes every frame of an animated GIF. Frames are composited
// onto the logical screen so each returned frame is a complete image.
func decodeGIF(r io.Reader) ([]Frame, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		for _, p := range g.Image {
			screen = screen.Union(p.Bounds())
		}
	}

	if err := checkArea(screen.Dx(), screen.Dy(), len(g.Image)); err != nil {
		return nil, err
	}

	const (
		restoreBackground = 2
		restorePrevious   = 3
	)
	canvas := image.NewRGBA(screen)
	frames := make([]Frame, 0, len(g.Image))
	for i, p := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var restore *image.RGBA
		if disposal == restorePrevious {
			restore = image.NewRGBA(p.Bounds())
			draw.Copy(restore, restore.Bounds().Min, canvas, p.Bounds(), draw.Src, nil)
		}

		draw.Copy(canvas, p.Bounds().Min, p, p.Bounds(), draw.Over, nil)

		out := image.NewRGBA(screen)
		copy(out.Pix, canvas.Pix)
		frames = append(frames, Frame{Image: out, Delay: gifDelay(g.Delay, i)})

		switch disposal {
		case restoreBackground:
			draw.Draw(canvas, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case restorePrevious:
			draw.Copy(canvas, p.Bounds().Min, restore, restore.Bounds(), draw.Src, nil)
		}
	}
	return frames, nil
}

// gifDelay converts the delay of frame i from hundredths of a second.
func gifDelay(delays []int, i int) time.Duration {
	if i >= len(delays) || delays[i] <= 0 {
		return DefaultDelay
	}
	return time.Duration(delays[i]) * 10 * time.Millisecond
}
