package core

import (
	"image"
	"time"

	"oshi-overlay/internal/input"
)

// Point is a position in screen pixels.
type Point struct {
	X float64
	Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Size describes the dimensions of a screen or image.
type Size struct {
	W int
	H int
}

// Rect is the on-screen box the overlay frame is drawn in.
type Rect struct {
	X, Y float64
	W, H float64
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// MoveTo sets the origin without changing the size.
func (r *Rect) MoveTo(p Point) {
	r.X = p.X
	r.Y = p.Y
}

// Contains reports whether p lies inside the rectangle. The right and bottom
// edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Surface receives the frame to draw for the current tick.
type Surface interface {
	DrawFrame(frame image.Image, r Rect)
}

// Plugin is the lifecycle contract the host drives once per tick.
type Plugin interface {
	// Toggle enables or disables the overlay. Disabling discards all
	// overlay state.
	Toggle(enabled bool)
	// Update advances the overlay by dt, consuming pointer events from q.
	Update(dt time.Duration, q *input.Queue)
	// Draw renders the current frame, if any, onto s.
	Draw(s Surface)
	// Save persists the user settings.
	Save() error
}
