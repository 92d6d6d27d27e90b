//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"oshi-overlay/internal/input"
)

// Collector turns this tick's ebiten input into queue events.
type Collector struct {
	lastX, lastY int
	seen         bool
	chars        []rune
}

var mouseButtons = []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle}

var editKeys = []struct {
	key  ebiten.Key
	code input.KeyCode
}{
	{ebiten.KeyBackspace, input.KeyBackspace},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyNumpadEnter, input.KeyEnter},
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyTab, input.KeyTab},
}

// Collect appends the events since the previous tick to q.
func (c *Collector) Collect(q *input.Queue) {
	x, y := ebiten.CursorPosition()
	if !c.seen || x != c.lastX || y != c.lastY {
		q.Push(input.Event{Kind: input.PointerMove, X: float64(x), Y: float64(y)})
		c.lastX, c.lastY, c.seen = x, y, true
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			q.Push(input.Event{Kind: input.PointerDown, X: float64(x), Y: float64(y), Button: int(b)})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			q.Push(input.Event{Kind: input.PointerUp, X: float64(x), Y: float64(y), Button: int(b)})
		}
	}

	c.chars = ebiten.AppendInputChars(c.chars[:0])
	for _, r := range c.chars {
		q.Push(input.Event{Kind: input.Char, Rune: r})
	}
	for _, k := range editKeys {
		if repeated(k.key) {
			q.Push(input.Event{Kind: input.Key, Key: k.code})
		}
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		q.Push(input.Event{Kind: input.Key, Key: input.KeyPaste})
	}
}

// repeated reports a key press on the first tick and then at a steady rate
// while the key is held.
func repeated(k ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}
