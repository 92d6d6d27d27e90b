// Package drag moves the overlay rectangle with the pointer.
package drag

import (
	"oshi-overlay/internal/core"
	"oshi-overlay/internal/input"
)

// State is the controller state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Controller repositions a rectangle from pointer events. It never changes
// the rectangle's size.
type Controller struct {
	state  State
	offset core.Point
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.state == Dragging }

// Cancel drops any drag in progress.
func (c *Controller) Cancel() {
	c.state = Idle
	c.offset = core.Point{}
}

// Handle processes the unhandled pointer events in q against r. Events that
// start, continue or end a drag are consumed; while dragging every pointer
// event is consumed so nothing underneath reacts to it.
func (c *Controller) Handle(q *input.Queue, r *core.Rect) {
	q.Each(func(e *input.Event) {
		p := core.Point{X: e.X, Y: e.Y}
		switch e.Kind {
		case input.PointerDown:
			if c.state == Dragging {
				e.Consume()
				return
			}
			if e.Button == input.ButtonLeft && r.W > 0 && r.H > 0 && r.Contains(p) {
				c.state = Dragging
				c.offset = p.Sub(r.Origin())
				e.Consume()
			}
		case input.PointerMove:
			if c.state != Dragging {
				return
			}
			r.MoveTo(p.Sub(c.offset))
			e.Consume()
		case input.PointerUp:
			if c.state != Dragging {
				return
			}
			if e.Button == input.ButtonLeft {
				c.state = Idle
			}
			e.Consume()
		}
	})
}
