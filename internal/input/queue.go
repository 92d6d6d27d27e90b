// Package input holds the per-tick event queue shared by the overlay and the
// settings panel.
package input

// Kind enumerates event kinds.
type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	Char
	Key
)

// KeyCode identifies the editing keys the panel understands.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeyPaste
)

// ButtonLeft is the primary pointer button.
const ButtonLeft = 0

// Event is a single input event collected during a tick.
type Event struct {
	Kind   Kind
	X, Y   float64
	Button int
	Rune   rune
	Key    KeyCode

	handled bool
}

// Consume marks the event handled so later consumers skip it.
func (e *Event) Consume() { e.handled = true }

// Handled reports whether a consumer has claimed the event.
func (e *Event) Handled() bool { return e.handled }

// Queue is an ordered list of events for one tick.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	e.handled = false
	q.events = append(q.events, e)
}

// Len returns the number of queued events, handled or not.
func (q *Queue) Len() int { return len(q.events) }

// Each calls fn for every unhandled event in order. An event consumed by fn
// is not seen by later calls to Each.
func (q *Queue) Each(fn func(e *Event)) {
	for i := range q.events {
		e := &q.events[i]
		if e.handled {
			continue
		}
		fn(e)
	}
}

// Pending returns the number of unhandled events.
func (q *Queue) Pending() int {
	n := 0
	for i := range q.events {
		if !q.events[i].handled {
			n++
		}
	}
	return n
}

// Reset empties the queue, keeping its storage.
func (q *Queue) Reset() { q.events = q.events[:0] }
