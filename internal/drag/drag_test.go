package drag

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"oshi-overlay/internal/core"
	"oshi-overlay/internal/input"
)

func pointer(kind input.Kind, x, y float64) input.Event {
	return input.Event{Kind: kind, X: x, Y: y, Button: input.ButtonLeft}
}

func TestDragMovesOrigin(t *testing.T) {
	r := core.Rect{X: 100, Y: 100, W: 200, H: 150}
	var c Controller
	var q input.Queue

	q.Push(pointer(input.PointerDown, 120, 130))
	q.Push(pointer(input.PointerMove, 220, 330))
	c.Handle(&q, &r)
	if !c.Dragging() {
		t.Fatal("expected dragging after pointer-down inside rect")
	}
	want := core.Rect{X: 200, Y: 300, W: 200, H: 150}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("unexpected rect (-want +got):\n%s", diff)
	}
	if q.Pending() != 0 {
		t.Fatalf("drag events should be consumed, %d pending", q.Pending())
	}

	q.Reset()
	q.Push(pointer(input.PointerUp, 220, 330))
	q.Push(pointer(input.PointerMove, 500, 500))
	c.Handle(&q, &r)
	if c.State() != Idle {
		t.Fatalf("state = %v after pointer-up, want idle", c.State())
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("move after release changed rect (-want +got):\n%s", diff)
	}
	if q.Pending() != 1 {
		t.Fatalf("move after release should stay unhandled, pending = %d", q.Pending())
	}
}

func TestDragIgnoresOutsideAndOtherButtons(t *testing.T) {
	r := core.Rect{X: 0, Y: 0, W: 50, H: 50}
	var c Controller
	var q input.Queue

	q.Push(pointer(input.PointerDown, 60, 10))
	q.Push(input.Event{Kind: input.PointerDown, X: 10, Y: 10, Button: 1})
	q.Push(pointer(input.PointerUp, 10, 10))
	c.Handle(&q, &r)
	if c.Dragging() {
		t.Fatal("drag must start only with the left button inside the rect")
	}
	if q.Pending() != 3 {
		t.Fatalf("pending = %d, want 3 unconsumed events", q.Pending())
	}
}

func TestDragZeroSizeRect(t *testing.T) {
	r := core.Rect{X: 0, Y: 0}
	var c Controller
	var q input.Queue
	q.Push(pointer(input.PointerDown, 0, 0))
	c.Handle(&q, &r)
	if c.Dragging() {
		t.Fatal("empty rect cannot be grabbed")
	}
}

func TestDragConsumesOtherButtonsWhileDragging(t *testing.T) {
	r := core.Rect{X: 0, Y: 0, W: 50, H: 50}
	var c Controller
	var q input.Queue
	q.Push(pointer(input.PointerDown, 10, 10))
	q.Push(input.Event{Kind: input.PointerDown, X: 10, Y: 10, Button: 1})
	q.Push(input.Event{Kind: input.PointerUp, X: 10, Y: 10, Button: 1})
	q.Push(input.Event{Kind: input.Char, Rune: 'x'})
	c.Handle(&q, &r)
	if !c.Dragging() {
		t.Fatal("right button release must not end a left drag")
	}
	if q.Pending() != 1 {
		t.Fatalf("pending = %d, only the char event should remain", q.Pending())
	}

	c.Cancel()
	if c.Dragging() {
		t.Fatal("Cancel should return to idle")
	}
}
