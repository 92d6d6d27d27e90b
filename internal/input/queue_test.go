package input

import "testing"

func TestQueueConsume(t *testing.T) {
	var q Queue
	q.Push(Event{Kind: PointerDown, X: 1, Y: 2})
	q.Push(Event{Kind: Char, Rune: 'a'})
	q.Push(Event{Kind: PointerUp})

	q.Each(func(e *Event) {
		if e.Kind == PointerDown {
			e.Consume()
		}
	})
	if got := q.Pending(); got != 2 {
		t.Fatalf("pending after consume = %d, want 2", got)
	}

	var kinds []Kind
	q.Each(func(e *Event) { kinds = append(kinds, e.Kind) })
	if len(kinds) != 2 || kinds[0] != Char || kinds[1] != PointerUp {
		t.Fatalf("second consumer saw %v, want [Char PointerUp]", kinds)
	}

	q.Reset()
	if q.Len() != 0 {
		t.Fatalf("Len after Reset = %d", q.Len())
	}
	q.Push(Event{Kind: Key, Key: KeyEnter})
	if q.Pending() != 1 {
		t.Fatal("pushed event should start unhandled")
	}
}
