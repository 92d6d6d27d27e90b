package core

import (
	"testing"
	"time"
)

func TestDeltaClock(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	steps := []time.Duration{0, 16 * time.Millisecond, 50 * time.Millisecond, 5 * time.Second, -time.Second}
	want := []time.Duration{0, 16 * time.Millisecond, 50 * time.Millisecond, 250 * time.Millisecond, 0}

	c := NewDeltaClock(250 * time.Millisecond)
	cur := base
	c.now = func() time.Time { return cur }
	for i, step := range steps {
		cur = cur.Add(step)
		got := c.Tick()
		if got != want[i] {
			t.Fatalf("tick %d: got %v, want %v", i, got, want[i])
		}
	}

	c.Restart()
	cur = cur.Add(time.Hour)
	if got := c.Tick(); got != 0 {
		t.Fatalf("tick after restart: got %v, want 0", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{10, 20}, true},
		{Point{39.9, 59.9}, true},
		{Point{40, 30}, false},
		{Point{20, 60}, false},
		{Point{9, 30}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Fatalf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}
