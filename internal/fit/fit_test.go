package fit

import (
	"math"
	"testing"
)

func TestComputeExamples(t *testing.T) {
	cases := []struct {
		name         string
		nw, nh       float64
		maxW, maxH   float64
		wantW, wantH float64
	}{
		{name: "wide clamps width only", nw: 1000, nh: 500, maxW: 500, maxH: 500, wantW: 500, wantH: 250},
		{name: "fits untouched", nw: 320, nh: 240, maxW: 500, maxH: 500, wantW: 320, wantH: 240},
		{name: "tall clamps height only", nw: 300, nh: 900, maxW: 500, maxH: 450, wantW: 150, wantH: 450},
		{name: "both clamps apply", nw: 2000, nh: 1500, maxW: 800, maxH: 400, wantW: 400.0 * 2000 / 1500, wantH: 400},
		{name: "exact bounds", nw: 500, nh: 500, maxW: 500, maxH: 500, wantW: 500, wantH: 500},
		{name: "zero width", nw: 0, nh: 100, maxW: 500, maxH: 500, wantW: 0, wantH: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := Compute(tc.nw, tc.nh, tc.maxW, tc.maxH)
			if math.Abs(w-tc.wantW) > 1e-9 || math.Abs(h-tc.wantH) > 1e-9 {
				t.Fatalf("Compute(%v,%v,%v,%v) = (%v,%v), want (%v,%v)", tc.nw, tc.nh, tc.maxW, tc.maxH, w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestComputeWithinBoundsAndAspect(t *testing.T) {
	dims := []float64{1, 7, 99, 100, 250, 499, 500, 501, 1024, 1920, 4000}
	bounds := []float64{100, 250, 500, 1080, 1920}
	for _, nw := range dims {
		for _, nh := range dims {
			for _, mw := range bounds {
				for _, mh := range bounds {
					w, h := Compute(nw, nh, mw, mh)
					if w > mw+1e-9 || h > mh+1e-9 {
						t.Fatalf("Compute(%v,%v,%v,%v) = (%v,%v) exceeds bounds", nw, nh, mw, mh, w, h)
					}
					if math.Abs(w/h-nw/nh) > 1e-9*(nw/nh) {
						t.Fatalf("Compute(%v,%v,%v,%v) = (%v,%v) changes aspect %v", nw, nh, mw, mh, w, h, nw/nh)
					}
				}
			}
		}
	}
}

// The width clamp runs before the height clamp and the result is never
// re-checked against maxW.
func TestComputeClampOrder(t *testing.T) {
	// Width clamp gives 600×450, height clamp then gives 400×300.
	w, h := Compute(1200, 900, 600, 300)
	if !near(w, 400) || !near(h, 300) {
		t.Fatalf("got (%v,%v), want (400,300)", w, h)
	}
	// Only the height exceeds its bound; the width step leaves it alone.
	w, h = Compute(100, 1000, 500, 200)
	if !near(w, 20) || !near(h, 200) {
		t.Fatalf("got (%v,%v), want (20,200)", w, h)
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
