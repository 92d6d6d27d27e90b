// Package fit scales image dimensions into the configured overlay bounds.
package fit

// Compute returns the render size for an image of native size nw×nh under
// the bounds maxW×maxH, preserving aspect ratio.
//
// The width is clamped first and the height second. The height clamp is not
// re-checked against maxW, so for some inputs the result is narrower than a
// symmetric min-fit would give. This order is relied upon; do not replace it
// with a single min(scaleW, scaleH).
func Compute(nw, nh, maxW, maxH float64) (w, h float64) {
	if nw <= 0 || nh <= 0 {
		return 0, 0
	}
	aspect := nw / nh
	w, h = nw, nh
	if w > maxW {
		w = maxW
		h = w / aspect
	}
	if h > maxH {
		h = maxH
		w = h * aspect
	}
	return w, h
}
