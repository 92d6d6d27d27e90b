// Package render uploads decoded frames to the GPU.
package render

import (
	"image"
	"image/color"
)

// fillRGBA writes img into buf as premultiplied RGBA, row by row from the
// image's top-left corner. buf must hold 4*w*h bytes.
func fillRGBA(buf []byte, img image.Image) {
	b := img.Bounds()
	w := b.Dx()
	if src, ok := img.(*image.RGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(buf[y*w*4:(y+1)*w*4], src.Pix[off:off+w*4])
		}
		return
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			buf[i+0] = uint8(r >> 8)
			buf[i+1] = uint8(g >> 8)
			buf[i+2] = uint8(bl >> 8)
			buf[i+3] = uint8(a >> 8)
			i += 4
		}
	}
}

// fillSolidRGBA clears buf to a single colour.
func fillSolidRGBA(buf []byte, c color.Color) {
	r, g, b, a := c.RGBA()
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}
