package render

import (
	"image/color"

	"sandbox/internal/core"
)

// colorSource is the read side of a simulation needed for painting.
type colorSource interface {
	Size() core.Size
	ColorAt(x, y int) color.RGBA
}

// fillColorRGBA copies every cell colour into buf as RGBA bytes in row-major
// order. buf must hold 4*W*H bytes.
func fillColorRGBA(buf []byte, src colorSource) {
	size := src.Size()
	if len(buf) < 4*size.W*size.H {
		return
	}
	for y := 0; y < size.H; y++ {
		row := y * size.W
		for x := 0; x < size.W; x++ {
			base := (row + x) * 4
			col := src.ColorAt(x, y)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
