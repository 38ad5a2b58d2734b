//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sandbox/internal/core"
)

// GridPainter uploads per-cell colours into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit paints the simulation's cells into dst, scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	if s := sim.Size(); s.W != gp.w || s.H != gp.h {
		return
	}
	fillColorRGBA(gp.buf, sim)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
