package sand

import "sandbox/internal/core"

// Floor fills the bottom rows of the grid with kind.
func (w *World) Floor(kind Kind, rows int) {
	size := w.grid.Size()
	for y := size.H - 1; y >= 0 && y >= size.H-rows; y-- {
		for x := 0; x < size.W; x++ {
			w.grid.Put(x, y, w.create(kind))
		}
	}
}

// Scatter places particles drawn uniformly from kinds into empty cells of
// the rows [top, bottom), each cell with probability density. It returns the
// number of particles placed.
func (w *World) Scatter(r *core.RNG, top, bottom int, density float64, kinds ...Kind) int {
	if len(kinds) == 0 || density <= 0 {
		return 0
	}
	size := w.grid.Size()
	top = max(top, 0)
	bottom = min(bottom, size.H)
	placed := 0
	for y := top; y < bottom; y++ {
		for x := 0; x < size.W; x++ {
			if w.grid.KindAt(x, y) != Empty || r.Float64() >= density {
				continue
			}
			w.grid.Put(x, y, w.create(kinds[r.IntRange(0, len(kinds)-1)]))
			placed++
		}
	}
	return placed
}
