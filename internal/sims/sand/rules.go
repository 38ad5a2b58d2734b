package sand

import "fmt"

var waterOffsets = [3]int{0, -1, 1}

// update applies the rule for the cell currently at (x, y).
func (w *World) update(x, y int) {
	switch k := w.grid.KindAt(x, y); k {
	case Sand:
		w.fall(x, y)
	case Water:
		w.flow(x, y)
	case Fire:
		w.burn(x, y)
	case Seed:
		w.sprout(x, y)
	case Empty, Gunpowder, Cactus:
	default:
		panic(fmt.Sprintf("sand: unhandled kind %d at (%d,%d)", k, x, y))
	}
}

// fall moves the particle one row down when the cell below is empty.
func (w *World) fall(x, y int) bool {
	if w.grid.isEmpty(x, y+1) {
		w.grid.Swap(x, y, x, y+1)
		return true
	}
	return false
}

func (w *World) flow(x, y int) {
	nx := x + waterOffsets[w.rng.IntRange(0, len(waterOffsets)-1)]
	if w.grid.isEmpty(nx, y+1) {
		w.grid.Swap(x, y, nx, y+1)
	}
}

var burnNeighbors = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func (w *World) burn(x, y int) {
	c := w.grid.ref(x, y)
	c.Life--
	if c.Life <= 0 {
		w.grid.Put(x, y, w.create(Empty))
		return
	}
	for _, d := range burnNeighbors {
		nx, ny := x+d[0], y+d[1]
		if w.grid.InBounds(nx, ny) && w.grid.KindAt(nx, ny) == Gunpowder {
			w.grid.Put(nx, ny, w.create(Fire))
		}
	}
}

// sprout lets a seed fall, and once it rests on sand grows a cactus column
// upwards from the seed in a single burst.
func (w *World) sprout(x, y int) {
	if w.fall(x, y) {
		return
	}
	if !w.grid.InBounds(x, y+1) || w.grid.KindAt(x, y+1) != Sand {
		return
	}
	height := w.rng.IntRange(w.cfg.Params.CactusMinHeight, w.cfg.Params.CactusMaxHeight)
	w.grow(x, y, height)
}

// grow converts up to height cells starting at (x, y) and moving up into
// cactus. The first cell that is neither empty nor a seed stops the column.
func (w *World) grow(x, y, height int) int {
	grown := 0
	for i := 0; i < height; i++ {
		ny := y - i
		if !w.grid.InBounds(x, ny) {
			break
		}
		if k := w.grid.KindAt(x, ny); k != Empty && k != Seed {
			break
		}
		w.grid.Put(x, ny, w.create(Cactus))
		grown++
	}
	return grown
}
