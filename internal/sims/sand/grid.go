package sand

import (
	"image/color"

	"sandbox/internal/core"
)

// Grid is the single mutable store of cell state for a world.
type Grid struct {
	cells *core.Grid[Cell]
}

// NewGrid allocates a w*h grid of empty cells.
func NewGrid(w, h int) *Grid {
	g := &Grid{cells: core.NewGrid[Cell](w, h)}
	g.Clear()
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cells.W, H: g.cells.H} }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool { return g.cells.InBounds(x, y) }

// At returns the cell at (x, y). It panics when the coordinate is outside the grid.
func (g *Grid) At(x, y int) Cell { return g.cells.At(x, y) }

// KindAt returns the kind stored at (x, y).
func (g *Grid) KindAt(x, y int) Kind { return g.cells.Ref(x, y).Kind }

// ColorAt returns the paint colour of the cell at (x, y).
func (g *Grid) ColorAt(x, y int) color.RGBA { return g.cells.Ref(x, y).Color }

// Set replaces the cell at (x, y) with a new particle of the given kind.
func (g *Grid) Set(x, y int, kind Kind) { g.cells.Put(x, y, Create(kind)) }

// Put stores c at (x, y) verbatim.
func (g *Grid) Put(x, y int, c Cell) { g.cells.Put(x, y, c) }

// Swap exchanges the full contents of two cells.
func (g *Grid) Swap(x1, y1, x2, y2 int) { g.cells.Swap(x1, y1, x2, y2) }

// Clear resets every cell to Empty.
func (g *Grid) Clear() { g.cells.Fill(Create(Empty)) }

// Cells exposes the row-major backing slice.
func (g *Grid) Cells() []Cell { return g.cells.Cells() }

func (g *Grid) ref(x, y int) *Cell { return g.cells.Ref(x, y) }

// isEmpty reports whether (x, y) is inside the grid and holds no particle.
func (g *Grid) isEmpty(x, y int) bool {
	return g.InBounds(x, y) && g.KindAt(x, y) == Empty
}
