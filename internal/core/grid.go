package core

import "fmt"

// Grid stores a fixed-size 2D grid of cells in row-major order. Coordinates
// are never wrapped: callers check InBounds and out-of-range access panics.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive dimensions
// are raised to 1.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice in row-major order.
func (g *Grid[T]) Cells() []T { return g.data }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: coordinate (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	return y*g.W + x
}

// At returns a copy of the cell at (x, y).
func (g *Grid[T]) At(x, y int) T { return g.data[g.Index(x, y)] }

// Ref returns a pointer to the cell at (x, y) for in-place mutation.
func (g *Grid[T]) Ref(x, y int) *T { return &g.data[g.Index(x, y)] }

// Put overwrites the cell at (x, y).
func (g *Grid[T]) Put(x, y int, v T) { g.data[g.Index(x, y)] = v }

// Swap exchanges the contents of two cells.
func (g *Grid[T]) Swap(x1, y1, x2, y2 int) {
	a, b := g.Index(x1, y1), g.Index(x2, y2)
	g.data[a], g.data[b] = g.data[b], g.data[a]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}
