package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract the hosts need from a simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// ColorAt returns the colour to paint for the cell at (x, y). It must be
	// side-effect free.
	ColorAt(x, y int) color.RGBA
}
