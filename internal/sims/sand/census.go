package sand

import (
	"fmt"
	"strings"
)

// Census counts cells per kind.
type Census [KindCount]int

// Census tallies the current grid.
func (w *World) Census() Census {
	var c Census
	for _, cell := range w.grid.Cells() {
		c[cell.Kind]++
	}
	return c
}

// Particles returns the number of non-empty cells.
func (c Census) Particles() int {
	n := 0
	for k, count := range c {
		if Kind(k) != Empty {
			n += count
		}
	}
	return n
}

// String renders non-zero particle counts, e.g. "Sand=12 Fire=3".
func (c Census) String() string {
	var parts []string
	for k, count := range c {
		if Kind(k) == Empty || count == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%d", Kind(k), count))
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, " ")
}
