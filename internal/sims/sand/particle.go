package sand

import (
	"image/color"
	"strings"
)

// Kind enumerates the particle types a cell can hold.
type Kind uint8

const (
	Empty Kind = iota
	Sand
	Water
	Fire
	Gunpowder
	Seed
	Cactus
)

// KindCount is the number of particle kinds.
const KindCount = int(Cactus) + 1

// FireLife is the number of ticks a freshly created fire burns.
const FireLife = 65

var kindNames = [KindCount]string{"Empty", "Sand", "Water", "Fire", "Gunpowder", "Seed", "Cactus"}

// String returns the display name of the kind.
func (k Kind) String() string {
	if int(k) < KindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// Kinds lists every particle kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, KindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Kind(i), true
		}
	}
	return Empty, false
}

// Cell is the content of one grid position. Color and Life are derived from
// Kind by Create; only whole-cell swaps move them around.
type Cell struct {
	Kind  Kind
	Color color.RGBA
	Life  int
}

// Create returns a freshly initialised cell of the given kind.
func Create(kind Kind) Cell {
	c := Cell{Kind: kind, Color: colorFor(kind)}
	if kind == Fire {
		c.Life = FireLife
	}
	return c
}

func colorFor(kind Kind) color.RGBA {
	switch kind {
	case Sand:
		return color.RGBA{R: 194, G: 178, B: 128, A: 255}
	case Water:
		return color.RGBA{B: 255, A: 255}
	case Fire:
		return color.RGBA{R: 255, A: 255}
	case Gunpowder:
		return color.RGBA{R: 80, G: 80, B: 80, A: 255}
	case Seed:
		return color.RGBA{G: 255, A: 255}
	case Cactus:
		return color.RGBA{G: 150, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}
