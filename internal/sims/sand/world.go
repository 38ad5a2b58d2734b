package sand

import (
	"image/color"

	"sandbox/internal/core"
)

// World owns the grid and the random stream of one falling-sand simulation.
// It is not safe for concurrent use; hosts alternate placement and Step on a
// single goroutine.
type World struct {
	cfg  Config
	grid *Grid
	rng  core.Rand

	ticks int
}

// New returns a world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world seeded from cfg.Seed.
func NewWithConfig(cfg Config) *World {
	return NewWithRand(cfg, core.NewRNG(cfg.Seed))
}

// NewWithRand returns a world that draws all randomness from r.
func NewWithRand(cfg Config, r core.Rand) *World {
	if r == nil {
		r = core.NewRNG(cfg.Seed)
	}
	g := NewGrid(cfg.Width, cfg.Height)
	size := g.Size()
	cfg.Width, cfg.Height = size.W, size.H
	return &World{cfg: cfg, grid: g, rng: r}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Grid exposes the cell store.
func (w *World) Grid() *Grid { return w.grid }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Ticks reports how many steps have run since the last reset.
func (w *World) Ticks() int { return w.ticks }

// ColorAt returns the paint colour of the cell at (x, y).
func (w *World) ColorAt(x, y int) color.RGBA { return w.grid.ColorAt(x, y) }

// Reset empties the grid. A non-zero seed restarts the random stream from
// that seed, zero falls back to the configured seed. Injected sources that
// cannot be reseeded keep their position.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if s, ok := w.rng.(interface{ Seed(int64) }); ok {
		s.Seed(effective)
	}
	w.grid.Clear()
	w.ticks = 0
}

// Place writes a new particle of kind at (x, y). Coordinates outside the
// grid are ignored and reported as false.
func (w *World) Place(x, y int, kind Kind) bool {
	if !w.grid.InBounds(x, y) {
		return false
	}
	w.grid.Put(x, y, w.create(kind))
	return true
}

// Step advances the simulation by one tick. Rows are visited bottom to top
// and each row left to right, updating cells in place, so a particle that
// falls is not seen again in the row it left.
func (w *World) Step() {
	size := w.grid.Size()
	for y := size.H - 1; y >= 0; y-- {
		for x := 0; x < size.W; x++ {
			w.update(x, y)
		}
	}
	w.ticks++
}

// create applies the configured fire lifetime on top of the factory defaults.
func (w *World) create(kind Kind) Cell {
	c := Create(kind)
	if kind == Fire && w.cfg.Params.FireLife > 0 {
		c.Life = w.cfg.Params.FireLife
	}
	return c
}
