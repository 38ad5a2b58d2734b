package sand

import (
	"slices"
	"testing"

	"sandbox/internal/core"
)

func scatterWater(w *World) {
	size := w.Size()
	for x := 0; x < size.W; x += 2 {
		w.Place(x, 0, Water)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16
	cfg.Seed = 99

	world := NewWithConfig(cfg)
	scatterWater(world)
	for i := 0; i < 20; i++ {
		world.Step()
	}
	first := append([]Cell(nil), world.Grid().Cells()...)

	world.Reset(0)
	if world.Ticks() != 0 {
		t.Fatalf("expected tick counter to reset, got %d", world.Ticks())
	}
	if n := world.Census().Particles(); n != 0 {
		t.Fatalf("expected empty grid after reset, found %d particles", n)
	}

	scatterWater(world)
	for i := 0; i < 20; i++ {
		world.Step()
	}
	if !slices.Equal(first, world.Grid().Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	world.Reset(777)
	scatterWater(world)
	for i := 0; i < 20; i++ {
		world.Step()
	}
	if slices.Equal(first, world.Grid().Cells()) {
		t.Fatal("different seeds should produce different water paths")
	}
}

func TestWorldsAreIsolated(t *testing.T) {
	a := New(4, 4)
	b := New(4, 4)
	a.Place(0, 0, Sand)
	a.Step()
	if b.Census().Particles() != 0 {
		t.Fatal("placing into one world leaked into another")
	}
}

func TestPlaceRejectsOutOfBounds(t *testing.T) {
	world := New(4, 4)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, 4}, {0, -1}} {
		if world.Place(p[0], p[1], Sand) {
			t.Fatalf("Place(%d,%d) accepted out-of-bounds coordinate", p[0], p[1])
		}
	}
	if world.Census().Particles() != 0 {
		t.Fatal("rejected placements must not modify the grid")
	}
}

func TestPlaceOverwritesCell(t *testing.T) {
	world := New(2, 2)
	world.Place(0, 0, Fire)
	world.Step()
	world.Place(0, 0, Fire)
	if got := world.Grid().At(0, 0).Life; got != FireLife {
		t.Fatalf("re-placed fire should restart at %d, got %d", FireLife, got)
	}
	world.Place(0, 0, Empty)
	if world.Grid().At(0, 0) != Create(Empty) {
		t.Fatal("placing Empty should erase the cell")
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":          "64",
		"h":          "bogus",
		"seed":       "5",
		"fire_life":  "30",
		"cactus_min": "9",
		"cactus_max": "3",
	})
	if cfg.Width != 64 || cfg.Height != DefaultConfig().Height {
		t.Fatalf("unexpected dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 5 || cfg.Params.FireLife != 30 {
		t.Fatalf("unexpected seed/fire life: %+v", cfg)
	}
	if cfg.Params.CactusMinHeight != 9 || cfg.Params.CactusMaxHeight != 9 {
		t.Fatalf("expected cactus max raised to min, got %+v", cfg.Params)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should yield defaults")
	}
}

func TestConfiguredFireLife(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 3, 1
	cfg.Params.FireLife = 3
	world := NewWithConfig(cfg)
	world.Place(0, 0, Fire)
	world.Place(1, 0, Gunpowder)

	world.Step()
	if c := world.Grid().At(1, 0); c.Kind != Fire || c.Life != 2 {
		t.Fatalf("ignited fire should use configured life, got %+v", c)
	}
	world.Step()
	world.Step()
	if n := world.Census()[Fire]; n != 0 {
		t.Fatalf("expected fires to burn out after 3 ticks, %d remain", n)
	}
}

func TestSetIntParameterClamps(t *testing.T) {
	world := New(8, 8)
	if !world.SetIntParameter("fire_life", 5000) {
		t.Fatal("fire_life should be adjustable")
	}
	if got := world.Config().Params.FireLife; got != maxFireLife {
		t.Fatalf("expected fire life clamped to %d, got %d", maxFireLife, got)
	}
	world.SetIntParameter("cactus_min", 20)
	if got := world.Config().Params.CactusMinHeight; got != 14 {
		t.Fatalf("cactus min should not exceed max, got %d", got)
	}
	world.SetIntParameter("cactus_max", 1)
	if got := world.Config().Params.CactusMaxHeight; got != 14 {
		t.Fatalf("cactus max should not drop below min, got %d", got)
	}
	if world.SetIntParameter("gravity", 2) {
		t.Fatal("unknown key should be rejected")
	}

	snap := world.Parameters()
	p, ok := snap.Lookup("fire_life")
	if !ok || p.Value != "1000" || p.Type != core.ParamTypeInt {
		t.Fatalf("unexpected snapshot entry %+v (found=%v)", p, ok)
	}
	for _, ctrl := range world.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q missing from snapshot", ctrl.Key)
		}
	}
}

func TestCensus(t *testing.T) {
	world := New(4, 2)
	world.Place(0, 0, Sand)
	world.Place(1, 0, Sand)
	world.Place(2, 1, Fire)

	c := world.Census()
	if c[Sand] != 2 || c[Fire] != 1 || c[Empty] != 5 {
		t.Fatalf("unexpected census %v", c)
	}
	if c.Particles() != 3 {
		t.Fatalf("expected 3 particles, got %d", c.Particles())
	}
	if c.String() != "Sand=2 Fire=1" {
		t.Fatalf("unexpected census string %q", c.String())
	}
	if (Census{}).String() != "empty" {
		t.Fatal("zero census should render as empty")
	}
}
