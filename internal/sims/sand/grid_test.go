package sand

import "testing"

func TestGridStartsEmpty(t *testing.T) {
	g := NewGrid(5, 4)
	for i, c := range g.Cells() {
		if c != Create(Empty) {
			t.Fatalf("cell %d=%+v, expected empty", i, c)
		}
	}
}

func TestGridSwapMovesWholeCell(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, Fire)
	g.ref(0, 0).Life = 12
	g.Swap(0, 0, 1, 1)

	moved := g.At(1, 1)
	if moved.Kind != Fire || moved.Life != 12 || moved.Color != Create(Fire).Color {
		t.Fatalf("swap lost cell content: %+v", moved)
	}
	if g.At(0, 0) != Create(Empty) {
		t.Fatalf("vacated cell not empty: %+v", g.At(0, 0))
	}
}

func TestGridBoundsSafety(t *testing.T) {
	g := NewGrid(4, 3)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}, {-5, -5}} {
		if g.InBounds(p[0], p[1]) {
			t.Fatalf("InBounds(%d,%d) should be false", p[0], p[1])
		}
		if g.isEmpty(p[0], p[1]) {
			t.Fatalf("out-of-bounds (%d,%d) must not count as an empty target", p[0], p[1])
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected Set outside the grid to panic")
		}
	}()
	g.Set(4, 0, Sand)
}
