package core

import (
	"errors"
	"testing"
)

func TestNewGridRejectsDegenerateDimensions(t *testing.T) {
	cases := [][2]int{{0, 10}, {10, 0}, {0, 0}, {-1, 5}, {5, -1}}
	for _, c := range cases {
		if _, err := NewGrid(c[0], c[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", c[0], c[1], err)
		}
	}
}

func TestGridBoundsChecking(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if _, err := g.At(x, y); err != nil {
				t.Fatalf("At(%d, %d) failed inside bounds: %v", x, y, err)
			}
		}
	}
	outside := []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}, {100, 100}}
	for _, p := range outside {
		if _, err := g.At(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("At(%d, %d) error = %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
		if err := g.Set(p.X, p.Y, Cell{}); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d, %d) error = %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
	}
}

func TestGridRowMajorIndexing(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.NumCells() != 12 {
		t.Fatalf("NumCells = %d, want 12", g.NumCells())
	}
	if idx := g.Index(1, 2); idx != 9 {
		t.Fatalf("Index(1, 2) = %d, want 9", idx)
	}

	want := Cell{Creature: Creature{Color: RGB{1, 2, 3}}, HasCreature: true}
	if err := g.Set(1, 2, want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := g.Cells()[g.Index(1, 2)]; got != want {
		t.Fatalf("Cells()[Index(1, 2)] = %+v, want %+v", got, want)
	}
	got, err := g.At(1, 2)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if *got != want {
		t.Fatalf("At(1, 2) = %+v, want %+v", *got, want)
	}
}

func TestNeighborCountsAtEdges(t *testing.T) {
	g, err := NewGrid(5, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	cases := []struct {
		x, y       int
		orth, full int
	}{
		{2, 2, 4, 8}, // interior
		{0, 0, 2, 3}, // corner
		{2, 0, 3, 5}, // top edge
		{4, 2, 3, 5}, // right edge
	}
	for _, c := range cases {
		if got := len(g.OrthNeighbors(c.x, c.y, nil)); got != c.orth {
			t.Fatalf("OrthNeighbors(%d, %d) count = %d, want %d", c.x, c.y, got, c.orth)
		}
		if got := len(g.MooreNeighbors(c.x, c.y, nil)); got != c.full {
			t.Fatalf("MooreNeighbors(%d, %d) count = %d, want %d", c.x, c.y, got, c.full)
		}
	}
}

func TestMooreNeighborsRowMajorOrder(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	got := g.MooreNeighbors(1, 1, nil)
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("neighbor count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("neighbor %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGridClear(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(1, 1, Cell{HasCreature: true, Creature: Creature{Color: RGB{9, 9, 9}}})
	g.Set(0, 2, Cell{HasSubstance: true, Substance: Substance{Amount: 0.5}})
	g.Clear()
	for i, c := range g.Cells() {
		if c != (Cell{}) {
			t.Fatalf("cell %d not empty after Clear: %+v", i, c)
		}
	}
}
