package core

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid dimension is below 1.
	ErrInvalidDimensions = errors.New("core: grid dimensions must be positive")

	// ErrOutOfBounds is returned by the checked accessors for coordinates
	// outside the grid.
	ErrOutOfBounds = errors.New("core: coordinates out of bounds")
)

// Grid stores a 2D field of cells in row-major order. Dimensions are fixed
// at construction. Edges are bounded, not wrapped: out-of-range neighbors
// simply do not exist.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates a grid of empty cells with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}, nil
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height.
func (g *Grid) Height() int { return g.h }

// NumCells returns width*height.
func (g *Grid) NumCells() int { return len(g.cells) }

// Cells exposes the backing slice in row-major order. Callers other than
// the owning simulation must treat it as read-only.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) (*Cell, error) {
	if !g.InBounds(x, y) {
		return nil, ErrOutOfBounds
	}
	return &g.cells[g.Index(x, y)], nil
}

// Set replaces the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.cells[g.Index(x, y)] = c
	return nil
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// Point is a grid coordinate pair.
type Point struct {
	X, Y int
}

var orthOffsets = [4]Point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// OrthNeighbors appends the in-bounds von Neumann neighbors of (x, y) to
// buf and returns it.
func (g *Grid) OrthNeighbors(x, y int, buf []Point) []Point {
	for _, d := range orthOffsets {
		nx, ny := x+d.X, y+d.Y
		if g.InBounds(nx, ny) {
			buf = append(buf, Point{nx, ny})
		}
	}
	return buf
}

// MooreNeighbors appends the in-bounds 8-connected neighbors of (x, y) to
// buf in row-major order and returns it.
func (g *Grid) MooreNeighbors(x, y int, buf []Point) []Point {
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.w {
				continue
			}
			buf = append(buf, Point{nx, ny})
		}
	}
	return buf
}
