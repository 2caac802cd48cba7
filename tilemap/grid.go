package tilemap

import "fmt"

// Grid is a dense rectangular map. cells[y][x] == 0 marks a walkable cell.
type Grid struct {
	width, height int
	cells         [][]int
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. It deep-copies the input so later edits to values do not leak in.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// NewOpenGrid returns a width×height Grid with every cell walkable.
func NewOpenGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Walkable reports whether (x,y) is in range and holds a zero value.
func (g *Grid) Walkable(x, y int) bool {
	if !InBounds(g, x, y) {
		return false
	}

	return g.cells[y][x] == 0
}

// Value returns the raw cell value at (x,y).
func (g *Grid) Value(x, y int) (int, error) {
	if !InBounds(g, x, y) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}

	return g.cells[y][x], nil
}

// SetBlocked marks (x,y) blocked or walkable. Graphs already built from g
// do not observe the change; rebuild them.
func (g *Grid) SetBlocked(x, y int, blocked bool) error {
	if !InBounds(g, x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if blocked {
		g.cells[y][x] = 1
	} else {
		g.cells[y][x] = 0
	}

	return nil
}
