package tilemap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for tilemap operations.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("tilemap: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("tilemap: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the map.
	ErrOutOfBounds = errors.New("tilemap: coordinate out of bounds")
	// ErrBadGlyph indicates an unknown character in an ASCII map.
	ErrBadGlyph = errors.New("tilemap: unknown map glyph")
	// ErrBadCell indicates a cell string that is not "x,y".
	ErrBadCell = errors.New("tilemap: cell must be formatted as x,y")
)

// Cell is a grid coordinate. Equality is value equality on both components.
type Cell struct {
	X int `json:"x" jsonschema:"minimum=0"`
	Y int `json:"y" jsonschema:"minimum=0"`
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ParseCell parses "x,y" (surrounding parentheses and spaces allowed).
func ParseCell(s string) (Cell, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	xs, ys, ok := strings.Cut(t, ",")
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}

	return Cell{X: x, Y: y}, nil
}

// Map is the minimum a path search needs to know about a 2D map.
type Map interface {
	// Width is the number of columns; constant for the map's lifetime.
	Width() int
	// Height is the number of rows; constant for the map's lifetime.
	Height() int
	// Walkable reports whether the cell at (x, y) may be entered.
	Walkable(x, y int) bool
}

// InBounds reports whether (x,y) lies within m.
func InBounds(m Map, x, y int) bool {
	return x >= 0 && x < m.Width() && y >= 0 && y < m.Height()
}
