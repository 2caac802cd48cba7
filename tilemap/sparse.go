package tilemap

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Sparse is a map that stores only its blocked cells. Everything in range
// that was not blocked is walkable.
type Sparse struct {
	width, height int
	blocked       mapset.Set[Cell]
}

// NewSparse returns a width×height map with the given cells blocked.
// Blocked cells outside the map are rejected with ErrOutOfBounds.
func NewSparse(width, height int, blocked ...Cell) (*Sparse, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	s := &Sparse{width: width, height: height, blocked: mapset.New[Cell]()}
	for _, c := range blocked {
		if err := s.Block(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Width returns the number of columns.
func (s *Sparse) Width() int { return s.width }

// Height returns the number of rows.
func (s *Sparse) Height() int { return s.height }

// Walkable reports whether (x,y) is in range and not blocked.
func (s *Sparse) Walkable(x, y int) bool {
	if !InBounds(s, x, y) {
		return false
	}

	return !s.blocked.Has(Cell{X: x, Y: y})
}

// Block marks c as blocked.
func (s *Sparse) Block(c Cell) error {
	if !InBounds(s, c.X, c.Y) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	s.blocked.Put(c)

	return nil
}

// Unblock makes c walkable again. Unblocking a walkable cell is a no-op.
func (s *Sparse) Unblock(c Cell) {
	s.blocked.Remove(c)
}

// Blocked returns the number of blocked cells.
func (s *Sparse) Blocked() int {
	return s.blocked.Size()
}
