package searchgraph

import (
	"errors"

	"github.com/katalvlaran/tilepath/tilemap"
)

// Sentinel errors for graph construction.
var (
	// ErrNilMap indicates Build received a nil map.
	ErrNilMap = errors.New("searchgraph: map is nil")
	// ErrEmptyMap indicates a map with non-positive width or height.
	ErrEmptyMap = errors.New("searchgraph: map width and height must be positive")
)

// NoNode marks an absent node: a blocked or off-grid slot.
const NoNode = -1

// Direction indexes a node's neighbor slots.
type Direction int

// Neighbor slot order. Searches visit neighbors in this order.
const (
	North Direction = iota // (x, y-1)
	South                  // (x, y+1)
	West                   // (x-1, y)
	East                   // (x+1, y)
)

// Directions lists every slot in visiting order.
var Directions = [4]Direction{North, South, West, East}

// offsets[d] is the coordinate delta for direction d.
var offsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}

	return "unknown"
}

// node is one walkable cell and its neighbor ids.
type node struct {
	pos       tilemap.Cell
	neighbors [4]int
}
