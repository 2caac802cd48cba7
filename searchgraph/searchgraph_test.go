package searchgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/searchgraph"
	"github.com/katalvlaran/tilepath/tilemap"
)

// buildRows parses an ASCII map and builds its graph.
func buildRows(t *testing.T, rows ...string) (*tilemap.Grid, *searchgraph.Graph) {
	t.Helper()
	m, err := tilemap.ParseRows(rows)
	require.NoError(t, err)
	g, err := searchgraph.Build(m)
	require.NoError(t, err)

	return m, g
}

func TestBuild_Errors(t *testing.T) {
	_, err := searchgraph.Build(nil)
	assert.ErrorIs(t, err, searchgraph.ErrNilMap)

	_, err = searchgraph.Build(zeroMap{})
	assert.ErrorIs(t, err, searchgraph.ErrEmptyMap)
}

// zeroMap is a degenerate map with no cells.
type zeroMap struct{}

func (zeroMap) Width() int             { return 0 }
func (zeroMap) Height() int            { return 3 }
func (zeroMap) Walkable(_, _ int) bool { return true }

func TestBuild_OneNodePerWalkableCell(t *testing.T) {
	m, g := buildRows(t,
		"-X-",
		"---",
	)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 5, g.Len())

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			id, ok := g.Lookup(tilemap.Cell{X: x, Y: y})
			assert.Equal(t, m.Walkable(x, y), ok, "node presence at (%d,%d)", x, y)
			if ok {
				assert.Equal(t, tilemap.Cell{X: x, Y: y}, g.Position(id))
			} else {
				assert.Equal(t, searchgraph.NoNode, id)
			}
		}
	}

	_, ok := g.Lookup(tilemap.Cell{X: -1, Y: 0})
	assert.False(t, ok)
	_, ok = g.Lookup(tilemap.Cell{X: 0, Y: 2})
	assert.False(t, ok)
}

func TestBuild_NeighborSlots(t *testing.T) {
	_, g := buildRows(t,
		"---",
		"-X-",
		"---",
	)
	at := func(x, y int) int {
		id, ok := g.Lookup(tilemap.Cell{X: x, Y: y})
		require.True(t, ok)
		return id
	}

	// Top middle: north off-grid, south blocked.
	top := at(1, 0)
	assert.Equal(t, searchgraph.NoNode, g.Neighbor(top, searchgraph.North))
	assert.Equal(t, searchgraph.NoNode, g.Neighbor(top, searchgraph.South))
	assert.Equal(t, at(0, 0), g.Neighbor(top, searchgraph.West))
	assert.Equal(t, at(2, 0), g.Neighbor(top, searchgraph.East))
	assert.Equal(t, []int{at(0, 0), at(2, 0)}, g.Neighbors(top))

	// Left middle: all but east present, east is the wall.
	left := at(0, 1)
	assert.Equal(t, []int{at(0, 0), at(0, 2)}, g.Neighbors(left))
	assert.Equal(t, searchgraph.NoNode, g.Neighbor(left, searchgraph.West))
	assert.Equal(t, searchgraph.NoNode, g.Neighbor(left, searchgraph.East))
}

func TestBuild_NoDiagonals(t *testing.T) {
	_, g := buildRows(t,
		"-X",
		"X-",
	)
	assert.Equal(t, 2, g.Len())
	for id := 0; id < g.Len(); id++ {
		assert.Empty(t, g.Neighbors(id), "diagonal cells must not be linked")
	}
}

func TestBuild_NeighborSymmetry(t *testing.T) {
	_, g := buildRows(t,
		"----X--",
		"XXXXXX-",
		"-X---X-",
		"-X-X-X-",
		"---X---",
	)
	opposite := map[searchgraph.Direction]searchgraph.Direction{
		searchgraph.North: searchgraph.South,
		searchgraph.South: searchgraph.North,
		searchgraph.West:  searchgraph.East,
		searchgraph.East:  searchgraph.West,
	}
	for id := 0; id < g.Len(); id++ {
		for _, d := range searchgraph.Directions {
			nb := g.Neighbor(id, d)
			if nb == searchgraph.NoNode {
				continue
			}
			assert.Equal(t, id, g.Neighbor(nb, opposite[d]), "%v -> %v via %v is not mirrored", g.Position(id), g.Position(nb), d)
		}
	}
}

func TestGraph_CellsAndClone(t *testing.T) {
	_, g := buildRows(t, "-X-")
	assert.Equal(t, []tilemap.Cell{{X: 0, Y: 0}, {X: 2, Y: 0}}, g.Cells())

	c := g.Clone()
	assert.Equal(t, g.Cells(), c.Cells())
	assert.Equal(t, g.Len(), c.Len())
	assert.NotSame(t, g, c)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "north", searchgraph.North.String())
	assert.Equal(t, "east", searchgraph.East.String())
	assert.Equal(t, "unknown", searchgraph.Direction(9).String())
}
