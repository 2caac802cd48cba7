package searchgraph

import (
	"fmt"

	"github.com/katalvlaran/tilepath/tilemap"
)

// Graph is the immutable search topology of one map snapshot.
type Graph struct {
	width, height int
	// slots[y*width+x] is the node id at (x,y) or NoNode.
	slots []int
	nodes []node
}

// Build creates a node for every walkable cell of m, then links each node
// to its walkable orthogonal neighbors. m is only read during Build.
// Complexity: O(W×H) time and memory.
func Build(m tilemap.Map) (*Graph, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	w, h := m.Width(), m.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyMap, w, h)
	}

	g := &Graph{
		width:  w,
		height: h,
		slots:  make([]int, w*h),
	}
	g.createNodes(m)
	g.linkNeighbors()

	return g, nil
}

// createNodes allocates a node at each walkable position.
func (g *Graph) createNodes(m tilemap.Map) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !m.Walkable(x, y) {
				g.slots[g.index(x, y)] = NoNode
				continue
			}
			g.slots[g.index(x, y)] = len(g.nodes)
			g.nodes = append(g.nodes, node{pos: tilemap.Cell{X: x, Y: y}})
		}
	}
}

// linkNeighbors fills every node's four slots in Directions order.
func (g *Graph) linkNeighbors() {
	for id := range g.nodes {
		n := &g.nodes[id]
		for _, d := range Directions {
			nx, ny := n.pos.X+offsets[d][0], n.pos.Y+offsets[d][1]
			n.neighbors[d] = NoNode
			if g.InBounds(nx, ny) {
				n.neighbors[d] = g.slots[g.index(nx, ny)]
			}
		}
	}
}

// index maps (x,y) to a row-major slot: y*width + x.
func (g *Graph) index(x, y int) int {
	return y*g.width + x
}

// Width returns the width of the source map.
func (g *Graph) Width() int { return g.width }

// Height returns the height of the source map.
func (g *Graph) Height() int { return g.height }

// Len returns the number of nodes, i.e. walkable cells.
func (g *Graph) Len() int { return len(g.nodes) }

// InBounds reports whether (x,y) lies within the source map.
func (g *Graph) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Lookup returns the id of the node at c. ok is false when c is off the
// map or over a blocked cell.
func (g *Graph) Lookup(c tilemap.Cell) (id int, ok bool) {
	if !g.InBounds(c.X, c.Y) {
		return NoNode, false
	}
	id = g.slots[g.index(c.X, c.Y)]

	return id, id != NoNode
}

// Position returns the cell of node id. id must be in [0, Len()).
func (g *Graph) Position(id int) tilemap.Cell {
	return g.nodes[id].pos
}

// Neighbor returns the id in slot d of node id, or NoNode.
func (g *Graph) Neighbor(id int, d Direction) int {
	return g.nodes[id].neighbors[d]
}

// Neighbors returns the present neighbor ids of node id in Directions order.
func (g *Graph) Neighbors(id int) []int {
	out := make([]int, 0, 4)
	for _, nb := range g.nodes[id].neighbors {
		if nb != NoNode {
			out = append(out, nb)
		}
	}

	return out
}

// Cells returns the position of every node, indexed by id.
func (g *Graph) Cells() []tilemap.Cell {
	out := make([]tilemap.Cell, len(g.nodes))
	for id, n := range g.nodes {
		out[id] = n.pos
	}

	return out
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		width:  g.width,
		height: g.height,
		slots:  make([]int, len(g.slots)),
		nodes:  make([]node, len(g.nodes)),
	}
	copy(c.slots, g.slots)
	copy(c.nodes, g.nodes)

	return c
}
