package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tilepath/searchgraph"
	"github.com/katalvlaran/tilepath/tilemap"
)

// nodeState is the per-query scratch record of one search node.
type nodeState struct {
	parent           int
	distanceTraveled float64 // g
	distanceToGoal   float64 // f = g + h, the open-set priority
	inOpen           bool
	inClosed         bool
}

// unvisited is the state every node starts a query in.
var unvisited = nodeState{
	parent:           searchgraph.NoNode,
	distanceTraveled: math.Inf(1),
	distanceToGoal:   math.Inf(1),
}

// Pathfinder answers path queries on one graph, reusing its scratch table.
// It is not safe for concurrent use.
type Pathfinder struct {
	graph *searchgraph.Graph
	opts  Options
	state []nodeState
	open  openSet
}

// New returns a Pathfinder over g. Returns ErrGraphNil or ErrOptionViolation.
func New(g *searchgraph.Graph, opts ...Option) (*Pathfinder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	state := make([]nodeState, g.Len())
	return &Pathfinder{
		graph: g,
		opts:  o,
		state: state,
		open:  newOpenSet(o.OpenSet, state),
	}, nil
}

// FindPath runs a one-off query with a fresh Pathfinder.
// See Pathfinder.FindPath.
func FindPath(g *searchgraph.Graph, start, goal tilemap.Cell, opts ...Option) ([]tilemap.Cell, error) {
	p, err := New(g, opts...)
	if err != nil {
		return nil, err
	}

	return p.FindPath(start, goal)
}

// Search runs a one-off query with a fresh Pathfinder.
// See Pathfinder.Search.
func Search(g *searchgraph.Graph, start, goal tilemap.Cell, opts ...Option) (Result, error) {
	p, err := New(g, opts...)
	if err != nil {
		return Result{}, err
	}

	return p.Search(start, goal)
}

// Heuristic returns the Manhattan distance between a and b.
func Heuristic(a, b tilemap.Cell) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// FindPath returns a shortest path from start to goal, both included.
// The slice is empty when start == goal or when no path exists; use
// Search to distinguish the two.
func (p *Pathfinder) FindPath(start, goal tilemap.Cell) ([]tilemap.Cell, error) {
	res, err := p.Search(start, goal)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search finds a shortest path from start to goal.
//
// Preconditions, checked in order:
//  1. start has a search node (ErrNodeNotFound).
//  2. goal has a search node (ErrNodeNotFound).
//
// Then:
//  3. start == goal → StatusAtGoal with an empty path, without searching.
//  4. Every node's scratch state is reset.
//  5. A* runs until the goal is selected (StatusFound) or the open set
//     empties (StatusNoPath).
func (p *Pathfinder) Search(start, goal tilemap.Cell) (Result, error) {
	startID, ok := p.graph.Lookup(start)
	if !ok {
		return Result{}, fmt.Errorf("%w: start %v", ErrNodeNotFound, start)
	}
	goalID, ok := p.graph.Lookup(goal)
	if !ok {
		return Result{}, fmt.Errorf("%w: goal %v", ErrNodeNotFound, goal)
	}
	if start == goal {
		return Result{Status: StatusAtGoal, Path: []tilemap.Cell{}}, nil
	}

	p.reset()

	return p.run(startID, goalID, goal)
}

// reset returns every node to the unvisited state and empties the open set.
func (p *Pathfinder) reset() {
	p.open.clear()
	for i := range p.state {
		p.state[i] = unvisited
	}
}

// run is the A* main loop.
func (p *Pathfinder) run(startID, goalID int, goal tilemap.Cell) (Result, error) {
	st := p.state
	st[startID].distanceTraveled = 0
	st[startID].distanceToGoal = Heuristic(p.graph.Position(startID), goal)
	st[startID].inOpen = true
	p.open.add(startID)

	expanded := 0
	for p.open.Len() > 0 {
		select {
		case <-p.opts.Ctx.Done():
			return Result{Expanded: expanded}, p.opts.Ctx.Err()
		default:
		}

		current := p.open.best()
		if current == searchgraph.NoNode {
			break
		}
		if current == goalID {
			path := p.finalPath(goalID)
			return Result{Status: StatusFound, Path: path, Cost: len(path) - 1, Expanded: expanded}, nil
		}

		if p.opts.MaxExpansions > 0 && expanded >= p.opts.MaxExpansions {
			return Result{Expanded: expanded}, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, expanded)
		}
		expanded++
		if err := p.opts.OnExpand(p.graph.Position(current), st[current].distanceTraveled); err != nil {
			return Result{Expanded: expanded}, fmt.Errorf("astar: OnExpand error at %v: %w", p.graph.Position(current), err)
		}

		p.relax(current, goal)

		p.open.remove(current)
		st[current].inOpen = false
		st[current].inClosed = true
	}

	return Result{Status: StatusNoPath, Path: []tilemap.Cell{}, Expanded: expanded}, nil
}

// relax examines every present neighbor of current.
//
//   - Never seen: record g, f and parent, then open it.
//   - Open or closed: overwrite g, f and parent only if the new g is
//     strictly smaller. A closed node stays closed unless ReopenClosed.
func (p *Pathfinder) relax(current int, goal tilemap.Cell) {
	st := p.state
	g := st[current].distanceTraveled + 1
	for _, d := range searchgraph.Directions {
		nb := p.graph.Neighbor(current, d)
		if nb == searchgraph.NoNode {
			continue
		}
		f := g + Heuristic(p.graph.Position(nb), goal)
		s := &st[nb]

		if !s.inOpen && !s.inClosed {
			s.distanceTraveled = g
			s.distanceToGoal = f
			s.parent = current
			s.inOpen = true
			p.open.add(nb)
			continue
		}
		if s.distanceTraveled <= g {
			continue
		}
		s.distanceTraveled = g
		s.distanceToGoal = f
		s.parent = current
		switch {
		case s.inOpen:
			p.open.fix(nb)
		case p.opts.ReopenClosed:
			s.inClosed = false
			s.inOpen = true
			p.open.add(nb)
		}
	}
}

// finalPath walks parent links back from goalID and reverses them.
func (p *Pathfinder) finalPath(goalID int) []tilemap.Cell {
	var path []tilemap.Cell
	for id := goalID; id != searchgraph.NoNode; id = p.state[id].parent {
		path = append(path, p.graph.Position(id))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
