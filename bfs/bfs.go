package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tilepath/searchgraph"
	"github.com/katalvlaran/tilepath/tilemap"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *searchgraph.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit hook error.
func BFS(g *searchgraph.Graph, start tilemap.Cell, opts ...Option) (*Result, error) {
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

	startID, ok := g.Lookup(start)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]tilemap.Cell, 0, n),
			Depth:  make(map[tilemap.Cell]int, n),
			Parent: make(map[tilemap.Cell]tilemap.Cell, n),
		},
	}

	w.enqueue(startID, 0, searchgraph.NoNode)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, and queues it.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	cell := w.graph.Position(id)
	w.res.Depth[cell] = d
	if parent != searchgraph.NoNode {
		w.res.Parent[cell] = w.graph.Position(parent)
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	cell := w.graph.Position(item.id)
	w.res.Order = append(w.res.Order, cell)
	if err := w.opts.OnVisit(cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", cell, err)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, d := range searchgraph.Directions {
		nb := w.graph.Neighbor(item.id, d)
		if nb == searchgraph.NoNode || w.visited[nb] {
			continue
		}
		w.enqueue(nb, next, item.id)
	}
}
