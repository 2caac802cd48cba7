package dfs

import (
	"fmt"

	"github.com/katalvlaran/tilepath/searchgraph"
)

// regionWalker holds the state of one labeling pass.
type regionWalker struct {
	graph *searchgraph.Graph
	opts  Options
	res   *RegionMap
	stack []int
}

// Regions labels every walkable cell of g with its connected region.
// On error the partial labeling is discarded.
func Regions(g *searchgraph.Graph, opts ...Option) (*RegionMap, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	labels := make([]int, g.Len())
	for i := range labels {
		labels[i] = NoRegion
	}
	w := &regionWalker{
		graph: g,
		opts:  o,
		res:   &RegionMap{graph: g, labels: labels},
	}
	for id := range labels {
		if labels[id] != NoRegion {
			continue
		}
		if err := w.fill(id, len(w.res.sizes)); err != nil {
			return nil, err
		}
	}

	return w.res, nil
}

// fill floods region outward from root using an explicit stack.
func (w *regionWalker) fill(root, region int) error {
	w.res.sizes = append(w.res.sizes, 0)
	w.stack = append(w.stack[:0], root)
	w.res.labels[root] = region

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.res.sizes[region]++

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(w.graph.Position(id), region); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %v: %w", w.graph.Position(id), err)
			}
		}

		// labeled on push so each node enters the stack once
		for _, d := range searchgraph.Directions {
			nb := w.graph.Neighbor(id, d)
			if nb != searchgraph.NoNode && w.res.labels[nb] == NoRegion {
				w.res.labels[nb] = region
				w.stack = append(w.stack, nb)
			}
		}
	}

	return nil
}
