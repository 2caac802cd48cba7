package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/tilemap"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start cell has no search node.
	ErrStartNotFound = errors.New("bfs: start cell not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a cell the traversal did not reach.
	ErrNoPath = errors.New("bfs: no path to cell")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(cell tilemap.Cell, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(tilemap.Cell, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(cell tilemap.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in steps) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type Result struct {
	Order  []tilemap.Cell
	Depth  map[tilemap.Cell]int
	Parent map[tilemap.Cell]tilemap.Cell
}

// PathTo reconstructs the path from the start cell to dest, both included.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest tilemap.Cell) ([]tilemap.Cell, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []tilemap.Cell{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// MaxDepth returns the largest depth reached.
func (r *Result) MaxDepth() int {
	m := 0
	for _, d := range r.Depth {
		if d > m {
			m = d
		}
	}

	return m
}
