package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tilepath/tilemap"
)

// Sentinel errors for path queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrNodeNotFound is returned when start or goal has no search node.
	ErrNodeNotFound = errors.New("astar: no search node at cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit is returned when MaxExpansions nodes were expanded
	// without reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// OpenSetKind selects the open-set data structure.
type OpenSetKind int

const (
	// OpenSetLinear scans a slice for the lowest f-score.
	OpenSetLinear OpenSetKind = iota
	// OpenSetHeap keeps open nodes in a binary min-heap.
	OpenSetHeap
)

// String returns "linear" or "heap".
func (k OpenSetKind) String() string {
	switch k {
	case OpenSetLinear:
		return "linear"
	case OpenSetHeap:
		return "heap"
	}

	return fmt.Sprintf("OpenSetKind(%d)", int(k))
}

// ParseOpenSetKind maps "linear" (or "") and "heap" to their kinds.
func ParseOpenSetKind(s string) (OpenSetKind, error) {
	switch s {
	case "", "linear":
		return OpenSetLinear, nil
	case "heap":
		return OpenSetHeap, nil
	}

	return 0, fmt.Errorf("%w: unknown open set %q", ErrOptionViolation, s)
}

// Option configures a Pathfinder via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks for path queries.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// OpenSet selects the open-set structure.
	OpenSet OpenSetKind

	// ReopenClosed moves a closed node whose g-score improved back to the
	// open set. When false its scores and parent are updated in place only.
	ReopenClosed bool

	// MaxExpansions, if > 0, caps the number of expanded nodes per query.
	MaxExpansions int

	// OnExpand is called before a node's neighbors are examined. A non-nil
	// error aborts the query.
	OnExpand func(cell tilemap.Cell, distanceTraveled float64) error

	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - OpenSetLinear
//   - ReopenClosed false
//   - no expansion limit
//   - a no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OpenSet:  OpenSetLinear,
		OnExpand: func(tilemap.Cell, float64) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOpenSet selects the open-set structure.
func WithOpenSet(kind OpenSetKind) Option {
	return func(o *Options) {
		if kind != OpenSetLinear && kind != OpenSetHeap {
			o.err = fmt.Errorf("%w: unknown open set %v", ErrOptionViolation, kind)
			return
		}
		o.OpenSet = kind
	}
}

// WithReopenClosed toggles re-expansion of improved closed nodes.
func WithReopenClosed(reopen bool) Option {
	return func(o *Options) {
		o.ReopenClosed = reopen
	}
}

// WithMaxExpansions caps expansions per query.
//
//	n > 0: at most n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook run for every expanded node.
func WithOnExpand(fn func(cell tilemap.Cell, distanceTraveled float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Status tells the three outcomes of a query apart.
type Status int

const (
	// StatusNoPath means the goal cannot be reached from the start.
	StatusNoPath Status = iota
	// StatusAtGoal means start and goal are the same cell.
	StatusAtGoal
	// StatusFound means Path holds a shortest route.
	StatusFound
)

// String returns "no_path", "at_goal" or "found".
func (s Status) String() string {
	switch s {
	case StatusNoPath:
		return "no_path"
	case StatusAtGoal:
		return "at_goal"
	case StatusFound:
		return "found"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of Search.
//   - Status: which of the three outcomes occurred.
//   - Path: start→goal inclusive when Status is StatusFound, else empty.
//   - Cost: number of steps in Path (len(Path)-1), 0 otherwise.
//   - Expanded: nodes whose neighbors were examined.
type Result struct {
	Status   Status
	Path     []tilemap.Cell
	Cost     int
	Expanded int
}
