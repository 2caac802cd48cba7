package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/tilepath/searchgraph"
	"github.com/katalvlaran/tilepath/tilemap"
)

// NoRegion is the label reported for cells without a search node.
const NoRegion = -1

var (
	// ErrGraphNil is returned when a nil graph is passed to Regions.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures Regions.
type Option func(*Options)

// Options holds the cancellation context and visit hook for Regions.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a cell is assigned to region.
	// Returning an error aborts the labeling.
	OnVisit func(cell tilemap.Cell, region int) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the per-cell hook.
func WithOnVisit(fn func(cell tilemap.Cell, region int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// RegionMap is the connected-region labeling of one graph.
type RegionMap struct {
	graph  *searchgraph.Graph
	labels []int // indexed by node id
	sizes  []int // indexed by region
}

// Count returns the number of regions.
func (r *RegionMap) Count() int { return len(r.sizes) }

// Size returns the number of cells in region, or 0 if it does not exist.
func (r *RegionMap) Size(region int) int {
	if region < 0 || region >= len(r.sizes) {
		return 0
	}

	return r.sizes[region]
}

// Label returns the region of c, or NoRegion if c is blocked or off the map.
func (r *RegionMap) Label(c tilemap.Cell) int {
	id, ok := r.graph.Lookup(c)
	if !ok {
		return NoRegion
	}

	return r.labels[id]
}

// Connected reports whether a walkable route joins a and b.
func (r *RegionMap) Connected(a, b tilemap.Cell) bool {
	la := r.Label(a)

	return la != NoRegion && la == r.Label(b)
}

// Largest returns the region with the most cells and its size.
// Ties go to the lower label. An empty map yields (NoRegion, 0).
func (r *RegionMap) Largest() (region, size int) {
	region = NoRegion
	for i, s := range r.sizes {
		if s > size {
			region, size = i, s
		}
	}

	return region, size
}
