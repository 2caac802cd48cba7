// Package dfs labels the connected regions of a searchgraph.Graph with an
// iterative depth-first flood fill.
//
// Two cells share a region exactly when a 4-connected walkable route joins
// them, so a region lookup answers "is there any path at all" in O(1) once
// the labeling is built. Callers use it to explain a failed search or to
// skip searches that cannot succeed.
//
// Regions are numbered from 0 in the order their lowest node id is met,
// which is row-major order of the map.
//
// Complexity:
//
//   - Time:   O(V) for V walkable cells; each node has at most four links.
//   - Memory: O(V) for labels and the explicit stack.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked once per visited cell.
//   - WithOnVisit(fn)    called as each cell is labeled; an error aborts.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ctx.Err()          if the context is done.
//   - any error returned by OnVisit, wrapped.
package dfs
