// Package bfs provides breadth-first search over a searchgraph.Graph,
// returning step distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → steps from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - OnVisit hook may abort the traversal with an error.
//
// Why
//
//   - Exact unweighted shortest distances in O(V) on a grid graph: the
//     reference answer that A* results are checked against.
//   - Reachable-area queries (how much of the map can a unit reach?).
//
// Determinism
//
//	Neighbors are enqueued in searchgraph.Directions order (north, south,
//	west, east), so the visit sequence is fully reproducible.
//
// Complexity (V = walkable cells)
//
//   - Time:   O(V)  (each node dequeued once, at most 4 links each)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrStartNotFound   if the start cell has no search node.
//   - ErrOptionViolation if an invalid Option is supplied.
//   - ErrNoPath          from PathTo for an unreached cell.
//   - Wrapped OnVisit hook errors, or ctx.Err() on cancellation.
package bfs
