// Package astar finds shortest 4-directional paths on a searchgraph.Graph
// with the A* algorithm.
//
// What
//
//   - Uniform step cost 1, Manhattan-distance heuristic. The heuristic is
//     admissible and consistent for orthogonal unit moves, so every returned
//     path has the minimum number of steps.
//   - FindPath returns the cells from start to goal, both included, or an
//     empty slice when the goal is unreachable or start == goal.
//   - Search returns the same path in a Result tagged with a Status
//     (StatusFound, StatusNoPath, StatusAtGoal) so the two empty cases can be
//     told apart.
//
// State
//
//	A Pathfinder keeps one scratch record per node (g-score, f-score,
//	parent, open/closed flags) apart from the graph topology and resets it
//	at the start of every query, so one Pathfinder answers any number of
//	unrelated queries. A Pathfinder must not be used from two goroutines at
//	once. The package-level FindPath and Search allocate their own scratch
//	and may run concurrently on a shared Graph.
//
// Open set
//
//   - OpenSetLinear (default): a slice scanned for the lowest f-score; the
//     first minimum in insertion order wins. O(V) per selection, O(V²) per
//     query in the worst case.
//   - OpenSetHeap: a binary min-heap keyed on f-score, ties broken by
//     insertion order. O(log V) per operation.
//
// Closed nodes
//
//	When a shorter route to an already-closed node is found, its g-score,
//	f-score and parent are overwritten but it is not expanded again. With a
//	consistent heuristic this never happens on a grid. WithReopenClosed(true)
//	moves such a node back to the open set instead.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrNodeNotFound    if start or goal is off the map or on a blocked cell.
//   - ErrOptionViolation if an Option is invalid.
//   - ErrExpansionLimit  if WithMaxExpansions was exceeded.
//   - ctx.Err() when the WithContext context is done.
//   - Wrapped OnExpand hook errors.
//
// Usage
//
//	g, _ := searchgraph.Build(m)
//	path, err := astar.FindPath(g, tilemap.Cell{X: 0, Y: 0}, tilemap.Cell{X: 4, Y: 4})
//
//	pf, _ := astar.New(g, astar.WithOpenSet(astar.OpenSetHeap))
//	res, err := pf.Search(start, goal)
//	if res.Status == astar.StatusNoPath { ... }
package astar
