// Package tilepath finds shortest 4-connected routes across 2-D tile maps.
//
// The module is split by concern:
//
//   - tilemap:      the Map interface, dense Grid and Sparse maps, ASCII
//     parsing and rendering.
//   - searchgraph:  a walkable-cell graph built once per map, with fixed
//     North, South, West, East neighbor slots.
//   - astar:        A* with a Manhattan heuristic and reusable per-query
//     scratch state; linear or binary-heap open set.
//   - bfs:          breadth-first reachability and a shortest-path oracle.
//   - dfs:          connected-region labeling.
//   - builder:      open, random and serpentine map generators.
//   - server:       JSON-over-HTTP API (gorilla/mux) with env configuration.
//
// Commands live under cmd/: tilepath (console driver) and tilepathd (HTTP
// daemon).
//
// Quick start:
//
//	m, _ := tilemap.ParseString("---\nXX-\n---\n")
//	g, _ := searchgraph.Build(m)
//	path, _ := astar.FindPath(g, tilemap.Cell{X: 0, Y: 0}, tilemap.Cell{X: 0, Y: 2})
//	fmt.Print(tilemap.Render(m, path))
package tilepath
