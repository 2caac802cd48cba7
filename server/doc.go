// Package server exposes path queries over HTTP.
//
// Routes (gorilla/mux):
//
//	GET  /healthz         liveness probe
//	POST /api/paths       A* query over an ASCII map
//	POST /api/reachable   reachable area (BFS) and region count (DFS)
//	GET  /api/schema      JSON Schema of the /api/paths request body
//
// Every request carries its own map, so handlers share no search state and
// are safe for concurrent use. Maps larger than Config.MaxCells are
// rejected with 413 before parsing.
//
// Configuration comes from the environment, optionally seeded from a .env
// file (see LoadConfig). Existing environment variables win over .env.
package server
