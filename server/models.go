package server

import "github.com/katalvlaran/tilepath/tilemap"

// PathRequest is the body of POST /api/paths.
type PathRequest struct {
	Rows    []string     `json:"rows" jsonschema:"required,minItems=1,description=ASCII map rows: '-' '.' '0' are floor and 'X' '#' '1' are walls"`
	Start   tilemap.Cell `json:"start" jsonschema:"required"`
	Goal    tilemap.Cell `json:"goal" jsonschema:"required"`
	OpenSet string       `json:"open_set,omitempty" jsonschema:"enum=linear,enum=heap"`
}

// PathResponse is the body returned by POST /api/paths.
type PathResponse struct {
	Status   string         `json:"status"`
	Path     []tilemap.Cell `json:"path"`
	Steps    int            `json:"steps"`
	Expanded int            `json:"expanded"`
}

// ReachableRequest is the body of POST /api/reachable.
type ReachableRequest struct {
	Rows  []string     `json:"rows"`
	Start tilemap.Cell `json:"start"`
}

// ReachableResponse is the body returned by POST /api/reachable.
type ReachableResponse struct {
	Count    int `json:"count"`
	MaxDepth int `json:"max_depth"`
	// Regions is the number of separate walkable regions on the whole map.
	Regions int `json:"regions"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
