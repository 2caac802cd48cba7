package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/bfs"
	"github.com/katalvlaran/tilepath/dfs"
	"github.com/katalvlaran/tilepath/searchgraph"
	"github.com/katalvlaran/tilepath/tilemap"
)

var (
	// errTooLarge marks a map or body over the Config.MaxCells budget.
	errTooLarge = errors.New("server: map exceeds cell limit")
	// errBadBody marks a request body that is not valid JSON for the route.
	errBadBody = errors.New("server: invalid request body")
)

// bodyOverhead is the body allowance beyond the map itself.
const bodyOverhead = 4096

// Handler serves the path API.
type Handler struct {
	cfg    Config
	logger *log.Logger
}

// NewHandler returns a Handler. A nil logger discards output.
func NewHandler(cfg Config, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Handler{cfg: cfg, logger: logger}
}

// RegisterRoutes mounts the API on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/paths", h.FindPath).Methods(http.MethodPost)
	router.HandleFunc("/api/reachable", h.Reachable).Methods(http.MethodPost)
	router.HandleFunc("/api/schema", h.Schema).Methods(http.MethodGet)
}

// NewRouter returns a router with h's routes mounted.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	return r
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// FindPath answers POST /api/paths.
func (h *Handler) FindPath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, statusFor(err), err)
		return
	}
	kind, err := astar.ParseOpenSetKind(req.OpenSet)
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	m, g, err := h.buildGraph(req.Rows)
	if err != nil {
		h.fail(w, statusFor(err), err)
		return
	}

	res, err := astar.Search(g, req.Start, req.Goal,
		astar.WithContext(r.Context()),
		astar.WithOpenSet(kind),
		astar.WithMaxExpansions(h.cfg.MaxExpansions),
	)
	if err != nil {
		h.fail(w, statusFor(err), err)
		return
	}
	h.logger.Printf("path %v -> %v on %d×%d (%s): %s, %d steps, %d expanded",
		req.Start, req.Goal, m.Width(), m.Height(), kind, res.Status, res.Cost, res.Expanded)

	writeJSON(w, http.StatusOK, PathResponse{
		Status:   res.Status.String(),
		Path:     res.Path,
		Steps:    res.Cost,
		Expanded: res.Expanded,
	})
}

// Reachable answers POST /api/reachable.
func (h *Handler) Reachable(w http.ResponseWriter, r *http.Request) {
	var req ReachableRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, statusFor(err), err)
		return
	}
	_, g, err := h.buildGraph(req.Rows)
	if err != nil {
		h.fail(w, statusFor(err), err)
		return
	}
	res, err := bfs.BFS(g, req.Start, bfs.WithContext(r.Context()))
	if err != nil {
		h.fail(w, statusFor(err), err)
		return
	}

	regions, err := dfs.Regions(g, dfs.WithContext(r.Context()))
	if err != nil {
		h.fail(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, ReachableResponse{
		Count:    len(res.Order),
		MaxDepth: res.MaxDepth(),
		Regions:  regions.Count(),
	})
}

// decode reads a JSON body no larger than the cell limit allows.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, h.bodyLimit())
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return fmt.Errorf("%w: body over %d bytes", errTooLarge, tooBig.Limit)
		}

		return fmt.Errorf("%w: %v", errBadBody, err)
	}

	return nil
}

// bodyLimit allows two bytes per cell (glyph plus JSON quoting or
// separators) and a fixed allowance for the rest of the request.
func (h *Handler) bodyLimit() int64 {
	return int64(h.cfg.MaxCells)*2 + bodyOverhead
}

// buildGraph parses rows, checks the cell limit and builds the search graph.
// A cheap estimate from the widest row and the non-blank row count rejects
// oversized maps before parsing; the parsed size is checked again after.
func (h *Handler) buildGraph(rows []string) (*tilemap.Grid, *searchgraph.Graph, error) {
	width, height := 0, 0
	for _, row := range rows {
		if strings.TrimSpace(row) == "" {
			continue
		}
		height++
		width = max(width, len(row))
	}
	if width*height > h.cfg.MaxCells {
		return nil, nil, fmt.Errorf("%w: %d×%d > %d", errTooLarge, width, height, h.cfg.MaxCells)
	}
	m, err := tilemap.ParseRows(rows)
	if err != nil {
		return nil, nil, err
	}
	if cells := m.Width() * m.Height(); cells > h.cfg.MaxCells {
		return nil, nil, fmt.Errorf("%w: %d×%d > %d", errTooLarge, m.Width(), m.Height(), h.cfg.MaxCells)
	}
	g, err := searchgraph.Build(m)
	if err != nil {
		return nil, nil, err
	}

	return m, g, nil
}

// statusFor maps library errors to HTTP status codes.
func statusFor(err error) int {
	var tooBig *http.MaxBytesError
	switch {
	case errors.Is(err, errTooLarge), errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, astar.ErrExpansionLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errBadBody),
		errors.Is(err, tilemap.ErrEmptyGrid),
		errors.Is(err, tilemap.ErrNonRectangular),
		errors.Is(err, tilemap.ErrBadGlyph),
		errors.Is(err, astar.ErrNodeNotFound),
		errors.Is(err, astar.ErrOptionViolation),
		errors.Is(err, bfs.ErrStartNotFound):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// fail logs err and writes it as an ErrorResponse.
func (h *Handler) fail(w http.ResponseWriter, status int, err error) {
	h.logger.Printf("request failed (%d): %v", status, err)
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
