package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/server"
	"github.com/katalvlaran/tilepath/tilemap"
)

var gapRows = []string{
	"-------",
	"XXXXXX-",
	"-X---X-",
	"-X-X-X-",
	"---X---",
}

// openRows returns h rows of w floor glyphs.
func openRows(w, h int) []string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat("-", w)
	}

	return rows
}

func newServer(t *testing.T, cfg server.Config) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(server.NewRouter(server.NewHandler(cfg, nil)))
	t.Cleanup(srv.Close)

	return srv
}

func post(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	resp, err := http.Post(url, "application/json", &buf)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func TestHealth(t *testing.T) {
	srv := newServer(t, server.DefaultConfig())
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFindPath_Found(t *testing.T) {
	srv := newServer(t, server.DefaultConfig())
	for _, openSet := range []string{"", "linear", "heap"} {
		resp := post(t, srv.URL+"/api/paths", server.PathRequest{
			Rows:    gapRows,
			Start:   tilemap.Cell{X: 0, Y: 0},
			Goal:    tilemap.Cell{X: 4, Y: 4},
			OpenSet: openSet,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var out server.PathResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "found", out.Status)
		assert.Equal(t, 12, out.Steps)
		require.Len(t, out.Path, 13)
		assert.Equal(t, tilemap.Cell{X: 0, Y: 0}, out.Path[0])
		assert.Equal(t, tilemap.Cell{X: 4, Y: 4}, out.Path[12])
		assert.Positive(t, out.Expanded)
	}
}

func TestFindPath_EmptyOutcomes(t *testing.T) {
	srv := newServer(t, server.DefaultConfig())
	cases := []struct {
		name        string
		rows        []string
		start, goal tilemap.Cell
		status      string
	}{
		{"AtGoal", []string{"-"}, tilemap.Cell{}, tilemap.Cell{}, "at_goal"},
		{"NoPath", []string{"-X-"}, tilemap.Cell{}, tilemap.Cell{X: 2}, "no_path"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := post(t, srv.URL+"/api/paths", server.PathRequest{Rows: tc.rows, Start: tc.start, Goal: tc.goal})
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var out server.PathResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, tc.status, out.Status)
			assert.Empty(t, out.Path)
			assert.Equal(t, 0, out.Steps)
		})
	}
}

func TestFindPath_Errors(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.MaxCells = 20
	srv := newServer(t, cfg)

	cases := []struct {
		name   string
		body   any
		status int
	}{
		{"BadJSON", "not an object", http.StatusBadRequest},
		{"EmptyMap", server.PathRequest{}, http.StatusBadRequest},
		{"BadGlyph", server.PathRequest{Rows: []string{"-?-"}}, http.StatusBadRequest},
		{"Ragged", server.PathRequest{Rows: []string{"---", "-"}}, http.StatusBadRequest},
		{"BlockedStart", server.PathRequest{Rows: []string{"X-"}, Goal: tilemap.Cell{X: 1}}, http.StatusBadRequest},
		{"GoalOffMap", server.PathRequest{Rows: []string{"--"}, Goal: tilemap.Cell{X: 5}}, http.StatusBadRequest},
		{"BadOpenSet", server.PathRequest{Rows: []string{"--"}, OpenSet: "fib"}, http.StatusBadRequest},
		{"TooLarge", server.PathRequest{Rows: gapRows}, http.StatusRequestEntityTooLarge},
		{"LeadingBlankRow", server.PathRequest{
			Rows: append([]string{""}, openRows(50, 50)...),
			Goal: tilemap.Cell{X: 49, Y: 49},
		}, http.StatusRequestEntityTooLarge},
		{"ShortFirstRow", server.PathRequest{
			Rows: append([]string{"-"}, openRows(30, 30)...),
		}, http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := post(t, srv.URL+"/api/paths", tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			var out server.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.NotEmpty(t, out.Error)
		})
	}
}

func TestBodyLimit(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.MaxCells = 20
	srv := newServer(t, cfg)

	// one 10,000-cell row is far past the 20-cell body allowance
	rows := openRows(10_000, 1)
	for _, route := range []string{"/api/paths", "/api/reachable"} {
		t.Run(route, func(t *testing.T) {
			resp := post(t, srv.URL+route, server.PathRequest{Rows: rows})
			assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
			var out server.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Contains(t, out.Error, "cell limit")
		})
	}
}

func TestFindPath_ExpansionLimit(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.MaxExpansions = 2
	srv := newServer(t, cfg)
	resp := post(t, srv.URL+"/api/paths", server.PathRequest{
		Rows: gapRows,
		Goal: tilemap.Cell{X: 4, Y: 4},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestFindPath_MethodNotAllowed(t *testing.T) {
	srv := newServer(t, server.DefaultConfig())
	resp, err := http.Get(srv.URL + "/api/paths")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestReachable(t *testing.T) {
	srv := newServer(t, server.DefaultConfig())
	resp := post(t, srv.URL+"/api/reachable", server.ReachableRequest{
		Rows:  []string{"--X--", "--X--"},
		Start: tilemap.Cell{X: 4, Y: 1},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out server.ReachableResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, server.ReachableResponse{Count: 4, MaxDepth: 2, Regions: 2}, out)

	resp = post(t, srv.URL+"/api/reachable", server.ReachableRequest{
		Rows:  []string{"--X--"},
		Start: tilemap.Cell{X: 2, Y: 0},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSchema(t *testing.T) {
	srv := newServer(t, server.DefaultConfig())
	resp, err := http.Get(srv.URL + "/api/schema")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "Path Request", doc["title"])
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "schema must list properties")
	for _, key := range []string{"rows", "start", "goal", "open_set"} {
		assert.Contains(t, props, key)
	}
	assert.ElementsMatch(t, []any{"rows", "start", "goal"}, doc["required"])
}
