package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/algotrace/pkg/catalog"
	"github.com/matzehuels/algotrace/pkg/trace"
)

func newTestServer(t *testing.T, maxSteps int) *httptest.Server {
	t.Helper()
	srv := New(Options{MaxSteps: maxSteps, Logger: log.New(io.Discard)})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decodeError(t *testing.T, data []byte) errorBody {
	t.Helper()
	var e errorBody
	require.NoError(t, json.Unmarshal(data, &e))
	return e
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, data := do(t, ts, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body healthBody
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Build.GoVersion)
}

func TestListAlgorithms(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, data := do(t, ts, http.MethodGet, "/api/algorithms", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []summary
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, len(catalog.All()))
	assert.Equal(t, catalog.Names()[0], list[0].Name)
	assert.NotContains(t, string(data), `"listing"`)
}

func TestGetAlgorithm(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, data := do(t, ts, http.MethodGet, "/api/algorithms/dijkstra", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var alg catalog.Algorithm
	require.NoError(t, json.Unmarshal(data, &alg))
	assert.Equal(t, "dijkstra", alg.Name)
	assert.NotEmpty(t, alg.Listing)

	resp, data = do(t, ts, http.MethodGet, "/api/algorithms/bogo-sort", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_ALGORITHM", decodeError(t, data).Code)
}

func TestPostTrace(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, data := do(t, ts, http.MethodPost, "/api/algorithms/binary-search/trace",
		`{"params":{"values":"1,2,3,4,5,6,7,8,9","target":"7"}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	env, err := trace.Unmarshal(data, trace.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "binary-search", env.Algorithm)
	assert.NotEmpty(t, env.ID)
	assert.Equal(t, "7", env.Params["target"])
	require.NoError(t, trace.Validate(env.Steps, len(env.Listing)))

	last := env.Steps[len(env.Steps)-1]
	require.NotNil(t, last.Array)
	require.NotNil(t, last.Array.Result)
	assert.Equal(t, 6, *last.Array.Result)
}

func TestPostTraceDefaultsAndYAML(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, data := do(t, ts, http.MethodPost, "/api/algorithms/hanoi/trace?format=yaml", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))

	var env trace.Envelope
	require.NoError(t, yaml.Unmarshal(data, &env))
	assert.Equal(t, "hanoi", env.Algorithm)
	assert.Equal(t, "3", env.Params["disks"])
}

func TestPostTraceErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"unknown algorithm", "/api/algorithms/nope/trace", `{}`, http.StatusNotFound, "UNKNOWN_ALGORITHM"},
		{"bad number", "/api/algorithms/binary-search/trace", `{"params":{"target":"seven"}}`, http.StatusBadRequest, "INVALID_NUMBER"},
		{"unknown param", "/api/algorithms/gcd/trace", `{"params":{"c":"1"}}`, http.StatusBadRequest, "UNKNOWN_PARAM"},
		{"unknown node", "/api/algorithms/bfs/trace", `{"params":{"start":"Z"}}`, http.StatusBadRequest, "UNKNOWN_NODE"},
		{"malformed body", "/api/algorithms/gcd/trace", `{"params":`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"unknown field", "/api/algorithms/gcd/trace", `{"parameters":{}}`, http.StatusBadRequest, "INVALID_FORMAT"},
		{"bad format", "/api/algorithms/gcd/trace?format=xml", `{}`, http.StatusBadRequest, "INVALID_FORMAT"},
	}
	ts := newTestServer(t, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := do(t, ts, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			e := decodeError(t, data)
			assert.Equal(t, tt.code, e.Code)
			assert.NotEmpty(t, e.Message)
		})
	}
}

func TestMaxSteps(t *testing.T) {
	ts := newTestServer(t, 5)
	resp, data := do(t, ts, http.MethodPost, "/api/algorithms/hanoi/trace", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "OUT_OF_RANGE", decodeError(t, data).Code)
}

func TestStepDOT(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, data := do(t, ts, http.MethodGet, "/api/algorithms/bfs/steps/0/dot?graph=A:B%3BB:&start=A&detailed=true", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))
	assert.True(t, strings.HasPrefix(string(data), "digraph G {"))
	assert.Contains(t, string(data), `"A" -> "B"`)
}

func TestStepErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"bad index", "/api/algorithms/bfs/steps/x/dot", http.StatusBadRequest, "INVALID_NUMBER"},
		{"missing step", "/api/algorithms/bfs/steps/9999/dot", http.StatusNotFound, "STEP_NOT_FOUND"},
		{"negative step", "/api/algorithms/bfs/steps/-1/svg", http.StatusNotFound, "STEP_NOT_FOUND"},
		{"array step", "/api/algorithms/binary-search/steps/0/svg", http.StatusUnprocessableEntity, "UNSUPPORTED"},
		{"invalid graph", "/api/algorithms/bfs/steps/0/dot?graph=A:B(", http.StatusBadRequest, "INVALID_GRAPH"},
	}
	ts := newTestServer(t, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := do(t, ts, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, decodeError(t, data).Code)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, _ := do(t, ts, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
