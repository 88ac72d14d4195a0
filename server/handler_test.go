// SPDX-License-Identifier: MIT
package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/resnet/config"
	"github.com/katalvlaran/resnet/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type solveResponse struct {
	RequestID  string             `json:"request_id"`
	Components int                `json:"components"`
	Potentials map[string]float64 `json:"potentials"`
	Currents   []struct {
		First   uint    `json:"first"`
		Second  uint    `json:"second"`
		Current float64 `json:"current"`
	} `json:"currents"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandler(t *testing.T, cfg *config.Config) *server.Handler {
	t.Helper()
	h, err := server.New(cfg, nil, quietLogger())
	require.NoError(t, err)

	return h
}

func do(h http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestSolve_Text(t *testing.T) {
	h := newHandler(t, nil)
	rec := do(h, http.MethodPost, "/v1/solve", "text/plain", "0 -- 1, 1; 10 V\n1 -- 2, 1;\n2 -- 0, 1;\n")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp solveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, resp.RequestID, rec.Header().Get(server.RequestIDHeader))
	assert.Equal(t, 1, resp.Components)
	assert.InDelta(t, 0, resp.Potentials["0"], 1e-9)
	assert.InDelta(t, 20.0/3, resp.Potentials["1"], 1e-9)
	assert.InDelta(t, 10.0/3, resp.Potentials["2"], 1e-9)
	require.Len(t, resp.Currents, 3)
	for _, c := range resp.Currents {
		assert.InDelta(t, 10.0/3, c.Current, 1e-9)
	}
	assert.Equal(t, uint(2), resp.Currents[2].First)
}

func TestSolve_JSON(t *testing.T) {
	h := newHandler(t, nil)
	body := `{"edges":[{"first":0,"second":1,"resistance":2,"emf":10},{"first":1,"second":2,"resistance":2},{"first":5,"second":6,"resistance":1}]}`
	rec := do(h, http.MethodPost, "/v1/solve", "application/json; charset=utf-8", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp solveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Components)
	assert.Len(t, resp.Potentials, 5)
	assert.InDelta(t, 0, resp.Currents[0].Current, 1e-9, "open path carries no current")
	assert.InDelta(t, 10, resp.Potentials["1"], 1e-9)
	assert.InDelta(t, 0, resp.Potentials["5"], 1e-9)
}

func TestSolve_KeepsCallerRequestID(t *testing.T) {
	h := newHandler(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/solve", strings.NewReader("0 -- 1, 1;"))
	req.Header.Set(server.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(server.RequestIDHeader))
	assert.Contains(t, rec.Body.String(), `"request_id":"abc-123"`)
}

func TestSolve_Errors(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		code        int
		contains    string
	}{
		{"syntax", "text/plain", "0 -- 1 1;", http.StatusBadRequest, "line 1"},
		{"self loop", "text/plain", "0 -- 1, 1; 2 -- 2, 1;", http.StatusBadRequest, "edge 2"},
		{"duplicate", "", "0 -- 1, 1; 1 -- 0, 2;", http.StatusBadRequest, "duplicate"},
		{"unknown json field", "application/json", `{"edges":[],"extra":1}`, http.StatusBadRequest, "invalid JSON"},
		{"trailing json", "application/json", `{"edges":[]}{}`, http.StatusBadRequest, "single JSON value"},
		{"negative resistance", "application/json", `{"edges":[{"first":0,"second":1,"resistance":-1}]}`, http.StatusBadRequest, "resistance"},
		{"short loop", "text/plain", "0 -- 1, 0; 1 -- 2, 0; 2 -- 0, 0; 1 V", http.StatusUnprocessableEntity, "singular"},
	}
	h := newHandler(t, nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/v1/solve", tc.contentType, tc.body)
			require.Equal(t, tc.code, rec.Code, rec.Body.String())

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tc.contains)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestSolve_EmptyJSON(t *testing.T) {
	h := newHandler(t, nil)
	rec := do(h, http.MethodPost, "/v1/solve", "application/json", `{"edges":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp solveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Components)
	assert.Empty(t, resp.Potentials)
	assert.Empty(t, resp.Currents)
}

func TestSolve_BodyLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Server.MaxBodyBytes = 16
	h := newHandler(t, cfg)

	rec := do(h, http.MethodPost, "/v1/solve", "text/plain", strings.Repeat("0 -- 1, 1;\n", 10))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRoutes(t *testing.T) {
	h := newHandler(t, nil)

	rec := do(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "resnet_solver_workers")

	rec = do(h, http.MethodGet, "/v1/solve", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(h, http.MethodGet, "/v1/config", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pivoting":"partial"`)

	rec = do(h, http.MethodPost, "/v1/config/reload", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Solver.Pivoting = "complete"
	_, err := server.New(cfg, nil, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver:\n  workers: 2\n"), 0o644))
	loader, err := config.NewLoader(path, quietLogger())
	require.NoError(t, err)

	h, err := server.New(nil, loader, quietLogger())
	require.NoError(t, err)
	rec := do(h, http.MethodGet, "/v1/config", "", "")
	assert.Contains(t, rec.Body.String(), `"workers":2`)

	require.NoError(t, os.WriteFile(path, []byte("solver:\n  workers: 4\n  pivoting: none\n"), 0o644))
	rec = do(h, http.MethodPost, "/v1/config/reload", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(h, http.MethodGet, "/v1/config", "", "")
	assert.Contains(t, rec.Body.String(), `"workers":4`)
	assert.Contains(t, rec.Body.String(), `"pivoting":"none"`)

	rec = do(h, http.MethodPost, "/v1/solve", "text/plain", "0 -- 1, 2; 4 V")
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, os.WriteFile(path, []byte("solver:\n  workers: -1\n"), 0o644))
	rec = do(h, http.MethodPost, "/v1/config/reload", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	rec = do(h, http.MethodGet, "/v1/config", "", "")
	assert.Contains(t, rec.Body.String(), `"workers":4`, "failed reload keeps settings")
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h, err := server.New(nil, nil, logger)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, "rid-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"msg":"http request"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"request_id":"rid-1"`)
}
