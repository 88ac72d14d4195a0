// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/resnet/circuit"
	"github.com/katalvlaran/resnet/config"
	"github.com/katalvlaran/resnet/linsolve"
	"github.com/katalvlaran/resnet/metrics"
	"github.com/katalvlaran/resnet/netlist"
)

var tracer = otel.Tracer("github.com/katalvlaran/resnet/server")

// settings is the part of the configuration a request reads. It is swapped
// atomically on reload.
type settings struct {
	solver  config.SolverConf
	opts    []circuit.Option
	maxBody int64
}

func newSettings(cfg *config.Config) (*settings, error) {
	opts, err := cfg.Solver.CircuitOptions()
	if err != nil {
		return nil, err
	}

	return &settings{solver: cfg.Solver, opts: opts, maxBody: cfg.Server.MaxBodyBytes}, nil
}

// Handler serves the resnetd HTTP API.
type Handler struct {
	logger  *slog.Logger
	loader  *config.Loader
	current atomic.Pointer[settings]
	mux     *http.ServeMux
	root    http.Handler
}

// New creates the API handler and registers all routes. With a non-nil
// loader the handler follows every successful reload and exposes
// POST /v1/config/reload; otherwise cfg is used as is.
func New(cfg *config.Config, loader *config.Loader, logger *slog.Logger) (*Handler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if loader != nil {
		cfg = loader.Config()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	h := &Handler{logger: logger, loader: loader, mux: http.NewServeMux()}
	if err := h.Apply(cfg); err != nil {
		return nil, err
	}
	if loader != nil {
		loader.OnChange(func(c *config.Config) {
			err := h.Apply(c)
			metrics.ObserveReload(err)
			if err != nil {
				logger.Warn("config not applied", "err", err)
			}
		})
	}

	h.mux.HandleFunc("POST /v1/solve", h.solve)
	h.mux.HandleFunc("GET /v1/config", h.showConfig)
	h.mux.HandleFunc("POST /v1/config/reload", h.reloadConfig)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	h.root = Chain(h.mux,
		WithRequestID,
		WithLogger(logger),
		AccessLog(logger),
		Recover(logger),
	)

	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.root.ServeHTTP(w, r)
}

// Apply switches the solver settings used by subsequent requests.
func (h *Handler) Apply(cfg *config.Config) error {
	s, err := newSettings(cfg)
	if err != nil {
		return err
	}
	h.current.Store(s)
	metrics.SolverWorkers.Set(float64(cfg.Solver.Workers))

	return nil
}

// solveRequest is the JSON form of a netlist.
type solveRequest struct {
	Edges []circuit.Edge `json:"edges"`
}

type currentJSON struct {
	First   uint    `json:"first"`
	Second  uint    `json:"second"`
	Current float64 `json:"current"`
}

type solveResponse struct {
	RequestID  string           `json:"request_id"`
	Components int              `json:"components"`
	Potentials map[uint]float64 `json:"potentials"`
	Currents   []currentJSON    `json:"currents"`
}

// POST /v1/solve: netlist text or JSON edges in, potentials and currents out.
func (h *Handler) solve(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s := h.current.Load()
	log := LoggerFromContext(r.Context(), h.logger)
	id, _ := RequestIDFromContext(r.Context())

	ctx, span := tracer.Start(r.Context(), "server.solve",
		trace.WithAttributes(attribute.String("request_id", id)))
	defer span.End()

	fail := func(code int, status string, err error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("solve failed", "status", status, "err", err)
		writeError(w, r, code, err.Error())
	}

	edges, err := decodeEdges(w, r, s.maxBody)
	if err != nil {
		metrics.ParseFailures.Inc()
		code := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		fail(code, metrics.StatusInvalid, err)
		metrics.ObserveSolve(metrics.StatusInvalid, 0, 0, time.Since(start))
		return
	}
	span.SetAttributes(attribute.Int("edge_count", len(edges)))

	nw, err := netlist.Network(edges, s.opts...)
	if err != nil {
		fail(http.StatusBadRequest, metrics.StatusInvalid, err)
		metrics.ObserveSolve(metrics.StatusInvalid, len(edges), 0, time.Since(start))
		return
	}

	sol, err := nw.SolveContext(ctx)
	if err != nil {
		code, status := classify(err)
		fail(code, status, err)
		metrics.ObserveSolve(status, len(edges), 0, time.Since(start))
		return
	}
	metrics.ObserveSolve(metrics.StatusOK, len(edges), sol.Components, time.Since(start))

	resp := solveResponse{
		RequestID:  id,
		Components: sol.Components,
		Potentials: sol.Potentials,
		Currents:   make([]currentJSON, len(edges)),
	}
	for i, e := range edges {
		c, _ := sol.Current(e.First, e.Second)
		resp.Currents[i] = currentJSON{First: e.First, Second: e.Second, Current: c}
	}
	log.Debug("solved", "edges", len(edges), "components", sol.Components)
	writeJSON(w, http.StatusOK, resp)
}

// classify maps a solve error to an HTTP code and a metrics status.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, linsolve.ErrSingularMatrix), errors.Is(err, linsolve.ErrUnderdeterminedSystem):
		return http.StatusUnprocessableEntity, metrics.StatusSingular
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, metrics.StatusError
	default:
		return http.StatusInternalServerError, metrics.StatusError
	}
}

// decodeEdges reads the body as JSON when the content type says so, and as
// netlist text otherwise.
func decodeEdges(w http.ResponseWriter, r *http.Request, limit int64) ([]circuit.Edge, error) {
	body := http.MaxBytesReader(w, r.Body, limit)
	defer body.Close()

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt != "application/json" {
		return netlist.Parse(body)
	}

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	var req solveRequest
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	var trailing struct{}
	if err := dec.Decode(&trailing); err != io.EOF {
		if err == nil {
			return nil, errors.New("invalid JSON: body must contain a single JSON value")
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	return req.Edges, nil
}

// GET /v1/config: the active solver settings.
func (h *Handler) showConfig(w http.ResponseWriter, r *http.Request) {
	s := h.current.Load()
	writeJSON(w, http.StatusOK, map[string]any{
		"epsilon":        s.solver.Epsilon,
		"pivoting":       s.solver.Pivoting,
		"workers":        s.solver.Workers,
		"max_body_bytes": s.maxBody,
	})
}

// POST /v1/config/reload: re-read the config file now.
func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	if h.loader == nil {
		writeError(w, r, http.StatusNotFound, "no config file to reload")
		return
	}
	cfg, err := h.loader.Reload()
	if err != nil {
		metrics.ObserveReload(err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "reloaded",
		"workers":  cfg.Solver.Workers,
		"pivoting": cfg.Solver.Pivoting,
	})
}

// GET /healthz
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
