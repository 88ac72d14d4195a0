// SPDX-License-Identifier: MIT

// Package server exposes the network solver over HTTP.
//
// Routes:
//
//	POST /v1/solve          netlist text (any content type) or JSON {"edges":[...]}
//	GET  /v1/config         active solver settings
//	POST /v1/config/reload  re-read the config file (404 without a loader)
//	GET  /healthz           liveness
//	GET  /metrics           Prometheus exposition
//
// Parse and validation failures answer 400, bodies over server.max_body_bytes
// 413, and networks without a unique solution 422. Every response carries an
// X-Request-Id header, and every error body is {"error","request_id"}.
//
// Each request passes through WithRequestID, WithLogger, AccessLog and
// Recover, in that order. Solves run inside a "server.solve" trace span.
package server
