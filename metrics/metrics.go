// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors of the resnetd service.
// They register on the default registry and are served by promhttp.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Solve outcomes used as the status label.
const (
	StatusOK       = "ok"
	StatusInvalid  = "invalid"
	StatusSingular = "singular"
	StatusError    = "error"
)

var (
	SolvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resnet_solves_total",
		Help: "Total number of solve requests, labelled by outcome.",
	}, []string{"status"})

	SolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "resnet_solve_duration_ms",
		Help:    "Network solve latency in milliseconds.",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 25, 50, 100, 250, 1000},
	})

	ComponentsSolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resnet_components_solved_total",
		Help: "Total number of connected components solved.",
	})

	EdgesReceived = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "resnet_request_edges",
		Help:    "Number of edges per solve request.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	ParseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resnet_parse_failures_total",
		Help: "Total number of request bodies rejected by the netlist or JSON decoder.",
	})

	ConfigReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "resnet_config_reloads_total",
		Help: "Total number of configuration reloads, labelled by result.",
	}, []string{"result"})

	SolverWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "resnet_solver_workers",
		Help: "Currently configured component worker limit.",
	})
)

// ObserveSolve records one finished solve.
func ObserveSolve(status string, edges, components int, elapsed time.Duration) {
	SolvesTotal.WithLabelValues(status).Inc()
	SolveDuration.Observe(float64(elapsed.Microseconds()) / 1000)
	EdgesReceived.Observe(float64(edges))
	if status == StatusOK {
		ComponentsSolved.Add(float64(components))
	}
}

// ObserveReload records a configuration reload attempt.
func ObserveReload(err error) {
	if err != nil {
		ConfigReloads.WithLabelValues("failure").Inc()
		return
	}
	ConfigReloads.WithLabelValues("success").Inc()
}
