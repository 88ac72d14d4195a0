// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/resnet/circuit"
	"github.com/katalvlaran/resnet/matrix"
	"github.com/katalvlaran/resnet/netlist"
)

// CircuitOptions converts the solver section into circuit options.
func (s SolverConf) CircuitOptions() ([]circuit.Option, error) {
	if e := s.Epsilon; math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
		return nil, fmt.Errorf("%w: solver.epsilon: must be finite and >= 0, got %v", ErrInvalidConfig, e)
	}
	p, err := matrix.ParsePivoting(s.Pivoting)
	if err != nil {
		return nil, fmt.Errorf("%w: solver.pivoting: %v", ErrInvalidConfig, err)
	}
	if s.Workers < 1 {
		return nil, fmt.Errorf("%w: solver.workers: must be >= 1, got %d", ErrInvalidConfig, s.Workers)
	}

	return []circuit.Option{
		circuit.WithEpsilon(s.Epsilon),
		circuit.WithPivoting(p),
		circuit.WithWorkers(s.Workers),
	}, nil
}

// Format converts the output section into a netlist.Format.
func (o OutputConf) Format() netlist.Format {
	return netlist.Format{NonVerbose: o.NonVerbose, Potentials: o.Potentials}
}

// NewLogger builds a slog.Logger writing to w as configured by lc.
func NewLogger(w io.Writer, lc LogConf) (*slog.Logger, error) {
	level, err := parseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	hopts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(lc.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("%w: log.format: %q is not text or json", ErrInvalidConfig, lc.Format)
	}
}
