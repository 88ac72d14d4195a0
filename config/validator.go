// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/resnet/matrix"
)

// ErrInvalidConfig indicates a configuration that failed Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks value ranges and enumerations. All problems are reported
// at once.
func Validate(cfg *Config) error {
	var errs []string

	if e := cfg.Solver.Epsilon; math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
		errs = append(errs, fmt.Sprintf("solver.epsilon: must be finite and >= 0, got %v", e))
	}
	if _, err := matrix.ParsePivoting(cfg.Solver.Pivoting); err != nil {
		errs = append(errs, fmt.Sprintf("solver.pivoting: %q is not partial or none", cfg.Solver.Pivoting))
	}
	if cfg.Solver.Workers < 1 {
		errs = append(errs, fmt.Sprintf("solver.workers: must be >= 1, got %d", cfg.Solver.Workers))
	}
	if cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 {
		errs = append(errs, "server: timeouts must not be negative")
	}
	if cfg.Server.MaxBodyBytes < 0 {
		errs = append(errs, fmt.Sprintf("server.max_body_bytes: must be > 0, got %d", cfg.Server.MaxBodyBytes))
	}
	if _, err := parseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format: %q is not text or json", cfg.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}

	return l, nil
}
