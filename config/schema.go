// SPDX-License-Identifier: MIT

package config

import (
	"time"

	"github.com/katalvlaran/resnet/matrix"
)

// Config is the top-level YAML structure shared by resnet and resnetd.
type Config struct {
	Solver SolverConf `yaml:"solver"`
	Server ServerConf `yaml:"server"`
	Log    LogConf    `yaml:"log"`
	Output OutputConf `yaml:"output"`
}

// SolverConf tunes the network solver.
type SolverConf struct {
	// Epsilon is the tolerance under which resistances and pivots count as zero.
	Epsilon float64 `yaml:"epsilon"`
	// Pivoting is "partial" or "none".
	Pivoting string `yaml:"pivoting"`
	// Workers bounds how many components are solved concurrently.
	Workers int `yaml:"workers"`
}

// ServerConf holds the HTTP settings of resnetd.
type ServerConf struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// LogConf selects the slog handler.
type LogConf struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// OutputConf holds the CLI output defaults.
type OutputConf struct {
	NonVerbose bool `yaml:"nonverbose"`
	Potentials bool `yaml:"potentials"`
}

// Defaults.
const (
	DefaultAddr         = ":8080"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultMaxBodyBytes = 1 << 20
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// applyDefaults fills every zero field.
func (c *Config) applyDefaults() {
	if c.Solver.Epsilon == 0 {
		c.Solver.Epsilon = matrix.DefaultEpsilon
	}
	if c.Solver.Pivoting == "" {
		c.Solver.Pivoting = matrix.DefaultPivoting.String()
	}
	if c.Solver.Workers == 0 {
		c.Solver.Workers = 1
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}
