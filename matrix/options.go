// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by RoughlyEqual
	// and by the elimination kernel to decide that a pivot vanished.
	DefaultEpsilon = 1e-9

	// DefaultPivoting is the pivot policy of the elimination kernel.
	DefaultPivoting = PivotPartial
)

const (
	pivotPartialName = "partial"
	pivotNoneName    = "none"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotingInvalid = "matrix: WithPivoting: unknown pivoting policy"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps   float64  // >= 0; DefaultEpsilon
	pivot Pivoting // DefaultPivoting
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Pivoting returns the resolved pivot policy.
func (o Options) Pivoting() Pivoting { return o.pivot }

// WithEpsilon sets the numeric tolerance eps used by zero checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Larger eps treats more pivots as vanished; use judiciously.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivoting selects the pivot policy of the elimination kernel.
// Panics on values outside the declared Pivoting constants.
func WithPivoting(p Pivoting) Option {
	if p != PivotPartial && p != PivotNone {
		panic(panicPivotingInvalid)
	}

	return func(o *Options) { o.pivot = p }
}

// ParsePivoting maps the config spelling ("partial", "none"; case-insensitive)
// to a Pivoting value. The empty string resolves to DefaultPivoting.
func ParsePivoting(s string) (Pivoting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultPivoting, nil
	case pivotPartialName:
		return PivotPartial, nil
	case pivotNoneName:
		return PivotNone, nil
	default:
		return DefaultPivoting, fmt.Errorf("matrix: unknown pivoting %q", s)
	}
}

// NewOptions resolves option setters against documented defaults.
// Downstream packages use it to forward a resolved policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins; O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:   DefaultEpsilon,
		pivot: DefaultPivoting,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
