// SPDX-License-Identifier: MIT

// Package circuit declares Branch, Edge, ShortCircuit, Solution, the
// functional options of the network solver and its sentinel errors.
//
// Errors:
//
//	ErrSelfLoop           - an edge joins a node to itself.
//	ErrDuplicateEdge      - a pair of nodes already has an edge.
//	ErrEmptyNetwork       - a component without nodes was solved.
//	ErrInvalidResistance  - resistance is negative, NaN or infinite.
//	ErrInvalidEMF         - emf is NaN or infinite.
//	ErrComponentOverlap   - two solved components reported the same node.
package circuit

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/resnet/matrix"
)

// Sentinel errors for network construction and solving.
var (
	// ErrSelfLoop indicates an edge whose two endpoints are the same node.
	ErrSelfLoop = errors.New("circuit: self-loop")

	// ErrDuplicateEdge indicates a second edge between the same pair of nodes.
	ErrDuplicateEdge = errors.New("circuit: duplicate edge")

	// ErrEmptyNetwork indicates that a network without nodes was solved as
	// a single component.
	ErrEmptyNetwork = errors.New("circuit: empty network")

	// ErrInvalidResistance indicates a negative or non-finite resistance.
	ErrInvalidResistance = errors.New("circuit: resistance must be finite and non-negative")

	// ErrInvalidEMF indicates a non-finite electromotive force.
	ErrInvalidEMF = errors.New("circuit: emf must be finite")

	// ErrComponentOverlap indicates that two components produced results for
	// the same node, which means decomposition went wrong.
	ErrComponentOverlap = errors.New("circuit: components overlap")
)

// Operation tags for error wrapping.
const (
	opInsert         = "Insert"
	opSolve          = "Solve"
	opSolveConnected = "SolveConnected"
	opAssemble       = "assemble"
	opMerge          = "merge"
)

// circuitErrorf wraps err with an operation tag, preserving it for errors.Is.
func circuitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Branch is the electrical content of one direction of an edge: the current
// I = (V[from] - V[to] + EMF) / Resistance flows from→to.
type Branch struct {
	Resistance float64
	EMF        float64
}

// reverse returns the same branch seen from the other endpoint.
func (b Branch) reverse() Branch {
	return Branch{Resistance: b.Resistance, EMF: -b.EMF}
}

// Edge is one input edge: EMF acts in the First→Second direction.
type Edge struct {
	First      uint    `json:"first" yaml:"first"`
	Second     uint    `json:"second" yaml:"second"`
	Resistance float64 `json:"resistance" yaml:"resistance"`
	EMF        float64 `json:"emf,omitempty" yaml:"emf,omitempty"`
}

// Canonical returns e oriented so that First < Second, negating EMF when the
// endpoints are swapped. The physics is unchanged.
func (e Edge) Canonical() Edge {
	if e.First > e.Second {
		return Edge{First: e.Second, Second: e.First, Resistance: e.Resistance, EMF: -e.EMF}
	}

	return e
}

// ShortCircuit is an edge with (roughly) zero resistance. Its current is an
// unknown of the linear system; First < Second always holds.
type ShortCircuit struct {
	First  uint
	Second uint
	EMF    float64
}

// Solution holds the steady state of a solved network.
//
// Potentials maps every node to its potential; the reference node of each
// component (its minimum id) is exactly 0. Currents[a][b] is the current
// flowing from a to b through the edge {a,b}; Currents[b][a] is its exact
// negation.
type Solution struct {
	Potentials map[uint]float64
	Currents   map[uint]map[uint]float64
	Components int
}

func newSolution(nodes int) Solution {
	return Solution{
		Potentials: make(map[uint]float64, nodes),
		Currents:   make(map[uint]map[uint]float64, nodes),
	}
}

// Potential returns the potential of node n.
func (s Solution) Potential(n uint) (float64, bool) {
	v, ok := s.Potentials[n]

	return v, ok
}

// Current returns the current flowing from a to b.
func (s Solution) Current(a, b uint) (float64, bool) {
	v, ok := s.Currents[a][b]

	return v, ok
}

// setCurrent stores i for a→b and -i for b→a.
func (s Solution) setCurrent(a, b uint, i float64) {
	if s.Currents[a] == nil {
		s.Currents[a] = make(map[uint]float64)
	}
	if s.Currents[b] == nil {
		s.Currents[b] = make(map[uint]float64)
	}
	s.Currents[a][b] = i
	s.Currents[b][a] = -i
}

// merge adds part into s. Components never share nodes, so any key already
// present is reported as ErrComponentOverlap.
func (s *Solution) merge(part Solution) error {
	for n, v := range part.Potentials {
		if _, dup := s.Potentials[n]; dup {
			return circuitErrorf(opMerge, fmt.Errorf("node %d: %w", n, ErrComponentOverlap))
		}
		s.Potentials[n] = v
	}
	for a, row := range part.Currents {
		if _, dup := s.Currents[a]; dup {
			return circuitErrorf(opMerge, fmt.Errorf("node %d: %w", a, ErrComponentOverlap))
		}
		s.Currents[a] = row
	}
	s.Components += part.Components

	return nil
}

// ---------- Options ----------

// DefaultWorkers solves components one after another.
const DefaultWorkers = 1

const panicWorkersInvalid = "circuit: WithWorkers: workers must be >= 1"

// Options is the resolved solver configuration of a Network.
type Options struct {
	eps     float64
	pivot   matrix.Pivoting
	workers int
}

// Option configures a Network.
type Option func(*Options)

// WithEpsilon sets the tolerance used to detect zero resistances and
// vanished pivots. Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	matrix.WithEpsilon(eps) // validates
	return func(o *Options) { o.eps = eps }
}

// WithPivoting selects the elimination pivot policy.
func WithPivoting(p matrix.Pivoting) Option {
	matrix.WithPivoting(p) // validates
	return func(o *Options) { o.pivot = p }
}

// WithWorkers bounds how many components are solved concurrently.
// Panics when workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Pivoting returns the resolved pivot policy.
func (o Options) Pivoting() matrix.Pivoting { return o.pivot }

// Workers returns the resolved concurrency limit.
func (o Options) Workers() int { return o.workers }

// solver converts the options into elimination options.
func (o Options) solver() []matrix.Option {
	return []matrix.Option{matrix.WithEpsilon(o.eps), matrix.WithPivoting(o.pivot)}
}

func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     matrix.DefaultEpsilon,
		pivot:   matrix.DefaultPivoting,
		workers: DefaultWorkers,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
