// Package resnet solves DC resistor networks: every edge is a resistor with
// an optional EMF source, and the solver finds the steady-state node
// potentials and edge currents.
//
// 🚀 What is in the box?
//
//	• Graph model: undirected network, both directions stored, short circuits tracked
//	• Components: union-find split, each component grounded at its minimum node id
//	• Assembly: KCL rows per non-reference node + one row per short circuit
//	• Elimination: dense Gauss–Jordan with partial (or no) pivoting
//	• Synthesis: potentials and antisymmetric currents, I[a][b] = -I[b][a]
//	• Tooling: netlist text format, CLI, HTTP service, YAML config, charts
//
// Packages:
//
//	matrix/    dense row-major container, tolerance compare, row reduction
//	linsolve/  extended-matrix solver and an equation accumulator
//	dsu/       generic disjoint-set forest
//	circuit/   Network, Solve / SolveContext, Solution
//	netlist/   "a -- b, R; E V" parser, writer and value compare
//	config/    YAML config, hot reload, slog setup
//	metrics/   Prometheus collectors
//	chart/     gonum/plot bar charts of potentials and currents
//	server/    HTTP API
//	cmd/resnet, cmd/resnetd  binaries
//
// Quick ASCII example:
//
//	    0 ──[1Ω, 10V]── 1
//	     \             /
//	     [1Ω]       [1Ω]
//	        \       /
//	           2
//
// gives V = {0, 6.66667, 3.33333} and 3.33333 A around the loop:
//
//	echo "0 -- 1, 1; 10 V 1 -- 2, 1; 2 -- 0, 1;" | resnet -p
package resnet
