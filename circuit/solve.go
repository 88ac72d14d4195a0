// SPDX-License-Identifier: MIT

package circuit

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/resnet/linsolve"
)

var tracer = otel.Tracer("github.com/katalvlaran/resnet/circuit")

// SolveConnected solves n as one component, without decomposition.
// A disconnected network has no unique potentials and fails with
// linsolve.ErrSingularMatrix.
//
// Errors: ErrEmptyNetwork, linsolve.ErrSingularMatrix.
func (n *Network) SolveConnected() (Solution, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	sol, err := n.solveComponent()
	if err != nil {
		return Solution{}, circuitErrorf(opSolveConnected, err)
	}

	return sol, nil
}

// solveComponent runs assemble → eliminate → synthesize on a connected n.
func (n *Network) solveComponent() (Solution, error) {
	sys, err := n.assemble()
	if err != nil {
		return Solution{}, err
	}
	x, err := linsolve.SolveExtended(sys.ext, n.opts.solver()...)
	if err != nil {
		return Solution{}, err
	}

	return sys.synthesize(n, x), nil
}

// Solve is SolveContext with a background context.
func (n *Network) Solve() (Solution, error) {
	return n.SolveContext(context.Background())
}

// SolveContext computes the potentials and currents of the whole network.
//
// Implementation:
//   - Stage 1: Decompose into connected components (ConnectedComponents).
//   - Stage 2: Solve each component on its own; up to Options.Workers()
//     components run concurrently through an errgroup.
//   - Stage 3: Merge the per-component solutions (disjoint union).
//
// Behavior highlights:
//   - Each component is grounded at its own minimum node id.
//   - The first failing component cancels the rest; no partial result is
//     returned.
//   - An empty network yields an empty Solution.
//   - One trace span per call, with an event per solved component.
//
// Errors: linsolve.ErrSingularMatrix (wrapped with the component's reference
// node), ErrComponentOverlap, ctx.Err().
//
// Complexity: O(Σ (Vc+Sc)³) over components c.
func (n *Network) SolveContext(ctx context.Context) (Solution, error) {
	n.mu.RLock()
	comps := n.components()
	nodes, edges := len(n.adj), n.edges
	n.mu.RUnlock()

	ctx, span := tracer.Start(ctx, "circuit.Network.Solve",
		trace.WithAttributes(
			attribute.Int("node_count", nodes),
			attribute.Int("edge_count", edges),
			attribute.Int("component_count", len(comps)),
			attribute.Int("workers", n.opts.workers),
		),
	)
	defer span.End()

	parts := make([]Solution, len(comps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n.opts.workers)
	for i, c := range comps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			part, err := c.solveComponent()
			if err != nil {
				return fmt.Errorf("component at node %d: %w", c.nodes()[0], err)
			}
			parts[i] = part
			span.AddEvent("component_solved", trace.WithAttributes(
				attribute.Int("component", i),
				attribute.Int("node_count", len(part.Potentials)),
			))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Solution{}, circuitErrorf(opSolve, err)
	}

	sol := newSolution(nodes)
	for _, part := range parts {
		if err := sol.merge(part); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Solution{}, err
		}
	}

	return sol, nil
}
