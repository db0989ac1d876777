// SPDX-License-Identifier: MIT

// Package builder: Bipartite builder — constraints ∪ variables.
//
// Contract:
//   - Constraint nodes first (0..nc-1, weight Weights.Constraint), then one
//     node per relevant in-scope variable (nc..nc+nv-1, kind weight).
//   - One unit edge per nonzero incidence (cons, var); no dedup needed, the
//     matrix stores each incidence once.
//
// Complexity: O(nc + nv + nnz).

package builder

import (
	"fmt"

	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/decomp"
	"github.com/katalvlaran/dwdetect/model"
)

// unitEdgeWeight is the weight of structural (incidence) edges.
const unitEdgeWeight = 1.0

// Bipartite builds the bipartite incidence graph of the full matrix.
// Layout: Conss at ConsBase 0, Vars at VarBase len(Conss).
func Bipartite(m model.Model, opts ...Option) (*core.Graph, *Layout, error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}

	return bipartiteGraph(fullView(m), newConfig(opts...))
}

// BipartitePartial builds the bipartite graph of the open part of p.
func BipartitePartial(p *decomp.PartialDecomposition, opts ...Option) (*core.Graph, *Layout, error) {
	if p == nil {
		return nil, nil, ErrNilPartial
	}

	return bipartiteGraph(partialView(p), newConfig(opts...))
}

// bipartiteGraph is the shared bipartite core over a resolved view.
func bipartiteGraph(v *view, cfg config) (*core.Graph, *Layout, error) {
	nc := len(v.conss)
	g := cfg.newGraph(nc + len(v.vars))

	// 1. Constraint nodes occupy 0..nc-1.
	for lc := range v.conss {
		if err := g.AddNode(lc, cfg.weights.Of(core.KindConstraint)); err != nil {
			return nil, nil, fmt.Errorf("builder: bipartite cons node %d: %w", lc, err)
		}
	}
	// 2. Variable nodes follow at nc..nc+nv-1.
	for lv, gv := range v.vars {
		if err := g.AddNode(nc+lv, cfg.weights.Of(varKind(v.m.Kind(gv)))); err != nil {
			return nil, nil, fmt.Errorf("builder: bipartite var node %d: %w", nc+lv, err)
		}
	}

	// 3. One unit edge per incidence.
	for lc, row := range v.consVars {
		for _, lv := range row {
			if err := g.AddEdge(lc, nc+lv, unitEdgeWeight); err != nil {
				return nil, nil, fmt.Errorf("builder: bipartite edge (%d,%d): %w", lc, nc+lv, err)
			}
		}
	}

	// 4. Lock the graph.
	if err := g.Flush(); err != nil {
		return nil, nil, fmt.Errorf("builder: flush bipartite graph: %w", err)
	}

	return g, &Layout{Conss: v.conss, ConsBase: 0, Vars: v.vars, VarBase: nc}, nil
}
