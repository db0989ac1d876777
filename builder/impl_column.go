// SPDX-License-Identifier: MIT

// Package builder: Column builder — variable graph.
//
// Contract:
//   - One node per relevant in-scope variable, weighted by its kind weight.
//   - One edge per unordered pair of variables co-occurring in a constraint,
//     deduplicated; the connecting entity is a constraint, so the edge
//     carries Weights.Constraint.
//
// Complexity: O(Σ_c row(c)²) pair enumeration over the constraint rows.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/decomp"
	"github.com/katalvlaran/dwdetect/model"
)

// Column builds the variable graph of the full incidence matrix.
// Layout.Vars maps local node ids back to global variable indices.
func Column(m model.Model, opts ...Option) (*core.Graph, *Layout, error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}

	return columnGraph(fullView(m), newConfig(opts...))
}

// ColumnPartial builds the variable graph of the open part of p.
func ColumnPartial(p *decomp.PartialDecomposition, opts ...Option) (*core.Graph, *Layout, error) {
	if p == nil {
		return nil, nil, ErrNilPartial
	}

	return columnGraph(partialView(p), newConfig(opts...))
}

// columnGraph is the shared column-builder core over a resolved view.
func columnGraph(v *view, cfg config) (*core.Graph, *Layout, error) {
	g := cfg.newGraph(len(v.vars))

	// 1. One node per relevant variable in scope.
	for lv, gv := range v.vars {
		if err := g.AddNode(lv, cfg.weights.Of(varKind(v.m.Kind(gv)))); err != nil {
			return nil, nil, fmt.Errorf("builder: column node %d: %w", lv, err)
		}
	}

	// 2. Emit one edge per co-occurring variable pair per the rows.
	w := float64(cfg.weights.Of(core.KindConstraint))
	seen := make(map[pairKey]struct{})
	for _, row := range v.consVars {
		for i := 0; i < len(row); i++ {
			for j := i + 1; j < len(row); j++ {
				k := pairKey{u: row[i], v: row[j]}
				if k.u > k.v {
					k.u, k.v = k.v, k.u
				}
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				if err := g.AddEdge(k.u, k.v, w); err != nil {
					return nil, nil, fmt.Errorf("builder: column edge (%d,%d): %w", k.u, k.v, err)
				}
			}
		}
	}

	// 3. Lock the graph.
	if err := g.Flush(); err != nil {
		return nil, nil, fmt.Errorf("builder: flush column graph: %w", err)
	}

	return g, &Layout{Vars: v.vars, VarBase: 0}, nil
}
