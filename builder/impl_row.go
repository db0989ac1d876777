// SPDX-License-Identifier: MIT

// Package builder: Row builder — constraint graph.
//
// Contract:
//   - One node per constraint in scope (isolated when the constraint has no
//     relevant variable in scope), weighted by Weights.Constraint.
//   - One edge per unordered pair of constraints sharing ≥ 1 relevant
//     variable, deduplicated via a sorted pair set; the edge weight is the
//     kind weight of the first (lowest-indexed) shared variable.
//   - Deterministic: variables enumerated ascending, pairs emitted ascending.
//
// Complexity: O(Σ_v deg(v)²) pair enumeration over the variable columns.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/decomp"
	"github.com/katalvlaran/dwdetect/model"
)

// pairKey is a sorted unordered node pair used to deduplicate edges.
type pairKey struct {
	u int // smaller endpoint
	v int // larger endpoint
}

// Row builds the constraint graph of the full incidence matrix.
func Row(m model.Model, opts ...Option) (*core.Graph, *Layout, error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}

	return rowGraph(fullView(m), newConfig(opts...))
}

// RowPartial builds the constraint graph of the open part of p.
// The Layout's Conss field maps local node ids back to global constraints.
func RowPartial(p *decomp.PartialDecomposition, opts ...Option) (*core.Graph, *Layout, error) {
	if p == nil {
		return nil, nil, ErrNilPartial
	}

	return rowGraph(partialView(p), newConfig(opts...))
}

// rowGraph is the shared row-builder core over a resolved view.
func rowGraph(v *view, cfg config) (*core.Graph, *Layout, error) {
	g := cfg.newGraph(len(v.conss))

	// 1. One node per constraint in scope.
	for lc := range v.conss {
		if err := g.AddNode(lc, cfg.weights.Of(core.KindConstraint)); err != nil {
			return nil, nil, fmt.Errorf("builder: row node %d: %w", lc, err)
		}
	}

	// 2. Invert rows into variable columns (local var → local conss).
	cols := v.columns()

	// 3. Emit one edge per co-occurring constraint pair, first shared
	//    variable wins the weight (ascending variable order).
	seen := make(map[pairKey]struct{})
	for lv, col := range cols {
		w := float64(cfg.weights.Of(varKind(v.m.Kind(v.vars[lv]))))
		for i := 0; i < len(col); i++ {
			for j := i + 1; j < len(col); j++ {
				k := pairKey{u: col[i], v: col[j]}
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				if err := g.AddEdge(k.u, k.v, w); err != nil {
					return nil, nil, fmt.Errorf("builder: row edge (%d,%d): %w", k.u, k.v, err)
				}
			}
		}
	}

	// 4. Lock the graph for clustering.
	if err := g.Flush(); err != nil {
		return nil, nil, fmt.Errorf("builder: flush row graph: %w", err)
	}

	return g, &Layout{Conss: v.conss, ConsBase: 0}, nil
}

// columns inverts the per-constraint rows into per-variable columns with
// ascending local constraint ids.
func (v *view) columns() [][]int {
	cols := make([][]int, len(v.vars))
	for lc, row := range v.consVars {
		for _, lv := range row {
			cols[lv] = append(cols[lv], lc)
		}
	}

	return cols
}
