// SPDX-License-Identifier: MIT

// Package builder: RowSimilarity builder — constraint graph with
// overlap-derived edge weights. This is the graph every detector sweeps.
//
// Contract:
//   - Topology identical to Row (one node per constraint, one edge per
//     variable-sharing pair).
//   - For each pair the overlap triple is counted over relevant in-scope
//     variables: a = shared, b = unique to the higher-indexed row,
//     c = unique to the lower-indexed row; the edge weight is
//     simil.Calculate(a, b, c, measure, weightType, false).
//   - Orientation: simil.Distance (default) for density/tree clustering,
//     simil.Similarity for flow clustering.
//
// Complexity: O(Σ_v deg(v)²) to accumulate shared counts, O(E) to weigh.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/decomp"
	"github.com/katalvlaran/dwdetect/model"
)

// RowSimilarity builds the weighted constraint graph of the full matrix
// under the configured measure and orientation.
func RowSimilarity(m model.Model, opts ...Option) (*core.Graph, *Layout, error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}

	return rowSimilarityGraph(fullView(m), newConfig(opts...))
}

// RowSimilarityPartial builds the weighted constraint graph of the open part
// of p; Layout.Conss maps local node ids back to global constraints.
func RowSimilarityPartial(p *decomp.PartialDecomposition, opts ...Option) (*core.Graph, *Layout, error) {
	if p == nil {
		return nil, nil, ErrNilPartial
	}

	return rowSimilarityGraph(partialView(p), newConfig(opts...))
}

// rowSimilarityGraph is the shared weighted-row core over a resolved view.
func rowSimilarityGraph(v *view, cfg config) (*core.Graph, *Layout, error) {
	g := cfg.newGraph(len(v.conss))

	// 1. One node per constraint in scope.
	for lc := range v.conss {
		if err := g.AddNode(lc, cfg.weights.Of(core.KindConstraint)); err != nil {
			return nil, nil, fmt.Errorf("builder: row node %d: %w", lc, err)
		}
	}

	// 2. Count shared variables per constraint pair via the columns.
	shared := make(map[pairKey]int)
	for _, col := range v.columns() {
		for i := 0; i < len(col); i++ {
			for j := i + 1; j < len(col); j++ {
				shared[pairKey{u: col[i], v: col[j]}]++
			}
		}
	}

	// 3. Weigh each sharing pair: b/c derive from the row sizes and the
	//    shared count, so no second set intersection is needed.
	for k, a := range shared {
		b := len(v.consVars[k.v]) - a // unique to the higher-indexed row
		c := len(v.consVars[k.u]) - a // unique to the lower-indexed row
		w, err := simCalculate(a, b, c, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("builder: weigh (%d,%d): %w", k.u, k.v, err)
		}
		if err = g.AddEdge(k.u, k.v, w); err != nil {
			return nil, nil, fmt.Errorf("builder: row edge (%d,%d): %w", k.u, k.v, err)
		}
	}

	// 4. Lock the graph for clustering and percentile queries.
	if err := g.Flush(); err != nil {
		return nil, nil, fmt.Errorf("builder: flush similarity graph: %w", err)
	}

	return g, &Layout{Conss: v.conss, ConsBase: 0}, nil
}
