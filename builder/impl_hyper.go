// SPDX-License-Identifier: MIT

// Package builder: hypergraph builders.
//
// A hyperedge is modeled as an extra node star-connected to the nodes it
// spans (the standard star expansion):
//
//	Hyperrow    — member nodes are variables (0..nv-1); one hyperedge node
//	              per constraint with ≥ 1 in-scope variable (nv..), linked
//	              to its variables.
//	Hypercol    — member nodes are constraints (0..nc-1); one hyperedge node
//	              per in-scope variable (nc..), linked to its constraints.
//	Hyperrowcol — member nodes are the nonzeros themselves (0..nnz-1); one
//	              hyperedge node per constraint and per variable, each linked
//	              to the nonzeros of its row/column.
//
// Constraints without in-scope variables (and variables without in-scope
// constraints) contribute no hyperedge node; Layout records which entities
// did. All edges are structural and carry unit weight; node weights follow
// the Weights table.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/decomp"
	"github.com/katalvlaran/dwdetect/model"
)

// Hyperrow builds the row hypergraph (variables + constraint hyperedges) of
// the full matrix. Layout: Vars at VarBase 0, Conss at ConsBase len(Vars).
func Hyperrow(m model.Model, opts ...Option) (*core.Graph, *Layout, error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}

	return hyperrowGraph(fullView(m), newConfig(opts...))
}

// HyperrowPartial builds the row hypergraph of the open part of p.
func HyperrowPartial(p *decomp.PartialDecomposition, opts ...Option) (*core.Graph, *Layout, error) {
	if p == nil {
		return nil, nil, ErrNilPartial
	}

	return hyperrowGraph(partialView(p), newConfig(opts...))
}

// Hypercol builds the column hypergraph (constraints + variable hyperedges)
// of the full matrix. Layout: Conss at ConsBase 0, Vars at VarBase len(Conss).
func Hypercol(m model.Model, opts ...Option) (*core.Graph, *Layout, error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}

	return hypercolGraph(fullView(m), newConfig(opts...))
}

// HypercolPartial builds the column hypergraph of the open part of p.
func HypercolPartial(p *decomp.PartialDecomposition, opts ...Option) (*core.Graph, *Layout, error) {
	if p == nil {
		return nil, nil, ErrNilPartial
	}

	return hypercolGraph(partialView(p), newConfig(opts...))
}

// Hyperrowcol builds the nonzero hypergraph of the full matrix.
// Layout: Nonzeros at node 0, Conss at ConsBase len(Nonzeros), Vars at
// VarBase len(Nonzeros)+len(Conss).
func Hyperrowcol(m model.Model, opts ...Option) (*core.Graph, *Layout, error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}

	return hyperrowcolGraph(fullView(m), newConfig(opts...))
}

// HyperrowcolPartial builds the nonzero hypergraph of the open part of p.
func HyperrowcolPartial(p *decomp.PartialDecomposition, opts ...Option) (*core.Graph, *Layout, error) {
	if p == nil {
		return nil, nil, ErrNilPartial
	}

	return hyperrowcolGraph(partialView(p), newConfig(opts...))
}

// hyperrowGraph: variable member nodes, constraint hyperedge nodes.
func hyperrowGraph(v *view, cfg config) (*core.Graph, *Layout, error) {
	nv := len(v.vars)
	g := cfg.newGraph(nv + len(v.conss))

	// 1. Variable member nodes occupy 0..nv-1.
	for lv, gv := range v.vars {
		if err := g.AddNode(lv, cfg.weights.Of(varKind(v.m.Kind(gv)))); err != nil {
			return nil, nil, fmt.Errorf("builder: hyperrow var node %d: %w", lv, err)
		}
	}

	// 2. One hyperedge node per non-empty constraint, star-linked.
	hyperConss := make([]int, 0, len(v.conss))
	for lc, row := range v.consVars {
		if len(row) == 0 {
			continue // empty rows span nothing
		}
		node := nv + len(hyperConss)
		if err := g.AddNode(node, cfg.weights.Of(core.KindConstraint)); err != nil {
			return nil, nil, fmt.Errorf("builder: hyperrow cons node %d: %w", node, err)
		}
		for _, lv := range row {
			if err := g.AddEdge(node, lv, unitEdgeWeight); err != nil {
				return nil, nil, fmt.Errorf("builder: hyperrow edge (%d,%d): %w", node, lv, err)
			}
		}
		hyperConss = append(hyperConss, v.conss[lc])
	}

	if err := g.Flush(); err != nil {
		return nil, nil, fmt.Errorf("builder: flush hyperrow graph: %w", err)
	}

	return g, &Layout{Vars: v.vars, VarBase: 0, Conss: hyperConss, ConsBase: nv}, nil
}

// hypercolGraph: constraint member nodes, variable hyperedge nodes.
func hypercolGraph(v *view, cfg config) (*core.Graph, *Layout, error) {
	nc := len(v.conss)
	g := cfg.newGraph(nc + len(v.vars))

	// 1. Constraint member nodes occupy 0..nc-1 (isolated when empty).
	for lc := range v.conss {
		if err := g.AddNode(lc, cfg.weights.Of(core.KindConstraint)); err != nil {
			return nil, nil, fmt.Errorf("builder: hypercol cons node %d: %w", lc, err)
		}
	}

	// 2. One hyperedge node per in-scope variable, star-linked to its column.
	cols := v.columns()
	for lv, gv := range v.vars {
		node := nc + lv
		if err := g.AddNode(node, cfg.weights.Of(varKind(v.m.Kind(gv)))); err != nil {
			return nil, nil, fmt.Errorf("builder: hypercol var node %d: %w", node, err)
		}
		for _, lc := range cols[lv] {
			if err := g.AddEdge(node, lc, unitEdgeWeight); err != nil {
				return nil, nil, fmt.Errorf("builder: hypercol edge (%d,%d): %w", node, lc, err)
			}
		}
	}

	if err := g.Flush(); err != nil {
		return nil, nil, fmt.Errorf("builder: flush hypercol graph: %w", err)
	}

	return g, &Layout{Conss: v.conss, ConsBase: 0, Vars: v.vars, VarBase: nc}, nil
}

// hyperrowcolGraph: nonzero member nodes, constraint and variable hyperedges.
func hyperrowcolGraph(v *view, cfg config) (*core.Graph, *Layout, error) {
	// 1. Enumerate nonzeros row-major: node k is incidence (cons, var).
	var nonzeros []Incidence
	rowNodes := make([][]int, len(v.conss)) // per local cons: nonzero nodes
	colNodes := make([][]int, len(v.vars))  // per local var: nonzero nodes
	for lc, row := range v.consVars {
		for _, lv := range row {
			k := len(nonzeros)
			nonzeros = append(nonzeros, Incidence{Cons: v.conss[lc], Var: v.vars[lv]})
			rowNodes[lc] = append(rowNodes[lc], k)
			colNodes[lv] = append(colNodes[lv], k)
		}
	}

	nnz := len(nonzeros)
	g := cfg.newGraph(nnz + len(v.conss) + len(v.vars))

	// 2. Nonzero member nodes carry the kind weight of their variable.
	for k, inc := range nonzeros {
		if err := g.AddNode(k, cfg.weights.Of(varKind(v.m.Kind(inc.Var)))); err != nil {
			return nil, nil, fmt.Errorf("builder: nonzero node %d: %w", k, err)
		}
	}

	// 3. Constraint hyperedge nodes at nnz.., linked to their row nonzeros.
	for lc := range v.conss {
		node := nnz + lc
		if err := g.AddNode(node, cfg.weights.Of(core.KindConstraint)); err != nil {
			return nil, nil, fmt.Errorf("builder: hyperrowcol cons node %d: %w", node, err)
		}
		for _, k := range rowNodes[lc] {
			if err := g.AddEdge(node, k, unitEdgeWeight); err != nil {
				return nil, nil, fmt.Errorf("builder: hyperrowcol edge (%d,%d): %w", node, k, err)
			}
		}
	}

	// 4. Variable hyperedge nodes after the constraint ones.
	for lv, gv := range v.vars {
		node := nnz + len(v.conss) + lv
		if err := g.AddNode(node, cfg.weights.Of(varKind(v.m.Kind(gv)))); err != nil {
			return nil, nil, fmt.Errorf("builder: hyperrowcol var node %d: %w", node, err)
		}
		for _, k := range colNodes[lv] {
			if err := g.AddEdge(node, k, unitEdgeWeight); err != nil {
				return nil, nil, fmt.Errorf("builder: hyperrowcol edge (%d,%d): %w", node, k, err)
			}
		}
	}

	if err := g.Flush(); err != nil {
		return nil, nil, fmt.Errorf("builder: flush hyperrowcol graph: %w", err)
	}

	return g, &Layout{
		Nonzeros: nonzeros,
		Conss:    v.conss,
		ConsBase: nnz,
		Vars:     v.vars,
		VarBase:  nnz + len(v.conss),
	}, nil
}
