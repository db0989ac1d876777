// SPDX-License-Identifier: MIT

// Package mcl: Markov-flow clustering implementation.

package mcl

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dwdetect/core"
)

// Cluster partitions the rows of the flushed similarity graph g by Markov
// flow with the given inflate factor. The resulting labels are written into
// g's partition and returned.
//
// Steps:
//  1. Validate: g != nil, g.Flushed(), inflate finite and > 1.
//  2. Build the transition matrix: weighted adjacency, unit self-loops,
//     columns normalized to sum 1.
//  3. Iterate expand → inflate → prune until the matrix is stable or the
//     iteration cap is reached.
//  4. Read clusters off the converged non-zero pattern: weakly-connected
//     row groups of size ≥ 2 get labels in ascending smallest-member order,
//     rows alone become core.Unassigned.
//
// The matrix is rebuilt from g on every call, so repeating a run with the
// same inflate factor reproduces the same partition.
//
// Errors: ErrNilGraph, ErrNotFlushed, ErrBadInflate.
func Cluster(g *core.Graph, inflate float64, opts ...Option) (*Result, error) {
	// 1. Validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Flushed() {
		return nil, ErrNotFlushed
	}
	if inflate <= 1 || math.IsNaN(inflate) || math.IsInf(inflate, 0) {
		return nil, ErrBadInflate
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NNodes()
	if n == 0 {
		if err := g.SetPartitionAll(nil); err != nil {
			return nil, err
		}

		return &Result{Partition: []int{}}, nil
	}

	// 2. Column-stochastic transition matrix with self-loops.
	m, err := transition(g, n)
	if err != nil {
		return nil, err
	}

	// 3. Expand / inflate / prune until stable.
	prev := mat.NewDense(n, n, nil)
	tmp := mat.NewDense(n, n, nil)
	iters := 0
	for ; iters < cfg.maxIter; iters++ {
		prev.Copy(m)

		// Expand: m ← m^power, one multiplication per extra power.
		for p := 1; p < cfg.power; p++ {
			tmp.Mul(m, m)
			m, tmp = tmp, m
		}

		// Inflate: entrywise power, then restore column sums.
		m.Apply(func(_, _ int, v float64) float64 {
			return math.Pow(v, inflate)
		}, m)
		normalizeColumns(m, n)

		// Prune: drop negligible flow, renormalize what remains.
		if cfg.prune > 0 {
			m.Apply(func(_, _ int, v float64) float64 {
				if v < cfg.prune {
					return 0
				}

				return v
			}, m)
			normalizeColumns(m, n)
		}

		if maxDelta(m, prev, n) < cfg.tol {
			iters++
			break
		}
	}

	// 4. Clusters = weakly-connected groups of the non-zero pattern.
	res := interpret(m, n)
	res.StoppedAfter = iters
	if err = g.SetPartitionAll(res.Partition); err != nil {
		return nil, err
	}

	return res, nil
}

// transition builds the initial column-stochastic matrix: edge weights plus
// a unit self-loop per node. An isolated node keeps a pure self-loop column.
func transition(g *core.Graph, n int) (*mat.Dense, error) {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	edges, err := g.Edges()
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		m.Set(e.Src, e.Dst, e.Weight)
		m.Set(e.Dst, e.Src, e.Weight)
	}
	normalizeColumns(m, n)

	return m, nil
}

// normalizeColumns scales every column to sum 1; a column that pruned to
// all-zero collapses back onto its diagonal.
func normalizeColumns(m *mat.Dense, n int) {
	for j := 0; j < n; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += m.At(i, j)
		}
		if sum == 0 {
			m.Set(j, j, 1)
			continue
		}
		for i := 0; i < n; i++ {
			if v := m.At(i, j); v != 0 {
				m.Set(i, j, v/sum)
			}
		}
	}
}

// maxDelta returns the largest entrywise |a-b|.
func maxDelta(a, b *mat.Dense, n int) float64 {
	max := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d := math.Abs(a.At(i, j) - b.At(i, j)); d > max {
				max = d
			}
		}
	}

	return max
}

// interpret reads the converged flow pattern: any remaining off-diagonal
// entry (in either direction) links its two rows, and the resulting
// components of size ≥ 2 become clusters.
func interpret(m *mat.Dense, n int) *Result {
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.At(i, j) > 0 || m.At(j, i) > 0 {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	part := make([]int, n)
	for i := range part {
		part[i] = core.Unassigned
	}
	nBlocks, nonClustered := 0, 0
	visited := make([]bool, n)
	comp := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		// Depth-first sweep collecting the component of s.
		comp = comp[:0]
		stack := []int{s}
		visited[s] = true
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for _, v := range adj[u] {
				if !visited[v] {
					visited[v] = true
					stack = append(stack, v)
				}
			}
		}
		if len(comp) < 2 {
			nonClustered++
			continue
		}
		for _, u := range comp {
			part[u] = nBlocks
		}
		nBlocks++
	}

	return &Result{Partition: part, NBlocks: nBlocks, NonClustered: nonClustered}
}
