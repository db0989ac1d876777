// SPDX-License-Identifier: MIT

// Package dbscan: density clustering implementation.

package dbscan

import (
	"errors"
	"math"

	"github.com/katalvlaran/dwdetect/core"
)

// DefaultMinPts is the core-point threshold used when no option overrides it.
const DefaultMinPts = 4

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("dbscan: graph is nil")

	// ErrNotFlushed indicates a graph still in its construction phase.
	ErrNotFlushed = errors.New("dbscan: graph not flushed")

	// ErrBadEps indicates a negative or non-finite neighborhood radius.
	ErrBadEps = errors.New("dbscan: eps must be finite and non-negative")

	// ErrBadMinPts indicates a non-positive core-point threshold.
	ErrBadMinPts = errors.New("dbscan: minPts must be positive")
)

// Result is one clustering outcome over a graph's rows.
type Result struct {
	// Partition holds one label per node: 0..NBlocks-1, or core.Unassigned
	// for noise rows. It is also written back into the graph.
	Partition []int

	// NBlocks is the number of clusters found.
	NBlocks int

	// NonClustered is the number of noise rows.
	NonClustered int
}

// Option tunes one clustering run.
type Option func(*config)

type config struct {
	minPts int
}

// WithMinPts overrides the core-point threshold (default DefaultMinPts).
func WithMinPts(k int) Option {
	return func(c *config) { c.minPts = k }
}

// label values during the scan, before the final partition is produced.
const (
	unvisited = -2
	noise     = -1
)

// Cluster partitions the rows of the flushed distance graph g. The labels
// are written into g's partition and returned.
//
// Steps per unvisited row i (ascending):
//  1. Collect the eps-neighborhood N(i) = {i} ∪ {j : dist(i,j) ≤ eps}.
//  2. |N(i)| < minPts ⇒ provisional noise; a later core point may still
//     absorb i as a border row.
//  3. Otherwise i opens a new cluster, expanded breadth-first: every
//     density-reachable row joins; rows that are themselves core extend
//     the frontier with their neighborhoods.
//
// Errors: ErrNilGraph, ErrNotFlushed, ErrBadEps, ErrBadMinPts.
func Cluster(g *core.Graph, eps float64, opts ...Option) (*Result, error) {
	// Validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Flushed() {
		return nil, ErrNotFlushed
	}
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, ErrBadEps
	}
	cfg := config{minPts: DefaultMinPts}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.minPts < 1 {
		return nil, ErrBadMinPts
	}

	n := g.NNodes()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = unvisited
	}

	cluster := 0
	for i := 0; i < n; i++ {
		if labels[i] != unvisited {
			continue
		}
		seed := reachable(g, i, eps)
		if len(seed)+1 < cfg.minPts { // +1: the row itself is in its neighborhood
			labels[i] = noise
			continue
		}

		// i is a core point: open the next cluster and expand breadth-first.
		labels[i] = cluster
		queue := seed
		for head := 0; head < len(queue); head++ {
			j := queue[head]
			if labels[j] == noise {
				labels[j] = cluster // border row joins, frontier unchanged
			}
			if labels[j] != unvisited {
				continue
			}
			labels[j] = cluster
			nj := reachable(g, j, eps)
			if len(nj)+1 >= cfg.minPts {
				queue = append(queue, nj...) // j is core: extend the frontier
			}
		}
		cluster++
	}

	// noise and core.Unassigned share the value -1; count and hand over.
	nonClustered := 0
	for _, l := range labels {
		if l < 0 {
			nonClustered++
		}
	}
	res := &Result{Partition: labels, NBlocks: cluster, NonClustered: nonClustered}
	if err := g.SetPartitionAll(res.Partition); err != nil {
		return nil, err
	}

	return res, nil
}

// reachable lists the neighbors of i at edge distance ≤ eps, ascending.
func reachable(g *core.Graph, i int, eps float64) []int {
	ns, _ := g.Neighbors(i) // flushed and in-range by the caller's checks
	var out []int
	for _, j := range ns {
		w, _ := g.EdgeWeight(i, j)
		if w <= eps {
			out = append(out, j)
		}
	}

	return out
}
