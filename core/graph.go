// SPDX-License-Identifier: MIT

// Package core: Graph methods — construction, flush, queries, partitions.

package core

import (
	"math"
	"sort"
)

// AddNode registers node id with the given weight, growing the node set so
// that 0..id are all addressable (gap nodes get weight 0 until set).
// Re-adding an existing id overwrites its weight.
//
// Errors: ErrInvalidIndex (id < 0), ErrFlushed (after Flush).
// Complexity: amortized O(1); O(id) when growing.
func (g *Graph) AddNode(id, weight int) error {
	if g.flushed {
		return ErrFlushed
	}
	if id < 0 {
		return ErrInvalidIndex
	}
	// Grow the weight slice to cover id; appended slots default to 0.
	for len(g.weights) <= id {
		g.weights = append(g.weights, 0)
	}
	g.weights[id] = weight
	// Keep the backend in sync with the node count.
	g.be.EnsureNodes(len(g.weights))

	return nil
}

// AddEdge records the undirected edge {u,v} with weight w. Self-loops are
// ignored (no builder emits them; a loop cannot separate rows). Duplicate
// pairs overwrite the stored weight.
//
// Errors: ErrInvalidIndex (endpoint not added yet), ErrFlushed.
// Complexity: O(1) amortized on the sparse backend.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if g.flushed {
		return ErrFlushed
	}
	if u < 0 || v < 0 || u >= len(g.weights) || v >= len(g.weights) {
		return ErrInvalidIndex
	}
	if u == v {
		return nil
	}
	g.be.AddEdge(u, v, w)

	return nil
}

// NNodes returns the number of registered nodes (dummy padding excluded).
func (g *Graph) NNodes() int { return len(g.weights) }

// NEdges returns the number of stored undirected edges.
func (g *Graph) NEdges() int { return g.be.NEdges() }

// DummyNodes returns the count of serialized-only padding nodes.
func (g *Graph) DummyNodes() int { return g.dummy }

// NodeWeight returns the weight annotation of node i.
// Errors: ErrInvalidIndex.
func (g *Graph) NodeWeight(i int) (int, error) {
	if i < 0 || i >= len(g.weights) {
		return 0, ErrInvalidIndex
	}

	return g.weights[i], nil
}

// Flush compacts and locks the backend, allocates the partition (all labels
// Unassigned) and caches the sorted edge-weight distribution for percentile
// queries. Idempotent; irreversible for topology.
//
// Complexity: O(E log E) for the weight sort.
func (g *Graph) Flush() error {
	if g.flushed {
		return nil
	}
	g.be.Compact()

	// Initialize every partition label to Unassigned.
	g.part = make([]int, len(g.weights))
	for i := range g.part {
		g.part[i] = Unassigned
	}

	// Cache ascending edge weights once; percentile queries are then O(1).
	edges := g.be.Edges()
	g.sorted = make([]float64, len(edges))
	for i, e := range edges {
		g.sorted[i] = e.Weight
	}
	sort.Float64s(g.sorted)

	g.flushed = true

	return nil
}

// Flushed reports whether Flush has been called.
func (g *Graph) Flushed() bool { return g.flushed }

// Neighbors returns the sorted adjacency of node i.
// Errors: ErrNotFlushed, ErrInvalidIndex.
func (g *Graph) Neighbors(i int) ([]int, error) {
	if !g.flushed {
		return nil, ErrNotFlushed
	}
	if i < 0 || i >= len(g.weights) {
		return nil, ErrInvalidIndex
	}

	return g.be.Neighbors(i), nil
}

// Degree returns the number of neighbors of node i.
// Errors: ErrNotFlushed, ErrInvalidIndex.
func (g *Graph) Degree(i int) (int, error) {
	if !g.flushed {
		return 0, ErrNotFlushed
	}
	if i < 0 || i >= len(g.weights) {
		return 0, ErrInvalidIndex
	}

	return g.be.Degree(i), nil
}

// EdgeWeight returns the weight of {i,j}, or 0 when no such edge exists;
// callers cannot tell an absent edge from a zero-weight one (the builders
// never emit explicit zero-similarity edges).
//
// Errors: ErrNotFlushed, ErrInvalidIndex.
func (g *Graph) EdgeWeight(i, j int) (float64, error) {
	if !g.flushed {
		return 0, ErrNotFlushed
	}
	if i < 0 || j < 0 || i >= len(g.weights) || j >= len(g.weights) {
		return 0, ErrInvalidIndex
	}
	w, ok := g.be.Weight(i, j)
	if !ok {
		return 0, nil
	}

	return w, nil
}

// Edges returns every stored edge with Src < Dst, sorted by (Src, Dst).
// Errors: ErrNotFlushed.
func (g *Graph) Edges() ([]Edge, error) {
	if !g.flushed {
		return nil, ErrNotFlushed
	}

	return g.be.Edges(), nil
}

// EdgeWeightPercentile returns the edge weight at quantile q ∈ (0,1] of the
// ascending weight distribution (nearest-rank definition). The 10th
// percentile (q = 0.1) seeds the eps sweeps of density and tree clustering.
//
// Errors: ErrNotFlushed, ErrBadQuantile, ErrNoEdges.
// Complexity: O(1) — the distribution is cached at Flush.
func (g *Graph) EdgeWeightPercentile(q float64) (float64, error) {
	if !g.flushed {
		return 0, ErrNotFlushed
	}
	if q <= 0 || q > 1 || math.IsNaN(q) {
		return 0, ErrBadQuantile
	}
	if len(g.sorted) == 0 {
		return 0, ErrNoEdges
	}
	// Nearest-rank: smallest index k with (k+1)/m ≥ q.
	k := int(math.Ceil(q*float64(len(g.sorted)))) - 1
	if k < 0 {
		k = 0
	}

	return g.sorted[k], nil
}

// SetPartition assigns cluster label to node i (Unassigned clears it).
// Errors: ErrNotFlushed, ErrInvalidIndex.
func (g *Graph) SetPartition(i, label int) error {
	if !g.flushed {
		return ErrNotFlushed
	}
	if i < 0 || i >= len(g.part) {
		return ErrInvalidIndex
	}
	g.part[i] = label

	return nil
}

// SetPartitionAll replaces the whole label vector.
// Errors: ErrNotFlushed, ErrBadPartition (length mismatch).
func (g *Graph) SetPartitionAll(labels []int) error {
	if !g.flushed {
		return ErrNotFlushed
	}
	if len(labels) != len(g.part) {
		return ErrBadPartition
	}
	copy(g.part, labels)

	return nil
}

// Partition returns a copy of the label vector (len == NNodes()).
// Errors: ErrNotFlushed.
func (g *Graph) Partition() ([]int, error) {
	if !g.flushed {
		return nil, ErrNotFlushed
	}
	out := make([]int, len(g.part))
	copy(out, g.part)

	return out, nil
}
