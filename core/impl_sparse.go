// SPDX-License-Identifier: MIT

// Package core: sparse adjacency backend (the default).
//
// Construction phase stores per-node weight maps for O(1) duplicate
// handling; Compact freezes them into sorted neighbor/weight slices for
// cache-friendly queries. Incidence matrices of optimization models are
// typically very sparse, so this backend is the detection default.

package core

import "sort"

// sparseBackend keeps one adjacency map per node while building, and one
// sorted slice pair per node after Compact.
type sparseBackend struct {
	adj       []map[int]float64 // build-phase adjacency, symmetric
	neighbors [][]int           // compacted sorted neighbor ids
	weights   [][]float64       // compacted weights, index-aligned with neighbors
	edgeCount int               // undirected edge count
	compacted bool
}

// NewSparseBackend creates an empty sparse adjacency backend.
func NewSparseBackend() Backend {
	return &sparseBackend{}
}

// EnsureNodes grows the adjacency to n nodes.
func (b *sparseBackend) EnsureNodes(n int) {
	for len(b.adj) < n {
		b.adj = append(b.adj, nil)
	}
}

// AddEdge stores {u,v} symmetrically. Last write wins on duplicates.
func (b *sparseBackend) AddEdge(u, v int, w float64) {
	if b.adj[u] == nil {
		b.adj[u] = make(map[int]float64)
	}
	if b.adj[v] == nil {
		b.adj[v] = make(map[int]float64)
	}
	if _, dup := b.adj[u][v]; !dup {
		b.edgeCount++
	}
	b.adj[u][v] = w
	b.adj[v][u] = w
}

// Weight reports the stored weight of {u,v}.
func (b *sparseBackend) Weight(u, v int) (float64, bool) {
	if b.compacted {
		// Binary search the sorted neighbor slice of the lower-degree side.
		side, other := u, v
		if len(b.neighbors[v]) < len(b.neighbors[u]) {
			side, other = v, u
		}
		ns := b.neighbors[side]
		k := sort.SearchInts(ns, other)
		if k < len(ns) && ns[k] == other {
			return b.weights[side][k], true
		}

		return 0, false
	}
	if b.adj[u] == nil {
		return 0, false
	}
	w, ok := b.adj[u][v]

	return w, ok
}

// Neighbors returns the compacted sorted adjacency of u.
func (b *sparseBackend) Neighbors(u int) []int { return b.neighbors[u] }

// Degree returns the compacted degree of u.
func (b *sparseBackend) Degree(u int) int {
	if b.compacted {
		return len(b.neighbors[u])
	}

	return len(b.adj[u])
}

// NEdges returns the undirected edge count.
func (b *sparseBackend) NEdges() int { return b.edgeCount }

// Edges lists all edges with Src < Dst in (Src, Dst) order.
func (b *sparseBackend) Edges() []Edge {
	out := make([]Edge, 0, b.edgeCount)
	for u := range b.neighbors {
		for k, v := range b.neighbors[u] {
			if v > u { // report each unordered pair once
				out = append(out, Edge{Src: u, Dst: v, Weight: b.weights[u][k]})
			}
		}
	}

	return out
}

// Compact freezes adjacency maps into sorted slices and drops the maps.
// Idempotent. Complexity: O(V + E log deg).
func (b *sparseBackend) Compact() {
	if b.compacted {
		return
	}
	b.neighbors = make([][]int, len(b.adj))
	b.weights = make([][]float64, len(b.adj))
	for u, m := range b.adj {
		ns := make([]int, 0, len(m))
		for v := range m {
			ns = append(ns, v)
		}
		sort.Ints(ns)
		ws := make([]float64, len(ns))
		for k, v := range ns {
			ws[k] = m[v]
		}
		b.neighbors[u] = ns
		b.weights[u] = ws
	}
	b.adj = nil // release build-phase storage
	b.compacted = true
}
