// SPDX-License-Identifier: MIT

// Package core: dense adjacency backend on gonum mat.Dense.
//
// One float64 cell per ordered pair plus a presence bitmap (a stored zero
// weight is a legal edge). O(1) edge lookup, O(n) neighbor scan — the right
// trade for the small dense row graphs produced by aggressive similarity
// measures. Selected via WithDenseBackend.

package core

import "gonum.org/v1/gonum/mat"

// denseBackend stores the symmetric adjacency in a gonum dense matrix.
type denseBackend struct {
	w         *mat.Dense // n×n symmetric weight matrix
	has       []bool     // n×n row-major presence bitmap
	n         int        // current node capacity
	edgeCount int
	compacted bool
}

// NewDenseBackend creates a dense backend pre-sized for n nodes (n ≥ 0).
func NewDenseBackend(n int) Backend {
	b := &denseBackend{}
	b.grow(n)

	return b
}

// grow reallocates storage to cover n nodes, preserving existing cells.
func (b *denseBackend) grow(n int) {
	if n <= b.n {
		return
	}
	nw := mat.NewDense(n, n, nil)
	nh := make([]bool, n*n)
	if b.n > 0 {
		// Copy the old square block into the grown matrix.
		nw.Slice(0, b.n, 0, b.n).(*mat.Dense).Copy(b.w)
		for i := 0; i < b.n; i++ {
			copy(nh[i*n:i*n+b.n], b.has[i*b.n:(i+1)*b.n])
		}
	}
	b.w, b.has, b.n = nw, nh, n
}

// EnsureNodes grows the matrix to n nodes.
func (b *denseBackend) EnsureNodes(n int) { b.grow(n) }

// AddEdge stores {u,v} symmetrically. Last write wins on duplicates.
func (b *denseBackend) AddEdge(u, v int, w float64) {
	if !b.has[u*b.n+v] {
		b.edgeCount++
	}
	b.has[u*b.n+v] = true
	b.has[v*b.n+u] = true
	b.w.Set(u, v, w)
	b.w.Set(v, u, w)
}

// Weight reports the stored weight of {u,v}.
func (b *denseBackend) Weight(u, v int) (float64, bool) {
	if !b.has[u*b.n+v] {
		return 0, false
	}

	return b.w.At(u, v), true
}

// Neighbors scans row u for present cells. Complexity: O(n).
func (b *denseBackend) Neighbors(u int) []int {
	var ns []int
	for v := 0; v < b.n; v++ {
		if v != u && b.has[u*b.n+v] {
			ns = append(ns, v)
		}
	}

	return ns
}

// Degree counts present cells in row u. Complexity: O(n).
func (b *denseBackend) Degree(u int) int {
	d := 0
	for v := 0; v < b.n; v++ {
		if v != u && b.has[u*b.n+v] {
			d++
		}
	}

	return d
}

// NEdges returns the undirected edge count.
func (b *denseBackend) NEdges() int { return b.edgeCount }

// Edges lists all edges with Src < Dst in (Src, Dst) order.
func (b *denseBackend) Edges() []Edge {
	out := make([]Edge, 0, b.edgeCount)
	for u := 0; u < b.n; u++ {
		for v := u + 1; v < b.n; v++ {
			if b.has[u*b.n+v] {
				out = append(out, Edge{Src: u, Dst: v, Weight: b.w.At(u, v)})
			}
		}
	}

	return out
}

// Compact is a lock-only operation for the dense layout (already compact).
func (b *denseBackend) Compact() { b.compacted = true }
