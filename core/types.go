// SPDX-License-Identifier: MIT

// Package core: domain types and functional options.
// This file declares Edge, Backend, the Graph container and its Option set.
// Backend implementations live in impl_sparse.go and impl_dense.go; Graph
// methods live in graph.go; the weight table lives in weights.go.

package core

// Unassigned is the partition label of a node that no cluster has claimed.
// Clustering packages use it for noise/master rows; Graph initializes every
// label to Unassigned at Flush.
const Unassigned = -1

// Edge is one undirected weighted edge reported by Graph.Edges.
// Src < Dst always holds in reported edges; symmetry (weight(i,j) ==
// weight(j,i)) is a backend invariant, so each pair appears exactly once.
type Edge struct {
	// Src is the smaller endpoint index.
	Src int

	// Dst is the larger endpoint index.
	Dst int

	// Weight is the edge weight (similarity or distance, builder-dependent).
	Weight float64
}

// Backend is the storage strategy behind a Graph: mutation-friendly while
// building, compact and query-friendly after Compact. Implementations are
// selected at construction time (sparse adjacency by default, dense matrix
// via WithDenseBackend) — runtime dispatch, no compile-time generics.
//
// Backends do not validate indices; Graph does. Duplicate AddEdge on the
// same unordered pair overwrites the stored weight (last write wins, under
// the deterministic emission order of the builders).
type Backend interface {
	// EnsureNodes grows storage so indices 0..n-1 are addressable.
	EnsureNodes(n int)

	// AddEdge records the undirected edge {u,v} with weight w.
	AddEdge(u, v int, w float64)

	// Weight reports the stored weight of {u,v} and whether the edge exists.
	Weight(u, v int) (float64, bool)

	// Neighbors returns the sorted adjacency of u. Valid after Compact only.
	Neighbors(u int) []int

	// Degree returns len(Neighbors(u)) without materializing the slice.
	Degree(u int) int

	// NEdges returns the number of stored undirected edges.
	NEdges() int

	// Edges returns all edges with Src < Dst, sorted by (Src, Dst).
	// Valid after Compact only.
	Edges() []Edge

	// Compact locks the backend into its query representation.
	// Idempotent; no edge may be added afterward.
	Compact()
}

// Option configures a Graph before any node is added.
type Option func(*Graph)

// WithBackend installs a custom Backend. The zero default is a fresh
// sparse backend.
func WithBackend(be Backend) Option {
	if be == nil {
		// Nil backend is a programmer error; fail loudly at construction.
		panic("core: WithBackend(nil)")
	}

	return func(g *Graph) { g.be = be }
}

// WithDenseBackend selects the gonum-backed dense adjacency backend with an
// initial capacity hint of n nodes (n ≥ 0; the backend still grows on demand).
func WithDenseBackend(n int) Option {
	if n < 0 {
		panic("core: WithDenseBackend: negative capacity hint")
	}

	return func(g *Graph) { g.be = NewDenseBackend(n) }
}

// WithDummyNodes pads serialized output with k isolated trailing nodes.
// Dummy nodes never participate in clustering or queries; they exist only in
// the adjacency-list file format for external tooling alignment.
func WithDummyNodes(k int) Option {
	if k < 0 {
		panic("core: WithDummyNodes: negative count")
	}

	return func(g *Graph) { g.dummy = k }
}

// Graph is the mutable-then-locked graph container described in doc.go.
// Not safe for concurrent use: one detection sweep owns one Graph.
type Graph struct {
	be      Backend   // storage strategy
	weights []int     // node weights, index-aligned
	part    []int     // partition labels, allocated at Flush
	sorted  []float64 // ascending edge weights, cached at Flush
	dummy   int       // serialized-only padding nodes
	flushed bool      // lifecycle latch
}

// NewGraph creates an empty Graph. Default backend: sparse adjacency.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{be: NewSparseBackend()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
