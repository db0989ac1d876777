// SPDX-License-Identifier: MIT

// Package mst: sentinel errors and the clustering result type.

package mst

import "errors"

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrNotFlushed indicates a graph still in its construction phase.
	ErrNotFlushed = errors.New("mst: graph not flushed")

	// ErrBadEps indicates a negative or non-finite cut threshold.
	ErrBadEps = errors.New("mst: eps must be finite and non-negative")
)

// Result is one clustering outcome over a graph's rows.
type Result struct {
	// Partition holds one label per node: 0..NBlocks-1, or core.Unassigned
	// for non-clustered rows. It is also written back into the graph.
	Partition []int

	// NBlocks is the number of clusters (labels in use).
	NBlocks int

	// NonClustered is the number of rows labeled core.Unassigned.
	NonClustered int
}
