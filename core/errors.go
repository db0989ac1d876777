// SPDX-License-Identifier: MIT

// Package core: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ...)); callers branch with errors.Is. Panics are
// reserved for programmer errors in option constructors.

package core

import "errors"

var (
	// ErrInvalidIndex indicates a node index outside 0..NNodes()-1 (or a
	// negative index during construction). Inside correct builder logic this
	// is unreachable; treat it as an assertion failure, not a user error.
	ErrInvalidIndex = errors.New("core: node index out of range")

	// ErrFlushed indicates a topology mutation (AddNode/AddEdge) after Flush.
	// Flush is irreversible for topology.
	ErrFlushed = errors.New("core: graph already flushed")

	// ErrNotFlushed indicates a query (Neighbors/EdgeWeight/percentile/...)
	// before Flush compacted the backend.
	ErrNotFlushed = errors.New("core: graph not flushed")

	// ErrNoEdges indicates that an edge-weight percentile was requested on a
	// graph without edges.
	ErrNoEdges = errors.New("core: graph has no edges")

	// ErrBadQuantile indicates a quantile outside the half-open range (0,1].
	ErrBadQuantile = errors.New("core: quantile must be in (0,1]")

	// ErrBadPartition indicates a partition whose length does not match
	// NNodes(), or malformed partition content read from a file.
	ErrBadPartition = errors.New("core: bad partition")

	// ErrBadGraphFile indicates malformed adjacency-list file content.
	ErrBadGraphFile = errors.New("core: bad graph file")
)
