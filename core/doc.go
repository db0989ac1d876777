// SPDX-License-Identifier: MIT

// Package core provides the graph container every other dwdetect package is
// built on: an ordered set of integer nodes 0..n-1 with integer weights,
// undirected float64-weighted edges, and a per-node partition label written
// by the clustering packages.
//
// Lifecycle (strict, enforced):
//
//	construction phase  — AddNode / AddEdge only
//	Flush()             — compacts & locks the backend (idempotent, irreversible)
//	query phase         — Neighbors / EdgeWeight / Edges / percentiles
//	labeling            — SetPartition / SetPartitionAll (allowed after Flush only)
//
// Topology is append-only: once Flush has been called, AddNode and AddEdge
// return ErrFlushed; queries before Flush return ErrNotFlushed. This mirrors
// the build-then-analyze usage of the detection pipeline and lets backends
// trade mutation-friendly storage for compact query-friendly storage.
//
// Backends:
//
//	NewSparseBackend() — adjacency maps compacted into sorted neighbor slices;
//	                     the default, suited to the sparse incidence structure
//	                     of large models.
//	NewDenseBackend(n) — gonum mat.Dense adjacency; O(1) edge lookup, O(n)
//	                     neighbor scan; suited to small dense row graphs.
//
// Node weights come from a Weights table keyed by entity kind (binary,
// integer, implied-integer, continuous variables and constraints); they
// annotate node importance and never affect topology.
//
// The package also implements the plain-text adjacency-list exchange format
// (WriteTo / WritePartition / ReadPartition) used by external tooling.
package core
