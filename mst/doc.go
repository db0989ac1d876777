// SPDX-License-Identifier: MIT

// Package mst clusters the rows of a distance-weighted constraint graph by
// building a minimum spanning forest and cutting it at a threshold.
//
// Algorithm (build-then-cut):
//
//  1. Sort all edges by ascending weight (stable, so equal weights keep the
//     deterministic (Src, Dst) order of core.Graph.Edges).
//  2. Kruskal with a disjoint-set union (path compression + union by rank)
//     grows the minimum spanning forest.
//  3. Every forest edge heavier than eps is removed; the connected
//     components of the residue are the clusters.
//  4. Rows left in singleton components become non-clustered (label
//     core.Unassigned) and are master-bound downstream.
//
// Monotonicity: a pair of rows merged at some eps stays merged at any
// larger eps — the forest is independent of eps and cutting keeps a
// superset of edges. The orchestration layer relies on this to stop a sweep
// once everything collapses into one block.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(V + E).
package mst
