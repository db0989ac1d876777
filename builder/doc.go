// SPDX-License-Identifier: MIT

// Package builder transforms the constraint-variable incidence matrix of a
// host model into the graph views the clustering layer consumes.
//
// Builders (each with a full-matrix and a partial-matrix variant):
//
//	Row           — nodes are constraints; one deduplicated edge per pair of
//	                constraints sharing ≥ 1 relevant variable.
//	RowSimilarity — Row topology with edge weights from the simil package
//	                (overlap triple (a,b,c) → measure value).
//	Column        — nodes are variables; edges join variables co-occurring
//	                in a constraint.
//	Bipartite     — nodes are constraints ∪ variables; one edge per nonzero.
//	Hyperrow      — variable member nodes plus one hyperedge node per
//	                constraint, star-connected to its variables.
//	Hypercol      — constraint member nodes plus one hyperedge node per
//	                variable.
//	Hyperrowcol   — one node per nonzero plus hyperedge nodes for every
//	                constraint and every variable.
//
// Partial variants restrict construction to the open constraints/variables
// of an in-progress decomposition, remapping global indices into a dense
// local space; the returned Layout records the local→global maps.
//
// Variables irrelevant to the active model view (fixed out) are always
// skipped. A constraint without relevant variables stays an isolated node in
// the row builders (it will fall to the master bucket) and contributes no
// hyperedge in the hypergraph builders, while still counting toward the
// constraint total. All builders return flushed graphs, ready for clustering
// and percentile queries.
package builder
