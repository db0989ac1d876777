// Package dwdetect detects candidate block decompositions of linear and
// mixed-integer optimization models for a Dantzig–Wolfe (column generation)
// reformulation.
//
// 🚀 What is dwdetect?
//
//	A deterministic, embeddable detection engine that brings together:
//		• Graph storage: sparse & dense backends, node weights, partitions
//		• Matrix-to-graph builders: row, column, bipartite & hypergraph views
//		• Similarity layer: Johnson, Intersection, Jaccard, Cosine, Simpson
//		• Clustering: stochastic flow (MCL), density (DBSCAN), spanning tree (MST)
//		• Assembly: partition → validated decomposition candidates
//		• Orchestration: parameter sweeps with skip/stop heuristics & dedup
//
// ✨ Why choose dwdetect?
//
//   - Deterministic – same model & options ⇒ identical candidate list
//   - Rock-solid guarantees – sentinel errors, in-code docs, invariant checks
//   - Pure Go – no cgo, no solver linkage; the host model is an interface
//   - Extensible – pluggable graph backends, measures and detectors
//
// Under the hood, everything is organized under flat subpackages:
//
//	core/    — graph container (backends, weights, flush lifecycle, file I/O)
//	model/   — host-model collaborator interfaces + in-memory Linear model
//	builder/ — incidence-matrix → graph builders (full and partial variants)
//	simil/   — row-overlap similarity / distance measures
//	mcl/     — stochastic-flow clustering (expand / inflate / prune)
//	dbscan/  — density clustering (eps-neighborhoods, core points)
//	mst/     — spanning-tree clustering (Kruskal forest, cut by eps)
//	decomp/  — decompositions, partial decompositions, collision post-processing
//	detect/  — detectors, parameter sweeps, eps sequences, diagnostics
//
// Data flow, leaves first:
//
//	model ──builder──▶ core.Graph ──simil──▶ weighted edges
//	      ──mcl/dbscan/mst──▶ partition ──decomp──▶ candidates
//	      ──detect──▶ sweep over measures × parameters ──▶ []Decomposition
//
// The engine is a heuristic generator of candidates: scoring and selection of
// a final decomposition belong to the host reformulation layer.
//
//	go get github.com/katalvlaran/dwdetect
package dwdetect
