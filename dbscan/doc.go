// SPDX-License-Identifier: MIT

// Package dbscan clusters the rows of a distance-weighted constraint graph
// by density: a row whose eps-neighborhood (itself plus every neighbor at
// edge distance ≤ eps) holds at least minPts rows is a core point; clusters
// grow by breadth-first absorption of density-reachable rows.
//
// Rows reachable from no core point are noise and stay non-clustered
// (label core.Unassigned) — the master bucket claims them downstream.
// Border rows (in a core point's neighborhood but not core themselves) join
// the first cluster that reaches them, scanning rows in ascending index
// order, so results are deterministic.
//
// eps is the single tunable parameter; minPts defaults to 4. Pairs without
// an edge are at infinite distance — the builders only materialize edges
// between variable-sharing rows.
//
// Complexity: O(V + Σ deg) per run; each row enters the expansion queue at
// most once.
package dbscan
