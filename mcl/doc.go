// SPDX-License-Identifier: MIT

// Package mcl clusters the rows of a similarity-weighted constraint graph by
// simulating stochastic flow (Markov CLustering).
//
// The weighted adjacency (plus unit self-loops) is turned into a
// column-stochastic transition matrix which is then iterated:
//
//	expand  — raise the matrix to an integer power (default 2, one
//	          self-multiplication): flow spreads along longer walks.
//	inflate — raise every entry to the inflate exponent and re-normalize
//	          columns: strong flow strengthens, weak flow decays.
//	prune   — drop entries below a negligibility threshold and re-normalize,
//	          bounding fill-in.
//
// Iteration stops when the matrix stops changing (max entry delta below the
// convergence tolerance) or after the iteration cap (default 25); the
// result records how many iterations ran. Clusters are the weakly-connected
// groups of rows in the converged matrix's non-zero pattern; rows ending up
// alone stay non-clustered.
//
// A larger inflate factor yields more and smaller clusters — the
// orchestration layer sweeps it upward until the block count overshoots.
// Runs are deterministic: same graph and options ⇒ same partition, and the
// transition matrix is rebuilt from scratch each call, so re-running with
// the same factor is idempotent.
//
// Matrix work uses gonum/mat. Complexity: O(n³) per expand on the dense
// representation; pruning keeps constants low for the row counts detection
// sweeps see.
package mcl
