// SPDX-License-Identifier: MIT

// Package detect orchestrates decomposition-candidate detection: it turns a
// constraint matrix into similarity graphs, sweeps a clustering parameter
// over each, and assembles the surviving partitions into decomposition
// candidates.
//
//	           ┌ BuildGraphs ──────── one graph per enabled measure
//	Init ──────┤
//	           ├ SweepParameters ──── inflate grid (flow) / eps list (density, tree)
//	           │
//	           ├ Assemble ─────────── partition → decomposition, degenerate discarded
//	           │
//	           └ Done ─────────────── timing + counts reported via the logger
//
// Three detectors share this shape and differ only in the clustering engine
// and the parameter sequence:
//
//	NewFlow    — stochastic-flow clustering over similarity weights,
//	             inflate factors 1.10, 1.15, … (20 steps).
//	NewDensity — density clustering over distance weights, eps values from
//	             EpsList seeded at the 10th weight percentile.
//	NewTree    — spanning-forest clustering, same eps sequence.
//
// Sweep heuristics: a run whose block count is 1, or whose
// (blocks, non-clustered) pair repeats the previous accepted run, emits no
// candidate; the sweep stops for a graph once the block count exceeds
// min(round(0.3·nConss), 100), and for the eps-driven detectors once
// everything merged into a single block with nothing left over. Identical
// partitions reached via different parameters are emitted once.
//
// A model whose in-scope rows share no variable at all yields zero
// candidates without error (there is nothing to cluster). Detection never
// aborts on a single degenerate parameter value; only model access or
// internal graph faults surface as errors.
//
// Detectors are parameterized by an immutable Config (optionally loaded
// from YAML) and are safe to reuse across models; each Detect call owns its
// graphs exclusively. Diagnostics go through a zap logger (no-op unless
// WithLogger is given).
package detect
