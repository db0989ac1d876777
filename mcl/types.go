// SPDX-License-Identifier: MIT

package mcl

import "errors"

var (
	// ErrNilGraph is returned when Cluster receives a nil graph.
	ErrNilGraph = errors.New("mcl: nil graph")
	// ErrNotFlushed is returned when the graph has not been flushed yet.
	ErrNotFlushed = errors.New("mcl: graph not flushed")
	// ErrBadInflate is returned when the inflate factor is not > 1.
	ErrBadInflate = errors.New("mcl: inflate factor must be > 1")
)

// Defaults for the iteration loop; override per call via Options.
const (
	DefaultMaxIterations  = 25
	DefaultExpandPower    = 2
	DefaultPruneThreshold = 1e-4
	DefaultConvergenceTol = 1e-8
)

// Option adjusts one clustering parameter.
// Options panic on out-of-range values (programmer error, not data error).
type Option func(*options)

type options struct {
	maxIter int
	power   int
	prune   float64
	tol     float64
}

func defaultOptions() options {
	return options{
		maxIter: DefaultMaxIterations,
		power:   DefaultExpandPower,
		prune:   DefaultPruneThreshold,
		tol:     DefaultConvergenceTol,
	}
}

// WithMaxIterations caps the expand/inflate loop. n must be ≥ 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("mcl: WithMaxIterations requires n ≥ 1")
	}
	return func(o *options) { o.maxIter = n }
}

// WithExpandPower sets the matrix power used by the expansion step.
// p must be ≥ 2.
func WithExpandPower(p int) Option {
	if p < 2 {
		panic("mcl: WithExpandPower requires p ≥ 2")
	}
	return func(o *options) { o.power = p }
}

// WithPruneThreshold sets the negligibility cutoff; entries strictly below
// it are dropped after each inflation. t must be in [0, 1).
func WithPruneThreshold(t float64) Option {
	if t < 0 || t >= 1 {
		panic("mcl: WithPruneThreshold requires t in [0, 1)")
	}
	return func(o *options) { o.prune = t }
}

// WithConvergenceTol sets the max-entry-delta below which the iteration is
// considered converged. tol must be > 0.
func WithConvergenceTol(tol float64) Option {
	if tol <= 0 {
		panic("mcl: WithConvergenceTol requires tol > 0")
	}
	return func(o *options) { o.tol = tol }
}

// Result reports one clustering run.
type Result struct {
	// Partition holds one label per node: 0..NBlocks-1, or
	// core.Unassigned for nodes that converged alone.
	Partition []int
	// NBlocks is the number of clusters found.
	NBlocks int
	// NonClustered counts nodes left without a cluster.
	NonClustered int
	// StoppedAfter is the number of iterations actually run.
	StoppedAfter int
}
