// SPDX-License-Identifier: MIT

// Package detect: the three detectors and their shared parameter sweep.

package detect

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/dwdetect/builder"
	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/dbscan"
	"github.com/katalvlaran/dwdetect/decomp"
	"github.com/katalvlaran/dwdetect/mcl"
	"github.com/katalvlaran/dwdetect/model"
	"github.com/katalvlaran/dwdetect/mst"
	"github.com/katalvlaran/dwdetect/simil"
)

// Detector finds decomposition candidates for a constraint matrix. Detect
// works on the full matrix, DetectPartial only on the open part of an
// in-progress decomposition. Zero candidates is a normal outcome for both.
type Detector interface {
	Name() string
	Detect(m model.Model) ([]*decomp.Decomposition, *Stats, error)
	DetectPartial(p *decomp.PartialDecomposition) ([]*decomp.PartialDecomposition, *Stats, error)
}

// Stats aggregates diagnostics of one Detect call. Timings are reported
// only; they never steer the sweep.
type Stats struct {
	// GraphTime is the total time spent building similarity graphs.
	GraphTime time.Duration
	// ClusterTime is the total time spent inside clustering runs.
	ClusterTime time.Duration
	// Candidates is the number of decompositions returned.
	Candidates int
	// Discarded counts partitions dropped for degenerate block structure.
	Discarded int
}

// runResult is the detector-independent outcome of one clustering run.
type runResult struct {
	partition    []int
	nBlocks      int
	nonClustered int
}

// detector carries the state machine shared by the three detectors; the
// clustering engine and parameter sequence are the only moving parts.
type detector struct {
	name      string
	cfg       Config
	log       *zap.Logger
	weights   core.Weights
	dense     bool
	wtype     simil.WeightType
	epsDriven bool
	run       func(g *core.Graph, param float64) (*runResult, error)
}

func newDetector(name string, cfg Config, wtype simil.WeightType, epsDriven bool, opts []Option) *detector {
	d := &detector{
		name:      name,
		cfg:       cfg,
		log:       zap.NewNop(),
		weights:   core.DefaultWeights(),
		wtype:     wtype,
		epsDriven: epsDriven,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// NewFlow returns the stochastic-flow detector: similarity-weighted row
// graphs swept over the fixed inflate grid.
func NewFlow(cfg Config, opts ...Option) Detector {
	d := newDetector("flow", cfg, simil.Similarity, false, opts)
	d.run = func(g *core.Graph, inflate float64) (*runResult, error) {
		res, err := mcl.Cluster(g, inflate)
		if err != nil {
			return nil, err
		}

		return &runResult{res.Partition, res.NBlocks, res.NonClustered}, nil
	}

	return d
}

// NewDensity returns the density detector: distance-weighted row graphs
// swept over the eps sequence.
func NewDensity(cfg Config, opts ...Option) Detector {
	d := newDetector("density", cfg, simil.Distance, true, opts)
	d.run = func(g *core.Graph, eps float64) (*runResult, error) {
		res, err := dbscan.Cluster(g, eps)
		if err != nil {
			return nil, err
		}

		return &runResult{res.Partition, res.NBlocks, res.NonClustered}, nil
	}

	return d
}

// NewTree returns the spanning-forest detector: distance-weighted row
// graphs swept over the eps sequence.
func NewTree(cfg Config, opts ...Option) Detector {
	d := newDetector("tree", cfg, simil.Distance, true, opts)
	d.run = func(g *core.Graph, eps float64) (*runResult, error) {
		res, err := mst.Cluster(g, eps)
		if err != nil {
			return nil, err
		}

		return &runResult{res.Partition, res.NBlocks, res.NonClustered}, nil
	}

	return d
}

func (d *detector) Name() string { return d.name }

// Detect runs the full-matrix pipeline: graphs per enabled measure,
// parameter sweep, partition → decomposition assembly.
func (d *detector) Detect(m model.Model) ([]*decomp.Decomposition, *Stats, error) {
	if m == nil {
		return nil, nil, ErrNilModel
	}
	if err := d.cfg.validate(); err != nil {
		return nil, nil, err
	}
	stats := &Stats{}
	parts, err := d.sweepAll(m, nil, stats)
	if err != nil {
		return nil, nil, err
	}

	out := make([]*decomp.Decomposition, 0, len(parts))
	for _, sp := range parts {
		if d.cfg.Postprocess {
			if moved, _ := decomp.PostProcess(m, sp.conss, sp.partition); moved > 0 {
				d.log.Debug("post-processing moved constraints to master",
					zap.String("detector", d.name), zap.Int("moved", moved))
			}
		}
		dec, err := decomp.FromPartition(m, sp.partition)
		if err != nil {
			if errors.Is(err, decomp.ErrEmptyBlock) {
				stats.Discarded++
				continue
			}

			return nil, nil, err
		}
		out = append(out, dec)
	}
	stats.Candidates = len(out)
	d.report(stats)

	return out, stats, nil
}

// DetectPartial clusters only the open constraints of p; every candidate is
// a new partial decomposition extending p (p itself is never mutated).
func (d *detector) DetectPartial(p *decomp.PartialDecomposition) ([]*decomp.PartialDecomposition, *Stats, error) {
	if p == nil {
		return nil, nil, ErrNilPartial
	}
	if err := d.cfg.validate(); err != nil {
		return nil, nil, err
	}
	stats := &Stats{}
	parts, err := d.sweepAll(p.Model(), p, stats)
	if err != nil {
		return nil, nil, err
	}

	out := make([]*decomp.PartialDecomposition, 0, len(parts))
	for _, sp := range parts {
		if d.cfg.Postprocess {
			decomp.PostProcess(p.Model(), sp.conss, sp.partition)
		}
		next, err := decomp.PartialFromPartition(p, sp.conss, sp.partition)
		if err != nil {
			if errors.Is(err, decomp.ErrEmptyBlock) {
				stats.Discarded++
				continue
			}

			return nil, nil, err
		}
		out = append(out, next)
	}
	stats.Candidates = len(out)
	d.report(stats)

	return out, stats, nil
}

// sweepPartition is one surviving clustering outcome: labels aligned with
// conss (nil conss = all constraints in index order).
type sweepPartition struct {
	conss     []int
	partition []int
}

// sweepAll builds one graph per enabled measure and sweeps each; identical
// partitions across measures and parameters are kept once.
func (d *detector) sweepAll(m model.Model, p *decomp.PartialDecomposition, stats *Stats) ([]sweepPartition, error) {
	if !builder.Completible(m, p) {
		d.log.Info("no connective pair in scope, nothing to cluster",
			zap.String("detector", d.name))

		return nil, nil
	}
	measures, err := d.cfg.measures()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var out []sweepPartition
	for _, ms := range measures {
		start := time.Now()
		g, layout, err := d.buildGraph(m, p, ms)
		stats.GraphTime += time.Since(start)
		if err != nil {
			return nil, err
		}

		params, err := d.params(g, ms)
		if err != nil {
			return nil, err
		}

		var conss []int
		if p != nil {
			conss = layout.Conss
		}
		parts, err := d.sweep(g, conss, len(layout.Conss), params, stats, seen)
		if err != nil {
			return nil, err
		}
		out = append(out, parts...)
	}

	return out, nil
}

func (d *detector) buildGraph(m model.Model, p *decomp.PartialDecomposition, ms simil.DistanceMeasure) (*core.Graph, *builder.Layout, error) {
	opts := []builder.Option{
		builder.WithMeasure(ms),
		builder.WithWeightType(d.wtype),
		builder.WithWeights(d.weights),
	}
	if d.dense {
		opts = append(opts, builder.WithDenseBackend())
	}
	if p == nil {
		return builder.RowSimilarity(m, opts...)
	}

	return builder.RowSimilarityPartial(p, opts...)
}

// params yields the sweep sequence: the fixed inflate grid for the flow
// detector, or the eps sequence seeded at the low weight percentile.
func (d *detector) params(g *core.Graph, ms simil.DistanceMeasure) ([]float64, error) {
	if !d.epsDriven {
		grid := make([]float64, maxInflateSteps)
		for i := range grid {
			grid[i] = inflateBase + inflateStep*float64(i)
		}

		return grid, nil
	}

	mid, err := g.EdgeWeightPercentile(epsPercentile)
	if err != nil {
		return nil, err
	}
	// Identical rows put zeros in the weight tail; keep the geometric
	// sequence definable.
	if mid <= 0 {
		mid = 1e-3
	}

	return EpsList(d.cfg.NIterations, mid, ms == simil.Intersection)
}

// sweep runs the clustering engine once per parameter value and filters the
// outcomes: trivial and stagnating runs are skipped, overshooting the block
// limit (or fully merging, for the eps-driven detectors) stops the sweep.
func (d *detector) sweep(g *core.Graph, conss []int, nConss int, params []float64, stats *Stats, seen map[string]bool) ([]sweepPartition, error) {
	limit := blocksCap
	if frac := int(math.Round(blocksFrac * float64(nConss))); frac < limit {
		limit = frac
	}

	var out []sweepPartition
	prevBlocks, prevNon := -1, -1
	for _, param := range params {
		start := time.Now()
		res, err := d.run(g, param)
		stats.ClusterTime += time.Since(start)
		if err != nil {
			return nil, err
		}

		if res.nBlocks > limit {
			d.log.Debug("sweep stop: block limit exceeded",
				zap.String("detector", d.name), zap.Float64("param", param),
				zap.Int("blocks", res.nBlocks), zap.Int("limit", limit))
			break
		}
		if d.epsDriven && res.nBlocks == 1 && res.nonClustered == 0 {
			// Fully merged; a larger eps can only merge further.
			break
		}
		if res.nBlocks <= 1 {
			continue
		}
		if res.nBlocks == prevBlocks && res.nonClustered == prevNon {
			continue // stagnation
		}
		prevBlocks, prevNon = res.nBlocks, res.nonClustered

		key := fingerprint(res.partition)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, sweepPartition{conss: conss, partition: res.partition})
	}

	return out, nil
}

func (d *detector) report(stats *Stats) {
	d.log.Info("detection done",
		zap.String("detector", d.name),
		zap.Int("candidates", stats.Candidates),
		zap.Int("discarded", stats.Discarded),
		zap.Duration("graph_time", stats.GraphTime),
		zap.Duration("cluster_time", stats.ClusterTime))
}

// fingerprint serializes a partition into a dedup key.
func fingerprint(part []int) string {
	var b strings.Builder
	b.Grow(len(part) * 3)
	for _, l := range part {
		b.WriteString(strconv.Itoa(l))
		b.WriteByte(',')
	}

	return b.String()
}
