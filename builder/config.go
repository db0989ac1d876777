// SPDX-License-Identifier: MIT

// Package builder: functional configuration shared by all builders.
// Options resolve into an immutable config per call — no global state, no
// implicit randomness; same model + options ⇒ identical graph.

package builder

import (
	"errors"

	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/decomp"
	"github.com/katalvlaran/dwdetect/model"
	"github.com/katalvlaran/dwdetect/simil"
)

// Sentinel errors.
var (
	// ErrNilModel indicates a nil host model.
	ErrNilModel = errors.New("builder: model is nil")

	// ErrNilPartial indicates a nil partial decomposition where one is
	// required.
	ErrNilPartial = errors.New("builder: partial decomposition is nil")
)

// Defaults — single source of truth for zero-option behavior.
const (
	// DefaultMeasure weights RowSimilarity edges when no measure is given.
	DefaultMeasure = simil.Jaccard

	// DefaultWeightType is the orientation density/tree clustering expects.
	DefaultWeightType = simil.Distance
)

// Option configures one builder invocation.
type Option func(*config)

type config struct {
	weights core.Weights
	measure simil.DistanceMeasure
	wtype   simil.WeightType
	dense   bool
}

// WithWeights installs a node-weight table (default core.DefaultWeights).
func WithWeights(w core.Weights) Option {
	return func(c *config) { c.weights = w }
}

// WithMeasure selects the similarity measure of RowSimilarity builders.
func WithMeasure(m simil.DistanceMeasure) Option {
	return func(c *config) { c.measure = m }
}

// WithWeightType selects the edge-weight orientation of RowSimilarity
// builders (simil.Similarity for flow clustering, simil.Distance for
// density/tree clustering).
func WithWeightType(wt simil.WeightType) Option {
	return func(c *config) { c.wtype = wt }
}

// WithDenseBackend builds the graph on the dense adjacency backend.
func WithDenseBackend() Option {
	return func(c *config) { c.dense = true }
}

// newConfig resolves options over the documented defaults.
func newConfig(opts ...Option) config {
	c := config{
		weights: core.DefaultWeights(),
		measure: DefaultMeasure,
		wtype:   DefaultWeightType,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// newGraph allocates the configured backend pre-sized for nHint nodes.
func (c config) newGraph(nHint int) *core.Graph {
	if c.dense {
		return core.NewGraph(core.WithDenseBackend(nHint))
	}

	return core.NewGraph()
}

// simCalculate applies the configured measure/orientation to one overlap
// triple (rows are always distinct here, so itself is false).
func simCalculate(a, b, c int, cfg config) (float64, error) {
	return simil.Calculate(a, b, c, cfg.measure, cfg.wtype, false)
}

// varKind maps a model variable kind onto the core entity-kind axis.
func varKind(k model.VarKind) core.EntityKind {
	switch k {
	case model.Binary:
		return core.KindBinaryVar
	case model.Integer:
		return core.KindIntegerVar
	case model.ImpliedInt:
		return core.KindImpliedIntVar
	default:
		return core.KindContinuousVar
	}
}

// Layout records how model entities map onto the node index space of a
// built graph. Node order is always: member/nonzero nodes first, then
// hyperedge nodes (builder-specific; see each builder's doc).
type Layout struct {
	// Conss holds the global constraint index of every constraint-role node,
	// in node order. ConsBase is the node id of Conss[0].
	Conss    []int
	ConsBase int

	// Vars holds the global variable index of every variable-role node,
	// in node order. VarBase is the node id of Vars[0].
	Vars    []int
	VarBase int

	// Nonzeros holds the (cons, var) incidence of every nonzero node
	// (Hyperrowcol only); nonzero nodes start at node id 0.
	Nonzeros []Incidence
}

// Incidence is one nonzero cell of the incidence matrix.
type Incidence struct {
	Cons int
	Var  int
}

// view is the resolved iteration scope: which constraints and variables
// participate, with dense local indices.
type view struct {
	m        model.Model
	conss    []int       // local cons → global cons
	varIdx   map[int]int // global var → local var
	vars     []int       // local var → global var
	consVars [][]int     // per local cons: local var indices, ascending
}

// fullView scopes every constraint and every relevant variable of m.
func fullView(m model.Model) *view {
	v := &view{m: m, varIdx: make(map[int]int)}
	v.conss = make([]int, m.NConss())
	for c := range v.conss {
		v.conss[c] = c
	}
	v.index()

	return v
}

// partialView scopes the open constraints and open relevant variables of p.
func partialView(p *decomp.PartialDecomposition) *view {
	v := &view{m: p.Model(), conss: p.OpenConss(), varIdx: make(map[int]int)}
	v.indexOpen(p.OpenVars())

	return v
}

// index assigns dense local variable ids in ascending global order and
// materializes the per-constraint local rows.
func (v *view) index() {
	for _, gc := range v.conss {
		for _, gv := range v.m.ConsVars(gc) {
			if !v.m.Relevant(gv) {
				continue
			}
			if _, ok := v.varIdx[gv]; !ok {
				v.varIdx[gv] = -1 // mark; ids assigned after the scan
			}
		}
	}
	v.assignVarIDs()
	v.buildRows(nil)
}

// indexOpen restricts variables to the given open set.
func (v *view) indexOpen(openVars []int) {
	allowed := make(map[int]bool, len(openVars))
	for _, gv := range openVars {
		allowed[gv] = true
	}
	for _, gc := range v.conss {
		for _, gv := range v.m.ConsVars(gc) {
			if allowed[gv] && v.m.Relevant(gv) {
				if _, ok := v.varIdx[gv]; !ok {
					v.varIdx[gv] = -1
				}
			}
		}
	}
	v.assignVarIDs()
	v.buildRows(allowed)
}

// assignVarIDs numbers marked variables in ascending global order.
func (v *view) assignVarIDs() {
	v.vars = v.vars[:0]
	for gv := 0; gv < v.m.NVars(); gv++ {
		if _, ok := v.varIdx[gv]; ok {
			v.varIdx[gv] = len(v.vars)
			v.vars = append(v.vars, gv)
		}
	}
}

// buildRows materializes local variable rows per local constraint; allowed
// of nil admits every indexed variable.
func (v *view) buildRows(allowed map[int]bool) {
	v.consVars = make([][]int, len(v.conss))
	for lc, gc := range v.conss {
		var row []int
		for _, gv := range v.m.ConsVars(gc) {
			if !v.m.Relevant(gv) {
				continue
			}
			if allowed != nil && !allowed[gv] {
				continue
			}
			row = append(row, v.varIdx[gv])
		}
		v.consVars[lc] = row
	}
}
