package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdetect/builder"
	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/decomp"
	"github.com/katalvlaran/dwdetect/model"
	"github.com/katalvlaran/dwdetect/simil"
)

// triadModel is the reference scenario: c0: x0+x2, c1: x1, c2: x0+x1.
// Expected row edges: (c0,c2) via x0 and (c1,c2) via x1; no (c0,c1).
func triadModel(t *testing.T) *model.Linear {
	t.Helper()
	m := model.NewLinear()
	x0 := m.AddVar(model.Continuous)
	x1 := m.AddVar(model.Continuous)
	x2 := m.AddVar(model.Continuous)
	mustCons(t, m, x0, x2)
	mustCons(t, m, x1)
	mustCons(t, m, x0, x1)

	return m
}

func mustCons(t *testing.T, m *model.Linear, vars ...int) int {
	t.Helper()
	c, err := m.AddCons(vars...)
	require.NoError(t, err)

	return c
}

func edgeWeight(t *testing.T, g *core.Graph, u, v int) float64 {
	t.Helper()
	w, err := g.EdgeWeight(u, v)
	require.NoError(t, err)

	return w
}

func TestRow_SharedVariableEdges(t *testing.T) {
	m := triadModel(t)

	g, lay, err := builder.Row(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, lay.Conss)
	assert.Equal(t, 3, g.NNodes())
	assert.Equal(t, 2, g.NEdges())

	assert.Equal(t, 1.0, edgeWeight(t, g, 0, 2)) // shared x0, default weight 1
	assert.Equal(t, 1.0, edgeWeight(t, g, 1, 2)) // shared x1
	assert.Zero(t, edgeWeight(t, g, 0, 1))       // disjoint rows: no edge
}

func TestRow_EdgeWeightFromWeightsTable(t *testing.T) {
	m := model.NewLinear()
	b := m.AddVar(model.Binary)
	c := m.AddVar(model.Continuous)
	mustCons(t, m, b, c)
	mustCons(t, m, b, c)

	w := core.DefaultWeights()
	w.BinaryVar = 5

	g, _, err := builder.Row(m, builder.WithWeights(w))
	require.NoError(t, err)
	// First shared variable (the binary one) decides the edge weight.
	assert.Equal(t, 5.0, edgeWeight(t, g, 0, 1))
	// Constraint nodes carry the constraint weight.
	nw, err := g.NodeWeight(0)
	require.NoError(t, err)
	assert.Equal(t, 1, nw)
}

func TestRow_FixedVariablesSkipped(t *testing.T) {
	m := triadModel(t)
	require.NoError(t, m.Fix(0)) // x0 leaves the active view

	g, _, err := builder.Row(m)
	require.NoError(t, err)
	// Only (c1,c2) via x1 survives; c0 keeps its node but is isolated.
	assert.Equal(t, 3, g.NNodes())
	assert.Equal(t, 1, g.NEdges())
	assert.Zero(t, edgeWeight(t, g, 0, 2))
}

func TestRowSimilarity_JaccardDistance(t *testing.T) {
	m := model.NewLinear()
	x0 := m.AddVar(model.Continuous)
	x1 := m.AddVar(model.Continuous)
	x2 := m.AddVar(model.Continuous)
	mustCons(t, m, x0, x1)     // row sizes 2
	mustCons(t, m, x1, x2)     // shares x1 with c0
	mustCons(t, m, x0, x1, x2) // shares everything

	g, _, err := builder.RowSimilarity(m,
		builder.WithMeasure(simil.Jaccard), builder.WithWeightType(simil.Distance))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NEdges())

	// (c0,c1): a=1,b=1,c=1 → jaccard 1/3 → distance 2/3.
	assert.InDelta(t, 2.0/3.0, edgeWeight(t, g, 0, 1), 1e-12)
	// (c0,c2): a=2,b=1,c=0 → jaccard 2/3 → distance 1/3.
	assert.InDelta(t, 1.0/3.0, edgeWeight(t, g, 0, 2), 1e-12)
}

// The §8 end-to-end property: Intersection/Similarity over two rows with
// disjoint variables yields zero weight between them.
func TestRowSimilarity_IntersectionDisjoint(t *testing.T) {
	m := model.NewLinear()
	x0 := m.AddVar(model.Continuous)
	x1 := m.AddVar(model.Continuous)
	mustCons(t, m, x0)
	mustCons(t, m, x1)

	g, _, err := builder.RowSimilarity(m,
		builder.WithMeasure(simil.Intersection), builder.WithWeightType(simil.Similarity))
	require.NoError(t, err)
	assert.Zero(t, g.NEdges())
	assert.Zero(t, edgeWeight(t, g, 0, 1))
}

func TestRowSimilarityPartial_Remapping(t *testing.T) {
	m := triadModel(t)
	p := decomp.NewPartial(m)
	require.NoError(t, p.AssignCons(1, decomp.MasterBlock)) // close c1

	g, lay, err := builder.RowSimilarityPartial(p, builder.WithMeasure(simil.Jaccard))
	require.NoError(t, err)

	// Open scope: c0 and c2 share x0 (x1 still open via c2's row).
	assert.Equal(t, []int{0, 2}, lay.Conss)
	assert.Equal(t, 2, g.NNodes())
	assert.Equal(t, 1, g.NEdges())
	// a=1 (x0), c0 row {x0,x2}, c2 row {x0,x1} → jaccard 1/3, distance 2/3.
	assert.InDelta(t, 2.0/3.0, edgeWeight(t, g, 0, 1), 1e-12)
}

func TestColumn_Basic(t *testing.T) {
	m := triadModel(t)

	g, lay, err := builder.Column(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, lay.Vars)
	// Pairs: (x0,x2) via c0, (x0,x1) via c2.
	assert.Equal(t, 2, g.NEdges())
	assert.Equal(t, 1.0, edgeWeight(t, g, 0, 2))
	assert.Equal(t, 1.0, edgeWeight(t, g, 0, 1))
	assert.Zero(t, edgeWeight(t, g, 1, 2))
}

func TestBipartite_Basic(t *testing.T) {
	m := triadModel(t)

	g, lay, err := builder.Bipartite(m)
	require.NoError(t, err)
	assert.Equal(t, 3, lay.VarBase)
	assert.Equal(t, 6, g.NNodes())
	assert.Equal(t, 5, g.NEdges()) // one per nonzero

	// c0 connects to x0 and x2 only.
	ns, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5}, ns)
}

func TestHyperrow_Basic(t *testing.T) {
	m := triadModel(t)

	g, lay, err := builder.Hyperrow(m)
	require.NoError(t, err)
	// 3 variable members + 3 non-empty constraint hyperedges.
	assert.Equal(t, 6, g.NNodes())
	assert.Equal(t, 3, lay.ConsBase)
	assert.Equal(t, []int{0, 1, 2}, lay.Conss)
	assert.Equal(t, 5, g.NEdges())

	// Hyperedge of c0 (node 3) spans x0 and x2.
	ns, err := g.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, ns)
}

func TestHyperrow_EmptyConstraintSkipped(t *testing.T) {
	m := triadModel(t)
	require.NoError(t, m.Fix(1)) // c1 = {x1} becomes empty

	g, lay, err := builder.Hyperrow(m)
	require.NoError(t, err)
	// Members: x0, x2; hyperedges: c0 and c2 (c1 spans nothing).
	assert.Equal(t, []int{0, 2}, lay.Vars)
	assert.Equal(t, []int{0, 2}, lay.Conss)
	assert.Equal(t, 4, g.NNodes())
}

func TestHypercol_Basic(t *testing.T) {
	m := triadModel(t)

	g, lay, err := builder.Hypercol(m)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NNodes())
	assert.Equal(t, 3, lay.VarBase)

	// Hyperedge of x0 (node 3) spans c0 and c2.
	ns, err := g.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, ns)
}

func TestHyperrowcol_Basic(t *testing.T) {
	m := triadModel(t)

	g, lay, err := builder.Hyperrowcol(m)
	require.NoError(t, err)
	// 5 nonzeros + 3 cons hyperedges + 3 var hyperedges.
	require.Len(t, lay.Nonzeros, 5)
	assert.Equal(t, 11, g.NNodes())
	assert.Equal(t, 5, lay.ConsBase)
	assert.Equal(t, 8, lay.VarBase)
	// Each nonzero links to exactly one row and one column hyperedge.
	assert.Equal(t, 10, g.NEdges())

	assert.Equal(t, builder.Incidence{Cons: 0, Var: 0}, lay.Nonzeros[0])
	assert.Equal(t, builder.Incidence{Cons: 0, Var: 2}, lay.Nonzeros[1])
}

func TestCompletible(t *testing.T) {
	assert.True(t, builder.Completible(triadModel(t), nil))

	// Disjoint singleton rows: no connective pair.
	m := model.NewLinear()
	x0 := m.AddVar(model.Continuous)
	x1 := m.AddVar(model.Continuous)
	mustCons(t, m, x0)
	mustCons(t, m, x1)
	assert.False(t, builder.Completible(m, nil))

	// Partial scope: closing c2 of the triad model severs c0 from c1.
	sm := triadModel(t)
	p := decomp.NewPartial(sm)
	require.NoError(t, p.AssignCons(2, decomp.MasterBlock))
	assert.False(t, builder.Completible(sm, p))

	assert.False(t, builder.Completible(nil, nil))
}

func TestRow_NilModel(t *testing.T) {
	_, _, err := builder.Row(nil)
	assert.ErrorIs(t, err, builder.ErrNilModel)
	_, _, err = builder.RowPartial(nil)
	assert.ErrorIs(t, err, builder.ErrNilPartial)
}
