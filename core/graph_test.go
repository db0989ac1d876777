package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdetect/core"
)

// buildTriangle constructs the weighted triangle 0–1 (0.1), 1–2 (0.5),
// 0–2 (0.9) on the given backend options and flushes it.
func buildTriangle(t *testing.T, opts ...core.Option) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddNode(i, 1))
	}
	require.NoError(t, g.AddEdge(0, 1, 0.1))
	require.NoError(t, g.AddEdge(1, 2, 0.5))
	require.NoError(t, g.AddEdge(0, 2, 0.9))
	require.NoError(t, g.Flush())

	return g
}

// backends runs the same subtest against both storage strategies, so every
// contract below is checked for sparse and dense alike.
func backends(t *testing.T, name string, fn func(t *testing.T, opts ...core.Option)) {
	t.Helper()
	t.Run(name+"/sparse", func(t *testing.T) { fn(t) })
	t.Run(name+"/dense", func(t *testing.T) { fn(t, core.WithDenseBackend(4)) })
}

func TestGraph_LifecycleGuards(t *testing.T) {
	backends(t, "guards", func(t *testing.T, opts ...core.Option) {
		g := core.NewGraph(opts...)
		require.NoError(t, g.AddNode(0, 1))
		require.NoError(t, g.AddNode(1, 1))

		// Queries before Flush must fail with ErrNotFlushed.
		_, err := g.Neighbors(0)
		assert.ErrorIs(t, err, core.ErrNotFlushed)
		_, err = g.EdgeWeight(0, 1)
		assert.ErrorIs(t, err, core.ErrNotFlushed)
		_, err = g.EdgeWeightPercentile(0.5)
		assert.ErrorIs(t, err, core.ErrNotFlushed)
		assert.ErrorIs(t, g.SetPartition(0, 0), core.ErrNotFlushed)

		require.NoError(t, g.Flush())
		require.NoError(t, g.Flush()) // idempotent

		// Mutations after Flush must fail with ErrFlushed.
		assert.ErrorIs(t, g.AddNode(2, 1), core.ErrFlushed)
		assert.ErrorIs(t, g.AddEdge(0, 1, 1.0), core.ErrFlushed)
	})
}

func TestGraph_InvalidIndex(t *testing.T) {
	backends(t, "index", func(t *testing.T, opts ...core.Option) {
		g := core.NewGraph(opts...)
		require.NoError(t, g.AddNode(0, 1))

		assert.ErrorIs(t, g.AddNode(-1, 1), core.ErrInvalidIndex)
		assert.ErrorIs(t, g.AddEdge(0, 3, 1.0), core.ErrInvalidIndex)
		assert.ErrorIs(t, g.AddEdge(-1, 0, 1.0), core.ErrInvalidIndex)

		require.NoError(t, g.Flush())
		_, err := g.Neighbors(5)
		assert.ErrorIs(t, err, core.ErrInvalidIndex)
		assert.ErrorIs(t, g.SetPartition(5, 0), core.ErrInvalidIndex)
	})
}

func TestGraph_TopologyAndSymmetry(t *testing.T) {
	backends(t, "topology", func(t *testing.T, opts ...core.Option) {
		g := buildTriangle(t, opts...)

		assert.Equal(t, 3, g.NNodes())
		assert.Equal(t, 3, g.NEdges())

		ns, err := g.Neighbors(1)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2}, ns)

		// Symmetric weight lookups.
		w12, err := g.EdgeWeight(1, 2)
		require.NoError(t, err)
		w21, err := g.EdgeWeight(2, 1)
		require.NoError(t, err)
		assert.Equal(t, w12, w21)
		assert.InDelta(t, 0.5, w12, 1e-12)

		// Absent edge reports weight 0 without error.
		g2 := core.NewGraph(opts...)
		require.NoError(t, g2.AddNode(1, 1))
		require.NoError(t, g2.Flush())
		w, err := g2.EdgeWeight(0, 1)
		require.NoError(t, err)
		assert.Zero(t, w)

		// Edges are reported once each with Src < Dst, (Src, Dst) ascending.
		edges, err := g.Edges()
		require.NoError(t, err)
		require.Len(t, edges, 3)
		assert.Equal(t, core.Edge{Src: 0, Dst: 1, Weight: 0.1}, edges[0])
		assert.Equal(t, core.Edge{Src: 0, Dst: 2, Weight: 0.9}, edges[1])
		assert.Equal(t, core.Edge{Src: 1, Dst: 2, Weight: 0.5}, edges[2])
	})
}

func TestGraph_DuplicateEdgeOverwrites(t *testing.T) {
	backends(t, "dup", func(t *testing.T, opts ...core.Option) {
		g := core.NewGraph(opts...)
		require.NoError(t, g.AddNode(0, 1))
		require.NoError(t, g.AddNode(1, 1))
		require.NoError(t, g.AddEdge(0, 1, 0.3))
		require.NoError(t, g.AddEdge(1, 0, 0.7)) // same unordered pair
		require.NoError(t, g.Flush())

		assert.Equal(t, 1, g.NEdges())
		w, err := g.EdgeWeight(0, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0.7, w, 1e-12)
	})
}

func TestGraph_EdgeWeightPercentile(t *testing.T) {
	backends(t, "percentile", func(t *testing.T, opts ...core.Option) {
		g := buildTriangle(t, opts...)

		tests := []struct {
			q    float64
			want float64
		}{
			{q: 0.1, want: 0.1},  // nearest rank of 3 weights: first
			{q: 0.34, want: 0.5}, // second
			{q: 1.0, want: 0.9},  // maximum
		}
		for _, tc := range tests {
			got, err := g.EdgeWeightPercentile(tc.q)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12, "q=%v", tc.q)
		}

		_, err := g.EdgeWeightPercentile(0)
		assert.ErrorIs(t, err, core.ErrBadQuantile)
		_, err = g.EdgeWeightPercentile(1.5)
		assert.ErrorIs(t, err, core.ErrBadQuantile)

		empty := core.NewGraph(opts...)
		require.NoError(t, empty.AddNode(0, 1))
		require.NoError(t, empty.Flush())
		_, err = empty.EdgeWeightPercentile(0.5)
		assert.ErrorIs(t, err, core.ErrNoEdges)
	})
}

func TestGraph_Partition(t *testing.T) {
	g := buildTriangle(t)

	// All labels start Unassigned.
	part, err := g.Partition()
	require.NoError(t, err)
	assert.Equal(t, []int{core.Unassigned, core.Unassigned, core.Unassigned}, part)

	require.NoError(t, g.SetPartition(0, 2))
	require.NoError(t, g.SetPartitionAll([]int{0, 0, 1}))
	part, err = g.Partition()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1}, part)

	// Returned slice is a copy: mutating it must not leak into the graph.
	part[0] = 99
	again, err := g.Partition()
	require.NoError(t, err)
	assert.Equal(t, 0, again[0])

	assert.ErrorIs(t, g.SetPartitionAll([]int{1}), core.ErrBadPartition)
}

func TestWeights_Of(t *testing.T) {
	w := core.Weights{BinaryVar: 3, IntegerVar: 2, ImpliedIntVar: 2, ContinuousVar: 1, Constraint: 5}

	assert.Equal(t, 3, w.Of(core.KindBinaryVar))
	assert.Equal(t, 2, w.Of(core.KindIntegerVar))
	assert.Equal(t, 2, w.Of(core.KindImpliedIntVar))
	assert.Equal(t, 1, w.Of(core.KindContinuousVar))
	assert.Equal(t, 5, w.Of(core.KindConstraint))
	assert.Equal(t, 0, w.Of(core.EntityKind(42)))

	def := core.DefaultWeights()
	assert.Equal(t, 1, def.Of(core.KindConstraint))
}
