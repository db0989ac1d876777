// SPDX-License-Identifier: MIT

package mcl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/mcl"
)

// buildTwoCommunities returns a similarity graph of two 4-cliques at inner
// weight 0.9 joined by a single weak 0.1 bridge, plus one isolated row
// (node 8). Flow should pool inside the cliques and starve the bridge.
func buildTwoCommunities(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		require.NoError(t, g.AddNode(i, 1))
	}
	clique := func(nodes []int) {
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				require.NoError(t, g.AddEdge(nodes[i], nodes[j], 0.9))
			}
		}
	}
	clique([]int{0, 1, 2, 3})
	clique([]int{4, 5, 6, 7})
	require.NoError(t, g.AddEdge(3, 4, 0.1))
	require.NoError(t, g.Flush())

	return g
}

func TestCluster_SplitsCommunities(t *testing.T) {
	g := buildTwoCommunities(t)

	res, err := mcl.Cluster(g, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.NBlocks)
	assert.Equal(t, 1, res.NonClustered) // the isolated row
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1, core.Unassigned}, res.Partition)
	assert.Greater(t, res.StoppedAfter, 0)
	assert.LessOrEqual(t, res.StoppedAfter, mcl.DefaultMaxIterations)

	// Labels are written back into the graph.
	part, err := g.Partition()
	require.NoError(t, err)
	assert.Equal(t, res.Partition, part)
}

func TestCluster_UniformCliqueStaysWhole(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddNode(i, 1))
	}
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			require.NoError(t, g.AddEdge(i, j, 0.8))
		}
	}
	require.NoError(t, g.Flush())

	res, err := mcl.Cluster(g, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.NBlocks)
	assert.Equal(t, 0, res.NonClustered)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, res.Partition)
}

// Re-running with the same inflate factor reproduces the same partition:
// the transition matrix is rebuilt from the graph, never from prior labels.
func TestCluster_Idempotent(t *testing.T) {
	g := buildTwoCommunities(t)

	first, err := mcl.Cluster(g, 2.0)
	require.NoError(t, err)
	second, err := mcl.Cluster(g, 2.0)
	require.NoError(t, err)
	assert.Equal(t, first.Partition, second.Partition)
	assert.Equal(t, first.NBlocks, second.NBlocks)
	assert.Equal(t, first.StoppedAfter, second.StoppedAfter)

	// A freshly built identical graph agrees as well.
	fresh := buildTwoCommunities(t)
	third, err := mcl.Cluster(fresh, 2.0)
	require.NoError(t, err)
	assert.Equal(t, first.Partition, third.Partition)
}

func TestCluster_IterationCap(t *testing.T) {
	g := buildTwoCommunities(t)

	res, err := mcl.Cluster(g, 2.0, mcl.WithMaxIterations(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.StoppedAfter)
}

func TestCluster_Validation(t *testing.T) {
	_, err := mcl.Cluster(nil, 2.0)
	assert.ErrorIs(t, err, mcl.ErrNilGraph)

	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, 1))
	_, err = mcl.Cluster(g, 2.0)
	assert.ErrorIs(t, err, mcl.ErrNotFlushed)

	require.NoError(t, g.Flush())
	for _, bad := range []float64{1.0, 0.5, -3} {
		_, err = mcl.Cluster(g, bad)
		assert.ErrorIs(t, err, mcl.ErrBadInflate, "inflate=%v", bad)
	}
}

func TestOptions_PanicOnBadValues(t *testing.T) {
	assert.Panics(t, func() { mcl.WithMaxIterations(0) })
	assert.Panics(t, func() { mcl.WithExpandPower(1) })
	assert.Panics(t, func() { mcl.WithPruneThreshold(1) })
	assert.Panics(t, func() { mcl.WithConvergenceTol(0) })
}
