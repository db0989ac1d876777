package dbscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/dbscan"
)

// buildDenseClique returns a graph of two 4-cliques at inner distance 0.1
// joined by a single 0.9 bridge, plus one isolated row (node 8).
func buildDenseClique(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		require.NoError(t, g.AddNode(i, 1))
	}
	clique := func(nodes []int) {
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				require.NoError(t, g.AddEdge(nodes[i], nodes[j], 0.1))
			}
		}
	}
	clique([]int{0, 1, 2, 3})
	clique([]int{4, 5, 6, 7})
	require.NoError(t, g.AddEdge(3, 4, 0.9))
	require.NoError(t, g.Flush())

	return g
}

func TestCluster_TwoCliques(t *testing.T) {
	g := buildDenseClique(t)

	res, err := dbscan.Cluster(g, 0.2) // bridge too long, cliques dense enough
	require.NoError(t, err)
	assert.Equal(t, 2, res.NBlocks)
	assert.Equal(t, 1, res.NonClustered) // the isolated row
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1, core.Unassigned}, res.Partition)

	// Labels are written back into the graph.
	part, err := g.Partition()
	require.NoError(t, err)
	assert.Equal(t, res.Partition, part)
}

func TestCluster_BridgeWithinEps(t *testing.T) {
	g := buildDenseClique(t)

	// eps admits the bridge: both cliques merge through border absorption.
	res, err := dbscan.Cluster(g, 0.9)
	require.NoError(t, err)
	assert.Equal(t, 1, res.NBlocks)
	assert.Equal(t, 1, res.NonClustered)
}

func TestCluster_MinPtsTooHighAllNoise(t *testing.T) {
	g := buildDenseClique(t)

	res, err := dbscan.Cluster(g, 0.2, dbscan.WithMinPts(6))
	require.NoError(t, err)
	assert.Zero(t, res.NBlocks)
	assert.Equal(t, 9, res.NonClustered)
}

func TestCluster_MinPtsOneEveryRowCore(t *testing.T) {
	g := buildDenseClique(t)

	res, err := dbscan.Cluster(g, 0.2, dbscan.WithMinPts(1))
	require.NoError(t, err)
	// Even the isolated row forms its own (singleton) cluster.
	assert.Equal(t, 3, res.NBlocks)
	assert.Zero(t, res.NonClustered)
}

// Determinism: two runs over the same graph agree label for label.
func TestCluster_Deterministic(t *testing.T) {
	g1 := buildDenseClique(t)
	g2 := buildDenseClique(t)

	r1, err := dbscan.Cluster(g1, 0.2)
	require.NoError(t, err)
	r2, err := dbscan.Cluster(g2, 0.2)
	require.NoError(t, err)
	assert.Equal(t, r1.Partition, r2.Partition)
}

func TestCluster_Validation(t *testing.T) {
	_, err := dbscan.Cluster(nil, 0.5)
	assert.ErrorIs(t, err, dbscan.ErrNilGraph)

	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, 1))
	_, err = dbscan.Cluster(g, 0.5)
	assert.ErrorIs(t, err, dbscan.ErrNotFlushed)

	require.NoError(t, g.Flush())
	_, err = dbscan.Cluster(g, -1)
	assert.ErrorIs(t, err, dbscan.ErrBadEps)
	_, err = dbscan.Cluster(g, 0.5, dbscan.WithMinPts(0))
	assert.ErrorIs(t, err, dbscan.ErrBadMinPts)
}
