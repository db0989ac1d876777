package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdetect/core"
	"github.com/katalvlaran/dwdetect/mst"
)

// buildTwoIslands constructs six rows in two tight groups joined by one long
// bridge edge:
//
//	0–1 (0.1), 1–2 (0.2) | 3–4 (0.1), 4–5 (0.2) | 2–3 (0.8 bridge)
func buildTwoIslands(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		require.NoError(t, g.AddNode(i, 1))
	}
	require.NoError(t, g.AddEdge(0, 1, 0.1))
	require.NoError(t, g.AddEdge(1, 2, 0.2))
	require.NoError(t, g.AddEdge(3, 4, 0.1))
	require.NoError(t, g.AddEdge(4, 5, 0.2))
	require.NoError(t, g.AddEdge(2, 3, 0.8))
	require.NoError(t, g.Flush())

	return g
}

func TestCluster_CutsBridge(t *testing.T) {
	g := buildTwoIslands(t)

	res, err := mst.Cluster(g, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2, res.NBlocks)
	assert.Zero(t, res.NonClustered)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, res.Partition)

	// Labels are also written back into the graph.
	part, err := g.Partition()
	require.NoError(t, err)
	assert.Equal(t, res.Partition, part)
}

func TestCluster_LargeEpsMergesAll(t *testing.T) {
	g := buildTwoIslands(t)

	res, err := mst.Cluster(g, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.NBlocks)
	assert.Zero(t, res.NonClustered)
}

func TestCluster_TinyEpsAllSingletons(t *testing.T) {
	g := buildTwoIslands(t)

	res, err := mst.Cluster(g, 0.05)
	require.NoError(t, err)
	assert.Zero(t, res.NBlocks)
	assert.Equal(t, 6, res.NonClustered)
}

// Monotonicity: rows merged at a smaller eps stay merged at any larger eps.
func TestCluster_MonotoneInEps(t *testing.T) {
	g := buildTwoIslands(t)

	epses := []float64{0.05, 0.1, 0.2, 0.5, 0.8, 1.0}
	var prev *mst.Result
	for _, eps := range epses {
		res, err := mst.Cluster(g, eps)
		require.NoError(t, err)
		if prev != nil {
			for i := 0; i < 6; i++ {
				for j := i + 1; j < 6; j++ {
					together := prev.Partition[i] >= 0 && prev.Partition[i] == prev.Partition[j]
					if together {
						assert.Equal(t, res.Partition[i], res.Partition[j],
							"eps=%v split pair (%d,%d) merged earlier", eps, i, j)
					}
				}
			}
		}
		prev = res
	}
}

func TestCluster_IsolatedRowNonClustered(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddNode(i, 1))
	}
	require.NoError(t, g.AddEdge(0, 1, 0.1))
	require.NoError(t, g.Flush())

	res, err := mst.Cluster(g, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, res.NBlocks)
	assert.Equal(t, 1, res.NonClustered)
	assert.Equal(t, core.Unassigned, res.Partition[2])
}

func TestCluster_Validation(t *testing.T) {
	_, err := mst.Cluster(nil, 0.5)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, 1))
	_, err = mst.Cluster(g, 0.5)
	assert.ErrorIs(t, err, mst.ErrNotFlushed)

	require.NoError(t, g.Flush())
	_, err = mst.Cluster(g, -0.1)
	assert.ErrorIs(t, err, mst.ErrBadEps)
}
