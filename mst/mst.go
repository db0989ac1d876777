// SPDX-License-Identifier: MIT

// Package mst: spanning-forest clustering implementation.

package mst

import (
	"math"
	"sort"

	"github.com/katalvlaran/dwdetect/core"
)

// Cluster partitions the rows of the flushed distance graph g by cutting its
// minimum spanning forest at eps. The resulting labels are written into g's
// partition and returned.
//
// Steps:
//  1. Validate: g != nil, g.Flushed(), eps finite and ≥ 0.
//  2. Collect edges, sort ascending by weight (stable for determinism).
//  3. Build the spanning forest with a union-find (path compression + rank).
//  4. Re-join only forest edges with weight ≤ eps; components of that
//     residue are the clusters.
//  5. Label components holding ≥ 2 rows in ascending smallest-member order;
//     singletons become core.Unassigned.
//
// Errors: ErrNilGraph, ErrNotFlushed, ErrBadEps.
func Cluster(g *core.Graph, eps float64) (*Result, error) {
	// 1. Validation.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Flushed() {
		return nil, ErrNotFlushed
	}
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, ErrBadEps
	}

	n := g.NNodes()
	edges, err := g.Edges()
	if err != nil {
		return nil, err
	}

	// 2. Ascending weight order; stable sort keeps (Src, Dst) order on ties.
	sorted := make([]core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Kruskal: grow the minimum spanning forest.
	uf := newUnionFind(n)
	forest := make([]core.Edge, 0, n)
	for _, e := range sorted {
		if uf.find(e.Src) != uf.find(e.Dst) {
			uf.union(e.Src, e.Dst)
			forest = append(forest, e)
			if len(forest) == n-1 {
				break // forest is maximal
			}
		}
	}

	// 4. Cut: keep forest edges not heavier than eps, re-join components.
	uf = newUnionFind(n)
	for _, e := range forest {
		if e.Weight <= eps {
			uf.union(e.Src, e.Dst)
		}
	}

	// 5. Label components by ascending root-first-seen order; singletons
	//    stay non-clustered.
	res := labelComponents(uf, n)
	if err = g.SetPartitionAll(res.Partition); err != nil {
		return nil, err
	}

	return res, nil
}

// labelComponents turns union-find components into a partition: components
// with ≥ 2 members get labels 0..k-1 in ascending smallest-member order,
// singleton components map to core.Unassigned.
func labelComponents(uf *unionFind, n int) *Result {
	size := make(map[int]int, n)
	for i := 0; i < n; i++ {
		size[uf.find(i)]++
	}

	labels := make(map[int]int) // root → cluster label
	part := make([]int, n)
	nonClustered := 0
	for i := 0; i < n; i++ {
		root := uf.find(i)
		if size[root] < 2 {
			part[i] = core.Unassigned
			nonClustered++
			continue
		}
		label, ok := labels[root]
		if !ok {
			// First member in index order names the cluster.
			label = len(labels)
			labels[root] = label
		}
		part[i] = label
	}

	return &Result{Partition: part, NBlocks: len(labels), NonClustered: nonClustered}
}

// unionFind is a disjoint-set union over 0..n-1 with path compression and
// union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find walks to the root, pointing each visited node at its grandparent.
func (uf *unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v, attaching the lower-rank root beneath
// the higher-rank one.
func (uf *unionFind) union(u, v int) {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return
	}
	if uf.rank[ru] < uf.rank[rv] {
		uf.parent[ru] = rv
	} else {
		uf.parent[rv] = ru
		if uf.rank[ru] == uf.rank[rv] {
			uf.rank[ru]++
		}
	}
}
