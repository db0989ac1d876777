// SPDX-License-Identifier: MIT

// Package decomp: shared collision post-processing.

package decomp

import "github.com/katalvlaran/dwdetect/model"

// PostProcess resolves cluster collisions on a freshly clustered partition:
// whenever a relevant variable ties constraints of two or more clusters
// together, the smallest-labeled cluster keeps its constraints and every
// colliding constraint of the other clusters moves to the master bucket
// (label -1). Afterwards the surviving labels are compacted to 0..k-1.
//
// conss maps local partition indices to global constraint indices for
// partial-matrix partitions; pass nil for the identity (full-matrix case).
//
// Returns the number of constraints moved to master and the compacted block
// count. The partition is modified in place; iteration order is by ascending
// variable index, so results are deterministic.
//
// Complexity: O(nnz) per pass over the labeled constraints.
func PostProcess(m model.Model, conss []int, partition []int) (moved, nBlocks int) {
	// var → smallest cluster label seen among its labeled constraints.
	keep := make(map[int]int)
	for k := range partition {
		if partition[k] < 0 {
			continue
		}
		for _, v := range consVarsOf(m, conss, k) {
			if !m.Relevant(v) {
				continue
			}
			if cur, ok := keep[v]; !ok || partition[k] < cur {
				keep[v] = partition[k]
			}
		}
	}

	// Any labeled constraint carrying a variable whose keeper is a different
	// cluster collides: move it to master.
	for k := range partition {
		if partition[k] < 0 {
			continue
		}
		for _, v := range consVarsOf(m, conss, k) {
			if !m.Relevant(v) {
				continue
			}
			if keep[v] != partition[k] {
				partition[k] = -1
				moved++
				break
			}
		}
	}

	return moved, Compact(partition)
}

// consVarsOf resolves the variable row of local constraint k under the
// optional local→global index map.
func consVarsOf(m model.Model, conss []int, k int) []int {
	if conss == nil {
		return m.ConsVars(k)
	}

	return m.ConsVars(conss[k])
}
