// SPDX-License-Identifier: MIT

// Package decomp: partition → decomposition assembly.

package decomp

import (
	"fmt"

	"github.com/katalvlaran/dwdetect/model"
)

// FromPartition converts a per-constraint cluster label vector (labels
// 0..k-1, -1 for unclustered) into a Decomposition: label l becomes block
// l+1, -1 becomes the master bucket.
//
// Invariant check: every block 1..nBlocks must own at least one constraint;
// otherwise the whole candidate is discarded with ErrEmptyBlock (callers
// skip it — a degenerate result is not a detection failure). A partition
// without any real block is degenerate for the same reason.
//
// Errors: ErrPartitionLength, ErrEmptyBlock.
// Complexity: O(nConss + nnz) — the linking-variable count scans every
// incidence once.
func FromPartition(m model.Model, partition []int) (*Decomposition, error) {
	if len(partition) != m.NConss() {
		return nil, fmt.Errorf("decomp: %d labels for %d conss: %w",
			len(partition), m.NConss(), ErrPartitionLength)
	}

	// nBlocks = max(label)+1; count constraints per block on the way.
	nBlocks := 0
	for _, l := range partition {
		if l+1 > nBlocks {
			nBlocks = l + 1
		}
	}
	if nBlocks == 0 {
		return nil, ErrEmptyBlock
	}
	sizes := make([]int, nBlocks)
	nonClustered := 0
	for _, l := range partition {
		if l < 0 {
			nonClustered++
			continue
		}
		sizes[l]++
	}
	for l, sz := range sizes {
		if sz == 0 {
			return nil, fmt.Errorf("decomp: block %d: %w", l+1, ErrEmptyBlock)
		}
	}

	// Materialize the 1-based constraint→block map.
	d := &Decomposition{
		consToBlock:   make([]int, len(partition)),
		nBlocks:       nBlocks,
		nNonClustered: nonClustered,
	}
	for c, l := range partition {
		if l < 0 {
			d.consToBlock[c] = MasterBlock
		} else {
			d.consToBlock[c] = l + 1
		}
	}

	// A relevant variable links blocks when its constraints span ≥ 2 of them.
	first := make([]int, m.NVars()) // 0 = unseen, else block id of first sighting
	linking := make([]bool, m.NVars())
	for c := 0; c < m.NConss(); c++ {
		b := d.consToBlock[c]
		if b == MasterBlock {
			continue
		}
		for _, v := range m.ConsVars(c) {
			if !m.Relevant(v) || linking[v] {
				continue
			}
			switch first[v] {
			case 0:
				first[v] = b
			case b:
				// same block again — nothing to do
			default:
				linking[v] = true
				d.nLinkingVars++
			}
		}
	}

	return d, nil
}

// PartialFromPartition applies a clustering of the open constraints on top
// of an existing partial decomposition and returns the extended partial as a
// new object (the input is never mutated). conss holds the global indices of
// the clustered open constraints, aligned with partition; new cluster labels
// become fresh blocks after p.NBlocks(), label -1 goes to the master bucket.
//
// The same no-empty-block invariant applies to the fresh labels.
//
// Errors: ErrPartitionLength, ErrEmptyBlock, plus AssignCons failures for
// stale (non-open) constraint indices.
func PartialFromPartition(p *PartialDecomposition, conss []int, partition []int) (*PartialDecomposition, error) {
	if len(partition) != len(conss) {
		return nil, fmt.Errorf("decomp: %d labels for %d open conss: %w",
			len(partition), len(conss), ErrPartitionLength)
	}

	// Validate the fresh labels before touching the clone.
	nNew := 0
	for _, l := range partition {
		if l+1 > nNew {
			nNew = l + 1
		}
	}
	if nNew == 0 {
		return nil, ErrEmptyBlock
	}
	sizes := make([]int, nNew)
	for _, l := range partition {
		if l >= 0 {
			sizes[l]++
		}
	}
	for l, sz := range sizes {
		if sz == 0 {
			return nil, fmt.Errorf("decomp: new block %d: %w", l+1, ErrEmptyBlock)
		}
	}

	out := p.Clone()
	base := out.NBlocks()
	// Open the fresh blocks in ascending label order, then fill them: the
	// first constraint of label b-1 opens block base+b, the rest joins it.
	for b := 1; b <= nNew; b++ {
		for k, l := range partition {
			if l != b-1 {
				continue
			}
			if err := out.AssignCons(conss[k], base+b); err != nil {
				return nil, fmt.Errorf("decomp: assign cons %d: %w", conss[k], err)
			}
		}
	}
	// Unclustered open constraints go to the master bucket.
	for k, l := range partition {
		if l < 0 {
			if err := out.AssignCons(conss[k], MasterBlock); err != nil {
				return nil, fmt.Errorf("decomp: assign cons %d: %w", conss[k], err)
			}
		}
	}

	return out, nil
}

// Compact relabels a partition in place so that surviving labels are the
// contiguous range 0..k-1 (ascending original order preserved) and returns
// k. Labels < 0 pass through untouched.
func Compact(partition []int) int {
	maxLabel := -1
	for _, l := range partition {
		if l > maxLabel {
			maxLabel = l
		}
	}
	if maxLabel < 0 {
		return 0
	}

	// Map old → new, skipping labels nobody carries anymore.
	used := make([]bool, maxLabel+1)
	for _, l := range partition {
		if l >= 0 {
			used[l] = true
		}
	}
	remap := make([]int, maxLabel+1)
	k := 0
	for l := 0; l <= maxLabel; l++ {
		if used[l] {
			remap[l] = k
			k++
		}
	}
	for i, l := range partition {
		if l >= 0 {
			partition[i] = remap[l]
		}
	}

	return k
}
