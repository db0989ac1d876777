// SPDX-License-Identifier: MIT

// Package decomp: PartialDecomposition — an in-progress assignment driving
// recursive/partial re-detection.

package decomp

import "github.com/katalvlaran/dwdetect/model"

// consOpen marks a constraint not yet assigned to any bucket.
const consOpen = -1

// PartialDecomposition tracks which constraints are still open and which
// blocks exist so far. Openness of a variable is derived: a relevant
// variable is open while at least one open constraint uses it.
type PartialDecomposition struct {
	m       model.Model
	block   []int // per constraint: consOpen, MasterBlock, or 1..nBlocks
	nBlocks int
}

// NewPartial creates a partial decomposition over m with every constraint
// open and no blocks.
func NewPartial(m model.Model) *PartialDecomposition {
	p := &PartialDecomposition{m: m, block: make([]int, m.NConss())}
	for c := range p.block {
		p.block[c] = consOpen
	}

	return p
}

// Clone returns an independent copy sharing the (read-only) model.
func (p *PartialDecomposition) Clone() *PartialDecomposition {
	cp := &PartialDecomposition{m: p.m, block: make([]int, len(p.block)), nBlocks: p.nBlocks}
	copy(cp.block, p.block)

	return cp
}

// Model returns the host model this partial labels.
func (p *PartialDecomposition) Model() model.Model { return p.m }

// NBlocks returns the number of real blocks assigned so far.
func (p *PartialDecomposition) NBlocks() int { return p.nBlocks }

// IsConsOpen reports whether constraint c is still unassigned.
func (p *PartialDecomposition) IsConsOpen(c int) bool {
	return c >= 0 && c < len(p.block) && p.block[c] == consOpen
}

// IsVarOpen reports whether variable v is relevant and used by at least one
// open constraint. Complexity: O(nConss · row) — fine for detection-time use.
func (p *PartialDecomposition) IsVarOpen(v int) bool {
	if v < 0 || v >= p.m.NVars() || !p.m.Relevant(v) {
		return false
	}
	for c := range p.block {
		if p.block[c] != consOpen {
			continue
		}
		for _, pv := range p.m.ConsVars(c) {
			if pv == v {
				return true
			}
		}
	}

	return false
}

// OpenConss returns the ascending indices of open constraints.
func (p *PartialDecomposition) OpenConss() []int {
	var out []int
	for c := range p.block {
		if p.block[c] == consOpen {
			out = append(out, c)
		}
	}

	return out
}

// OpenVars returns the ascending indices of open variables (relevant and
// used by some open constraint).
func (p *PartialDecomposition) OpenVars() []int {
	open := make([]bool, p.m.NVars())
	for c := range p.block {
		if p.block[c] != consOpen {
			continue
		}
		for _, v := range p.m.ConsVars(c) {
			if p.m.Relevant(v) {
				open[v] = true
			}
		}
	}
	var out []int
	for v, ok := range open {
		if ok {
			out = append(out, v)
		}
	}

	return out
}

// AssignCons closes constraint c into block b (MasterBlock or 1..NBlocks()+1;
// assigning to NBlocks()+1 opens a new block).
//
// Errors: ErrConsNotFound, ErrConsClosed, ErrBadBlock.
func (p *PartialDecomposition) AssignCons(c, b int) error {
	if c < 0 || c >= len(p.block) {
		return ErrConsNotFound
	}
	if p.block[c] != consOpen {
		return ErrConsClosed
	}
	if b < MasterBlock || b > p.nBlocks+1 {
		return ErrBadBlock
	}
	p.block[c] = b
	if b == p.nBlocks+1 {
		p.nBlocks++
	}

	return nil
}

// Block returns the bucket of constraint c: MasterBlock, 1..NBlocks(), or
// ok == false while c is still open.
func (p *PartialDecomposition) Block(c int) (b int, ok bool, err error) {
	if c < 0 || c >= len(p.block) {
		return 0, false, ErrConsNotFound
	}
	if p.block[c] == consOpen {
		return 0, false, nil
	}

	return p.block[c], true, nil
}

// Complete reports whether no constraint remains open.
func (p *PartialDecomposition) Complete() bool {
	for c := range p.block {
		if p.block[c] == consOpen {
			return false
		}
	}

	return true
}

// Finish closes every remaining open constraint into the master bucket and
// materializes the immutable Decomposition.
//
// Errors: ErrEmptyBlock when some block 1..NBlocks() ended up without
// constraints (the partial was built from discarded-grade input).
func (p *PartialDecomposition) Finish() (*Decomposition, error) {
	// Convert to the 0-based partition convention of the clustering layer:
	// master and open both map to Unassigned (-1), block b → b-1.
	part := make([]int, len(p.block))
	for c := range p.block {
		if p.block[c] <= MasterBlock {
			part[c] = -1
		} else {
			part[c] = p.block[c] - 1
		}
	}

	return FromPartition(p.m, part)
}
