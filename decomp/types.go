// SPDX-License-Identifier: MIT

// Package decomp: sentinel errors and the immutable Decomposition type.

package decomp

import "errors"

// MasterBlock is the reserved block id of the master/linking bucket.
// Real blocks are numbered 1..NBlocks().
const MasterBlock = 0

// Sentinel errors.
var (
	// ErrEmptyBlock indicates a degenerate partition: some block in
	// 1..nBlocks would own zero constraints (or no block exists at all).
	// Callers treat the candidate as discarded, not as a failure of the
	// detection round.
	ErrEmptyBlock = errors.New("decomp: partition yields an empty block")

	// ErrPartitionLength indicates a partition whose length does not match
	// the constraint count it labels.
	ErrPartitionLength = errors.New("decomp: partition length mismatch")

	// ErrBadBlock indicates a block id outside MasterBlock..NBlocks()+1 in
	// a partial assignment.
	ErrBadBlock = errors.New("decomp: bad block id")

	// ErrConsClosed indicates an assignment to a constraint that is no
	// longer open.
	ErrConsClosed = errors.New("decomp: constraint already assigned")

	// ErrConsNotFound indicates a constraint index outside 0..NConss()-1.
	ErrConsNotFound = errors.New("decomp: constraint index out of range")
)

// Decomposition is one constraint-to-block assignment candidate. It is
// created once per accepted partition and immutable thereafter; ownership
// passes to the reformulation layer that consumes it.
type Decomposition struct {
	consToBlock   []int // per constraint: MasterBlock or 1..nBlocks
	nBlocks       int
	nLinkingVars  int
	nNonClustered int
}

// NBlocks returns the number of real (non-master) blocks.
func (d *Decomposition) NBlocks() int { return d.nBlocks }

// NLinkingVars returns the number of relevant variables whose constraints
// span more than one real block.
func (d *Decomposition) NLinkingVars() int { return d.nLinkingVars }

// NNonClustered returns the number of constraints in the master bucket.
func (d *Decomposition) NNonClustered() int { return d.nNonClustered }

// NConss returns the number of labeled constraints.
func (d *Decomposition) NConss() int { return len(d.consToBlock) }

// Block returns the block id of constraint c (MasterBlock or 1..NBlocks()).
// Errors: ErrConsNotFound.
func (d *Decomposition) Block(c int) (int, error) {
	if c < 0 || c >= len(d.consToBlock) {
		return 0, ErrConsNotFound
	}

	return d.consToBlock[c], nil
}

// BlockConss returns the ascending constraint indices of block b
// (b == MasterBlock lists the master bucket).
func (d *Decomposition) BlockConss(b int) []int {
	var out []int
	for c, blk := range d.consToBlock {
		if blk == b {
			out = append(out, c)
		}
	}

	return out
}
