// SPDX-License-Identifier: MIT

// Package decomp turns clustering partitions into decomposition candidates.
//
// A Decomposition owns a constraint→block map with 1-based block ids; id 0
// (MasterBlock) is the reserved master/linking bucket for constraints left
// unclustered or spanning several blocks. Assembly enforces the no-empty-block
// invariant: a partition that would produce a block without constraints is
// discarded (ErrEmptyBlock) instead of materialized with degenerate blocks.
//
// A PartialDecomposition is an in-progress assignment: constraints start
// "open" and are closed by assigning them to a block or to the master bucket;
// a variable stays open while at least one open constraint uses it. Partial
// decompositions drive the partial-matrix builders for recursive detection;
// assembly never mutates its input partial (candidates are clones).
//
// PostProcess is the shared collision step run after any clustering: every
// constraint whose variables tie it to more than one cluster is moved to the
// master bucket, trading cluster purity for a consistent block structure.
// The equivalent stable-set formulation of this step is intentionally not
// implemented; row labeling is the forward-looking approach.
package decomp
