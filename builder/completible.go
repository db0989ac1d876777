// SPDX-License-Identifier: MIT

// Package builder: up-front feasibility check for detection sweeps.

package builder

import (
	"github.com/katalvlaran/dwdetect/decomp"
	"github.com/katalvlaran/dwdetect/model"
)

// Completible reports whether the in-scope constraints and variables admit
// at least one connective pair — some relevant variable shared by two
// constraints in scope. Pass p == nil for the full matrix. A false result
// means a detector sweep over this scope cannot produce any candidate and
// is skipped entirely (a normal outcome, not an error).
//
// Complexity: O(nnz), early exit on the first connective variable.
func Completible(m model.Model, p *decomp.PartialDecomposition) bool {
	if m == nil {
		return false
	}

	var v *view
	if p == nil {
		v = fullView(m)
	} else {
		v = partialView(p)
	}

	// A variable column with two constraints is a connective pair.
	count := make([]int, len(v.vars))
	for _, row := range v.consVars {
		for _, lv := range row {
			count[lv]++
			if count[lv] >= 2 {
				return true
			}
		}
	}

	return false
}
