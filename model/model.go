// SPDX-License-Identifier: MIT

// Package model: Model interface, variable kinds, and the in-memory Linear
// implementation.

package model

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for Linear construction.
var (
	// ErrVarNotFound indicates a constraint referenced a variable index that
	// was never added.
	ErrVarNotFound = errors.New("model: variable index out of range")

	// ErrEmptyName indicates an empty constraint or variable name.
	ErrEmptyName = errors.New("model: name is empty")
)

// VarKind classifies a variable of the host model.
type VarKind int

const (
	// Binary is a 0/1 variable.
	Binary VarKind = iota

	// Integer is a general integer variable.
	Integer

	// ImpliedInt is a continuous variable that is integral in every optimal
	// solution.
	ImpliedInt

	// Continuous is a continuous variable.
	Continuous
)

// Model is the read-only host-model surface the builders iterate.
// Implementations must be stable for the duration of one detection round:
// constraint/variable order and incidence sets may not change mid-sweep.
type Model interface {
	// NConss returns the number of constraints (rows).
	NConss() int

	// NVars returns the number of variables (columns).
	NVars() int

	// ConsVars returns the variable indices involved in constraint c,
	// ascending, without duplicates. The engine treats the slice as
	// read-only.
	ConsVars(c int) []int

	// Kind returns the kind of variable v.
	Kind(v int) VarKind

	// Relevant reports whether variable v participates in the active view
	// (false for variables fixed out by presolving). Irrelevant variables
	// are skipped by every builder.
	Relevant(v int) bool
}

// Linear is a minimal in-memory Model for tests, tooling and standalone use.
// Build it with AddVar/AddCons; it satisfies Model afterwards.
type Linear struct {
	kinds    []VarKind
	fixed    []bool
	consVars [][]int
}

// NewLinear creates an empty in-memory model.
func NewLinear() *Linear { return &Linear{} }

// AddVar appends a variable of the given kind and returns its index.
func (m *Linear) AddVar(kind VarKind) int {
	m.kinds = append(m.kinds, kind)
	m.fixed = append(m.fixed, false)

	return len(m.kinds) - 1
}

// AddCons appends a constraint over the given variable indices and returns
// its index. Indices are deduplicated and stored ascending.
//
// Errors: ErrVarNotFound for an out-of-range variable index.
func (m *Linear) AddCons(vars ...int) (int, error) {
	seen := make(map[int]bool, len(vars))
	row := make([]int, 0, len(vars))
	for _, v := range vars {
		if v < 0 || v >= len(m.kinds) {
			return 0, fmt.Errorf("model: AddCons var %d: %w", v, ErrVarNotFound)
		}
		if !seen[v] {
			seen[v] = true
			row = append(row, v)
		}
	}
	// Keep rows ascending for deterministic iteration downstream.
	sort.Ints(row)
	m.consVars = append(m.consVars, row)

	return len(m.consVars) - 1, nil
}

// Fix marks variable v as fixed out of the active view (irrelevant).
// Errors: ErrVarNotFound.
func (m *Linear) Fix(v int) error {
	if v < 0 || v >= len(m.fixed) {
		return ErrVarNotFound
	}
	m.fixed[v] = true

	return nil
}

// NConss implements Model.
func (m *Linear) NConss() int { return len(m.consVars) }

// NVars implements Model.
func (m *Linear) NVars() int { return len(m.kinds) }

// ConsVars implements Model.
func (m *Linear) ConsVars(c int) []int { return m.consVars[c] }

// Kind implements Model.
func (m *Linear) Kind(v int) VarKind { return m.kinds[v] }

// Relevant implements Model.
func (m *Linear) Relevant(v int) bool { return !m.fixed[v] }
