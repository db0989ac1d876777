// SPDX-License-Identifier: MIT

// Package core: node-weight table keyed by entity kind.
// Weights annotate node importance for serialization and diagnostics only;
// they never change which edges exist.

package core

// EntityKind classifies the model entity a graph node stands for.
type EntityKind int

const (
	// KindBinaryVar is a binary (0/1) variable node.
	KindBinaryVar EntityKind = iota

	// KindIntegerVar is a general integer variable node.
	KindIntegerVar

	// KindImpliedIntVar is a continuous variable that is integral in every
	// optimal solution (implied integer).
	KindImpliedIntVar

	// KindContinuousVar is a continuous variable node.
	KindContinuousVar

	// KindConstraint is a constraint (row) node.
	KindConstraint
)

// Weights is the immutable per-run entity-kind → weight table. The zero value
// is NOT valid; use DefaultWeights (all ones) or a literal.
type Weights struct {
	BinaryVar     int
	IntegerVar    int
	ImpliedIntVar int
	ContinuousVar int
	Constraint    int
}

// DefaultWeights returns the neutral table: every kind weighs 1.
func DefaultWeights() Weights {
	return Weights{
		BinaryVar:     1,
		IntegerVar:    1,
		ImpliedIntVar: 1,
		ContinuousVar: 1,
		Constraint:    1,
	}
}

// Of returns the weight of the given entity kind. Unknown kinds weigh 0.
func (w Weights) Of(k EntityKind) int {
	switch k {
	case KindBinaryVar:
		return w.BinaryVar
	case KindIntegerVar:
		return w.IntegerVar
	case KindImpliedIntVar:
		return w.ImpliedIntVar
	case KindContinuousVar:
		return w.ContinuousVar
	case KindConstraint:
		return w.Constraint
	default:
		return 0
	}
}
