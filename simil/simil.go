// SPDX-License-Identifier: MIT

// Package simil: measures, orientations, and the Calculate kernel.

package simil

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnknownMeasure indicates an unrecognized measure name or value.
	ErrUnknownMeasure = errors.New("simil: unknown distance measure")

	// ErrNegativeCount indicates a negative overlap count (programmer error
	// in the calling builder).
	ErrNegativeCount = errors.New("simil: negative overlap count")
)

// DistanceMeasure names one of the five supported set-overlap measures.
type DistanceMeasure int

const (
	// Johnson is the mean of the two conditional overlap ratios.
	Johnson DistanceMeasure = iota

	// Intersection is the raw shared-variable count (range unbounded; the
	// eps-sequence generator compensates with a symmetric split).
	Intersection

	// Jaccard is shared over union.
	Jaccard

	// Cosine is shared over the geometric mean of the two row sizes.
	Cosine

	// Simpson is shared over the smaller row size.
	Simpson
)

// Measures lists all supported measures in declaration order.
func Measures() []DistanceMeasure {
	return []DistanceMeasure{Johnson, Intersection, Jaccard, Cosine, Simpson}
}

// String returns the canonical lower-case name.
func (m DistanceMeasure) String() string {
	switch m {
	case Johnson:
		return "johnson"
	case Intersection:
		return "intersection"
	case Jaccard:
		return "jaccard"
	case Cosine:
		return "cosine"
	case Simpson:
		return "simpson"
	default:
		return fmt.Sprintf("measure(%d)", int(m))
	}
}

// ParseMeasure resolves a case-insensitive measure name.
// Errors: ErrUnknownMeasure.
func ParseMeasure(s string) (DistanceMeasure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "johnson":
		return Johnson, nil
	case "intersection":
		return Intersection, nil
	case "jaccard":
		return Jaccard, nil
	case "cosine":
		return Cosine, nil
	case "simpson":
		return Simpson, nil
	default:
		return 0, fmt.Errorf("simil: %q: %w", s, ErrUnknownMeasure)
	}
}

// WeightType selects the orientation of the stored edge weight.
type WeightType int

const (
	// Similarity stores the measure value directly (larger = closer).
	Similarity WeightType = iota

	// Distance stores the monotone complement (smaller = closer).
	Distance
)

// String returns the canonical lower-case name.
func (w WeightType) String() string {
	if w == Distance {
		return "distance"
	}

	return "similarity"
}

// Calculate maps the overlap triple (a,b,c) to an edge weight under the
// given measure and orientation. itself marks a row compared against its own
// copy; it only matters for the degenerate case of two empty rows, which is
// maximally similar to itself and maximally dissimilar to any other row.
//
// Errors: ErrNegativeCount, ErrUnknownMeasure.
// Complexity: O(1).
func Calculate(a, b, c int, m DistanceMeasure, wt WeightType, itself bool) (float64, error) {
	if a < 0 || b < 0 || c < 0 {
		return 0, ErrNegativeCount
	}

	// Degenerate case first: both rows empty (a == 0 and b+c == 0).
	if a == 0 && b+c == 0 {
		if wt == Distance {
			if itself {
				return 0, nil
			}

			return 1, nil
		}
		if itself {
			return 1, nil
		}

		return 0, nil
	}

	af, bf, cf := float64(a), float64(b), float64(c)

	var sim float64
	switch m {
	case Johnson:
		// Mean of the two conditional ratios; a zero-sized side contributes 0.
		var t1, t2 float64
		if a+b > 0 {
			t1 = af / (af + bf)
		}
		if a+c > 0 {
			t2 = af / (af + cf)
		}
		sim = (t1 + t2) / 2
	case Intersection:
		sim = af
	case Jaccard:
		sim = af / (af + bf + cf)
	case Cosine:
		if a+b > 0 && a+c > 0 {
			sim = af / math.Sqrt((af+bf)*(af+cf))
		}
	case Simpson:
		// One row may be empty (min size 0): no overlap is possible then.
		if d := math.Min(af+bf, af+cf); d > 0 {
			sim = af / d
		}
	default:
		return 0, ErrUnknownMeasure
	}

	if wt == Distance {
		if m == Intersection {
			// Unbounded count: reciprocal complement keeps (0,1] range.
			return 1 / (1 + sim), nil
		}

		return 1 - sim, nil
	}

	return sim, nil
}
