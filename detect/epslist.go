// SPDX-License-Identifier: MIT

// Package detect: eps candidate sequence generation.

package detect

import "math"

// EpsList produces a strictly increasing sequence of length candidate eps
// values straddling mid (typically the 10th percentile of edge weights).
// Values below mid form a geometric approach spanning mid+0.9; values from
// mid upward form a geometric departure spanning mid+0.4. The default split
// puts roughly a quarter of the sequence below mid; intersection asks for a
// symmetric half/half split instead, compensating for the Intersection
// measure's different value range. The first at-or-above value is exactly
// mid.
//
// Errors: ErrBadLength, ErrBadMid.
// Complexity: O(length).
func EpsList(length int, mid float64, intersection bool) ([]float64, error) {
	if length < 1 {
		return nil, ErrBadLength
	}
	if mid <= 0 || math.IsNaN(mid) || math.IsInf(mid, 0) {
		return nil, ErrBadMid
	}

	// Split point: n1-1 values stay below mid.
	var n1 int
	if intersection {
		n1 = (length + 1) / 2
	} else {
		n1 = int(math.Round(float64(length+1) / 4))
	}
	if n1 < 1 {
		n1 = 1
	}
	n2 := length - (n1 - 1)

	list := make([]float64, 0, length)

	// Approach mid from below: mid / q1^i for i = n1-1 .. 1.
	q1 := math.Pow((mid+0.9)/mid, 1/float64(n1))
	for i := n1 - 1; i >= 1; i-- {
		list = append(list, mid/math.Pow(q1, float64(i)))
	}

	// Depart from mid upward: mid · q2^i for i = 0 .. n2-1.
	q2 := math.Pow((mid+0.4)/mid, 1/float64(n2))
	for i := 0; i < n2; i++ {
		list = append(list, mid*math.Pow(q2, float64(i)))
	}

	return list, nil
}
