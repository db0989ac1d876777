// SPDX-License-Identifier: MIT

// Package simil maps row-pair variable-overlap counts to edge weights.
//
// For two constraints (rows) r1, r2 the builders count
//
//	a — variables shared by r1 and r2
//	b — variables only in r2
//	c — variables only in r1
//
// and Calculate turns (a,b,c) into a scalar under one of five measures:
//
//	Jaccard      a / (a+b+c)
//	Cosine       a / √((a+b)(a+c))
//	Simpson      a / min(a+b, a+c)
//	Johnson      mean(a/(a+b), a/(a+c))
//	Intersection a               (raw shared count, unbounded)
//
// Every measure can be requested in either orientation: Similarity stores
// the value as-is; Distance stores the monotone complement (1−s for the
// [0,1] measures, 1/(1+a) for Intersection) so distance-based clustering
// runs unmodified. Orientation and measure are orthogonal run parameters.
package simil
