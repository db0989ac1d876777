// SPDX-License-Identifier: MIT

package detect_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dwdetect/detect"
)

func TestEpsList_DefaultSplit(t *testing.T) {
	const mid = 0.5
	list, err := detect.EpsList(9, mid, false)
	require.NoError(t, err)
	require.Len(t, list, 9)

	// Strictly increasing throughout.
	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i], list[i-1], "position %d", i)
	}

	// Roughly a quarter of the sequence approaches mid from below; the
	// first at-or-above value is exactly mid.
	below := 0
	for _, v := range list {
		if v < mid {
			below++
		}
	}
	assert.Equal(t, 2, below)
	assert.Equal(t, mid, list[below])

	// The upper half stays inside the departure span.
	assert.Less(t, list[len(list)-1], mid+0.4)
}

func TestEpsList_IntersectionSplit(t *testing.T) {
	const mid = 2.0
	list, err := detect.EpsList(9, mid, true)
	require.NoError(t, err)
	require.Len(t, list, 9)

	// Symmetric split: four values below mid, five from mid upward.
	below := 0
	for _, v := range list {
		if v < mid {
			below++
		}
	}
	assert.Equal(t, 4, below)
	assert.Equal(t, mid, list[below])
	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i], list[i-1])
	}
}

func TestEpsList_SingleValue(t *testing.T) {
	list, err := detect.EpsList(1, 0.3, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.3}, list)
}

func TestEpsList_Validation(t *testing.T) {
	_, err := detect.EpsList(0, 0.5, false)
	assert.ErrorIs(t, err, detect.ErrBadLength)

	for _, mid := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = detect.EpsList(5, mid, false)
		assert.ErrorIs(t, err, detect.ErrBadMid, "mid=%v", mid)
	}
}
