// SPDX-License-Identifier: MIT

package impasse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katona/impasse"
)

func TestMean(t *testing.T) {
	m, err := impasse.Mean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	_, err = impasse.Mean(nil)
	assert.ErrorIs(t, err, impasse.ErrInsufficientSamples)
}

func TestSampleStdDev(t *testing.T) {
	sd, err := impasse.SampleStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(32.0/7.0), sd, 1e-12)

	for _, xs := range [][]float64{nil, {1}} {
		_, err := impasse.SampleStdDev(xs)
		assert.ErrorIs(t, err, impasse.ErrInsufficientSamples)
		_, err = impasse.Threshold(xs)
		assert.ErrorIs(t, err, impasse.ErrInsufficientSamples)
	}
}

func TestThresholdFormula(t *testing.T) {
	th, err := impasse.Threshold([]float64{1.74, 6.122, 12})
	require.NoError(t, err)
	assert.InDelta(t, 16.916957519849348, th, 1e-9)
}
