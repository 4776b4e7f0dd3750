// SPDX-License-Identifier: MIT

package impasse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katona/impasse"
)

const eps = 1e-9

func newDetector(t *testing.T, opts impasse.Options) *impasse.Detector[string] {
	t.Helper()
	d, err := impasse.NewDetector[string](opts)
	require.NoError(t, err)
	return d
}

func record(d *impasse.Detector[string], kind string, xs ...float64) []impasse.Classification {
	out := make([]impasse.Classification, len(xs))
	for i, x := range xs {
		out[i] = d.Record(kind, x)
	}
	return out
}

func TestNewDetector_MinSamples(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := impasse.NewDetector[string](impasse.Options{MinSamples: n})
		assert.ErrorIs(t, err, impasse.ErrMinSamples, "min %d", n)
	}
	d := newDetector(t, impasse.DefaultOptions())
	assert.Equal(t, 30, d.Options().MinSamples)
}

func TestRecord_KindsAreIndependent(t *testing.T) {
	d := newDetector(t, impasse.Options{MinSamples: 3})
	record(d, "a", 1.33)
	record(d, "b", 0.66)
	assert.Equal(t, []float64{1.33}, d.History("a"))
	assert.Equal(t, []float64{0.66}, d.History("b"))
	assert.Empty(t, d.History("c"))
}

func TestThreshold_UndefinedBelowMinimum(t *testing.T) {
	d := newDetector(t, impasse.Options{MinSamples: 3})
	got := record(d, "test", 1.25, 5)
	assert.Equal(t, []impasse.Classification{impasse.Undetermined, impasse.Undetermined}, got)

	_, err := d.Threshold("test")
	assert.ErrorIs(t, err, impasse.ErrThresholdUndefined)
	assert.Equal(t, impasse.Undetermined, d.Classify("test", 1000))

	d8 := newDetector(t, impasse.Options{MinSamples: 8})
	record(d8, "test", 1, 2, 3, 4, 5, 6, 7)
	_, err = d8.Threshold("test")
	assert.ErrorIs(t, err, impasse.ErrThresholdUndefined)
}

func TestThreshold_Value(t *testing.T) {
	d := newDetector(t, impasse.Options{MinSamples: 3})
	record(d, "test", 1.74, 6.122, 12)
	got, err := d.Threshold("test")
	require.NoError(t, err)
	assert.InDelta(t, 16.916957519849348, got, eps)

	assert.Equal(t, impasse.Anomalous, d.Classify("test", 22.19))
	assert.Equal(t, impasse.Normal, d.Classify("test", 16.9))
}

func TestThreshold_Recomputed(t *testing.T) {
	d := newDetector(t, impasse.Options{MinSamples: 3})
	record(d, "test", 12.2, 1.2, 65.2)
	first, err := d.Threshold("test")
	require.NoError(t, err)
	assert.InDelta(t, 94.6397545290747, first, eps)

	d.Record("test", 31.2)
	second, err := d.Threshold("test")
	require.NoError(t, err)
	assert.InDelta(t, 83.5540699652589, second, eps)
}

func TestClassify_StrictlyGreater(t *testing.T) {
	d := newDetector(t, impasse.Options{MinSamples: 3})
	record(d, "test", 12.2, 1.2, 13.2)
	assert.Equal(t, impasse.Anomalous, d.Classify("test", 22.19))
	assert.Equal(t, impasse.Normal, d.Classify("test", 22.17))

	th, err := d.Threshold("test")
	require.NoError(t, err)
	assert.Equal(t, impasse.Normal, d.Classify("test", th))
}

// TestRecord_ClassifiesAgainstPriorThreshold checks that a sample is judged
// before it is folded into the history.
func TestRecord_ClassifiesAgainstPriorThreshold(t *testing.T) {
	d := newDetector(t, impasse.Options{MinSamples: 3})
	got := record(d, "first", 4.64, 4.62, 8.77, 5.42, 0.15, 6.25, 11.11, 13.33, 2.86, 22.22)
	u, n, a := impasse.Undetermined, impasse.Normal, impasse.Anomalous
	assert.Equal(t, []impasse.Classification{u, u, u, n, n, n, a, a, n, a}, got)
	assert.Len(t, d.History("first"), 10, "anomalies stay in the history by default")

	th, err := d.Threshold("first")
	require.NoError(t, err)
	assert.InDelta(t, 20.609237546875626, th, eps)
}

func TestRecord_ExcludeAnomalies(t *testing.T) {
	d := newDetector(t, impasse.Options{MinSamples: 3, ExcludeAnomalies: true})
	in := map[string][]float64{
		"first":  {4.64, 4.62, 8.77, 5.42, 0.15, 6.25, 11.11, 13.33, 2.86, 22.22},
		"second": {32.42, 36.04, 54.23, 78.81, 60.98, 69.27, 56.07},
		"third": {2.32, 2.93, 1.09, 1.25, 0.70, 6.12, 2.88, 0.25, 0.94, 8.82,
			9.56, 0.48, 5.32, 1.69, 2.62},
	}
	want := map[string][]float64{
		"first":  {4.64, 4.62, 8.77, 5.42, 0.15, 6.25, 2.86},
		"second": {32.42, 36.04, 54.23, 60.98, 69.27, 56.07},
		"third":  {2.32, 2.93, 1.09, 1.25, 0.70, 2.88, 0.25, 0.94, 0.48, 1.69, 2.62},
	}
	for _, kind := range []string{"first", "second", "third"} {
		record(d, kind, in[kind]...)
	}
	snap := d.Snapshot()
	assert.Equal(t, want, snap.History)
	assert.Len(t, snap.Thresholds, 3)
}

func TestSnapshot_IsACopy(t *testing.T) {
	d := newDetector(t, impasse.Options{MinSamples: 2})
	record(d, "k", 1, 2)
	snap := d.Snapshot()
	snap.History["k"][0] = 100
	snap.Thresholds["k"] = 0
	assert.Equal(t, []float64{1, 2}, d.History("k"))
	th, err := d.Threshold("k")
	require.NoError(t, err)
	assert.NotZero(t, th)
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "anomalous", impasse.Anomalous.String())
	assert.Equal(t, "normal", impasse.Normal.String())
	assert.Equal(t, "undetermined", impasse.Undetermined.String())
}
