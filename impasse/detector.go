// SPDX-License-Identifier: MIT

package impasse

import "fmt"

// Classification is the three-valued result for one sample.
type Classification int

const (
	// Undetermined: the kind has fewer than MinSamples samples.
	Undetermined Classification = iota
	// Normal: the sample does not exceed the threshold.
	Normal
	// Anomalous: the sample is strictly greater than the threshold.
	Anomalous
)

func (c Classification) String() string {
	switch c {
	case Normal:
		return "normal"
	case Anomalous:
		return "anomalous"
	default:
		return "undetermined"
	}
}

// Options configures a Detector.
type Options struct {
	// MinSamples is the history length from which a kind is classified.
	MinSamples int
	// ExcludeAnomalies keeps anomalous samples out of the history.
	ExcludeAnomalies bool
}

// DefaultOptions returns MinSamples=30 with anomalies kept in the history.
func DefaultOptions() Options {
	return Options{MinSamples: 30}
}

// Detector tracks per-kind histories. Not safe for concurrent use.
type Detector[K comparable] struct {
	opts       Options
	history    map[K][]float64
	thresholds map[K]float64
}

// NewDetector returns an empty detector.
func NewDetector[K comparable](opts Options) (*Detector[K], error) {
	if opts.MinSamples < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrMinSamples, opts.MinSamples)
	}
	return &Detector[K]{
		opts:       opts,
		history:    make(map[K][]float64),
		thresholds: make(map[K]float64),
	}, nil
}

// Options returns the detector configuration.
func (d *Detector[K]) Options() Options { return d.opts }

// Record classifies x against the current threshold of kind, then folds it
// into the history and recomputes the threshold.
func (d *Detector[K]) Record(kind K, x float64) Classification {
	c := d.Classify(kind, x)
	if !(d.opts.ExcludeAnomalies && c == Anomalous) {
		d.history[kind] = append(d.history[kind], x)
	}
	if h := d.history[kind]; len(h) >= d.opts.MinSamples {
		// MinSamples >= 2, so the threshold is always defined here.
		t, _ := Threshold(h)
		d.thresholds[kind] = t
	}
	return c
}

// Classify returns the classification of x without recording it.
func (d *Detector[K]) Classify(kind K, x float64) Classification {
	t, ok := d.thresholds[kind]
	if !ok || len(d.history[kind]) < d.opts.MinSamples {
		return Undetermined
	}
	if x > t {
		return Anomalous
	}
	return Normal
}

// Threshold returns the current threshold of kind.
func (d *Detector[K]) Threshold(kind K) (float64, error) {
	t, ok := d.thresholds[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %v has %d of %d samples",
			ErrThresholdUndefined, kind, len(d.history[kind]), d.opts.MinSamples)
	}
	return t, nil
}

// History returns a copy of the samples recorded for kind.
func (d *Detector[K]) History(kind K) []float64 {
	return append([]float64(nil), d.history[kind]...)
}

// Snapshot is a copy of the detector state.
type Snapshot[K comparable] struct {
	History    map[K][]float64
	Thresholds map[K]float64
}

// Snapshot returns a deep copy of all histories and thresholds.
func (d *Detector[K]) Snapshot() Snapshot[K] {
	s := Snapshot[K]{
		History:    make(map[K][]float64, len(d.history)),
		Thresholds: make(map[K]float64, len(d.thresholds)),
	}
	for k, h := range d.history {
		s.History[k] = append([]float64(nil), h...)
	}
	for k, t := range d.thresholds {
		s.Thresholds[k] = t
	}
	return s
}
