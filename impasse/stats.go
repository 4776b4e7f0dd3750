// SPDX-License-Identifier: MIT

package impasse

import (
	"fmt"
	"math"
)

// Mean returns Σx / n. Requires at least one sample.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: mean of 0 samples", ErrInsufficientSamples)
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), nil
}

// SampleStdDev returns the unbiased sample standard deviation
// sqrt(Σ(x−mean)² / (n−1)). Requires at least two samples.
func SampleStdDev(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: stddev of %d samples", ErrInsufficientSamples, len(xs))
	}
	mean, _ := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1)), nil
}

// Threshold returns mean(xs) + 2·SampleStdDev(xs).
func Threshold(xs []float64) (float64, error) {
	sd, err := SampleStdDev(xs)
	if err != nil {
		return 0, err
	}
	mean, _ := Mean(xs)
	return mean + 2*sd, nil
}
