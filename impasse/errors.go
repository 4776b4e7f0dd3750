// SPDX-License-Identifier: MIT

package impasse

import "errors"

var (
	// ErrMinSamples indicates Options.MinSamples < 2.
	ErrMinSamples = errors.New("impasse: minimum sample count must be >= 2")

	// ErrThresholdUndefined indicates a kind has fewer than MinSamples samples.
	ErrThresholdUndefined = errors.New("impasse: threshold undefined")

	// ErrInsufficientSamples indicates too few samples for a statistic.
	ErrInsufficientSamples = errors.New("impasse: insufficient samples")
)
