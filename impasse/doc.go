// SPDX-License-Identifier: MIT

// Package impasse flags unusually long pauses between events.
//
// A Detector keeps, per event kind, the ordered history of observed
// durations (in seconds) and a threshold
//
//	threshold = mean(history) + 2·s(history)
//
// where s is the unbiased (n−1) sample standard deviation. Once a kind has
// MinSamples samples, each new sample is first classified against the
// threshold computed from the prior samples only, then appended, then the
// threshold is recomputed. Before that the classification is Undetermined,
// never Normal.
//
// With Options.ExcludeAnomalies set, anomalous samples are kept out of the
// history so a single long pause cannot inflate the next threshold.
//
// Complexity: Record is O(n) in the history length of its kind.
//
// Errors:
//
//   - ErrMinSamples: MinSamples < 2, for which no threshold exists.
//   - ErrThresholdUndefined: threshold requested before MinSamples samples.
//   - ErrInsufficientSamples: statistics over too few samples.
package impasse
