// SPDX-License-Identifier: MIT

// Package clock supplies the session time source. Times are durations
// since the clock's origin, which keeps event timestamps and the session
// time limit on the same monotonic scale.
package clock

import "time"

// Clock reports the elapsed time since its origin.
type Clock interface {
	Now() time.Duration
}

// Monotonic measures wall time using the runtime's monotonic reading.
type Monotonic struct {
	start time.Time
}

// NewMonotonic returns a clock whose origin is now.
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Now returns the time elapsed since the last Reset.
func (m *Monotonic) Now() time.Duration { return time.Since(m.start) }

// Reset moves the origin to now.
func (m *Monotonic) Reset() { m.start = time.Now() }

// Manual is a clock driven by its caller. The zero value reads 0.
type Manual struct {
	now time.Duration
}

// NewManual returns a manual clock reading t.
func NewManual(t time.Duration) *Manual { return &Manual{now: t} }

// Now returns the current reading.
func (m *Manual) Now() time.Duration { return m.now }

// Set sets the reading to t.
func (m *Manual) Set(t time.Duration) { m.now = t }

// Advance moves the reading forward by d.
func (m *Manual) Advance(d time.Duration) { m.now += d }
