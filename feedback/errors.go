// SPDX-License-Identifier: MIT

package feedback

import "errors"

var (
	// ErrUnknownKind indicates an unsupported Options.Kind.
	ErrUnknownKind = errors.New("feedback: unknown kind")

	// ErrNoPhrases indicates a Phrases sink without phrases.
	ErrNoPhrases = errors.New("feedback: no phrases")

	// ErrNilClock is returned by New without a clock.
	ErrNilClock = errors.New("feedback: nil clock")

	// ErrDuration indicates a non-positive show time.
	ErrDuration = errors.New("feedback: show time must be > 0")
)
