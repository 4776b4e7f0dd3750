// SPDX-License-Identifier: MIT

package eventlog

import "errors"

var (
	// ErrNilSink is returned by NewRecorder when no sink is given.
	ErrNilSink = errors.New("eventlog: nil sink")

	// ErrUnknownKind is returned by Record for an event kind with no column.
	ErrUnknownKind = errors.New("eventlog: unknown event kind")
)
