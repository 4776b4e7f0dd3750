// SPDX-License-Identifier: MIT

package eventlog

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/grid"
)

// Column names, in output order.
const (
	ColMoveStart         = "move.start"
	ColMoveEnd           = "move.end"
	ColReset             = "reset.problem"
	ColImpasseMoveStart  = "o.impasse.move.start"
	ColImpasseMoveEnd    = "o.impasse.move.end"
	ColSubjectiveImpasse = "s.impasse"
	ColFeedback          = "feedback"
	ColFeedbackType      = "feedback.type"
	ColStick             = "stick.idx"
	ColStickColor        = "stick.color"
	ColMoveStartPlace    = "move.start.place"
	ColMoveEndPlace      = "move.end.place"
)

// Columns lists every column in output order.
var Columns = []string{
	ColMoveStart, ColMoveEnd, ColReset,
	ColImpasseMoveStart, ColImpasseMoveEnd, ColSubjectiveImpasse,
	ColFeedback, ColFeedbackType, ColStick, ColStickColor,
	ColMoveStartPlace, ColMoveEndPlace,
}

// Column returns the time column of kind k.
func Column(k event.Kind) string {
	switch k {
	case event.StickChosen:
		return ColMoveStart
	case event.StickPlaced:
		return ColMoveEnd
	case event.Reset:
		return ColReset
	case event.ImpassePressed:
		return ColSubjectiveImpasse
	default:
		return ""
	}
}

// Entry is one log row. Nil or empty fields are empty cells.
type Entry struct {
	Seq int

	MoveStart         *time.Duration
	MoveEnd           *time.Duration
	Reset             *time.Duration
	ImpasseMoveStart  *bool
	ImpasseMoveEnd    *bool
	SubjectiveImpasse *time.Duration
	Feedback          *bool
	FeedbackType      string
	Stick             *int
	StickColor        string
	MoveStartPlace    *grid.Index
	MoveEndPlace      *grid.Index

	// Failure marks the terminal entry of a session that ran out of time.
	Failure bool
}

// Values returns the non-empty cells of e keyed by column. Times are in
// seconds, booleans are 0/1.
func (e Entry) Values() map[string]string {
	out := make(map[string]string, len(Columns))
	secs := func(col string, d *time.Duration) {
		if d != nil {
			out[col] = strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
		}
	}
	flag := func(col string, b *bool) {
		if b != nil {
			out[col] = "0"
			if *b {
				out[col] = "1"
			}
		}
	}
	text := func(col, v string) {
		if v != "" {
			out[col] = v
		}
	}
	place := func(col string, i *grid.Index) {
		if i != nil {
			out[col] = i.String()
		}
	}
	secs(ColMoveStart, e.MoveStart)
	secs(ColMoveEnd, e.MoveEnd)
	secs(ColReset, e.Reset)
	flag(ColImpasseMoveStart, e.ImpasseMoveStart)
	flag(ColImpasseMoveEnd, e.ImpasseMoveEnd)
	secs(ColSubjectiveImpasse, e.SubjectiveImpasse)
	flag(ColFeedback, e.Feedback)
	text(ColFeedbackType, e.FeedbackType)
	if e.Stick != nil {
		out[ColStick] = strconv.Itoa(*e.Stick)
	}
	text(ColStickColor, e.StickColor)
	place(ColMoveStartPlace, e.MoveStartPlace)
	place(ColMoveEndPlace, e.MoveEndPlace)
	return out
}

// Sink receives completed entries.
type Sink interface {
	Write(ctx context.Context, e Entry) error
}

// MemorySink keeps entries in memory. Safe for concurrent use.
type MemorySink struct {
	mu      sync.Mutex
	entries []Entry
}

// Write appends e.
func (m *MemorySink) Write(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

// Entries returns a copy of the written entries.
func (m *MemorySink) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...)
}
