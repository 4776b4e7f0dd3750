// SPDX-License-Identifier: MIT

package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/eventlog"
	"github.com/katalvlaran/katona/grid"
	"github.com/katalvlaran/katona/impasse"
	"github.com/katalvlaran/katona/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openTemp(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "logs", "katona.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestSession_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	id := uuid.New()
	started := time.Unix(1700000000, 0)

	log, err := s.BeginSession(ctx, id, started)
	require.NoError(t, err)
	assert.Equal(t, id, log.ID())

	got, err := s.Session(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.StartedAt.Equal(started))
	assert.True(t, got.EndedAt.IsZero())
	assert.Empty(t, got.Outcome)

	ended := started.Add(3 * time.Minute)
	require.NoError(t, s.EndSession(ctx, id, ended, "solved"))
	got, err = s.Session(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.EndedAt.Equal(ended))
	assert.Equal(t, "solved", got.Outcome)
}

func TestSession_Unknown(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.Session(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrUnknownSession)
	err = s.EndSession(ctx, uuid.New(), time.Now(), "solved")
	assert.ErrorIs(t, err, store.ErrUnknownSession)
}

func TestBeginSession_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	id := uuid.New()

	_, err := s.BeginSession(ctx, id, time.Now())
	require.NoError(t, err)
	_, err = s.BeginSession(ctx, id, time.Now())
	assert.Error(t, err)
}

func TestEntries_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	id := uuid.New()
	log, err := s.BeginSession(ctx, id, time.Now())
	require.NoError(t, err)

	rec, err := eventlog.NewRecorder(log)
	require.NoError(t, err)
	from, to := grid.Index{Row: 0, Col: 1}, grid.Index{Row: -2, Col: 0}
	require.NoError(t, rec.Record(ctx, event.Event{Kind: event.StickChosen, Stick: 4, Place: from, Time: 1500 * time.Millisecond}, impasse.Normal))
	rec.Feedback(false)
	require.NoError(t, rec.Record(ctx, event.Event{Kind: event.StickPlaced, Stick: 4, Place: to, Time: 2250 * time.Millisecond}, impasse.Anomalous))
	require.NoError(t, rec.Record(ctx, event.New(event.ImpassePressed, 3*time.Second), impasse.Undetermined))
	require.NoError(t, rec.Record(ctx, event.New(event.Reset, 4*time.Second), impasse.Undetermined))
	require.NoError(t, rec.RecordFailure(ctx, 10*time.Minute))

	entries, err := s.Entries(ctx, id)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, map[string]string{
		eventlog.ColMoveStart:        "1.5",
		eventlog.ColMoveEnd:          "2.25",
		eventlog.ColImpasseMoveStart: "0",
		eventlog.ColImpasseMoveEnd:   "1",
		eventlog.ColFeedback:         "0",
		eventlog.ColStick:            "4",
		eventlog.ColMoveStartPlace:   "(0,1)",
		eventlog.ColMoveEndPlace:     "(-2,0)",
	}, entries[0].Values())
	assert.Equal(t, map[string]string{
		eventlog.ColSubjectiveImpasse: "3",
		eventlog.ColReset:             "4",
	}, entries[1].Values())
	assert.False(t, entries[1].Failure)
	assert.True(t, entries[2].Failure)
	for i, e := range entries {
		assert.Equal(t, i, e.Seq)
	}
}

func TestEntries_ColorColumns(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	id := uuid.New()
	log, err := s.BeginSession(ctx, id, time.Now())
	require.NoError(t, err)

	rec, err := eventlog.NewRecorder(log,
		eventlog.WithFeedbackType("control"),
		eventlog.WithStickColors(map[int]string{7: "neutral.#808080"}))
	require.NoError(t, err)
	at := grid.Index{Row: -1, Col: 0}
	require.NoError(t, rec.Record(ctx, event.Event{Kind: event.StickChosen, Stick: 7, Place: at, Time: time.Second}, impasse.Undetermined))
	require.NoError(t, rec.Record(ctx, event.Event{Kind: event.StickPlaced, Stick: 7, Place: at, Time: 2 * time.Second}, impasse.Undetermined))
	require.NoError(t, rec.Record(ctx, event.New(event.Reset, 3*time.Second), impasse.Undetermined))

	entries, err := s.Entries(ctx, id)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "neutral.#808080", entries[0].StickColor)
	assert.Equal(t, "control", entries[0].FeedbackType)
	assert.Empty(t, entries[1].StickColor)
	assert.Equal(t, "control", entries[1].FeedbackType)
}

func TestEntries_Isolated(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	a, err := s.BeginSession(ctx, uuid.New(), time.Now())
	require.NoError(t, err)
	b, err := s.BeginSession(ctx, uuid.New(), time.Now())
	require.NoError(t, err)

	require.NoError(t, a.Write(ctx, eventlog.Entry{Seq: 0}))
	require.NoError(t, a.Write(ctx, eventlog.Entry{Seq: 1}))
	require.NoError(t, b.Write(ctx, eventlog.Entry{Seq: 0}))

	got, err := s.Entries(ctx, a.ID())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	got, err = s.Entries(ctx, b.ID())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, store.Memory)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()

	_, err = s.BeginSession(ctx, uuid.New(), time.Now())
	assert.NoError(t, err)
}

func TestOpen_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "katona.db")
	id := uuid.New()

	s, err := store.Open(ctx, path)
	require.NoError(t, err)
	_, err = s.BeginSession(ctx, id, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = store.Open(ctx, path)
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Close()) }()
	_, err = s.Session(ctx, id)
	assert.NoError(t, err)
}
