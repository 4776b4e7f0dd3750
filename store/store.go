// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/katona/eventlog"
	"github.com/katalvlaran/katona/grid"
)

// Memory is the path of a private in-memory database.
const Memory = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	started_at  INTEGER NOT NULL,
	ended_at    INTEGER,
	outcome     TEXT
);
CREATE TABLE IF NOT EXISTS entries (
	session_id            TEXT NOT NULL REFERENCES sessions(id),
	seq                   INTEGER NOT NULL,
	move_start            REAL,
	move_end              REAL,
	reset_problem         REAL,
	o_impasse_move_start  INTEGER,
	o_impasse_move_end    INTEGER,
	s_impasse             REAL,
	feedback              INTEGER,
	feedback_type         TEXT,
	stick_idx             INTEGER,
	stick_color           TEXT,
	start_row             INTEGER,
	start_col             INTEGER,
	end_row               INTEGER,
	end_col               INTEGER,
	failure               INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (session_id, seq)
);
`

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("store: WithLogger(nil)")
	}
	return func(s *Store) {
		s.log = l
	}
}

// Store is a SQLite-backed session archive. Safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
	log  *zap.Logger
}

// Open opens or creates the database at path and ensures the schema.
// Parent directories are created as needed.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if path != Memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("store: create directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// A single connection keeps :memory: databases alive and serialises
	// writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path, log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	if err := s.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	s.log.Debug("store opened", zap.String("path", path))
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("store: init schema: %w", err)
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("store: close: %w", err)
	}
	return nil
}

// Session is one row of the sessions table.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time
	EndedAt   time.Time // zero while running
	Outcome   string
}

// BeginSession inserts a session row and returns a sink bound to it.
func (s *Store) BeginSession(ctx context.Context, id uuid.UUID, started time.Time) (*SessionLog, error) {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		id.String(), started.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("store: begin session %s: %w", id, err)
	}
	s.log.Debug("session started", zap.Stringer("session", id))
	return &SessionLog{store: s, id: id}, nil
}

// EndSession records the outcome of a session.
func (s *Store) EndSession(ctx context.Context, id uuid.UUID, ended time.Time, outcome string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ?, outcome = ? WHERE id = ?`,
		ended.UnixNano(), outcome, id.String())
	if err != nil {
		return fmt.Errorf("store: end session %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	return nil
}

// Session returns the row of session id.
func (s *Store) Session(ctx context.Context, id uuid.UUID) (Session, error) {
	var (
		started int64
		ended   sql.NullInt64
		outcome sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT started_at, ended_at, outcome FROM sessions WHERE id = ?`,
		id.String()).Scan(&started, &ended, &outcome)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	if err != nil {
		return Session{}, fmt.Errorf("store: session %s: %w", id, err)
	}
	out := Session{ID: id, StartedAt: time.Unix(0, started), Outcome: outcome.String}
	if ended.Valid {
		out.EndedAt = time.Unix(0, ended.Int64)
	}
	return out, nil
}

// SessionLog writes the entries of one session. It implements
// eventlog.Sink.
type SessionLog struct {
	store *Store
	id    uuid.UUID
}

// ID returns the bound session id.
func (l *SessionLog) ID() uuid.UUID { return l.id }

// Write inserts e.
func (l *SessionLog) Write(ctx context.Context, e eventlog.Entry) error {
	startRow, startCol := place(e.MoveStartPlace)
	endRow, endCol := place(e.MoveEndPlace)
	_, err := l.store.db.ExecContext(ctx, `
		INSERT INTO entries (
			session_id, seq, move_start, move_end, reset_problem,
			o_impasse_move_start, o_impasse_move_end, s_impasse, feedback,
			feedback_type, stick_idx, stick_color,
			start_row, start_col, end_row, end_col, failure
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.id.String(), e.Seq,
		seconds(e.MoveStart), seconds(e.MoveEnd), seconds(e.Reset),
		flag(e.ImpasseMoveStart), flag(e.ImpasseMoveEnd),
		seconds(e.SubjectiveImpasse), flag(e.Feedback),
		text(e.FeedbackType), integer(e.Stick), text(e.StickColor),
		startRow, startCol, endRow, endCol, e.Failure,
	)
	if err != nil {
		return fmt.Errorf("store: write entry %d of %s: %w", e.Seq, l.id, err)
	}
	return nil
}

// Entries returns the entries of session id ordered by sequence number.
func (s *Store) Entries(ctx context.Context, id uuid.UUID) ([]eventlog.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, move_start, move_end, reset_problem,
			o_impasse_move_start, o_impasse_move_end, s_impasse, feedback,
			feedback_type, stick_idx, stick_color,
			start_row, start_col, end_row, end_col, failure
		FROM entries WHERE session_id = ? ORDER BY seq`, id.String())
	if err != nil {
		return nil, fmt.Errorf("store: entries of %s: %w", id, err)
	}
	defer rows.Close()

	var out []eventlog.Entry
	for rows.Next() {
		var (
			e                                  eventlog.Entry
			start, end, reset, subjective      sql.NullFloat64
			oStart, oEnd, fb                   sql.NullBool
			fbType, color                      sql.NullString
			stick                              sql.NullInt64
			startRow, startCol, endRow, endCol sql.NullInt64
		)
		if err := rows.Scan(&e.Seq, &start, &end, &reset,
			&oStart, &oEnd, &subjective, &fb,
			&fbType, &stick, &color, &startRow, &startCol, &endRow, &endCol, &e.Failure); err != nil {
			return nil, fmt.Errorf("store: scan entry of %s: %w", id, err)
		}
		e.MoveStart = duration(start)
		e.MoveEnd = duration(end)
		e.Reset = duration(reset)
		e.SubjectiveImpasse = duration(subjective)
		e.ImpasseMoveStart = boolean(oStart)
		e.ImpasseMoveEnd = boolean(oEnd)
		e.Feedback = boolean(fb)
		e.FeedbackType = fbType.String
		e.StickColor = color.String
		if stick.Valid {
			v := int(stick.Int64)
			e.Stick = &v
		}
		e.MoveStartPlace = index(startRow, startCol)
		e.MoveEndPlace = index(endRow, endCol)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: entries of %s: %w", id, err)
	}
	return out, nil
}

func seconds(d *time.Duration) sql.NullFloat64 {
	if d == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: d.Seconds(), Valid: true}
}

func duration(v sql.NullFloat64) *time.Duration {
	if !v.Valid {
		return nil
	}
	d := time.Duration(math.Round(v.Float64 * float64(time.Second)))
	return &d
}

func flag(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func boolean(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}

func text(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func integer(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func place(i *grid.Index) (sql.NullInt64, sql.NullInt64) {
	if i == nil {
		return sql.NullInt64{}, sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(i.Row), Valid: true}, sql.NullInt64{Int64: int64(i.Col), Valid: true}
}

func index(row, col sql.NullInt64) *grid.Index {
	if !row.Valid || !col.Valid {
		return nil
	}
	return &grid.Index{Row: int(row.Int64), Col: int(col.Int64)}
}
