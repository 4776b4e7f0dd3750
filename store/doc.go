// SPDX-License-Identifier: MIT

// Package store persists session logs in SQLite.
//
// A Store holds two tables: sessions (one row per puzzle run) and entries
// (the eventlog rows of each run). SessionLog binds a session id to the
// store and implements eventlog.Sink, so a Recorder can write straight to
// disk. The database is opened through the pure-Go modernc.org/sqlite
// driver; no cgo is needed.
package store
