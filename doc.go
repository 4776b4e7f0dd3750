// SPDX-License-Identifier: MIT

// Package katona is the interaction and verification engine of the Katona
// five-squares matchstick puzzle.
//
// The participant sees sixteen sticks forming five squares and must move
// three of them so that four squares remain. The engine turns raw pointer
// state into semantic events, judges every relocation against a catalogue
// of solutions and flags unusually long pauses.
//
// Packages:
//
//	grid/      diamond cell table, centred (row, col) addressing, geometry
//	movement/  pointer-driven pick up / put down state machine
//	verify/    solution catalogue and locking verifier
//	impasse/   online mean + 2·stddev pause detector
//	event/     semantic event vocabulary
//	clock/     monotonic and manual time sources
//	feedback/  timed and phrase-rotation feedback variants
//	training/  tutorial stages with completion predicates
//	config/    YAML experiment files with validation
//	eventlog/  research log entries assembled from events
//	store/     SQLite persistence of sessions and entries
//	metrics/   Prometheus collectors
//	session/   one puzzle attempt, ticked by the host
//
// The katona command (cmd/katona) prints grids, validates experiment files
// and replays scripted input through a session.
//
// Everything is single-threaded and tick-driven: the host calls
// session.Session.Tick once per frame and no package starts goroutines.
package katona
