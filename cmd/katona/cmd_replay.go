// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/katona/clock"
	"github.com/katalvlaran/katona/config"
	"github.com/katalvlaran/katona/metrics"
	"github.com/katalvlaran/katona/session"
	"github.com/katalvlaran/katona/store"
)

type replayFlags struct {
	config  string
	script  string
	db      string
	metrics bool
	timeout time.Duration
}

func newReplayCmd(a *app) *cobra.Command {
	var f replayFlags
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a scripted participant through a puzzle session",
		Long: `Runs every step of a script through a session on a manual clock and prints
each semantic event with its verdict and impasse classification, then the
outcome. With --db the log entries are stored in SQLite; the storage path
of the experiment file is used when --db is empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), f.timeout)
			defer cancel()
			return a.replay(ctx, cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "Experiment file (required)")
	cmd.Flags().StringVarP(&f.script, "script", "s", "", "Script file (required)")
	cmd.Flags().StringVar(&f.db, "db", "", "SQLite database for the log entries")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "Print the session counters")
	cmd.Flags().DurationVar(&f.timeout, "timeout", time.Minute, "Replay timeout")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

func (a *app) replay(ctx context.Context, out io.Writer, f replayFlags) (err error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if err := a.applyLevel(cfg.Logging.Level); err != nil {
		return err
	}
	sc, err := loadScript(f.script)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	clk := clock.NewManual(0)
	opts := []session.Option{
		session.WithLogger(a.logger),
		session.WithClock(clk),
		session.WithMetrics(metrics.New(metrics.Config{
			Namespace: cfg.Metrics.Namespace,
			Subsystem: cfg.Metrics.Subsystem,
			Registry:  reg,
		})),
		session.WithEventHook(func(r session.Report) {
			fmt.Fprintf(out, "%v | verdict: %v | impasse: %v\n", r.Event, r.Verdict, r.Impasse)
		}),
	}

	dbPath := f.db
	if dbPath == "" {
		dbPath = cfg.Storage.Path
	}
	var (
		db         *store.Store
		sessionLog *store.SessionLog
	)
	if dbPath != "" {
		db, err = store.Open(ctx, dbPath, store.WithLogger(a.logger))
		if err != nil {
			return err
		}
		defer func() {
			if cerr := db.Close(); err == nil {
				err = cerr
			}
		}()
		if sessionLog, err = db.BeginSession(ctx, uuid.New(), time.Now()); err != nil {
			return err
		}
		opts = append(opts, session.WithID(sessionLog.ID()), session.WithSink(sessionLog))
	}

	s, err := session.New(cfg, opts...)
	if err != nil {
		return err
	}
	ticks, err := sc.ticks(s.Grid())
	if err != nil {
		return err
	}

	for _, t := range ticks {
		clk.Set(t.At)
		if _, err := s.Tick(ctx, t.Input); err != nil {
			if errors.Is(err, session.ErrFinished) {
				break
			}
			return err
		}
	}
	if !s.Outcome().Final() {
		if err := s.Flush(ctx); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "outcome: %v after %v (%d moves, streak %d)\n",
		s.Outcome(), clk.Now(), s.Moves(), s.Streak())

	if db != nil {
		if err := db.EndSession(ctx, s.ID(), time.Now(), s.Outcome().String()); err != nil {
			return err
		}
		a.logger.Info("session stored", zap.Stringer("session", s.ID()), zap.String("db", dbPath))
		fmt.Fprintf(out, "session: %v\n", s.ID())
	}
	if f.metrics {
		return printCounters(out, reg)
	}
	return nil
}

// printCounters writes every counter series of reg as name{labels} value.
func printCounters(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	var lines []string
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", fam.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}
