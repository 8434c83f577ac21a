// Package pipeline chains the daily jobs: generate the due bucket, advance
// the cursor, summarize, publish.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"quicktick/internal/jobs"
	"quicktick/internal/report"
	"quicktick/internal/schedule"
	"quicktick/internal/summary"
)

// Daily runs one full day of the rotation.
type Daily struct {
	Table      schedule.Table
	Cursor     *schedule.CursorFile
	Generator  *report.Generator
	Summarizer *summary.Summarizer
	Publisher  *schedule.Publisher
	Out        io.Writer
	Log        *slog.Logger
}

// Name implements jobs.Job.
func (d *Daily) Name() string { return "daily" }

// Run processes the bucket named by the cursor, then persists the advanced
// cursor. The cursor is left alone if generation is interrupted so a rerun
// picks up the same bucket. Summary and publish run against the bucket just
// generated.
func (d *Daily) Run(ctx context.Context) error {
	day := schedule.DueDay(d.Cursor, d.Log)
	tickers, err := d.Table.Bucket(day)
	if err != nil {
		return fmt.Errorf("resolving bucket: %w", err)
	}
	d.Log.Info("daily run", "day", day, "tickers", len(tickers))

	d.Generator.Day = day
	gen := &jobs.Batch{
		JobName: "report",
		Tickers: jobs.Fixed(tickers),
		Fn:      d.Generator.Run,
		Out:     d.Out,
		Log:     d.Log,
	}
	if err := gen.Run(ctx); err != nil {
		return err
	}

	next, err := schedule.Advance(day)
	if err != nil {
		return err
	}
	if err := d.Cursor.Save(next); err != nil {
		return fmt.Errorf("saving cursor: %w", err)
	}
	d.Log.Info("cursor advanced", "from", day, "to", next)

	d.Summarizer.Day = day
	sum := &jobs.Batch{
		JobName: "summary",
		Tickers: jobs.Fixed(tickers),
		Fn:      d.Summarizer.Run,
		Out:     d.Out,
		Log:     d.Log,
	}
	return jobs.RunAll(ctx, d.Log, sum, d.Publisher)
}
