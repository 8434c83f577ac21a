// Package jobs defines the unit of work the CLI tools, pipeline and daemon
// compose.
package jobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"quicktick/internal/tally"
)

// Job is the interface for all batch processes.
type Job interface {
	// Name returns the job identifier.
	Name() string
	// Run performs one pass and blocks until it completes or ctx is cancelled.
	Run(ctx context.Context) error
}

// TickerFunc processes an ordered ticker list and reports per-ticker
// outcomes.
type TickerFunc func(ctx context.Context, tickers []string) (*tally.Tally, error)

// Batch adapts a TickerFunc into a Job over a lazily resolved ticker list.
// The end-of-run tally is logged and, when Out is set, rendered as a table.
type Batch struct {
	JobName string
	Tickers func() ([]string, error)
	Fn      TickerFunc
	Out     io.Writer
	Log     *slog.Logger

	// Last holds the tally of the most recent Run.
	Last *tally.Tally
}

// Name implements Job.
func (b *Batch) Name() string { return b.JobName }

// Run implements Job.
func (b *Batch) Run(ctx context.Context) error {
	tickers, err := b.Tickers()
	if err != nil {
		return fmt.Errorf("%s: resolving tickers: %w", b.JobName, err)
	}
	t, err := b.Fn(ctx, tickers)
	b.Last = t
	if t != nil {
		t.Log(b.Log)
		if b.Out != nil {
			t.Render(b.Out)
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", b.JobName, err)
	}
	return nil
}

// Fixed returns a ticker resolver for a constant list.
func Fixed(tickers []string) func() ([]string, error) {
	return func() ([]string, error) { return tickers, nil }
}

// RunAll runs jobs in order and stops at the first error.
func RunAll(ctx context.Context, log *slog.Logger, js ...Job) error {
	for _, j := range js {
		log.Info("job starting", "job", j.Name())
		if err := j.Run(ctx); err != nil {
			return err
		}
		log.Info("job finished", "job", j.Name())
	}
	return nil
}
