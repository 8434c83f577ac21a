package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"quicktick/internal/jobs"
)

// Cron runs Job on a standard five-field cron schedule until the context is
// cancelled. Overlapping firings are skipped while a run is in progress.
type Cron struct {
	Spec string
	Job  jobs.Job
	Log  *slog.Logger
}

// Name implements jobs.Job.
func (c *Cron) Name() string { return "cron:" + c.Job.Name() }

// Run blocks until ctx is done, then waits for an in-flight run to return.
func (c *Cron) Run(ctx context.Context) error {
	logger := cron.PrintfLogger(slog.NewLogLogger(c.Log.Handler(), slog.LevelDebug))
	cr := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	id, err := cr.AddFunc(c.Spec, func() {
		if err := c.Job.Run(ctx); err != nil {
			c.Log.Error("scheduled run failed", "job", c.Job.Name(), "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", c.Spec, err)
	}

	cr.Start()
	c.Log.Info("scheduler started", "job", c.Job.Name(), "cron", c.Spec, "next", cr.Entry(id).Next)

	<-ctx.Done()
	<-cr.Stop().Done()
	c.Log.Info("scheduler stopped", "job", c.Job.Name())
	return nil
}
