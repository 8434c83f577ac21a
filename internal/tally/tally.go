// Package tally accumulates per-run counters for the batch jobs and renders
// them as an end-of-run summary.
package tally

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Tally counts per-ticker outcomes for one job run. It is not safe for
// concurrent use; jobs process tickers sequentially.
type Tally struct {
	Job        string
	Total      int
	Successful int
	Failed     int
	Skipped    int
	Cost       float64
	Started    time.Time
	Finished   time.Time

	// Extra holds job-specific counters (e.g. "sector_mapped").
	Extra map[string]int
}

// New starts a tally for job over total tickers.
func New(job string, total int) *Tally {
	return &Tally{Job: job, Total: total, Started: time.Now()}
}

func (t *Tally) Success()          { t.Successful++ }
func (t *Tally) Fail()             { t.Failed++ }
func (t *Tally) Skip()             { t.Skipped++ }
func (t *Tally) AddCost(c float64) { t.Cost += c }

// Inc bumps a named job-specific counter.
func (t *Tally) Inc(name string) {
	if t.Extra == nil {
		t.Extra = make(map[string]int)
	}
	t.Extra[name]++
}

// Finish stamps the end time.
func (t *Tally) Finish() { t.Finished = time.Now() }

// Processed returns the number of tickers that reached a final outcome.
func (t *Tally) Processed() int { return t.Successful + t.Failed + t.Skipped }

// Elapsed returns the run duration, measured to now if unfinished.
func (t *Tally) Elapsed() time.Duration {
	end := t.Finished
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(t.Started)
}

// AveragePerTicker returns the mean time spent per processed ticker.
func (t *Tally) AveragePerTicker() time.Duration {
	n := t.Processed()
	if n == 0 {
		return 0
	}
	return t.Elapsed() / time.Duration(n)
}

// Log writes the summary as a single structured record.
func (t *Tally) Log(log *slog.Logger) {
	attrs := []any{
		"job", t.Job,
		"total", t.Total,
		"successful", t.Successful,
		"failed", t.Failed,
		"skipped", t.Skipped,
		"elapsed", t.Elapsed().Round(time.Second),
		"avg_per_ticker", t.AveragePerTicker().Round(time.Millisecond),
	}
	if t.Cost > 0 {
		attrs = append(attrs, "cost_usd", fmt.Sprintf("%.4f", t.Cost))
	}
	for k, v := range t.Extra {
		attrs = append(attrs, k, v)
	}
	log.Info("run complete", attrs...)
}

// Render prints the summary as a two-column table.
func (t *Tally) Render(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(fmt.Sprintf("%s summary", t.Job))
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	tw.AppendRow(table.Row{"Total", t.Total})
	tw.AppendRow(table.Row{"Successful", t.Successful})
	tw.AppendRow(table.Row{"Failed", t.Failed})
	tw.AppendRow(table.Row{"Skipped", t.Skipped})
	for _, k := range sortedKeys(t.Extra) {
		tw.AppendRow(table.Row{k, t.Extra[k]})
	}
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Elapsed", t.Elapsed().Round(time.Second).String()})
	tw.AppendRow(table.Row{"Avg per ticker", t.AveragePerTicker().Round(time.Millisecond).String()})
	if t.Cost > 0 {
		tw.AppendRow(table.Row{"Estimated cost", fmt.Sprintf("$%.4f", t.Cost)})
	}
	tw.Render()
}
