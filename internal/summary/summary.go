// Package summary condenses stored reports into short TLDR summaries.
package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"quicktick/internal/llm"
	"quicktick/internal/store"
	"quicktick/internal/tally"
	"quicktick/internal/util"
)

const promptTemplate = `Below is a full equity research report. Condense it into a TLDR for an individual investor.

Report:

%s

Structure:
1. One or two sentences on what the company does.
2. The points that matter most when deciding whether to invest: main products or services, growth strategy, market position and key competitors, significant recent developments (leave out routine earnings news), and a qualitative read on financial performance.
3. One closing sentence giving the AI buy rating and fair value, with the reasoning behind them.

Keep it between 100 and 150 words, professional and direct. Output only the summary text with no lead-in.`

// Prompt builds the summarization request for a report body.
func Prompt(content string) string {
	return fmt.Sprintf(promptTemplate, content)
}

// Summarizer adds tldr_summary to stored reports.
type Summarizer struct {
	LLM    llm.Completer
	Store  store.RecordStore
	Ledger store.Ledger
	Log    *slog.Logger

	MaxRetries   int
	RetryDelay   time.Duration
	RequestDelay time.Duration
	MaxTokens    int

	// Force regenerates summaries that already exist.
	Force bool
	Day   int
}

// NewSummarizer returns a Summarizer with the standard retry and pacing
// settings.
func NewSummarizer(c llm.Completer, rs store.RecordStore, log *slog.Logger) *Summarizer {
	return &Summarizer{
		LLM:          c,
		Store:        rs,
		Ledger:       store.NopLedger{},
		Log:          log.With("job", "summary"),
		MaxRetries:   3,
		RetryDelay:   60 * time.Second,
		RequestDelay: 2 * time.Second,
		MaxTokens:    300,
	}
}

// Run summarizes each ticker's report in order. Missing reports, empty
// content and existing summaries (unless Force) are skipped.
func (s *Summarizer) Run(ctx context.Context, tickers []string) (*tally.Tally, error) {
	t := tally.New("summary", len(tickers))

	runID, err := s.Ledger.BeginRun(ctx, "summary", s.Day)
	if err != nil {
		s.Log.Warn("ledger unavailable", "error", err)
	}
	log := s.Log.With("run", runID)
	log.Info("starting summary run", "tickers", len(tickers), "model", s.LLM.Model(), "force", s.Force)

	defer func() {
		t.Finish()
		if err := s.Ledger.FinishRun(context.WithoutCancel(ctx), runID, t); err != nil {
			log.Warn("recording run failed", "error", err)
		}
	}()

	called := false
	for _, ticker := range tickers {
		rec, err := s.Store.Load(ctx, ticker)
		switch {
		case errors.Is(err, store.ErrNotFound):
			log.Warn("no report found, skipping", "ticker", ticker)
			s.finish(ctx, t, runID, ticker, store.OutcomeSkipped, "no report")
			continue
		case err != nil:
			log.Error("loading report failed", "ticker", ticker, "error", err)
			s.finish(ctx, t, runID, ticker, store.OutcomeFailed, err.Error())
			continue
		case strings.TrimSpace(rec.Content) == "":
			log.Warn("report has no content, skipping", "ticker", ticker)
			s.finish(ctx, t, runID, ticker, store.OutcomeSkipped, "no content")
			continue
		case rec.HasSummary() && !s.Force:
			log.Info("summary exists, skipping", "ticker", ticker)
			s.finish(ctx, t, runID, ticker, store.OutcomeSkipped, "exists")
			continue
		}

		if called {
			if err := util.Sleep(ctx, s.RequestDelay); err != nil {
				return t, err
			}
		}
		called = true

		cost, err := s.summarizeOne(ctx, ticker, rec.Content)
		if err != nil {
			if ctx.Err() != nil {
				return t, ctx.Err()
			}
			log.Error("summary failed", "ticker", ticker, "error", err)
			s.finish(ctx, t, runID, ticker, store.OutcomeFailed, err.Error())
			continue
		}
		t.AddCost(cost)
		log.Info("summary saved", "ticker", ticker, "cost_usd", fmt.Sprintf("%.4f", cost))
		s.finish(ctx, t, runID, ticker, store.OutcomeSuccess, "")
	}
	return t, nil
}

func (s *Summarizer) finish(ctx context.Context, t *tally.Tally, runID, ticker string, o store.Outcome, detail string) {
	switch o {
	case store.OutcomeSuccess:
		t.Success()
	case store.OutcomeFailed:
		t.Fail()
	default:
		t.Skip()
	}
	if err := s.Ledger.RecordOutcome(ctx, runID, ticker, o, detail); err != nil {
		s.Log.Warn("recording outcome failed", "ticker", ticker, "error", err)
	}
}

// summarizeOne generates and merges the summary, returning its cost.
func (s *Summarizer) summarizeOne(ctx context.Context, ticker, content string) (float64, error) {
	var summary string
	var cost float64
	backoff := util.RateLimitBackoff(s.RetryDelay, llm.IsRateLimit)
	err := util.RetryWithBackoff(ctx, s.MaxRetries, backoff, func(attempt int) error {
		comp, err := s.LLM.Complete(ctx, llm.Request{
			Prompt:    Prompt(content),
			MaxTokens: s.MaxTokens,
		})
		if err != nil {
			s.Log.Warn("attempt failed", "ticker", ticker, "attempt", attempt+1, "max", s.MaxRetries, "error", err)
			return err
		}
		summary = strings.TrimSpace(comp.Text)
		if summary == "" {
			err = errors.New("empty summary")
			s.Log.Warn("attempt failed", "ticker", ticker, "attempt", attempt+1, "max", s.MaxRetries, "error", err)
			return err
		}
		cost = llm.EstimateCost(comp.Model, comp.Usage)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ticker, err)
	}
	if err := s.Store.MergeSummary(ctx, ticker, summary); err != nil {
		return 0, fmt.Errorf("saving summary for %s: %w", ticker, err)
	}
	return cost, nil
}
