// Package report generates per-ticker analysis reports with an LLM and
// normalizes them into the stored layout.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"quicktick/internal/domain"
	"quicktick/internal/llm"
	"quicktick/internal/store"
	"quicktick/internal/tally"
	"quicktick/internal/util"
)

// Generator writes one report per ticker, strictly sequentially.
type Generator struct {
	LLM    llm.Completer
	Store  store.RecordStore
	Ledger store.Ledger
	Log    *slog.Logger

	MaxRetries   int
	RetryDelay   time.Duration
	RequestDelay time.Duration
	MaxTokens    int
	WebSearch    bool

	// Day is recorded in the run ledger; 0 for ad-hoc ticker lists.
	Day int
	Now func() time.Time
}

// NewGenerator returns a Generator with the standard retry and pacing
// settings.
func NewGenerator(c llm.Completer, rs store.RecordStore, log *slog.Logger) *Generator {
	return &Generator{
		LLM:          c,
		Store:        rs,
		Ledger:       store.NopLedger{},
		Log:          log.With("job", "report"),
		MaxRetries:   5,
		RetryDelay:   120 * time.Second,
		RequestDelay: 20 * time.Second,
		MaxTokens:    8000,
		WebSearch:    true,
		Now:          time.Now,
	}
}

// Run generates reports for tickers in order. Per-ticker failures are counted
// and never abort the batch; only context cancellation stops it early.
func (g *Generator) Run(ctx context.Context, tickers []string) (*tally.Tally, error) {
	t := tally.New("report", len(tickers))

	runID, err := g.Ledger.BeginRun(ctx, "report", g.Day)
	if err != nil {
		g.Log.Warn("ledger unavailable", "error", err)
	}
	log := g.Log.With("run", runID)
	log.Info("starting report run", "tickers", len(tickers), "model", g.LLM.Model(), "day", g.Day)

	// Interrupted runs still record their partial tally.
	defer func() {
		t.Finish()
		if err := g.Ledger.FinishRun(context.WithoutCancel(ctx), runID, t); err != nil {
			log.Warn("recording run failed", "error", err)
		}
	}()

	for i, ticker := range tickers {
		if i > 0 {
			if err := util.Sleep(ctx, g.RequestDelay); err != nil {
				return t, err
			}
		}

		log.Info("generating", "ticker", ticker, "n", i+1, "of", len(tickers))
		rec, err := g.GenerateOne(ctx, ticker)
		switch {
		case err == nil:
			t.Success()
			t.AddCost(rec.Cost)
			g.record(ctx, log, runID, ticker, store.OutcomeSuccess, "")
			log.Info("report saved", "ticker", ticker, "cost_usd", fmt.Sprintf("%.4f", rec.Cost),
				"cache_hit", rec.Tokens != nil && rec.Tokens.CacheRead > 0)
		case ctx.Err() != nil:
			return t, ctx.Err()
		default:
			t.Fail()
			g.record(ctx, log, runID, ticker, store.OutcomeFailed, err.Error())
			log.Error("report failed, skipping", "ticker", ticker, "error", err)
		}
	}
	return t, nil
}

func (g *Generator) record(ctx context.Context, log *slog.Logger, runID, ticker string, o store.Outcome, detail string) {
	if err := g.Ledger.RecordOutcome(ctx, runID, ticker, o, detail); err != nil {
		log.Warn("recording outcome failed", "ticker", ticker, "error", err)
	}
}

// GenerateOne requests, normalizes, and saves the report for a single
// ticker, retrying transient failures.
func (g *Generator) GenerateOne(ctx context.Context, ticker string) (*domain.TickerRecord, error) {
	var comp *llm.Completion
	backoff := util.RateLimitBackoff(g.RetryDelay, llm.IsRateLimit)
	err := util.RetryWithBackoff(ctx, g.MaxRetries, backoff, func(attempt int) error {
		var err error
		comp, err = g.LLM.Complete(ctx, llm.Request{
			System:    SystemPrompt,
			Prompt:    UserPrompt(ticker),
			MaxTokens: g.MaxTokens,
			WebSearch: g.WebSearch,
		})
		if err != nil {
			g.logAttempt(ticker, attempt, err)
			return err
		}
		if strings.TrimSpace(comp.Text) == "" {
			err = errors.New("empty completion")
			g.logAttempt(ticker, attempt, err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: after %d attempts: %w", ticker, g.MaxRetries, err)
	}

	now := g.Now()
	next := domain.NewTimestamp(now.Add(domain.RefreshInterval))
	model := comp.Model
	if model == "" {
		model = g.LLM.Model()
	}
	norm := Normalizer{ModelLabel: ModelLabel(model), Generated: now}

	usage := comp.Usage
	rec := &domain.TickerRecord{
		Ticker:          ticker,
		Content:         norm.Normalize(comp.Text, ticker),
		GeneratedDate:   domain.NewTimestamp(now),
		NextRefreshDate: &next,
		Model:           model,
		Cost:            llm.EstimateCost(model, usage),
		Tokens:          &usage,
	}
	if err := g.Store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving %s: %w", ticker, err)
	}
	return rec, nil
}

func (g *Generator) logAttempt(ticker string, attempt int, err error) {
	attrs := []any{"ticker", ticker, "attempt", attempt + 1, "max", g.MaxRetries, "error", err}
	msg := strings.ToLower(err.Error())
	switch {
	case llm.IsRateLimit(err):
		g.Log.Warn("rate limited, backing off", attrs...)
	case strings.Contains(msg, "unable to access") || strings.Contains(msg, "web search"):
		g.Log.Warn("web search temporarily unavailable", attrs...)
	default:
		g.Log.Warn("attempt failed", attrs...)
	}
}
