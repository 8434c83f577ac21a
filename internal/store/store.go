// Package store defines storage interfaces for persisting and retrieving
// per-ticker reports, the company lookup table, and the run ledger.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"quicktick/internal/domain"
	"quicktick/internal/tally"
)

// ErrNotFound is returned when no record exists for a ticker.
var ErrNotFound = errors.New("record not found")

// RecordStore persists and retrieves per-ticker report records.
type RecordStore interface {
	// Save writes rec, replacing any existing record for rec.Ticker.
	Save(ctx context.Context, rec *domain.TickerRecord) error

	// Load returns the record for ticker, or ErrNotFound.
	Load(ctx context.Context, ticker string) (*domain.TickerRecord, error)

	// MergeSummary sets tldr_summary on an existing record and leaves every
	// other stored field untouched. Returns ErrNotFound when absent.
	MergeSummary(ctx context.Context, ticker, summary string) error

	// List returns the tickers that have a stored record, sorted.
	List(ctx context.Context) ([]string, error)
}

// Outcome is the final status of one ticker within a run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

// Ledger records job runs and per-ticker outcomes.
type Ledger interface {
	// BeginRun registers a new run and returns its id.
	BeginRun(ctx context.Context, job string, day int) (string, error)

	// RecordOutcome appends the outcome for one ticker.
	RecordOutcome(ctx context.Context, runID, ticker string, outcome Outcome, detail string) error

	// FinishRun stores the final counters for the run.
	FinishRun(ctx context.Context, runID string, t *tally.Tally) error
}

// NopLedger discards everything but still hands out run ids so log lines
// can be correlated.
type NopLedger struct{}

var _ Ledger = NopLedger{}

func (NopLedger) BeginRun(context.Context, string, int) (string, error) {
	return uuid.NewString(), nil
}

func (NopLedger) RecordOutcome(context.Context, string, string, Outcome, string) error {
	return nil
}

func (NopLedger) FinishRun(context.Context, string, *tally.Tally) error { return nil }
