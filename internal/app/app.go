// Package app holds the wiring shared by the cmd/ tools: storage backend
// selection, profile source selection and ticker-list resolution.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"quicktick/internal/config"
	"quicktick/internal/llm"
	"quicktick/internal/pipeline"
	"quicktick/internal/report"
	"quicktick/internal/schedule"
	"quicktick/internal/sector"
	"quicktick/internal/store"
	"quicktick/internal/summary"
	"quicktick/internal/util"
)

// Stores holds the opened record store and run ledger.
type Stores struct {
	Records store.RecordStore
	Ledger  store.Ledger
	closers []func() error
}

// Close releases any database handles.
func (s *Stores) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OpenStores opens the configured record backend. With the JSON backend the
// run ledger still goes to SQLite when storage.sqlite_path is set.
func OpenStores(cfg *config.Config) (*Stores, error) {
	s := &Stores{Ledger: store.NopLedger{}}

	if cfg.Storage.SQLitePath != "" {
		sq, err := store.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite %s: %w", cfg.Storage.SQLitePath, err)
		}
		s.closers = append(s.closers, sq.Close)
		s.Ledger = sq
		if cfg.Storage.Backend == "sqlite" {
			s.Records = sq
		}
	}
	if s.Records == nil {
		s.Records = store.NewJSONStore(cfg.Storage.DataDir)
	}
	return s, nil
}

// NewLogger builds the logger described by cfg.Logging.
func NewLogger(cfg *config.Config) *slog.Logger {
	return util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
}

// NewProfileSource returns the configured sector profile source.
func NewProfileSource(cfg *config.Config) (sector.ProfileSource, error) {
	switch cfg.Sector.Source {
	case "finnhub":
		return sector.NewFinnhubSource(cfg.Finnhub.APIKey), nil
	case "alpaca":
		return sector.NewAlpacaSource(cfg.Alpaca.APIKey, cfg.Alpaca.APISecret, cfg.Alpaca.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown sector source %q", cfg.Sector.Source)
	}
}

// Selection says which tickers a job should process. The first non-empty
// field wins: List, then File, then Day; with none set the cursor decides.
type Selection struct {
	List string
	File string
	Day  int
}

// Resolve returns the tickers and the bucket day they came from (0 for
// ad-hoc lists). When nothing is selected, dueOrLast picks the day from the
// cursor.
func (s Selection) Resolve(table schedule.Table, dueOrLast func() int) ([]string, int, error) {
	switch {
	case s.List != "":
		return schedule.ParseTickerList(s.List), 0, nil
	case s.File != "":
		t, err := schedule.LoadTickerFile(s.File)
		return t, 0, err
	case s.Day != 0:
		t, err := table.Bucket(s.Day)
		return t, s.Day, err
	default:
		day := dueOrLast()
		t, err := table.Bucket(day)
		return t, day, err
	}
}

// WebSearch reports whether the configured provider should be offered its
// search tool. The xAI endpoint has none.
func WebSearch(cfg config.LLM) bool {
	switch strings.ToLower(cfg.Provider) {
	case "anthropic":
		return cfg.Anthropic.WebSearch
	case "gemini":
		return cfg.Gemini.WebSearch
	default:
		return false
	}
}

// NewGenerator builds a report generator with the configured retry and
// pacing settings.
func NewGenerator(cfg *config.Config, c llm.Completer, s *Stores, log *slog.Logger) *report.Generator {
	g := report.NewGenerator(c, s.Records, log)
	g.Ledger = s.Ledger
	g.MaxRetries = cfg.Report.MaxRetries
	g.RetryDelay = cfg.Report.RetryDelay
	g.RequestDelay = cfg.Report.RequestDelay
	g.MaxTokens = cfg.Report.MaxTokens
	g.WebSearch = WebSearch(cfg.LLM)
	return g
}

// NewSummarizer builds a summarizer with the configured retry and pacing
// settings.
func NewSummarizer(cfg *config.Config, c llm.Completer, s *Stores, log *slog.Logger) *summary.Summarizer {
	sum := summary.NewSummarizer(c, s.Records, log)
	sum.Ledger = s.Ledger
	sum.MaxRetries = cfg.Summary.MaxRetries
	sum.RetryDelay = cfg.Summary.RetryDelay
	sum.RequestDelay = cfg.Summary.RequestDelay
	sum.MaxTokens = cfg.Summary.MaxTokens
	return sum
}

// NewDaily wires the full daily pipeline against the configured provider,
// using the summary model for the summary step.
func NewDaily(ctx context.Context, cfg *config.Config, s *Stores, out io.Writer, log *slog.Logger) (*pipeline.Daily, error) {
	reportLLM, err := llm.New(ctx, cfg.LLM, llm.RoleReport)
	if err != nil {
		return nil, fmt.Errorf("report client: %w", err)
	}
	summaryLLM, err := llm.New(ctx, cfg.LLM, llm.RoleSummary)
	if err != nil {
		return nil, fmt.Errorf("summary client: %w", err)
	}

	cursor := schedule.NewCursorFile(cfg.Storage.CursorPath)
	return &pipeline.Daily{
		Table:      schedule.DefaultTable,
		Cursor:     cursor,
		Generator:  NewGenerator(cfg, reportLLM, s, log),
		Summarizer: NewSummarizer(cfg, summaryLLM, s, log),
		Publisher:  schedule.NewPublisher(cursor, cfg.Storage.ManifestPath, log),
		Out:        out,
		Log:        log,
	}, nil
}
