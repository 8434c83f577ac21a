package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"quicktick/internal/domain"
	"quicktick/internal/tally"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// Compile-time interface checks.
var _ RecordStore = (*SQLiteStore)(nil)
var _ Ledger = (*SQLiteStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	ticker     TEXT PRIMARY KEY,
	doc        TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	job         TEXT NOT NULL,
	day         INTEGER NOT NULL,
	started_at  TEXT NOT NULL,
	finished_at TEXT,
	total       INTEGER NOT NULL DEFAULT 0,
	successful  INTEGER NOT NULL DEFAULT 0,
	failed      INTEGER NOT NULL DEFAULT 0,
	skipped     INTEGER NOT NULL DEFAULT 0,
	cost        REAL NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS run_outcomes (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	ticker      TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	detail      TEXT NOT NULL DEFAULT '',
	recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_run_outcomes_run ON run_outcomes(run_id);
`

// SQLiteStore implements RecordStore and Ledger backed by a SQLite database.
// Report documents are stored as the same JSON the file store writes.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath, creates the
// schema, and returns a ready-to-use SQLiteStore.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// Jobs are sequential; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) stamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// ---------------------------------------------------------------------------
// RecordStore implementation
// ---------------------------------------------------------------------------

// Save upserts the full document for rec.Ticker.
func (s *SQLiteStore) Save(ctx context.Context, rec *domain.TickerRecord) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", rec.Ticker, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (ticker, doc, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(ticker) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		strings.ToUpper(rec.Ticker), string(doc), s.stamp())
	if err != nil {
		return fmt.Errorf("saving %s: %w", rec.Ticker, err)
	}
	return nil
}

// Load returns the stored document for ticker.
func (s *SQLiteStore) Load(ctx context.Context, ticker string) (*domain.TickerRecord, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM reports WHERE ticker = ?`, strings.ToUpper(ticker)).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", ticker, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", ticker, err)
	}
	var rec domain.TickerRecord
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ticker, err)
	}
	return &rec, nil
}

// MergeSummary sets $.tldr_summary in place with json_set.
func (s *SQLiteStore) MergeSummary(ctx context.Context, ticker, summary string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE reports SET doc = json_set(doc, '$.tldr_summary', ?), updated_at = ? WHERE ticker = ?`,
		summary, s.stamp(), strings.ToUpper(ticker))
	if err != nil {
		return fmt.Errorf("merging summary for %s: %w", ticker, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", ticker, ErrNotFound)
	}
	return nil
}

// List returns every stored ticker, sorted.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT ticker FROM reports ORDER BY ticker`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickers []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tickers = append(tickers, t)
	}
	return tickers, rows.Err()
}

// ---------------------------------------------------------------------------
// Ledger implementation
// ---------------------------------------------------------------------------

// BeginRun inserts a run row and returns its uuid.
func (s *SQLiteStore) BeginRun(ctx context.Context, job string, day int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, job, day, started_at) VALUES (?, ?, ?, ?)`,
		id, job, day, s.stamp())
	if err != nil {
		return "", fmt.Errorf("beginning run: %w", err)
	}
	return id, nil
}

// RecordOutcome appends one ticker's outcome to the run.
func (s *SQLiteStore) RecordOutcome(ctx context.Context, runID, ticker string, outcome Outcome, detail string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO run_outcomes (run_id, ticker, outcome, detail, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		runID, ticker, string(outcome), detail, s.stamp())
	if err != nil {
		return fmt.Errorf("recording outcome for %s: %w", ticker, err)
	}
	return nil
}

// FinishRun writes the final counters.
func (s *SQLiteStore) FinishRun(ctx context.Context, runID string, t *tally.Tally) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, total = ?, successful = ?, failed = ?, skipped = ?, cost = ?
		 WHERE id = ?`,
		s.stamp(), t.Total, t.Successful, t.Failed, t.Skipped, t.Cost, runID)
	if err != nil {
		return fmt.Errorf("finishing run %s: %w", runID, err)
	}
	return nil
}

// RunSummary is one row of the runs table.
type RunSummary struct {
	ID         string
	Job        string
	Day        int
	StartedAt  string
	FinishedAt string
	Total      int
	Successful int
	Failed     int
	Skipped    int
	Cost       float64
}

// RecentRuns returns up to limit runs, newest first.
func (s *SQLiteStore) RecentRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, job, day, started_at, COALESCE(finished_at, ''), total, successful, failed, skipped, cost
		 FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Job, &r.Day, &r.StartedAt, &r.FinishedAt,
			&r.Total, &r.Successful, &r.Failed, &r.Skipped, &r.Cost); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Outcomes returns the last recorded outcome per ticker for a run.
func (s *SQLiteStore) Outcomes(ctx context.Context, runID string) (map[string]Outcome, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ticker, outcome FROM run_outcomes WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]Outcome)
	for rows.Next() {
		var ticker, outcome string
		if err := rows.Scan(&ticker, &outcome); err != nil {
			return nil, err
		}
		out[ticker] = Outcome(outcome)
	}
	return out, rows.Err()
}
