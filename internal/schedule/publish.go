package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"quicktick/internal/domain"
	"quicktick/internal/util"
)

// BuildManifest describes the tickers in table's bucket for day.
func BuildManifest(table Table, day int, now time.Time) (*domain.Manifest, error) {
	tickers, err := table.Bucket(day)
	if err != nil {
		return nil, err
	}
	return &domain.Manifest{
		GeneratedAt: now,
		Date:        domain.DisplayDate(now),
		Day:         day,
		TotalDays:   domain.TotalDays,
		Tickers:     tickers,
		Count:       len(tickers),
	}, nil
}

// Publisher writes the "today's tickers" manifest for the bucket processed by
// the most recent run.
type Publisher struct {
	Table  Table
	Cursor CursorReader
	Path   string
	Now    func() time.Time
	Log    *slog.Logger
}

// NewPublisher returns a Publisher over DefaultTable.
func NewPublisher(cursor CursorReader, path string, log *slog.Logger) *Publisher {
	return &Publisher{
		Table:  DefaultTable,
		Cursor: cursor,
		Path:   path,
		Now:    time.Now,
		Log:    log.With("job", "publish"),
	}
}

// Name implements jobs.Job.
func (p *Publisher) Name() string { return "publish" }

// Run implements jobs.Job.
func (p *Publisher) Run(_ context.Context) error {
	_, err := p.Publish()
	return err
}

// Publish resolves the last-run day from the cursor, then builds and writes
// the manifest as indented JSON.
func (p *Publisher) Publish() (*domain.Manifest, error) {
	day := LastRunDay(p.Cursor, p.Log)
	m, err := BuildManifest(p.Table, day, p.Now())
	if err != nil {
		return nil, fmt.Errorf("building manifest: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := util.WriteFileAtomic(p.Path, append(data, '\n')); err != nil {
		return nil, err
	}

	p.Log.Info("manifest published", "day", m.Day, "count", m.Count, "path", p.Path)
	return m, nil
}
