package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicktick/internal/domain"
	"quicktick/internal/llm"
	"quicktick/internal/report"
	"quicktick/internal/schedule"
	"quicktick/internal/store"
	"quicktick/internal/summary"
)

type echoLLM struct{ calls int }

func (e *echoLLM) Model() string { return "test-model" }

func (e *echoLLM) Complete(_ context.Context, req llm.Request) (*llm.Completion, error) {
	e.calls++
	return &llm.Completion{Text: "## Overview\n\n" + req.Prompt, Model: "test-model"}, nil
}

func TestDailyRun(t *testing.T) {
	dir := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	table := schedule.Table{{"AAA", "BBB"}, {"CCC"}}
	for len(table) < domain.TotalDays {
		table = append(table, []string{"ZZZ"})
	}

	cursorPath := filepath.Join(dir, "current_day.txt")
	require.NoError(t, os.WriteFile(cursorPath, []byte("1"), 0o644))
	cursor := schedule.NewCursorFile(cursorPath)

	rs := store.NewJSONStore(filepath.Join(dir, "data"))
	fake := &echoLLM{}

	gen := report.NewGenerator(fake, rs, log)
	gen.RequestDelay, gen.RetryDelay = 0, 0
	sum := summary.NewSummarizer(fake, rs, log)
	sum.RequestDelay, sum.RetryDelay = 0, 0

	manifestPath := filepath.Join(dir, "todays_tickers.json")
	pub := schedule.NewPublisher(cursor, manifestPath, log)
	pub.Table = table
	pub.Now = func() time.Time { return time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC) }

	d := &Daily{Table: table, Cursor: cursor, Generator: gen, Summarizer: sum, Publisher: pub, Log: log}
	require.NoError(t, d.Run(context.Background()))

	// Two reports plus two summaries.
	assert.Equal(t, 4, fake.calls)

	next, err := cursor.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, next)

	rec, err := rs.Load(context.Background(), "BBB")
	require.NoError(t, err)
	assert.True(t, rec.HasSummary())
	assert.Equal(t, 1, gen.Day)

	data, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	var m domain.Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 1, m.Day)
	assert.Equal(t, []string{"AAA", "BBB"}, m.Tickers)
}
