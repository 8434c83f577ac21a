package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicktick/internal/config"
	"quicktick/internal/domain"
	"quicktick/internal/schedule"
	"quicktick/internal/store"
)

func TestOpenStores(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.DataDir = t.TempDir()

	s, err := OpenStores(cfg)
	require.NoError(t, err)
	assert.IsType(t, &store.JSONStore{}, s.Records)
	assert.IsType(t, store.NopLedger{}, s.Ledger)
	require.NoError(t, s.Close())

	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "q.db")
	s, err = OpenStores(cfg)
	require.NoError(t, err)
	assert.IsType(t, &store.JSONStore{}, s.Records)
	assert.IsType(t, &store.SQLiteStore{}, s.Ledger)
	require.NoError(t, s.Close())

	cfg.Storage.Backend = "sqlite"
	s, err = OpenStores(cfg)
	require.NoError(t, err)
	assert.IsType(t, &store.SQLiteStore{}, s.Records)
	require.NoError(t, s.Close())
}

func TestSelectionResolve(t *testing.T) {
	table := schedule.Table{{"A", "B"}, {"C"}}
	cursor := func() int { return 2 }

	got, day, err := Selection{List: "x, y"}.Resolve(table, cursor)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, got)
	assert.Equal(t, 0, day)

	path := filepath.Join(t.TempDir(), "t.txt")
	require.NoError(t, os.WriteFile(path, []byte("q\nr\n"), 0o644))
	got, _, err = Selection{File: path}.Resolve(table, cursor)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q", "R"}, got)

	got, day, err = Selection{Day: 1}.Resolve(table, cursor)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got)
	assert.Equal(t, 1, day)

	got, day, err = Selection{}.Resolve(table, cursor)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, got)
	assert.Equal(t, 2, day)

	_, _, err = Selection{Day: 5}.Resolve(table, cursor)
	assert.True(t, errors.Is(err, schedule.ErrInvalidDay))
}

func TestNewProfileSource(t *testing.T) {
	cfg := config.Default()
	src, err := NewProfileSource(cfg)
	require.NoError(t, err)
	assert.NotNil(t, src)

	cfg.Sector.Source = "nope"
	_, err = NewProfileSource(cfg)
	assert.Error(t, err)
}

func TestNewGeneratorAppliesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Report.MaxRetries = 2
	cfg.Report.RetryDelay = time.Second
	cfg.Report.RequestDelay = 0
	cfg.Summary.MaxTokens = 123
	cfg.Storage.DataDir = t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := OpenStores(cfg)
	require.NoError(t, err)
	defer s.Close()

	g := NewGenerator(cfg, nil, s, log)
	assert.Equal(t, 2, g.MaxRetries)
	assert.Equal(t, time.Second, g.RetryDelay)
	assert.Equal(t, time.Duration(0), g.RequestDelay)
	assert.True(t, g.WebSearch)

	sum := NewSummarizer(cfg, nil, s, log)
	assert.Equal(t, 123, sum.MaxTokens)
}

func TestWebSearch(t *testing.T) {
	cfg := config.Default().LLM
	assert.True(t, WebSearch(cfg))
	cfg.Provider = "xai"
	assert.False(t, WebSearch(cfg))
	cfg.Provider = "gemini"
	cfg.Gemini.WebSearch = false
	assert.False(t, WebSearch(cfg))
}

func TestNewDaily(t *testing.T) {
	cfg := config.Default()
	cfg.LLM.Anthropic.APIKey = "k"
	cfg.Storage.DataDir = t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := OpenStores(cfg)
	require.NoError(t, err)
	defer s.Close()

	d, err := NewDaily(context.Background(), cfg, s, io.Discard, log)
	require.NoError(t, err)
	assert.Equal(t, domain.TotalDays, d.Table.Days())
	assert.Equal(t, cfg.Storage.CursorPath, d.Cursor.Path)
	assert.Equal(t, cfg.Storage.ManifestPath, d.Publisher.Path)
}
