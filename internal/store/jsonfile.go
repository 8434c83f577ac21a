package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"quicktick/internal/domain"
	"quicktick/internal/util"
)

// Compile-time interface check.
var _ RecordStore = (*JSONStore)(nil)

// JSONStore keeps one indented JSON document per ticker at
// <DataDir>/<TICKER>.json.
type JSONStore struct {
	DataDir string
}

// NewJSONStore creates a JSONStore rooted at dataDir.
func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{DataDir: dataDir}
}

func (s *JSONStore) path(ticker string) string {
	return filepath.Join(s.DataDir, strings.ToUpper(ticker)+".json")
}

// Save writes rec, replacing any existing file.
func (s *JSONStore) Save(_ context.Context, rec *domain.TickerRecord) error {
	data, err := encodeJSON(rec)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", rec.Ticker, err)
	}
	return util.WriteFileAtomic(s.path(rec.Ticker), data)
}

// Load reads the record for ticker.
func (s *JSONStore) Load(_ context.Context, ticker string) (*domain.TickerRecord, error) {
	data, err := os.ReadFile(s.path(ticker))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", ticker, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var rec domain.TickerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ticker, err)
	}
	return &rec, nil
}

// MergeSummary rewrites the file with tldr_summary set. Other fields are
// carried over as raw JSON values.
func (s *JSONStore) MergeSummary(_ context.Context, ticker, summary string) error {
	path := s.path(ticker)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", ticker, ErrNotFound)
	}
	if err != nil {
		return err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding %s: %w", ticker, err)
	}
	raw, err := encodeJSON(summary)
	if err != nil {
		return err
	}
	doc["tldr_summary"] = json.RawMessage(bytes.TrimSpace(raw))

	out, err := encodeJSON(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ticker, err)
	}
	return util.WriteFileAtomic(path, out)
}

// List returns the tickers with a record file in DataDir.
func (s *JSONStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.DataDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var tickers []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		tickers = append(tickers, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(tickers)
	return tickers, nil
}

// ---------------------------------------------------------------------------
// Company lookup file
// ---------------------------------------------------------------------------

// LoadLookup reads the company lookup table from path.
func LoadLookup(path string) (domain.CompanyLookup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lookup %s: %w", path, err)
	}
	lookup := make(domain.CompanyLookup)
	if err := json.Unmarshal(data, &lookup); err != nil {
		return nil, fmt.Errorf("decoding lookup %s: %w", path, err)
	}
	return lookup, nil
}

// SaveLookup writes the lookup table to path as indented JSON with tickers
// in sorted order.
func SaveLookup(path string, lookup domain.CompanyLookup) error {
	data, err := encodeJSON(lookup)
	if err != nil {
		return fmt.Errorf("encoding lookup: %w", err)
	}
	return util.WriteFileAtomic(path, data)
}

// encodeJSON renders v indented, without HTML escaping so report text stays
// readable on disk.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
