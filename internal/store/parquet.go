package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"

	"quicktick/internal/domain"
)

// ErrNoSnapshot is returned when a snapshot directory holds no snapshots.
var ErrNoSnapshot = errors.New("no snapshot found")

// SnapshotStore keeps dated Parquet snapshots of the company lookup table at
// <Dir>/company_lookup_YYYY-MM-DD.parquet.
type SnapshotStore struct {
	Dir string
}

// NewSnapshotStore creates a SnapshotStore rooted at dir.
func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{Dir: dir}
}

// ---------------------------------------------------------------------------
// Parquet record types (on-disk schema)
// ---------------------------------------------------------------------------

// CompanyRecord is the Parquet schema for one lookup entry.
type CompanyRecord struct {
	Ticker      string `parquet:"ticker"`
	Name        string `parquet:"name"`
	Sector      string `parquet:"sector"`
	SubIndustry string `parquet:"sub_industry"`
	Exchange    string `parquet:"exchange"`
	Country     string `parquet:"country"`
}

const snapshotPrefix = "company_lookup"

func (s *SnapshotStore) path(date time.Time) string {
	return filepath.Join(s.Dir, snapshotPrefix+"_"+date.Format("2006-01-02")+".parquet")
}

// Write stores lookup as the snapshot for date, sorted by ticker, and
// returns the file path. An existing snapshot for the same date is replaced.
func (s *SnapshotStore) Write(lookup domain.CompanyLookup, date time.Time) (string, error) {
	tickers := make([]string, 0, len(lookup))
	for t := range lookup {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	records := make([]CompanyRecord, 0, len(tickers))
	for _, t := range tickers {
		e := lookup[t]
		records = append(records, CompanyRecord{
			Ticker:      t,
			Name:        e.Name,
			Sector:      e.Sector,
			SubIndustry: e.SubIndustry,
			Exchange:    e.Exchange,
			Country:     e.Country,
		})
	}

	path := s.path(date)
	if err := writeParquetFile(path, records); err != nil {
		return "", fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return path, nil
}

// Latest reads the most recent snapshot and returns it with its date.
func (s *SnapshotStore) Latest() (domain.CompanyLookup, time.Time, error) {
	path, date, err := s.findLatest()
	if err != nil {
		return nil, time.Time{}, err
	}
	records, err := readParquetFile[CompanyRecord](path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	lookup := make(domain.CompanyLookup, len(records))
	for _, r := range records {
		lookup[r.Ticker] = domain.CompanyLookupEntry{
			Name:        r.Name,
			Sector:      r.Sector,
			SubIndustry: r.SubIndustry,
			Exchange:    r.Exchange,
			Country:     r.Country,
		}
	}
	return lookup, date, nil
}

// findLatest returns the newest company_lookup_YYYY-MM-DD.parquet in Dir.
func (s *SnapshotStore) findLatest() (string, time.Time, error) {
	pattern := filepath.Join(s.Dir, snapshotPrefix+"_????-??-??.parquet")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", time.Time{}, err
	}
	if len(matches) == 0 {
		return "", time.Time{}, fmt.Errorf("%s: %w", s.Dir, ErrNoSnapshot)
	}
	sort.Strings(matches)
	latest := matches[len(matches)-1]

	stem := strings.TrimSuffix(filepath.Base(latest), ".parquet")
	date, err := time.Parse("2006-01-02", strings.TrimPrefix(stem, snapshotPrefix+"_"))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("parsing snapshot date from %s: %w", latest, err)
	}
	return latest, date, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func writeParquetFile[T any](path string, records []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return parquet.WriteFile(path, records)
}

func readParquetFile[T any](path string) ([]T, error) {
	rows, err := parquet.ReadFile[T](path)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
