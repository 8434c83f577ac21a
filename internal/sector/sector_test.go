package sector

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicktick/internal/domain"
	"quicktick/internal/util"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		industry string
		want     string
	}{
		{"Semiconductors", "Technology"},
		{"Software", "Technology"},
		{"Biotechnology", "Healthcare"},
		{"Banking", domain.NA},
		{"Regional Banks", "Financials"},
		{"Oil & Gas Exploration", "Energy"},
		{"health care providers", "Healthcare"},
		{"Telecommunication Services", "Communication Services"},
		{"Tobacco", domain.NA},
		{"", domain.NA},
	}
	for _, tt := range tests {
		t.Run(tt.industry, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.industry))
		})
	}
}

func TestClassifyFirstSubstringWins(t *testing.T) {
	// "Technology" precedes "Media" in the table.
	assert.Equal(t, "Technology", Classify("Media Technology"))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("Fill-Missing")
	require.NoError(t, err)
	assert.Equal(t, FillMissing, p)
	_, err = ParsePolicy("sometimes")
	assert.Error(t, err)
}

type fakeSource struct {
	profiles map[string]*Profile
	calls    []string
}

func (f *fakeSource) Profile(_ context.Context, ticker string) (*Profile, error) {
	f.calls = append(f.calls, ticker)
	p, ok := f.profiles[ticker]
	if !ok {
		return nil, ErrEmptyProfile
	}
	return p, nil
}

func testLookup() domain.CompanyLookup {
	return domain.CompanyLookup{
		"NVDA": {Name: "NVIDIA", Sector: domain.NA, SubIndustry: domain.NA, Exchange: domain.NA, Country: domain.NA},
		"JPM":  {Name: "JPMorgan", Sector: "Financials", SubIndustry: "Diversified Banks", Exchange: "NYSE", Country: "US"},
		"XYZ":  {Name: "Mystery", Sector: "", SubIndustry: "", Exchange: "", Country: ""},
		"GONE": {Name: "Delisted", Sector: domain.NA, SubIndustry: domain.NA, Exchange: "NYSE", Country: "US"},
	}
}

func newTestEnricher(src ProfileSource, p Policy) *Enricher {
	return NewEnricher(src, p, util.NewIntervalLimiter(0), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEnricherFillMissing(t *testing.T) {
	src := &fakeSource{profiles: map[string]*Profile{
		"NVDA": {Name: "NVIDIA Corp", Exchange: "NASDAQ NMS - GLOBAL MARKET", Country: "US", Industry: "Semiconductors"},
		"XYZ":  {Name: "XYZ Holdings", Exchange: "", Country: "US", Industry: "Tobacco"},
		"JPM":  {Name: "should not be used", Industry: "Banking"},
	}}
	lookup := testLookup()
	out, stats, err := newTestEnricher(src, FillMissing).Run(context.Background(), lookup)
	require.NoError(t, err)

	// Sorted iteration; JPM is skipped.
	assert.Equal(t, []string{"GONE", "NVDA", "XYZ"}, src.calls)
	assert.Equal(t, Stats{Complete: 1, Partial: 1, Failed: 1, Skipped: 1, SectorMapped: 1}, stats)

	assert.Equal(t, domain.CompanyLookupEntry{
		Name: "NVIDIA Corp", Sector: "Technology", SubIndustry: "Semiconductors",
		Exchange: "NASDAQ NMS - GLOBAL MARKET", Country: "US",
	}, out["NVDA"])
	assert.Equal(t, domain.CompanyLookupEntry{
		Name: "XYZ Holdings", Sector: domain.NA, SubIndustry: "Tobacco", Exchange: domain.NA, Country: "US",
	}, out["XYZ"])
	assert.Equal(t, lookup["JPM"], out["JPM"])
	assert.Equal(t, lookup["GONE"], out["GONE"], "failed lookup keeps the prior entry")

	// Input is not mutated.
	assert.Equal(t, domain.NA, lookup["NVDA"].Sector)
}

func TestEnricherFullRefreshKeepsKnownSector(t *testing.T) {
	src := &fakeSource{profiles: map[string]*Profile{
		"JPM": {Name: "JPMorgan Chase & Co", Exchange: "NEW YORK STOCK EXCHANGE, INC.", Country: "US", Industry: "Banking"},
	}}
	lookup := domain.CompanyLookup{"JPM": testLookup()["JPM"]}
	out, stats, err := newTestEnricher(src, FullRefresh).Run(context.Background(), lookup)
	require.NoError(t, err)

	assert.Equal(t, []string{"JPM"}, src.calls)
	assert.Equal(t, 1, stats.Complete)
	assert.Equal(t, 0, stats.SectorMapped)
	got := out["JPM"]
	assert.Equal(t, "Financials", got.Sector)
	assert.Equal(t, "Diversified Banks", got.SubIndustry)
	assert.Equal(t, "JPMorgan Chase & Co", got.Name)
	assert.Equal(t, "NEW YORK STOCK EXCHANGE, INC.", got.Exchange)
}

type flakySource struct {
	fails int
	calls int
}

func (f *flakySource) Profile(_ context.Context, ticker string) (*Profile, error) {
	f.calls++
	if f.calls <= f.fails {
		return nil, errors.New("status 429")
	}
	return &Profile{Name: ticker + " Inc", Exchange: "NYSE", Country: "US", Industry: "Banks"}, nil
}

func TestEnricherRetriesTransientFailures(t *testing.T) {
	src := &flakySource{fails: 1}
	e := newTestEnricher(src, FullRefresh)
	e.MaxRetries = 2
	out, stats, err := e.Run(context.Background(), domain.CompanyLookup{"WFC": {}})
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
	assert.Equal(t, 1, stats.Complete)
	assert.Equal(t, "Financials", out["WFC"].Sector)
}

func TestEnricherDoesNotRetryEmptyProfile(t *testing.T) {
	src := &fakeSource{}
	e := newTestEnricher(src, FullRefresh)
	e.MaxRetries = 3
	_, stats, err := e.Run(context.Background(), domain.CompanyLookup{"GONE": {}})
	require.NoError(t, err)
	assert.Equal(t, []string{"GONE"}, src.calls)
	assert.Equal(t, 1, stats.Failed)
}

func TestEnricherCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &fakeSource{}
	_, _, err := newTestEnricher(src, FullRefresh).Run(ctx, testLookup())
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, src.calls)
}

func TestStatsTally(t *testing.T) {
	tl := Stats{Complete: 2, Partial: 1, Failed: 1, Skipped: 3, SectorMapped: 2}.Tally(7)
	assert.Equal(t, 3, tl.Successful)
	assert.Equal(t, 1, tl.Failed)
	assert.Equal(t, 3, tl.Skipped)
	assert.Equal(t, 2, tl.Extra["sector_mapped"])
}

func TestFinnhubSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/profile2", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Finnhub-Token"))
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("symbol") == "NONE" {
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(`{"name":"NVIDIA Corp","exchange":"NASDAQ NMS - GLOBAL MARKET","country":"US","finnhubIndustry":"Semiconductors","ticker":"NVDA"}`))
	}))
	defer srv.Close()

	src := newFinnhubSource("test-token", srv.URL)
	p, err := src.Profile(context.Background(), "NVDA")
	require.NoError(t, err)
	assert.Equal(t, &Profile{Name: "NVIDIA Corp", Exchange: "NASDAQ NMS - GLOBAL MARKET", Country: "US", Industry: "Semiconductors"}, p)

	_, err = src.Profile(context.Background(), "NONE")
	assert.ErrorIs(t, err, ErrEmptyProfile)
}

func TestAlpacaSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/assets/AAPL", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"b0b6dd9d-8b9b-48a9-ba46-b9d54906e415","class":"us_equity","exchange":"NASDAQ","symbol":"AAPL","name":"Apple Inc. Common Stock","status":"active","tradable":true}`))
	}))
	defer srv.Close()

	src := NewAlpacaSource("key", "secret", srv.URL)
	p, err := src.Profile(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc. Common Stock", p.Name)
	assert.Equal(t, "NASDAQ", p.Exchange)
	assert.Empty(t, p.Industry)
}
