package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"quicktick/internal/domain"
	"quicktick/internal/store"
)

func newTestServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	rs := store.NewJSONStore(filepath.Join(dir, "data"))
	rec := &domain.TickerRecord{
		Ticker:        "ACME",
		Content:       "# Acme (ACME) - Comprehensive Analysis Report",
		GeneratedDate: domain.NewTimestamp(time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)),
		Model:         "claude-sonnet-4-20250514",
		TLDRSummary:   "Anvils.",
	}
	if err := rs.Save(context.Background(), rec); err != nil {
		t.Fatal(err)
	}

	lookup := func() (domain.CompanyLookup, error) {
		return domain.CompanyLookup{
			"ACME": {Name: "Acme", Sector: "Industrials", SubIndustry: "Machinery", Exchange: "NYSE", Country: "US"},
		}, nil
	}
	manifestPath := filepath.Join(dir, "todays_tickers.json")
	s := NewServer(rs, lookup, manifestPath, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return s.Router(), manifestPath
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)
	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetReport(t *testing.T) {
	r, _ := newTestServer(t)

	w := get(r, "/api/reports/acme")
	assert.Equal(t, http.StatusOK, w.Code)
	var rec domain.TickerRecord
	json.Unmarshal(w.Body.Bytes(), &rec)
	assert.Equal(t, "ACME", rec.Ticker)
	assert.Equal(t, "Anvils.", rec.TLDRSummary)

	w = get(r, "/api/reports/NOPE")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReports(t *testing.T) {
	r, _ := newTestServer(t)
	w := get(r, "/api/reports")
	assert.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Tickers []string `json:"tickers"`
		Count   int      `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, "ACME", res.Tickers[0])
}

func TestGetCompany(t *testing.T) {
	r, _ := newTestServer(t)

	w := get(r, "/api/companies/ACME")
	assert.Equal(t, http.StatusOK, w.Code)
	var e domain.CompanyLookupEntry
	json.Unmarshal(w.Body.Bytes(), &e)
	assert.Equal(t, "Industrials", e.Sector)

	w = get(r, "/api/companies/ZZZZ")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCompanyLookupError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewServer(store.NewJSONStore(t.TempDir()), func() (domain.CompanyLookup, error) {
		return nil, errors.New("disk gone")
	}, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	w := get(s.Router(), "/api/companies/ACME")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestToday(t *testing.T) {
	r, manifestPath := newTestServer(t)

	w := get(r, "/api/today")
	assert.Equal(t, http.StatusNotFound, w.Code)

	m := domain.Manifest{Date: "March 07, 2025", Day: 1, TotalDays: 91, Tickers: []string{"AVGO"}, Count: 1}
	data, _ := json.Marshal(m)
	os.WriteFile(manifestPath, data, 0o644)

	w = get(r, "/api/today")
	assert.Equal(t, http.StatusOK, w.Code)
	var got domain.Manifest
	json.Unmarshal(w.Body.Bytes(), &got)
	assert.Equal(t, 1, got.Day)
	assert.Equal(t, "AVGO", got.Tickers[0])
}

func TestBucket(t *testing.T) {
	r, _ := newTestServer(t)

	w := get(r, "/api/buckets/1")
	assert.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Day   int `json:"day"`
		Count int `json:"count"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 39, res.Count)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/buckets/92").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/buckets/abc").Code)
}
