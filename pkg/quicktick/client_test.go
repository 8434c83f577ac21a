package quicktick

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/today", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generated_at":"2025-03-07T06:00:00Z","date":"March 07, 2025","day":1,"total_days":91,"tickers":["AVGO","META"],"count":2}`))
	})
	mux.HandleFunc("/api/reports/ACME", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ticker":"ACME","content":"# Acme","generated_date":"2025-03-07T06:00:00Z","model":"m","tldr_summary":"Anvils."}`))
	})
	mux.HandleFunc("/api/reports", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tickers":["ACME","ZZZ"],"count":2}`))
	})
	mux.HandleFunc("/api/companies/ACME", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Acme","sector":"Industrials","subIndustry":"Machinery","exchange":"NYSE","country":"US"}`))
	})
	mux.HandleFunc("/api/companies/BOOM", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"internal error"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/")
}

func TestClient(t *testing.T) {
	c := newTestAPI(t)
	ctx := context.Background()

	today, err := c.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, today.Day)
	assert.Equal(t, []string{"AVGO", "META"}, today.Tickers)

	rep, err := c.Report(ctx, "ACME")
	require.NoError(t, err)
	assert.Equal(t, "Anvils.", rep.TLDRSummary)

	co, err := c.Company(ctx, "ACME")
	require.NoError(t, err)
	assert.Equal(t, "Machinery", co.SubIndustry)

	list, err := c.Reports(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestClientErrors(t *testing.T) {
	c := newTestAPI(t)
	ctx := context.Background()

	_, err := c.Report(ctx, "NOPE")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.Company(ctx, "BOOM")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
