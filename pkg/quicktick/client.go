// Package quicktick is a Go client for the quicktick read-only HTTP API.
package quicktick

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the API answers 404.
var ErrNotFound = errors.New("not found")

// Report is a stored per-ticker report.
type Report struct {
	Ticker          string     `json:"ticker"`
	Content         string     `json:"content"`
	GeneratedDate   time.Time  `json:"generated_date"`
	NextRefreshDate *time.Time `json:"next_refresh_date,omitempty"`
	Model           string     `json:"model"`
	TLDRSummary     string     `json:"tldr_summary,omitempty"`
	Cost            float64    `json:"cost,omitempty"`
}

// Company is one entry of the company lookup table.
type Company struct {
	Name        string `json:"name"`
	Sector      string `json:"sector"`
	SubIndustry string `json:"subIndustry"`
	Exchange    string `json:"exchange"`
	Country     string `json:"country"`
}

// Today is the published manifest of the most recently refreshed bucket.
type Today struct {
	GeneratedAt time.Time `json:"generated_at"`
	Date        string    `json:"date"`
	Day         int       `json:"day"`
	TotalDays   int       `json:"total_days"`
	Tickers     []string  `json:"tickers"`
	Count       int       `json:"count"`
}

// Client provides a Go SDK for interacting with the quicktick API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new quicktick API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Today retrieves the current manifest.
func (c *Client) Today(ctx context.Context) (*Today, error) {
	var out Today
	if err := c.get(ctx, "/api/today", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Report retrieves the report for ticker.
func (c *Client) Report(ctx context.Context, ticker string) (*Report, error) {
	var out Report
	if err := c.get(ctx, "/api/reports/"+url.PathEscape(ticker), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Company retrieves the lookup entry for ticker.
func (c *Client) Company(ctx context.Context, ticker string) (*Company, error) {
	var out Company
	if err := c.get(ctx, "/api/companies/"+url.PathEscape(ticker), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reports lists every ticker with a stored report.
func (c *Client) Reports(ctx context.Context) ([]string, error) {
	var out struct {
		Tickers []string `json:"tickers"`
	}
	if err := c.get(ctx, "/api/reports", &out); err != nil {
		return nil, err
	}
	return out.Tickers, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("GET %s: %w", path, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		var e struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, e.Error)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("GET %s: decoding: %w", path, err)
	}
	return nil
}
