// Package domain defines the core records shared by the scheduling, report,
// summary and sector-enrichment packages.
package domain

import (
	"strings"
	"time"
)

// NA is the sentinel for "value unknown". It is distinct from an absent field.
const NA = "N/A"

// TotalDays is the length of the rolling refresh rotation.
const TotalDays = 91

// RefreshInterval is the gap between a report's generation and its next
// scheduled refresh.
const RefreshInterval = TotalDays * 24 * time.Hour

// TokenUsage records the token counts reported by a completion provider.
type TokenUsage struct {
	Input         int64 `json:"input"`
	Output        int64 `json:"output"`
	CacheCreation int64 `json:"cache_creation"`
	CacheRead     int64 `json:"cache_read"`
}

// TickerRecord is the stored report document for one ticker.
type TickerRecord struct {
	Ticker          string      `json:"ticker"`
	Content         string      `json:"content"`
	GeneratedDate   Timestamp   `json:"generated_date"`
	NextRefreshDate *Timestamp  `json:"next_refresh_date,omitempty"`
	Model           string      `json:"model"`
	TLDRSummary     string      `json:"tldr_summary,omitempty"`
	Cost            float64     `json:"cost,omitempty"`
	Tokens          *TokenUsage `json:"tokens,omitempty"`
}

// HasSummary reports whether the record already carries a TLDR summary.
func (r *TickerRecord) HasSummary() bool {
	return strings.TrimSpace(r.TLDRSummary) != ""
}

// CompanyLookupEntry is the classification metadata for one ticker.
type CompanyLookupEntry struct {
	Name        string `json:"name"`
	Sector      string `json:"sector"`
	SubIndustry string `json:"subIndustry"`
	Exchange    string `json:"exchange"`
	Country     string `json:"country"`
}

// CompanyLookup maps ticker to classification metadata.
type CompanyLookup map[string]CompanyLookupEntry

// IsUnknown reports whether v is empty or the NA sentinel.
func IsUnknown(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == NA
}

// OrNA returns v, or NA when v is empty.
func OrNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return NA
	}
	return v
}

// Manifest describes the tickers refreshed by the most recent run, for
// display by the front-end.
type Manifest struct {
	GeneratedAt time.Time `json:"generated_at"`
	Date        string    `json:"date"`
	Day         int       `json:"day"`
	TotalDays   int       `json:"total_days"`
	Tickers     []string  `json:"tickers"`
	Count       int       `json:"count"`
}

// DisplayDate formats t the way reports and manifests show dates.
func DisplayDate(t time.Time) string {
	return t.Format("January 02, 2006")
}
