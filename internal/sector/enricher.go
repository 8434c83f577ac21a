package sector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"quicktick/internal/domain"
	"quicktick/internal/tally"
	"quicktick/internal/util"
)

// Policy selects which lookup entries the enricher queries.
type Policy string

const (
	// FillMissing queries only entries whose sector or sub-industry is unknown.
	FillMissing Policy = "fill-missing"
	// FullRefresh queries every entry.
	FullRefresh Policy = "full-refresh"
)

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case FillMissing, FullRefresh:
		return p, nil
	default:
		return "", fmt.Errorf("unknown sector policy %q (want %s or %s)", s, FillMissing, FullRefresh)
	}
}

// Stats counts outcomes of one enrichment pass.
type Stats struct {
	Complete     int // every field known after the update
	Partial      int // updated but at least one field still N/A
	Failed       int // lookup failed; prior entry kept
	Skipped      int // not queried under the policy
	SectorMapped int // sector derived from the provider's industry
}

// Tally converts the stats for rendering.
func (s Stats) Tally(total int) *tally.Tally {
	t := tally.New("sector", total)
	t.Successful = s.Complete + s.Partial
	t.Failed = s.Failed
	t.Skipped = s.Skipped
	t.Extra = map[string]int{
		"complete":      s.Complete,
		"partial":       s.Partial,
		"sector_mapped": s.SectorMapped,
	}
	return t
}

// Enricher refreshes lookup entries from a ProfileSource, one ticker at a
// time, paced by Pacer.
type Enricher struct {
	Source ProfileSource
	Policy Policy
	Pacer  *util.RateLimiter
	Log    *slog.Logger

	// MaxRetries bounds attempts per lookup; RetryDelay is the first
	// backoff and doubles after each failure. Empty profiles are not retried.
	MaxRetries int
	RetryDelay time.Duration
}

// NewEnricher returns an Enricher. A nil pacer disables request spacing.
func NewEnricher(src ProfileSource, policy Policy, pacer *util.RateLimiter, log *slog.Logger) *Enricher {
	return &Enricher{Source: src, Policy: policy, Pacer: pacer, Log: log.With("job", "sector"), MaxRetries: 1}
}

// Run returns an updated copy of lookup. Individual lookup failures keep the
// prior entry and are counted; only context cancellation stops the pass, in
// which case the partially updated table is still returned.
func (e *Enricher) Run(ctx context.Context, lookup domain.CompanyLookup) (domain.CompanyLookup, Stats, error) {
	var stats Stats
	out := make(domain.CompanyLookup, len(lookup))
	for k, v := range lookup {
		out[k] = v
	}

	tickers := make([]string, 0, len(lookup))
	for t := range lookup {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	e.Log.Info("starting sector enrichment", "tickers", len(tickers), "policy", e.Policy)
	for i, ticker := range tickers {
		prior := lookup[ticker]
		if e.Policy == FillMissing && !needsSector(prior) {
			stats.Skipped++
			continue
		}

		if e.Pacer != nil {
			if err := e.Pacer.Wait(ctx); err != nil {
				return out, stats, err
			}
		}

		p, err := e.lookup(ctx, ticker)
		if err != nil {
			if ctx.Err() != nil {
				return out, stats, ctx.Err()
			}
			stats.Failed++
			e.Log.Warn("profile lookup failed, keeping prior entry", "ticker", ticker, "n", i+1, "error", err)
			continue
		}

		entry, mapped := Merge(prior, p)
		out[ticker] = entry
		if mapped {
			stats.SectorMapped++
		}
		if isComplete(entry) {
			stats.Complete++
		} else {
			stats.Partial++
		}
		e.Log.Debug("enriched", "ticker", ticker, "sector", entry.Sector, "sub_industry", entry.SubIndustry)
	}
	return out, stats, nil
}

func (e *Enricher) lookup(ctx context.Context, ticker string) (*Profile, error) {
	var (
		p    *Profile
		perr error
	)
	err := util.Retry(ctx, e.MaxRetries, e.RetryDelay, func() error {
		p, perr = e.Source.Profile(ctx, ticker)
		if errors.Is(perr, ErrEmptyProfile) {
			return nil
		}
		return perr
	})
	if err != nil {
		return nil, err
	}
	return p, perr
}

// Merge combines a prior entry with a fresh profile. Known sector and
// sub-industry values are authoritative; otherwise the sector is classified
// from the profile industry and the raw industry becomes the sub-industry.
// It reports whether the sector came from classification.
func Merge(prior domain.CompanyLookupEntry, p *Profile) (domain.CompanyLookupEntry, bool) {
	var mapped bool

	sector := prior.Sector
	if domain.IsUnknown(sector) {
		sector = Classify(p.Industry)
		mapped = sector != domain.NA
	}
	sub := prior.SubIndustry
	if domain.IsUnknown(sub) {
		sub = domain.OrNA(p.Industry)
	}

	return domain.CompanyLookupEntry{
		Name:        firstKnown(p.Name, prior.Name),
		Sector:      sector,
		SubIndustry: sub,
		Exchange:    firstKnown(p.Exchange, prior.Exchange),
		Country:     firstKnown(p.Country, prior.Country),
	}, mapped
}

func firstKnown(vals ...string) string {
	for _, v := range vals {
		if !domain.IsUnknown(v) {
			return v
		}
	}
	return domain.NA
}

func needsSector(e domain.CompanyLookupEntry) bool {
	return domain.IsUnknown(e.Sector) || domain.IsUnknown(e.SubIndustry)
}

func isComplete(e domain.CompanyLookupEntry) bool {
	return !domain.IsUnknown(e.Sector) && !domain.IsUnknown(e.SubIndustry) &&
		!domain.IsUnknown(e.Exchange) && !domain.IsUnknown(e.Country)
}
