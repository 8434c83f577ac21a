// Package sector fills in company metadata (name, sector, sub-industry,
// exchange, country) for the ticker lookup table.
package sector

import (
	"strings"

	"quicktick/internal/domain"
)

// IndustryMapping maps a provider industry label to a standard sector.
type IndustryMapping struct {
	Industry string
	Sector   string
}

// IndustryToSector is consulted in order; for substring matches the first
// entry wins.
var IndustryToSector = []IndustryMapping{
	// Technology
	{"Software", "Technology"},
	{"Hardware", "Technology"},
	{"Semiconductors", "Technology"},
	{"Technology", "Technology"},
	{"Electronic Equipment", "Technology"},
	{"IT Services", "Technology"},
	{"Computer", "Technology"},
	{"Internet", "Technology"},
	{"Telecom", "Communication Services"},
	{"Telecommunications", "Communication Services"},

	// Healthcare
	{"Biotechnology", "Healthcare"},
	{"Pharmaceuticals", "Healthcare"},
	{"Medical Devices", "Healthcare"},
	{"Healthcare", "Healthcare"},
	{"Health Care", "Healthcare"},
	{"Life Sciences", "Healthcare"},

	// Financials
	{"Banks", "Financials"},
	{"Financial Services", "Financials"},
	{"Insurance", "Financials"},
	{"Investment Banking", "Financials"},
	{"Asset Management", "Financials"},
	{"Capital Markets", "Financials"},

	// Consumer
	{"Retail", "Consumer Discretionary"},
	{"Consumer Goods", "Consumer Staples"},
	{"Food & Beverage", "Consumer Staples"},
	{"Restaurants", "Consumer Discretionary"},
	{"Apparel", "Consumer Discretionary"},
	{"Automotive", "Consumer Discretionary"},
	{"Hotels", "Consumer Discretionary"},
	{"Media", "Communication Services"},
	{"Entertainment", "Communication Services"},

	// Industrials
	{"Industrial", "Industrials"},
	{"Aerospace & Defense", "Industrials"},
	{"Construction", "Industrials"},
	{"Manufacturing", "Industrials"},
	{"Transportation", "Industrials"},
	{"Airlines", "Industrials"},

	// Energy and utilities
	{"Energy", "Energy"},
	{"Oil & Gas", "Energy"},
	{"Utilities", "Utilities"},

	// Materials
	{"Materials", "Materials"},
	{"Chemicals", "Materials"},
	{"Metals & Mining", "Materials"},

	// Real estate
	{"Real Estate", "Real Estate"},
	{"REITs", "Real Estate"},
}

// Classify maps an industry label to a sector: exact match first, then the
// first table key contained in the label (case-insensitive). Unknown labels
// yield domain.NA.
func Classify(industry string) string {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return domain.NA
	}
	for _, m := range IndustryToSector {
		if m.Industry == industry {
			return m.Sector
		}
	}
	lower := strings.ToLower(industry)
	for _, m := range IndustryToSector {
		if strings.Contains(lower, strings.ToLower(m.Industry)) {
			return m.Sector
		}
	}
	return domain.NA
}
