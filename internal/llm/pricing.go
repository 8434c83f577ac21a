package llm

import (
	"sort"
	"strings"

	"quicktick/internal/domain"
)

// Price is USD per million tokens.
type Price struct {
	Input      float64
	Output     float64
	CacheWrite float64
	CacheRead  float64
}

// Prices maps a model-name prefix to its list price. The longest matching
// prefix wins.
var Prices = map[string]Price{
	"claude-sonnet-4":  {Input: 3, Output: 15, CacheWrite: 3.75, CacheRead: 0.30},
	"claude-3-5-haiku": {Input: 1, Output: 5, CacheWrite: 1.25, CacheRead: 0.10},
	"claude-haiku-4-5": {Input: 1, Output: 5, CacheWrite: 1.25, CacheRead: 0.10},
	"grok-4-1-fast":    {Input: 0.20, Output: 0.50, CacheRead: 0.05},
	"gemini-2.5-flash": {Input: 0.30, Output: 2.50, CacheRead: 0.075},
	"gemini-2.5-pro":   {Input: 1.25, Output: 10, CacheRead: 0.31},
}

// PriceFor returns the price entry for model, if known.
func PriceFor(model string) (Price, bool) {
	prefixes := make([]string, 0, len(Prices))
	for p := range Prices {
		prefixes = append(prefixes, p)
	}
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })
	for _, p := range prefixes {
		if strings.HasPrefix(model, p) {
			return Prices[p], true
		}
	}
	return Price{}, false
}

// EstimateCost returns the USD cost of usage on model, or 0 for unknown
// models.
func EstimateCost(model string, usage domain.TokenUsage) float64 {
	p, ok := PriceFor(model)
	if !ok {
		return 0
	}
	const perMillion = 1_000_000.0
	return float64(usage.Input)*p.Input/perMillion +
		float64(usage.Output)*p.Output/perMillion +
		float64(usage.CacheCreation)*p.CacheWrite/perMillion +
		float64(usage.CacheRead)*p.CacheRead/perMillion
}
