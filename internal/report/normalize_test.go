package report

import (
	"strings"
	"testing"
	"time"
)

var testNorm = Normalizer{
	ModelLabel: "Claude Sonnet 4 (claude-sonnet-4-20250514)",
	Generated:  time.Date(2025, time.March, 7, 6, 0, 0, 0, time.UTC),
}

func TestNormalizeSynthesizesTitle(t *testing.T) {
	got := testNorm.Normalize("Some analysis text without any headings at all.", "XYZ")
	firstLine, _, _ := strings.Cut(got, "\n")
	if firstLine != "# XYZ (XYZ) - Comprehensive Analysis Report" {
		t.Errorf("title = %q", firstLine)
	}
	if !strings.Contains(got, "Some analysis text") {
		t.Error("body dropped")
	}
}

func TestNormalizeKeepsCorrectTitle(t *testing.T) {
	raw := "# Acme Corp (ACME) - Comprehensive Analysis Report\n\n## 1. Company Overview\n\nAcme makes anvils."
	got := testNorm.Normalize(raw, "ACME")
	if !strings.HasPrefix(got, "# Acme Corp (ACME) - Comprehensive Analysis Report\n\n**Report Generated:** March 07, 2025  \n") {
		t.Errorf("unexpected prefix:\n%s", got)
	}
	if !strings.Contains(got, "**Next Refresh:** June 06, 2025") {
		t.Errorf("next refresh date missing:\n%s", got)
	}
	if !strings.Contains(got, "generated using Claude Sonnet 4 (claude-sonnet-4-20250514).") {
		t.Errorf("model label missing:\n%s", got)
	}
	if !strings.Contains(got, "---\n\n## 1. Company Overview") {
		t.Errorf("disclaimer rule should precede body:\n%s", got)
	}
}

func TestNormalizeRewritesTitle(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		ticker string
		want   string
	}{
		{
			name:   "legal suffix and missing ticker",
			raw:    "# Apple Inc. Analysis\n\nBody",
			ticker: "AAPL",
			want:   "# Apple (AAPL) - Comprehensive Analysis Report",
		},
		{
			name:   "dash separated subtitle",
			raw:    "# NVIDIA Corporation - Deep Dive\n\nBody",
			ticker: "NVDA",
			want:   "# NVIDIA (NVDA) - Comprehensive Analysis Report",
		},
		{
			name:   "wrong ticker in parens",
			raw:    "# Alphabet (GOOG) Report\n\nBody",
			ticker: "GOOGL",
			want:   "# Alphabet (GOOGL) - Comprehensive Analysis Report",
		},
		{
			name:   "name starting with Inc is kept",
			raw:    "# Incyte Overview\n\nBody",
			ticker: "INCY",
			want:   "# Incyte Overview (INCY) - Comprehensive Analysis Report",
		},
		{
			name:   "name from first section heading",
			raw:    "Intro paragraph that is long enough to be real content for readers.\n\n## Microsoft Corporation Overview\n\nBody",
			ticker: "MSFT",
			want:   "# Microsoft (MSFT) - Comprehensive Analysis Report",
		},
		{
			name:   "hyphenated company name",
			raw:    "# Coca-Cola Company (KO) Analysis\n\nBody",
			ticker: "KO",
			want:   "# Coca-Cola (KO) - Comprehensive Analysis Report",
		},
		{
			name:   "hyphenated name with dash subtitle",
			raw:    "# Mercedes-Benz Group - Deep Dive\n\nBody",
			ticker: "MBG",
			want:   "# Mercedes-Benz Group (MBG) - Comprehensive Analysis Report",
		},
		{
			name:   "hyphenated name in section heading",
			raw:    "## Hewlett-Packard Enterprise Overview\n\nBody",
			ticker: "HPE",
			want:   "# Hewlett-Packard Enterprise Overview (HPE) - Comprehensive Analysis Report",
		},
		{
			name:   "generic first section falls back to ticker",
			raw:    "## 1. Company Overview\n\nBody",
			ticker: "KO",
			want:   "# KO (KO) - Comprehensive Analysis Report",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testNorm.Normalize(tt.raw, tt.ticker)
			firstLine, _, _ := strings.Cut(got, "\n")
			if firstLine != tt.want {
				t.Errorf("title = %q, want %q", firstLine, tt.want)
			}
		})
	}
}

func TestNormalizeStripsNarration(t *testing.T) {
	raw := strings.Join([]string{
		"I'll conduct a thorough search for the latest information on Acme.",
		"",
		"Let me search for recent earnings data.",
		"",
		"Now I will compile the report.",
		"",
		"# Acme (ACME) - Comprehensive Analysis Report",
		"",
		"## 1. Company Overview",
		"Based on my research, Acme leads the anvil market.",
	}, "\n")

	got := testNorm.Normalize(raw, "ACME")
	for _, cue := range []string{"I'll conduct", "Let me search", "Now I will"} {
		if strings.Contains(got, cue) {
			t.Errorf("narration %q survived:\n%s", cue, got)
		}
	}
	if !strings.HasPrefix(got, "# Acme (ACME) - Comprehensive Analysis Report") {
		t.Errorf("title not at top:\n%s", got)
	}
	// Narration cues only apply before the first heading.
	if !strings.Contains(got, "Based on my research, Acme leads") {
		t.Error("body text after the first heading must be preserved")
	}
}

func TestNormalizeKeepsNonNarrationPreamble(t *testing.T) {
	raw := "Acme is a diversified manufacturer of anvils and rocket skates.\n\n# Acme (ACME) - Comprehensive Analysis Report\n\nBody"
	got := testNorm.Normalize(raw, "ACME")
	if !strings.HasPrefix(got, "# Acme (ACME)") {
		t.Errorf("title must move to the top:\n%s", got)
	}
	if !strings.Contains(got, "diversified manufacturer") {
		t.Error("ordinary preamble paragraph should be kept")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []struct{ raw, ticker string }{
		{"Some analysis text without any headings at all.", "XYZ"},
		{"# Acme Corp (ACME) - Comprehensive Analysis Report\n\nBody", "ACME"},
		{"Let me gather data.\n\n# Apple Inc. Analysis\n\n## 1. Company Overview\nText", "AAPL"},
		{"Context paragraph that is not narration at all.\n\n## Tesla Overview\n\n- bullet", "TSLA"},
		{"", "EMPTY"},
		{"\r\n# Windows (MSFT) line endings\r\nBody\r\n", "MSFT"},
	}
	for _, in := range inputs {
		once := testNorm.Normalize(in.raw, in.ticker)
		twice := testNorm.Normalize(once, in.ticker)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce:\n%s\ntwice:\n%s", in.raw, once, twice)
		}
	}
}

func TestNormalizeExistingDisclaimerNotDuplicated(t *testing.T) {
	raw := "# Acme (ACME) - Comprehensive Analysis Report\n\n**Disclaimer:** already here.\n\nBody"
	got := testNorm.Normalize(raw, "ACME")
	if strings.Count(got, "**Disclaimer:**") != 1 {
		t.Errorf("disclaimer duplicated:\n%s", got)
	}
	if strings.Contains(got, "**Report Generated:**") {
		t.Errorf("no new block expected:\n%s", got)
	}
}

func TestModelLabel(t *testing.T) {
	if got := ModelLabel("claude-sonnet-4-20250514"); got != "Claude Sonnet 4 (claude-sonnet-4-20250514)" {
		t.Errorf("ModelLabel = %q", got)
	}
	if got := ModelLabel("custom-model"); got != "custom-model" {
		t.Errorf("ModelLabel(unknown) = %q", got)
	}
}
