package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"quicktick/internal/domain"
)

// TitleSuffix ends every report title.
const TitleSuffix = "Comprehensive Analysis Report"

// NarrationCues match lines in which a model narrates its own process
// ("Let me search...", "Based on my research...") instead of reporting.
// Paragraphs before the first heading containing such a line are dropped.
var NarrationCues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bI['’]ll conduct\b`),
	regexp.MustCompile(`(?i)\blet me (search|conduct|analyze|gather)\b`),
	regexp.MustCompile(`(?i)\bbased on (my|the) (research|search|analysis)\b`),
	regexp.MustCompile(`(?i)\bnow (let me|I['’]ll|I will)\b`),
	regexp.MustCompile(`(?i)\bfirst,? (I['’]ll|let me)\b`),
	regexp.MustCompile(`(?i)\bhere['’]s a comprehensive\b`),
	regexp.MustCompile(`(?i)\bI have (gathered|collected|found)\b`),
	regexp.MustCompile(`(?i)\bafter (searching|analyzing|reviewing)\b`),
}

var (
	headingRe    = regexp.MustCompile(`^#{1,6}\s+`)
	titleRe      = regexp.MustCompile(`^#\s+`)
	sectionRe    = regexp.MustCompile(`^##\s+`)
	titleNameRe  = regexp.MustCompile(`^#{1,2}\s+(.+?)(?:\s+-\s+|\s*\(|\s*$)`)
	numberingRe  = regexp.MustCompile(`^\s*\d+[.)]?\s*`)
	legalRe      = regexp.MustCompile(`(?i)\s*\b(Inc|Corp|Corporation|Company|Ltd)\b\.?.*$`)
	tickerTailRe = regexp.MustCompile(`\s*\([A-Z]+\).*$`)
)

// genericSections are h2 names that are section labels, not company names.
var genericSections = map[string]bool{
	"company overview":    true,
	"overview":            true,
	"executive summary":   true,
	"summary":             true,
	"introduction":        true,
	"current market data": true,
	"recent developments": true,
	"investment thesis":   true,
	"financial data":      true,
	"key takeaways":       true,
}

// Normalizer rewrites raw model output into the canonical report layout:
// title, disclaimer block, body.
type Normalizer struct {
	// ModelLabel names the model in the disclaimer.
	ModelLabel string
	// Generated is the report date; the next refresh is 91 days later.
	Generated time.Time
}

// Normalize strips narration before the first heading, enforces the title
// "# <Company> (<TICKER>) - Comprehensive Analysis Report" at the top, and
// inserts the disclaimer after it when absent. Applying it twice yields the
// same text as applying it once.
func (n Normalizer) Normalize(raw, ticker string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = stripNarration(text)

	title, body := extractTitle(strings.Split(text, "\n"), ticker)
	body = strings.TrimSpace(body)

	var sb strings.Builder
	sb.WriteString(title)
	if !hasDisclaimer(body) {
		sb.WriteString("\n\n")
		sb.WriteString(n.Disclaimer())
	}
	if body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(body)
	}
	return sb.String()
}

// Disclaimer returns the block inserted below the title.
func (n Normalizer) Disclaimer() string {
	next := n.Generated.Add(domain.RefreshInterval)
	label := n.ModelLabel
	if label == "" {
		label = "an AI model"
	}
	return fmt.Sprintf("**Report Generated:** %s  \n**Next Refresh:** %s\n\n"+
		"**Disclaimer:** This sell-side report was generated using %s. "+
		"Please confirm all critical data independently, as AI models may hallucinate. "+
		"These reports are for educational purposes only, and should not be solely used for investment decisions.\n\n---",
		domain.DisplayDate(n.Generated), domain.DisplayDate(next), label)
}

// Title formats the canonical report title.
func Title(company, ticker string) string {
	return fmt.Sprintf("# %s (%s) - %s", company, ticker, TitleSuffix)
}

// stripNarration drops preamble paragraphs that match a narration cue.
func stripNarration(text string) string {
	lines := strings.Split(text, "\n")
	first := len(lines)
	for i, line := range lines {
		if headingRe.MatchString(line) {
			first = i
			break
		}
	}
	if first == 0 {
		return text
	}

	var kept []string
	var para []string
	flush := func() {
		if len(para) > 0 && !isNarration(para) {
			kept = append(kept, strings.Join(para, "\n"))
		}
		para = para[:0]
	}
	for _, line := range lines[:first] {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		para = append(para, line)
	}
	flush()

	rest := strings.Join(lines[first:], "\n")
	if len(kept) == 0 {
		return rest
	}
	return strings.Join(kept, "\n\n") + "\n\n" + rest
}

func isNarration(para []string) bool {
	for _, line := range para {
		for _, re := range NarrationCues {
			if re.MatchString(line) {
				return true
			}
		}
	}
	return false
}

// extractTitle returns the canonical title and the remaining lines.
func extractTitle(lines []string, ticker string) (string, string) {
	for i, line := range lines {
		if !titleRe.MatchString(line) {
			continue
		}
		line = strings.TrimSpace(line)
		rest := strings.Join(append(append([]string{}, lines[:i]...), lines[i+1:]...), "\n")
		if strings.Contains(line, "("+ticker+")") && strings.Contains(line, TitleSuffix) {
			return line, rest
		}
		return Title(companyName(line, ticker), ticker), rest
	}

	// No title: borrow the company name from the first section heading.
	name := ticker
	for _, line := range lines {
		if sectionRe.MatchString(line) {
			if n := sectionName(line); n != "" {
				name = n
			}
			break
		}
	}
	return Title(name, ticker), strings.Join(lines, "\n")
}

// companyName pulls the company out of a heading, dropping legal suffixes
// and any parenthesised ticker.
func companyName(heading, ticker string) string {
	m := titleNameRe.FindStringSubmatch(heading)
	if m == nil {
		return ticker
	}
	name := cleanName(m[1])
	if name == "" {
		return ticker
	}
	return name
}

func cleanName(s string) string {
	s = strings.TrimSpace(s)
	s = legalRe.ReplaceAllString(s, "")
	s = tickerTailRe.ReplaceAllString(s, "")
	return strings.TrimRight(strings.TrimSpace(s), ",:")
}

func sectionName(heading string) string {
	m := titleNameRe.FindStringSubmatch(heading)
	if m == nil {
		return ""
	}
	raw := numberingRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
	name := cleanName(raw)
	if name == "" || genericSections[strings.ToLower(name)] || genericSections[strings.ToLower(raw)] {
		return ""
	}
	return name
}

func hasDisclaimer(body string) bool {
	return strings.HasPrefix(body, "**Report Generated:**") || strings.HasPrefix(body, "**Disclaimer:**")
}
