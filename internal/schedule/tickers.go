package schedule

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ParseTickerList splits a comma- or whitespace-separated list into
// upper-cased tickers, dropping blanks and duplicates while keeping order.
func ParseTickerList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	return dedupe(fields)
}

// LoadTickerFile reads tickers from path. Each non-blank line contributes its
// first comma-separated column; a "symbol" or "ticker" header row and lines
// starting with '#' are ignored.
func LoadTickerFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ticker file %s: %w", path, err)
	}
	defer f.Close()

	var raw []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		first, _, _ := strings.Cut(line, ",")
		first = strings.Trim(strings.TrimSpace(first), `"`)
		switch strings.ToLower(first) {
		case "symbol", "ticker":
			continue
		}
		raw = append(raw, first)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ticker file %s: %w", path, err)
	}
	return dedupe(raw), nil
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
