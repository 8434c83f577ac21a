// Package llm wraps the completion providers used to write reports and
// summaries behind a single Completer interface.
package llm

import (
	"context"
	"fmt"
	"strings"

	"quicktick/internal/config"
	"quicktick/internal/domain"
)

// Request is a single-turn completion request.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
	// WebSearch enables the provider's server-side search tool when it has one.
	WebSearch bool
}

// Completion is the provider's text answer plus token accounting.
type Completion struct {
	Text  string
	Model string
	Usage domain.TokenUsage
}

// Completer produces a completion for a request.
type Completer interface {
	Complete(ctx context.Context, req Request) (*Completion, error)
	Model() string
}

// Role selects which configured model a completer uses.
type Role int

const (
	RoleReport Role = iota
	RoleSummary
)

// New builds the Completer for the configured provider and role.
func New(ctx context.Context, cfg config.LLM, role Role) (Completer, error) {
	pick := func(report, summary string) string {
		if role == RoleSummary && summary != "" {
			return summary
		}
		return report
	}

	switch strings.ToLower(cfg.Provider) {
	case "anthropic":
		return NewAnthropicClient(cfg.Anthropic.APIKey, pick(cfg.Anthropic.Model, cfg.Anthropic.SummaryModel)), nil
	case "xai":
		return NewOpenAIClient(cfg.XAI.APIKey, cfg.XAI.BaseURL, pick(cfg.XAI.Model, cfg.XAI.SummaryModel)), nil
	case "gemini":
		return NewGeminiClient(ctx, cfg.Gemini.APIKey, pick(cfg.Gemini.Model, cfg.Gemini.SummaryModel))
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
