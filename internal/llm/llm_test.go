package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicktick/internal/config"
	"quicktick/internal/domain"
)

func TestIsRateLimit(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("connection reset"), false},
		{"rate_limit marker", errors.New(`{"type":"rate_limit_error"}`), true},
		{"429 in message", errors.New("POST /v1/messages: 429 Too Many Requests"), true},
		{"gemini exhausted", errors.New("Error 429, Status: RESOURCE_EXHAUSTED"), true},
		{"overloaded", fmt.Errorf("anthropic API error: %w", errors.New("overloaded_error")), true},
		{"capitalised", errors.New("Rate limit exceeded, retry later"), true},
		{"bare status", errors.New("unexpected status 429"), true},
		{"429 inside request id", errors.New("internal error (request_id: req_4291ab-77)"), false},
		{"429 inside number", errors.New("read 14290 bytes then EOF"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRateLimit(tt.err))
		})
	}
}

func TestEstimateCost(t *testing.T) {
	usage := domain.TokenUsage{Input: 1_000_000, Output: 100_000, CacheCreation: 200_000, CacheRead: 1_000_000}
	got := EstimateCost("claude-sonnet-4-20250514", usage)
	// 3 + 1.5 + 0.75 + 0.30
	assert.InDelta(t, 5.55, got, 1e-9)

	assert.Equal(t, 0.0, EstimateCost("mystery-model", usage))
}

func TestPriceForLongestPrefix(t *testing.T) {
	p, ok := PriceFor("gemini-2.5-pro-preview")
	require.True(t, ok)
	assert.Equal(t, 10.0, p.Output)

	p, ok = PriceFor("claude-3-5-haiku-20241022")
	require.True(t, ok)
	assert.Equal(t, 5.0, p.Output)
}

func TestNewSelectsProvider(t *testing.T) {
	cfg := config.Default().LLM
	cfg.Anthropic.APIKey = "k"
	cfg.XAI.APIKey = "k"

	c, err := New(context.Background(), cfg, RoleReport)
	require.NoError(t, err)
	assert.IsType(t, &AnthropicClient{}, c)
	assert.Equal(t, "claude-sonnet-4-20250514", c.Model())

	c, err = New(context.Background(), cfg, RoleSummary)
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku-20241022", c.Model())

	cfg.Provider = "xai"
	c, err = New(context.Background(), cfg, RoleReport)
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)
	assert.Equal(t, "grok-4-1-fast-reasoning", c.Model())

	cfg.Provider = "bogus"
	_, err = New(context.Background(), cfg, RoleReport)
	assert.Error(t, err)
}
