package llm

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
)

// statusOverloaded is Anthropic's "overloaded" status code.
const statusOverloaded = 529

// rateLimitMarkers are matched against the lowercased error text.
var rateLimitMarkers = []string{
	"rate_limit",
	"rate limit",
	"too many requests",
	"resource_exhausted",
	"overloaded",
}

// statusCodeRe matches 429 as a standalone token, not inside an ID.
var statusCodeRe = regexp.MustCompile(`(?:^|[^\w.-])429(?:[^\w.-]|$)`)

// IsRateLimit reports whether err signals throttling or provider overload,
// which warrants a longer backoff than other failures.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}

	var aErr *anthropic.Error
	if errors.As(err, &aErr) && isThrottleStatus(aErr.StatusCode) {
		return true
	}
	var oErr *openai.Error
	if errors.As(err, &oErr) && isThrottleStatus(oErr.StatusCode) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, m := range rateLimitMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return statusCodeRe.MatchString(msg)
}

func isThrottleStatus(code int) bool {
	return code == http.StatusTooManyRequests || code == statusOverloaded
}
