package sector

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
)

// ErrEmptyProfile is returned when the provider knows nothing about a ticker.
var ErrEmptyProfile = errors.New("empty profile")

// Profile is the company metadata a provider returns. Empty fields are
// unknown.
type Profile struct {
	Name     string
	Exchange string
	Country  string
	Industry string
}

// ProfileSource looks up company metadata for a ticker.
type ProfileSource interface {
	Profile(ctx context.Context, ticker string) (*Profile, error)
}

// ---------------------------------------------------------------------------
// Finnhub
// ---------------------------------------------------------------------------

// FinnhubSource reads the Finnhub company profile (profile2) endpoint.
type FinnhubSource struct {
	api *finnhub.DefaultApiService
}

// NewFinnhubSource creates a FinnhubSource authenticated with apiKey.
func NewFinnhubSource(apiKey string) *FinnhubSource {
	return newFinnhubSource(apiKey, "")
}

func newFinnhubSource(apiKey, serverURL string) *FinnhubSource {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	if serverURL != "" {
		cfg.Servers = finnhub.ServerConfigurations{{URL: serverURL}}
	}
	return &FinnhubSource{api: finnhub.NewAPIClient(cfg).DefaultApi}
}

// Profile implements ProfileSource.
func (s *FinnhubSource) Profile(ctx context.Context, ticker string) (*Profile, error) {
	p, resp, err := s.api.CompanyProfile2(ctx).Symbol(ticker).Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub profile %s: %w", ticker, err)
	}
	if resp != nil && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("finnhub profile %s: status %d", ticker, resp.StatusCode)
	}
	if strings.TrimSpace(p.GetName()) == "" {
		return nil, fmt.Errorf("finnhub profile %s: %w", ticker, ErrEmptyProfile)
	}
	return &Profile{
		Name:     p.GetName(),
		Exchange: p.GetExchange(),
		Country:  p.GetCountry(),
		Industry: p.GetFinnhubIndustry(),
	}, nil
}

// ---------------------------------------------------------------------------
// Alpaca
// ---------------------------------------------------------------------------

// AlpacaSource reads the Alpaca asset endpoint. It provides name and
// exchange only; sector data must already be in the lookup table.
type AlpacaSource struct {
	client *alpaca.Client
}

// NewAlpacaSource creates an AlpacaSource. An empty baseURL uses the SDK
// default.
func NewAlpacaSource(apiKey, apiSecret, baseURL string) *AlpacaSource {
	return &AlpacaSource{client: alpaca.NewClient(alpaca.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
		BaseURL:   baseURL,
	})}
}

// Profile implements ProfileSource.
func (s *AlpacaSource) Profile(_ context.Context, ticker string) (*Profile, error) {
	asset, err := s.client.GetAsset(ticker)
	if err != nil {
		return nil, fmt.Errorf("alpaca asset %s: %w", ticker, err)
	}
	if asset == nil || strings.TrimSpace(asset.Name) == "" {
		return nil, fmt.Errorf("alpaca asset %s: %w", ticker, ErrEmptyProfile)
	}
	return &Profile{
		Name:     asset.Name,
		Exchange: string(asset.Exchange),
	}, nil
}
