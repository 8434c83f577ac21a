package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the quicktick tools.
type Config struct {
	Storage  Storage        `yaml:"storage"`
	Server   Server         `yaml:"server"`
	LLM      LLM            `yaml:"llm"`
	Finnhub  Finnhub        `yaml:"finnhub"`
	Alpaca   Alpaca         `yaml:"alpaca"`
	Logging  Logging        `yaml:"logging"`
	Report   JobConfig      `yaml:"report"`
	Summary  JobConfig      `yaml:"summary"`
	Sector   SectorConfig   `yaml:"sector"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

// Storage holds paths for data persistence.
type Storage struct {
	// Backend selects the per-ticker record store: "json" (one file per
	// ticker under DataDir) or "sqlite" (rows in SQLitePath).
	Backend      string `yaml:"backend" validate:"oneof=json sqlite"`
	DataDir      string `yaml:"data_dir" validate:"required"`
	SQLitePath   string `yaml:"sqlite_path"`
	LookupPath   string `yaml:"lookup_path" validate:"required"`
	CursorPath   string `yaml:"cursor_path" validate:"required"`
	ManifestPath string `yaml:"manifest_path" validate:"required"`
	SnapshotDir  string `yaml:"snapshot_dir"`
}

// Server holds the read-only HTTP API listener configuration.
type Server struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port" validate:"gte=0,lte=65535"`
}

// LLM selects and configures the completion provider.
type LLM struct {
	Provider  string    `yaml:"provider" validate:"oneof=anthropic xai gemini"`
	Anthropic Anthropic `yaml:"anthropic"`
	XAI       XAI       `yaml:"xai"`
	Gemini    Gemini    `yaml:"gemini"`
}

// Anthropic holds credentials and model names for the Anthropic API.
type Anthropic struct {
	APIKey       string `yaml:"api_key"`
	Model        string `yaml:"model"`
	SummaryModel string `yaml:"summary_model"`
	WebSearch    bool   `yaml:"web_search"`
}

// XAI holds credentials for the OpenAI-compatible xAI endpoint.
type XAI struct {
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	Model        string `yaml:"model"`
	SummaryModel string `yaml:"summary_model"`
}

// Gemini holds credentials for the Google Gemini API.
type Gemini struct {
	APIKey       string `yaml:"api_key"`
	Model        string `yaml:"model"`
	SummaryModel string `yaml:"summary_model"`
	WebSearch    bool   `yaml:"web_search"`
}

// Finnhub holds the profile-lookup credential.
type Finnhub struct {
	APIKey string `yaml:"api_key"`
}

// Alpaca holds credentials and endpoints for the Alpaca broker API, used as
// an alternative profile source.
type Alpaca struct {
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
	BaseURL   string `yaml:"base_url"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// JobConfig holds retry and pacing parameters for a per-ticker LLM job.
type JobConfig struct {
	MaxRetries   int           `yaml:"max_retries" validate:"gte=1"`
	RetryDelay   time.Duration `yaml:"retry_delay" validate:"gte=0"`
	RequestDelay time.Duration `yaml:"request_delay" validate:"gte=0"`
	MaxTokens    int           `yaml:"max_tokens" validate:"gte=1"`
}

// SectorConfig controls the sector-enrichment batch.
type SectorConfig struct {
	// Policy is "fill-missing" or "full-refresh".
	Policy       string        `yaml:"policy" validate:"oneof=fill-missing full-refresh"`
	Source       string        `yaml:"source" validate:"oneof=finnhub alpaca"`
	RequestDelay time.Duration `yaml:"request_delay" validate:"gte=0"`
	// MaxRetries is the number of attempts per profile lookup.
	MaxRetries int `yaml:"max_retries" validate:"gte=1"`
}

// ScheduleConfig controls the daemon.
type ScheduleConfig struct {
	Cron string `yaml:"cron"`
}

// ---------------------------------------------------------------------------
// Defaults
// ---------------------------------------------------------------------------

// Default returns a Config with every field set to its default value.
func Default() *Config {
	return &Config{
		Storage: Storage{
			Backend:      "json",
			DataDir:      "data",
			LookupPath:   "company_lookup.json",
			CursorPath:   "current_day.txt",
			ManifestPath: "todays_tickers.json",
		},
		Server: Server{Host: "127.0.0.1", Port: 8080},
		LLM: LLM{
			Provider: "anthropic",
			Anthropic: Anthropic{
				Model:        "claude-sonnet-4-20250514",
				SummaryModel: "claude-3-5-haiku-20241022",
				WebSearch:    true,
			},
			XAI: XAI{
				BaseURL:      "https://api.x.ai/v1",
				Model:        "grok-4-1-fast-reasoning",
				SummaryModel: "grok-4-1-fast-reasoning",
			},
			Gemini: Gemini{
				Model:        "gemini-2.5-flash",
				SummaryModel: "gemini-2.5-flash",
				WebSearch:    true,
			},
		},
		Logging: Logging{Level: "info", Format: "text"},
		Report: JobConfig{
			MaxRetries:   5,
			RetryDelay:   120 * time.Second,
			RequestDelay: 20 * time.Second,
			MaxTokens:    8000,
		},
		Summary: JobConfig{
			MaxRetries:   3,
			RetryDelay:   60 * time.Second,
			RequestDelay: 2 * time.Second,
			MaxTokens:    300,
		},
		Sector: SectorConfig{
			Policy:       "fill-missing",
			Source:       "finnhub",
			RequestDelay: time.Second,
			MaxRetries:   2,
		},
		Schedule: ScheduleConfig{Cron: "0 6 * * *"},
	}
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Path returns the configuration file path: QUICKTICK_CONFIG when set,
// otherwise config/quicktick.yaml.
func Path() string {
	if p := os.Getenv("QUICKTICK_CONFIG"); p != "" {
		return p
	}
	return "config/quicktick.yaml"
}

// Load reads the YAML configuration file at the given path over the
// defaults, then applies environment variable overrides. A missing file is
// not an error: the tools run from defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("COMPANY_LOOKUP_PATH"); v != "" {
		cfg.Storage.LookupPath = v
	}
	if v := os.Getenv("CURSOR_PATH"); v != "" {
		cfg.Storage.CursorPath = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.LLM.Anthropic.APIKey = v
	}
	if v := os.Getenv("XAI_API_KEY"); v != "" {
		cfg.LLM.XAI.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.LLM.Gemini.APIKey = v
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		cfg.Finnhub.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.Alpaca.APIKey = v
	}
	if v := os.Getenv("ALPACA_API_SECRET"); v != "" {
		cfg.Alpaca.APISecret = v
	}

	// Standard Alpaca env vars (canonical names used by the SDK).
	if v := os.Getenv("APCA_API_KEY_ID"); v != "" {
		cfg.Alpaca.APIKey = v
	}
	if v := os.Getenv("APCA_API_SECRET_KEY"); v != "" {
		cfg.Alpaca.APISecret = v
	}
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

// ErrMissingCredential is returned when a required API credential is unset.
var ErrMissingCredential = errors.New("missing API credential")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks enum values and required paths.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Storage.Backend == "sqlite" && c.Storage.SQLitePath == "" {
		return fmt.Errorf("invalid configuration: storage.sqlite_path is required for the sqlite backend")
	}
	return nil
}

// RequireLLM returns ErrMissingCredential when the selected provider has no
// API key.
func (c *Config) RequireLLM() error {
	var key, env string
	switch c.LLM.Provider {
	case "anthropic":
		key, env = c.LLM.Anthropic.APIKey, "ANTHROPIC_API_KEY"
	case "xai":
		key, env = c.LLM.XAI.APIKey, "XAI_API_KEY"
	case "gemini":
		key, env = c.LLM.Gemini.APIKey, "GEMINI_API_KEY"
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}
	if err := validate.Var(key, "required"); err != nil {
		return fmt.Errorf("%w: set %s or llm.%s.api_key", ErrMissingCredential, env, c.LLM.Provider)
	}
	return nil
}

// RequireProfileSource returns ErrMissingCredential when the configured
// sector profile source has no credentials.
func (c *Config) RequireProfileSource() error {
	switch c.Sector.Source {
	case "finnhub":
		if err := validate.Var(c.Finnhub.APIKey, "required"); err != nil {
			return fmt.Errorf("%w: set FINNHUB_API_KEY or finnhub.api_key", ErrMissingCredential)
		}
	case "alpaca":
		if c.Alpaca.APIKey == "" || c.Alpaca.APISecret == "" {
			return fmt.Errorf("%w: set APCA_API_KEY_ID and APCA_API_SECRET_KEY", ErrMissingCredential)
		}
	default:
		return fmt.Errorf("unknown sector source %q", c.Sector.Source)
	}
	return nil
}
