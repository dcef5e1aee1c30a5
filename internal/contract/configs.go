package contract

import (
	"fmt"
	"strings"
	"time"

	"fplassist/schema"
)

// Default values for configuration.
const (
	DefaultLookahead = 5  // upcoming fixtures considered per team
	DefaultPickLimit = 10 // buy recommendations to show
	DefaultOutCount  = 3  // bottom-K transfer-out flags
	DefaultPrecision = 1
	MaxPickLimit     = 100
)

// DefaultCacheTTL bounds how long a cached API payload stays fresh.
var DefaultCacheTTL = time.Hour

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// FileTimestampFormat is used for timestamped export file names.
const FileTimestampFormat = "20060102_1504"

// EmailConfig holds SMTP delivery settings for the report mailer.
// The password is read from the environment, never from flags or files.
type EmailConfig struct {
	To   string
	From string
	Host string
	Port int
}

// Config holds the runtime configuration for one run.
// This struct remains the "final, validated" config; the engine receives it
// as an explicit parameter and never reads ambient state.
type Config struct {
	TeamID    int
	Cookie    string
	BaseURL   string
	Lookahead int
	PickLimit int
	OutCount  int

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Detail     bool
	Explain    bool
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	CacheBackend   schema.CacheBackend
	CacheDBConnect string
	CacheTTL       time.Duration

	// Weights is the final signal weight map, defaults merged with any
	// config file overrides and normalized to sum to 1.
	Weights map[schema.SignalKey]float64

	Email EmailConfig
}

// Clone returns a copy of the config safe for per-request mutation
// (used by the MCP handlers).
func (c *Config) Clone() *Config {
	out := *c
	out.Weights = make(map[schema.SignalKey]float64, len(c.Weights))
	for k, v := range c.Weights {
		out.Weights[k] = v
	}
	return &out
}

// WeightsRawInput holds signal weight overrides from the YAML config file.
type WeightsRawInput struct {
	Form     *float64 `mapstructure:"form"`
	Fixtures *float64 `mapstructure:"fixtures"`
	Points   *float64 `mapstructure:"points"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct; ProcessAndValidate turns it into
// a Config or fails fast.
type ConfigRawInput struct {
	TeamID    int    `mapstructure:"team-id"`
	Cookie    string `mapstructure:"cookie"`
	BaseURL   string `mapstructure:"base-url"`
	Lookahead int    `mapstructure:"lookahead"`
	Limit     int    `mapstructure:"limit"`
	OutCount  int    `mapstructure:"out-count"`

	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision"`
	Detail     bool   `mapstructure:"detail"`
	Explain    bool   `mapstructure:"explain"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`

	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	CacheTTL       string `mapstructure:"cache-ttl"`

	EmailTo   string `mapstructure:"email-to"`
	EmailFrom string `mapstructure:"email-from"`
	SMTPHost  string `mapstructure:"smtp-host"`
	SMTPPort  int    `mapstructure:"smtp-port"`

	Weights *WeightsRawInput `mapstructure:"weights"`
}

// ProcessAndValidate populates cfg from the raw input, applying defaults and
// rejecting caller contract violations before any fetch or scoring begins.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.Lookahead < 1 {
		return fmt.Errorf("lookahead must be a positive number of fixtures, got %d", input.Lookahead)
	}
	if input.Limit < 1 || input.Limit > MaxPickLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxPickLimit, input.Limit)
	}
	if input.OutCount < 1 {
		return fmt.Errorf("out-count must be positive, got %d", input.OutCount)
	}
	cfg.Lookahead = input.Lookahead
	cfg.PickLimit = input.Limit
	cfg.OutCount = input.OutCount

	out := schema.OutputMode(strings.ToLower(input.Output))
	if out == "" {
		out = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[out]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv, json or parquet", input.Output)
	}
	cfg.Output = out
	cfg.OutputFile = input.OutputFile

	if input.Precision < 0 || input.Precision > 6 {
		return fmt.Errorf("precision must be between 0 and 6, got %d", input.Precision)
	}
	cfg.Precision = input.Precision
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width
	cfg.UseColors = parseBoolish(input.Color, true)

	backend := schema.CacheBackend(strings.ToLower(input.CacheBackend))
	if backend == "" {
		backend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidCacheBackends[backend]; !ok {
		return fmt.Errorf("invalid cache backend %q: must be sqlite or none", input.CacheBackend)
	}
	cfg.CacheBackend = backend
	cfg.CacheDBConnect = input.CacheDBConnect

	cfg.CacheTTL = DefaultCacheTTL
	if input.CacheTTL != "" {
		ttl, err := time.ParseDuration(input.CacheTTL)
		if err != nil {
			return fmt.Errorf("invalid cache-ttl %q: %w", input.CacheTTL, err)
		}
		if ttl < 0 {
			return fmt.Errorf("cache-ttl must not be negative, got %s", ttl)
		}
		cfg.CacheTTL = ttl
	}

	cfg.TeamID = input.TeamID
	cfg.Cookie = input.Cookie
	cfg.BaseURL = strings.TrimRight(input.BaseURL, "/")

	weights, err := resolveWeights(input.Weights)
	if err != nil {
		return err
	}
	cfg.Weights = weights

	cfg.Email = EmailConfig{
		To:   input.EmailTo,
		From: input.EmailFrom,
		Host: input.SMTPHost,
		Port: input.SMTPPort,
	}

	return nil
}

// resolveWeights merges config file overrides onto the defaults and
// normalizes the result so the weights always sum to 1.
func resolveWeights(raw *WeightsRawInput) (map[schema.SignalKey]float64, error) {
	weights := schema.DefaultWeights()
	if raw != nil {
		if raw.Form != nil {
			weights[schema.SignalForm] = *raw.Form
		}
		if raw.Fixtures != nil {
			weights[schema.SignalFixtures] = *raw.Fixtures
		}
		if raw.Points != nil {
			weights[schema.SignalPoints] = *raw.Points
		}
	}
	var sum float64
	for key, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("weight %q must not be negative, got %v", key, w)
		}
		sum += w
	}
	if sum == 0 {
		return nil, fmt.Errorf("at least one scoring weight must be positive")
	}
	for key := range weights {
		weights[key] /= sum
	}
	return weights, nil
}

// parseBoolish interprets yes/no style flag values.
func parseBoolish(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return fallback
	}
}
