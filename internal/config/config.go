package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"halalfull-support/internal/completion"
)

// Provider names accepted in SUPPORT_PROVIDER
const (
	ProviderSambaNova = "sambanova"
	ProviderGemini    = "gemini"
)

const (
	defaultBaseURL     = "https://api.sambanova.ai/v1"
	defaultModel       = "Meta-Llama-3.1-8B-Instruct"
	defaultGeminiModel = "gemini-2.5-flash"
	defaultListenAddr  = ":8080"
	defaultLogLevel    = "info"
)

// ErrMissingAPIKey is returned when the completion API key is absent or empty
var ErrMissingAPIKey = errors.New("Please set the SAMBANOVA_API_KEY in your .env file or environment variables.")

// ErrMissingGoogleAPIKey is the gemini-provider counterpart of ErrMissingAPIKey
var ErrMissingGoogleAPIKey = errors.New("Please set the GOOGLE_API_KEY in your .env file or environment variables.")

// Config holds the application configuration
type Config struct {
	Provider       string
	APIKey         string
	BaseURL        string
	Model          string
	ListenAddr     string
	LogLevel       zerolog.Level
	LogFile        string
	RequestTimeout time.Duration
}

// Load loads configuration from the environment and an optional .env file
func Load() (*Config, error) {
	// Try to load .env, but don't fail if it's missing
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("provider", ProviderSambaNova)
	v.SetDefault("base_url", defaultBaseURL)
	v.SetDefault("listen_addr", defaultListenAddr)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("request_timeout", "0s")

	bindings := map[string]string{
		"sambanova_api_key": "SAMBANOVA_API_KEY",
		"google_api_key":    "GOOGLE_API_KEY",
		"provider":          "SUPPORT_PROVIDER",
		"base_url":          "SUPPORT_BASE_URL",
		"model":             "SUPPORT_MODEL",
		"listen_addr":       "SUPPORT_LISTEN_ADDR",
		"log_level":         "SUPPORT_LOG_LEVEL",
		"log_file":          "SUPPORT_LOG_FILE",
		"request_timeout":   "SUPPORT_REQUEST_TIMEOUT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "bind %s", env)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Provider:   strings.ToLower(strings.TrimSpace(v.GetString("provider"))),
		BaseURL:    v.GetString("base_url"),
		Model:      v.GetString("model"),
		ListenAddr: v.GetString("listen_addr"),
		LogFile:    v.GetString("log_file"),
	}

	switch cfg.Provider {
	case ProviderSambaNova:
		cfg.APIKey = strings.TrimSpace(v.GetString("sambanova_api_key"))
		if cfg.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
		if cfg.Model == "" {
			cfg.Model = defaultModel
		}
	case ProviderGemini:
		cfg.APIKey = strings.TrimSpace(v.GetString("google_api_key"))
		if cfg.APIKey == "" {
			return nil, ErrMissingGoogleAPIKey
		}
		if cfg.Model == "" {
			cfg.Model = defaultGeminiModel
		}
	default:
		return nil, fmt.Errorf("unknown provider %q (expected %s or %s)", cfg.Provider, ProviderSambaNova, ProviderGemini)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("log_level")))
	if err != nil {
		return nil, errors.Wrap(err, "invalid SUPPORT_LOG_LEVEL")
	}
	cfg.LogLevel = level

	timeout, err := time.ParseDuration(v.GetString("request_timeout"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid SUPPORT_REQUEST_TIMEOUT")
	}
	if timeout < 0 {
		return nil, fmt.Errorf("SUPPORT_REQUEST_TIMEOUT must not be negative, got %s", timeout)
	}
	cfg.RequestTimeout = timeout

	return cfg, nil
}

// NewCompletionProvider creates the completion provider selected by the configuration
func (c *Config) NewCompletionProvider(ctx context.Context) (completion.Provider, error) {
	switch c.Provider {
	case ProviderGemini:
		p, err := completion.NewGeminiProvider(ctx, c.APIKey, c.Model, "")
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Gemini client")
		}
		return p, nil
	default:
		return completion.NewOpenAIProvider(c.APIKey, c.BaseURL, c.Model), nil
	}
}

// NewCompletionClient wraps the configured provider with the single-attempt result client
func (c *Config) NewCompletionClient(ctx context.Context) (*completion.Client, error) {
	p, err := c.NewCompletionProvider(ctx)
	if err != nil {
		return nil, err
	}
	return completion.NewClient(p, c.RequestTimeout), nil
}
