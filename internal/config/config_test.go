package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halalfull-support/internal/completion"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SAMBANOVA_API_KEY", "GOOGLE_API_KEY", "SUPPORT_PROVIDER", "SUPPORT_BASE_URL",
		"SUPPORT_MODEL", "SUPPORT_LISTEN_ADDR", "SUPPORT_LOG_LEVEL", "SUPPORT_LOG_FILE",
		"SUPPORT_REQUEST_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingKey(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SAMBANOVA_API_KEY")
}

func TestLoadWhitespaceKeyIsMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("SAMBANOVA_API_KEY", "   ")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SAMBANOVA_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderSambaNova, cfg.Provider)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "https://api.sambanova.ai/v1", cfg.BaseURL)
	assert.Equal(t, "Meta-Llama-3.1-8B-Instruct", cfg.Model)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SAMBANOVA_API_KEY", "secret")
	t.Setenv("SUPPORT_MODEL", "Meta-Llama-3.3-70B-Instruct")
	t.Setenv("SUPPORT_LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("SUPPORT_LOG_LEVEL", "DEBUG")
	t.Setenv("SUPPORT_REQUEST_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Meta-Llama-3.3-70B-Instruct", cfg.Model)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadGeminiProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPPORT_PROVIDER", "gemini")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingGoogleAPIKey)

	t.Setenv("GOOGLE_API_KEY", "g-key")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "g-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	cases := map[string][2]string{
		"provider":  {"SUPPORT_PROVIDER", "anthropic"},
		"log level": {"SUPPORT_LOG_LEVEL", "loud"},
		"timeout":   {"SUPPORT_REQUEST_TIMEOUT", "soon"},
		"negative":  {"SUPPORT_REQUEST_TIMEOUT", "-1s"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("SAMBANOVA_API_KEY", "secret")
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestNewCompletionProviderSambaNova(t *testing.T) {
	cfg := &Config{Provider: ProviderSambaNova, APIKey: "k", BaseURL: "http://localhost", Model: "m"}

	p, err := cfg.NewCompletionProvider(t.Context())
	require.NoError(t, err)
	assert.IsType(t, &completion.OpenAIProvider{}, p)
}

func TestPreferencesRoundTrip(t *testing.T) {
	dir := t.TempDir()

	prefs := LoadPreferencesFrom(dir)
	assert.Equal(t, "general_chat", prefs.LastSupportMode)

	require.NoError(t, prefs.UpdateSupportMode("order_tracking"))

	again := LoadPreferencesFrom(dir)
	assert.Equal(t, "order_tracking", again.LastSupportMode)
}

func TestPreferencesCorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "preferences.json"), []byte("{not json"), 0644))

	prefs := LoadPreferencesFrom(dir)
	assert.Equal(t, DefaultPreferences().LastSupportMode, prefs.LastSupportMode)
}
