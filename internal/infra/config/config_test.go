package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "", cfg.OpenRouterAPIKey)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouterBaseURL)
	assert.Equal(t, "google/gemini-2.0-flash-001", cfg.SearchModel)
	assert.Equal(t, 60, cfg.SearchTimeout)
	assert.Equal(t, "openrouter/pony-alpha", cfg.ReviewModel)
	assert.Equal(t, 60, cfg.ReviewTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("SEARCH_MODEL", "google/gemini-2.5-pro")
	t.Setenv("SEARCH_TIMEOUT_SECONDS", "30")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sk-test", cfg.OpenRouterAPIKey)
	assert.Equal(t, "google/gemini-2.5-pro", cfg.SearchModel)
	assert.Equal(t, 30, cfg.SearchTimeout)
}

func TestGetSecret_FileVariant(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "api_key")
	require.NoError(t, os.WriteFile(secretFile, []byte("sk-from-file\n"), 0o600))
	t.Setenv("OPENROUTER_API_KEY_FILE", secretFile)

	cfg := Load()

	assert.Equal(t, "sk-from-file", cfg.OpenRouterAPIKey)
}

func TestGetSecret_DirectEnvWinsOverFile(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "api_key")
	require.NoError(t, os.WriteFile(secretFile, []byte("sk-from-file"), 0o600))
	t.Setenv("OPENROUTER_API_KEY_FILE", secretFile)
	t.Setenv("OPENROUTER_API_KEY", "sk-direct")

	assert.Equal(t, "sk-direct", Load().OpenRouterAPIKey)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("REVIEW_TIMEOUT_SECONDS", "not-a-number")

	assert.Equal(t, 60, Load().ReviewTimeout)
}
