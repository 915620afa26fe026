package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env               string
	Port              string
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	SearchModel       string
	SearchTimeout     int
	ReviewModel       string
	ReviewTimeout     int
	AppReferer        string
	AppTitle          string
}

func Load() *Config {
	return &Config{
		Env:               getEnv("ENV", "development"),
		Port:              getEnv("PORT", "4000"),
		OpenRouterAPIKey:  getSecret("OPENROUTER_API_KEY", "OPENROUTER_API_KEY_FILE", ""),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		SearchModel:       getEnv("SEARCH_MODEL", "google/gemini-2.0-flash-001"),
		SearchTimeout:     getEnvInt("SEARCH_TIMEOUT_SECONDS", 60),
		ReviewModel:       getEnv("REVIEW_MODEL", "openrouter/pony-alpha"),
		ReviewTimeout:     getEnvInt("REVIEW_TIMEOUT_SECONDS", 60),
		AppReferer:        getEnv("APP_REFERER", "http://localhost"),
		AppTitle:          getEnv("APP_TITLE", "BuyWise Agentic Assistant"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getSecret(envKey, fileEnvKey, fallback string) string {
	if value, ok := os.LookupEnv(envKey); ok {
		return value
	}

	if filePath, ok := os.LookupEnv(fileEnvKey); ok {
		content, err := os.ReadFile(filePath)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
