package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is the server's environment configuration.
type Config struct {
	Port         string
	AssetBaseURL string
	ShareBaseURL string
	LogLevel     string
}

// Load reads .env when present, then the environment, with defaults.
func Load(logger zerolog.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		AssetBaseURL: strings.TrimRight(getEnv("ASSET_BASE_URL", ""), "/"),
		ShareBaseURL: strings.TrimRight(getEnv("SHARE_BASE_URL", ""), "/"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	logger.Info().
		Str("port", cfg.Port).
		Str("asset_base_url", cfg.AssetBaseURL).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
