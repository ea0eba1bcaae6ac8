// internal/config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds all application-wide configuration.
type AppConfig struct {
	// DataDir is the directory holding one JSON file per collection.
	DataDir string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// LogFormat is "text" or "json".
	LogFormat string
}

// LoadConfig loads configuration from environment variables, reading an
// optional .env file first. Every variable has a default suitable for local
// use.
func LoadConfig() (*AppConfig, error) {
	// A missing .env is fine; explicit environment always wins over it.
	_ = godotenv.Load()

	return &AppConfig{
		DataDir:   getEnv("MONETA_DATA_DIR", "data"),
		LogLevel:  getEnv("MONETA_LOG_LEVEL", "info"),
		LogFormat: getEnv("MONETA_LOG_FORMAT", "text"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
