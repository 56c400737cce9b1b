// Package config loads application settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. Command-line flags override
// these values where a command defines them.
type Config struct {
	// Addr is the HTTP listen address of the API server.
	Addr string
	// DataFile is the path of the persistent data file (JSON or SQLite,
	// depending on Store).
	DataFile string
	// Store selects the persistence backend: "json", "sqlite" or "memory".
	Store string
	// Env selects the logger profile ("production" or anything else).
	Env string
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:     getEnv("ENVELOPE_ADDR", ":8087"),
		DataFile: getEnv("ENVELOPE_DATA_FILE", "budget_data.json"),
		Store:    getEnv("ENVELOPE_STORE", "json"),
		Env:      getEnv("ENVELOPE_ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
