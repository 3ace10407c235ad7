// Package config reads runtime settings from the environment, loading a
// .env file from the working directory first when one exists.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// DefaultExchangeRate is the INR per USD rate used until one is saved in
// the settings collection.
const DefaultExchangeRate = 83.0

type Config struct {
	// DataDir is the PocketBase data directory. Empty keeps PocketBase's
	// default (pb_data next to the binary).
	DataDir string
	// ExchangeRate seeds the exchange_rate setting on first start.
	ExchangeRate float64
	// Seed inserts the sample catalog and example quote into an empty
	// inventory.
	Seed bool
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		DataDir:      getEnv("LEDQUOTE_DATA_DIR", ""),
		ExchangeRate: getEnvFloat("LEDQUOTE_EXCHANGE_RATE", DefaultExchangeRate),
		Seed:         getEnvBool("LEDQUOTE_SEED", true),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	parsed, err := cast.ToFloat64E(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	switch value {
	case "":
		return fallback
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	parsed, err := cast.ToBoolE(value)
	if err != nil {
		return fallback
	}
	return parsed
}
