// Package config reads the process environment into a Config struct.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port              string        // Port the HTTP server listens on
	DBDSN             string        // Database connection string
	CategoryAllowlist []string      // Glob patterns for accepted transaction categories
	PollInterval      time.Duration // Refresh interval for the client data cache
}

// Load reads an optional .env file and returns the configuration.
//
// The database connection string silently defaults to a local database
// for the server. Offline utilities that must not fall back to a default
// use RequireDSN instead.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on process environment")
	}

	pollInterval := 15 * time.Second
	if raw := getEnv("POLL_INTERVAL", ""); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Warn().Str("POLL_INTERVAL", raw).Msg("not a valid duration, using default")
		} else {
			pollInterval = parsed
		}
	}

	return Config{
		Port:              getEnv("PORT", "4000"),
		DBDSN:             getEnv("DB_DSN", "data/finance.db"),
		CategoryAllowlist: splitList(getEnv("CATEGORY_ALLOWLIST", "*")),
		PollInterval:      pollInterval,
	}
}

// RequireDSN returns the database connection string and reports whether
// it is set. Utilities like the seeder treat an unset DSN as fatal.
func RequireDSN() (string, bool) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on process environment")
	}

	dsn, ok := os.LookupEnv("DB_DSN")
	return dsn, ok && dsn != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
