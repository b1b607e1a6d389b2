// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without a zoneinfo database
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:8081"] (React Native dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// LocationsFile is an optional YAML file replacing the embedded
	// location catalog. Empty means use the embedded default.
	LocationsFile string

	// MaxLegs is the most legs a submitted itinerary may have. Defaults to 5.
	MaxLegs int

	// TimeZone is the zone departure dates are interpreted in. Defaults to UTC.
	TimeZone *time.Location

	// MaxBodyBytes caps request body size. Defaults to 64 KiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every variable that holds an invalid value.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8081")),
		LocationsFile: os.Getenv("LOCATIONS_FILE"),
	}

	var invalid []string

	maxLegs, err := strconv.Atoi(getEnv("MAX_LEGS", "5"))
	if err != nil || maxLegs < 1 {
		invalid = append(invalid, "MAX_LEGS")
	}
	cfg.MaxLegs = maxLegs

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "65536"), 10, 64)
	if err != nil || maxBody < 1 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = maxBody

	tz, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		invalid = append(invalid, "TIMEZONE")
	}
	cfg.TimeZone = tz

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
