package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-form/internal/config"
)

// clearEnv blanks every variable Load reads so tests start from defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "CORS_ORIGINS", "LOCATIONS_FILE",
		"MAX_LEGS", "TIMEZONE", "MAX_BODY_BYTES",
	} {
		t.Setenv(key, "")
	}
}

// TestLoad_defaults verifies that every variable falls back to its default.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:8081"}, cfg.CORSOrigins)
	require.Empty(t, cfg.LocationsFile)
	require.Equal(t, 5, cfg.MaxLegs)
	require.Equal(t, time.UTC, cfg.TimeZone)
	require.EqualValues(t, 65536, cfg.MaxBodyBytes)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("LOCATIONS_FILE", "/etc/itinerary/locations.yaml")
	t.Setenv("MAX_LEGS", "8")
	t.Setenv("TIMEZONE", "Asia/Kolkata")
	t.Setenv("MAX_BODY_BYTES", "1024")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "/etc/itinerary/locations.yaml", cfg.LocationsFile)
	require.Equal(t, 8, cfg.MaxLegs)
	require.Equal(t, "Asia/Kolkata", cfg.TimeZone.String())
	require.EqualValues(t, 1024, cfg.MaxBodyBytes)
}

// TestLoad_invalidValues verifies that one error names every bad variable.
func TestLoad_invalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_LEGS", "0")
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")
	t.Setenv("MAX_BODY_BYTES", "lots")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "MAX_LEGS")
	require.ErrorContains(t, err, "TIMEZONE")
	require.ErrorContains(t, err, "MAX_BODY_BYTES")
}

func TestLoad_nonNumericMaxLegs(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_LEGS", "five")

	_, err := config.Load()

	require.ErrorContains(t, err, "MAX_LEGS")
}
