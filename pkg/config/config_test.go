package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_TypesenseConfig(t *testing.T) {
	t.Setenv("TYPESENSE_URL", "http://test-typesense:8108")
	t.Setenv("TYPESENSE_API_KEY", "test-key")
	t.Setenv("TYPESENSE_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Typesense.Enabled)
	assert.Equal(t, "http://test-typesense:8108", cfg.Typesense.URL)
	assert.Equal(t, "test-key", cfg.Typesense.APIKey)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TYPESENSE_URL", "")
	t.Setenv("SURVEY_TIMEZONE", "")
	t.Setenv("DASHBOARD_CACHE_TTL_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8108", cfg.Typesense.URL)
	assert.Equal(t, "UTC", cfg.Survey.Location.String())
	assert.Equal(t, 60, cfg.Survey.DashboardCacheTTLSeconds)
}

func TestLoad_SurveyTimezone(t *testing.T) {
	t.Setenv("SURVEY_TIMEZONE", "Asia/Kolkata")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", cfg.Survey.Location.String())
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("SURVEY_TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5433, User: "survey", Password: "pw", Database: "stalls", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5433 user=survey password=pw dbname=stalls sslmode=disable", cfg.DatabaseDSN())
}
