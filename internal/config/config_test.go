package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "DATA_FILE", "LISTING_LIMIT", "DATABASE_URL", "MODEL_FILE", "UI_PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, 100, cfg.Data.ListingLimit)
	assert.Empty(t, cfg.Data.File)
	assert.Empty(t, cfg.Database.URL)
	assert.Empty(t, cfg.Model.File)
	assert.Equal(t, "8080", cfg.Dashboard.Port)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_FILE", "/data/listings.csv")
	t.Setenv("LISTING_LIMIT", "25")
	t.Setenv("UI_PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/data/listings.csv", cfg.Data.File)
	assert.Equal(t, 25, cfg.Data.ListingLimit)
	assert.Equal(t, "3000", cfg.Dashboard.Port)
}

func TestLoadRejectsInvalidListingLimit(t *testing.T) {
	t.Setenv("LISTING_LIMIT", "-1")

	_, err := Load()
	require.Error(t, err)
}

func TestGetEnvIntOrDefaultIgnoresGarbage(t *testing.T) {
	t.Setenv("LISTING_LIMIT", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Data.ListingLimit)
}
