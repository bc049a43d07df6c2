package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("REFRESH_SCHEDULE", "")
	t.Setenv("RUN_REFRESH_ON_STARTUP", "")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "0 * * * *", cfg.RefreshSchedule)
	assert.False(t, cfg.RunRefreshOnStartup)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("RUN_REFRESH_ON_STARTUP", "true")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "secret", cfg.GitHubToken)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.True(t, cfg.RunRefreshOnStartup)
	assert.True(t, cfg.CacheEnabled())
}

func TestLoadRejectsInvalidTTL(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")

	_, err := Load()

	assert.Error(t, err)
}
