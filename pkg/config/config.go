package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the application configuration
type Config struct {
	GitHubToken string
	Port        string

	// Snapshot cache; disabled when DBHost is unset.
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	CacheTTL   time.Duration

	RefreshSchedule     string
	RunRefreshOnStartup bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		GitHubToken:     os.Getenv("GITHUB_TOKEN"),
		Port:            os.Getenv("PORT"),
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          os.Getenv("DB_PORT"),
		RefreshSchedule: os.Getenv("REFRESH_SCHEDULE"),
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.RefreshSchedule == "" {
		cfg.RefreshSchedule = "0 * * * *" // Hourly
	}

	cfg.CacheTTL = 15 * time.Minute
	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL %q: %w", ttl, err)
		}
		cfg.CacheTTL = parsed
	}

	if os.Getenv("RUN_REFRESH_ON_STARTUP") == "true" {
		cfg.RunRefreshOnStartup = true
	}

	return cfg, nil
}

// CacheEnabled reports whether the snapshot cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.DBHost != ""
}
