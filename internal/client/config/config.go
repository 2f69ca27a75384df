package config

import (
	"context"
	"time"
)

// Config holds runtime settings for the FeedLink CLI.
//
// Fields:
//   - BaseURL: prefix for all relative API paths.
//   - RequestTimeout: default per-request deadline.
//   - WatchInterval: how often the session watcher polls for external writes.
//   - StatsRefreshInterval: fixed re-invocation interval for dashboard stats.
//   - DatabaseDSN: path to the local session database.
type Config struct {
	BaseURL              string
	RequestTimeout       time.Duration
	WatchInterval        time.Duration
	StatsRefreshInterval time.Duration
	DatabaseDSN          string
}

// LoadDefaults populates c with compiled-in defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.WatchInterval = 2 * time.Second
	c.StatsRefreshInterval = 30 * time.Second
	c.DatabaseDSN = "feedlink.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// BaseURLSource yields a base-URL override from persistent client storage.
// The session store satisfies it.
type BaseURLSource interface {
	BaseURLOverride(ctx context.Context) (string, error)
}

// ApplyStoredBaseURL overlays the base URL with a value found in persistent
// storage, if any. Storage errors leave the configured value in place.
func (c *Config) ApplyStoredBaseURL(ctx context.Context, src BaseURLSource) {
	v, err := src.BaseURLOverride(ctx)
	if err != nil || v == "" {
		return
	}
	c.BaseURL = v
}
