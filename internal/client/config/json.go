package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/feedlink/feedlink-go/internal/flagx"
	"github.com/feedlink/feedlink-go/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "10s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL              string         `json:"base_url"`
	RequestTimeout       timex.Duration `json:"request_timeout"`
	WatchInterval        timex.Duration `json:"watch_interval"`
	StatsRefreshInterval timex.Duration `json:"stats_refresh_interval"`
	DatabaseDSN          string         `json:"database_dsn"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags (flagx.JsonConfigFlags). If no path is
// given, nothing is loaded. Read or unmarshal errors panic; absent fields
// leave the corresponding Config values untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.WatchInterval.Duration > 0 {
		cfg.WatchInterval = time.Duration(jc.WatchInterval.Duration)
	}
	if jc.StatsRefreshInterval.Duration > 0 {
		cfg.StatsRefreshInterval = time.Duration(jc.StatsRefreshInterval.Duration)
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
