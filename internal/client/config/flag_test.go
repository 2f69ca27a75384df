package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "base url and intervals",
			args: []string{"cmd", "-a", "http://127.0.0.1:9090/api", "-t", "5", "-i", "10"},
			expected: &Config{
				BaseURL:        "http://127.0.0.1:9090/api",
				RequestTimeout: 5 * time.Second,
				WatchInterval:  10 * time.Second,
			},
		},
		{
			name: "database path",
			args: []string{"cmd", "-d", "/tmp/fl.db"},
			expected: &Config{
				DatabaseDSN: "/tmp/fl.db",
			},
		},
		{
			name:        "non-numeric timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected.BaseURL, config.BaseURL)
			assert.Equal(t, tt.expected.RequestTimeout, config.RequestTimeout)
			assert.Equal(t, tt.expected.WatchInterval, config.WatchInterval)
			assert.Equal(t, tt.expected.DatabaseDSN, config.DatabaseDSN)
		})
	}
}
