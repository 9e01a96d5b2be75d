package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
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
		{name: "server and interval", args: []string{"cmd", "-a", "127.0.0.1:9090", "-i", "10"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", OnlineCheckInterval: 10 * time.Second}},
		{name: "recipe api and cache", args: []string{"cmd", "-u", "http://api.test", "-k", "key", "-d", "c.db", "-m", "3", "-l", "json", "-unknown", "x"},
			expected: &Config{RecipeAPIBaseURL: "http://api.test", RecipeAPIKey: "key", CacheDSN: "c.db", CacheMaxAgeDays: 3, LogFormat: "json"}},
		{name: "incorrect check interval", args: []string{"cmd", "-a", "127.0.0.1:9090", "-i", "abc"}, expectPanic: true},
		{name: "incorrect max age", args: []string{"cmd", "-m", "week"}, expectPanic: true},
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
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
