package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("variables override config", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(EnvLegacyAPIKey, "legacy")
		t.Setenv(EnvAPIKey, "primary")
		t.Setenv(EnvServer, "srv:1")
		t.Setenv(EnvCacheDSN, "env.db")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "primary", cfg.RecipeAPIKey)
		assert.Equal(t, "srv:1", cfg.ServerEndpointAddr)
		assert.Equal(t, "env.db", cfg.CacheDSN)
	})

	t.Run("env file from flag", func(t *testing.T) {
		for _, k := range []string{EnvAPIKey, EnvLegacyAPIKey, EnvServer, EnvCacheDSN} {
			t.Setenv(k, "")
			require.NoError(t, os.Unsetenv(k))
		}

		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("SPOONACULAR_API_KEY=from-file\n"), 0o600))
		os.Args = []string{"testbin", "-env", path}

		cfg := &Config{}
		parseEnv(cfg)
		assert.Equal(t, "from-file", cfg.RecipeAPIKey)
	})

	t.Run("missing env file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "nope.env")}
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
