package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/recipeplanner/internal/flagx"
)

const (
	EnvAPIKey       = "RECIPEPLANNER_API_KEY"
	EnvLegacyAPIKey = "SPOONACULAR_API_KEY"
	EnvServer       = "RECIPEPLANNER_SERVER"
	EnvCacheDSN     = "RECIPEPLANNER_CACHE_DSN"

	defaultEnvFile = ".env"
)

// parseEnv loads the .env file named by -env, or ./.env when present, into
// the process environment without overriding variables that are already
// set, then copies the known variables into cfg.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if _, err := os.Stat(defaultEnvFile); err == nil {
		if err := godotenv.Load(defaultEnvFile); err != nil {
			panic(err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := os.Getenv(EnvLegacyAPIKey); v != "" {
		cfg.RecipeAPIKey = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.RecipeAPIKey = v
	}
	if v := os.Getenv(EnvServer); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv(EnvCacheDSN); v != "" {
		cfg.CacheDSN = v
	}
}
