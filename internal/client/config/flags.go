package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered with flagx.FilterArgs first so flags owned by other components do
// not interfere. It panics on parse errors.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-u", "-k", "-d", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.RecipeAPIBaseURL, "u", cfg.RecipeAPIBaseURL, "recipe API base URL")
	fs.StringVar(&cfg.RecipeAPIKey, "k", cfg.RecipeAPIKey, "recipe API key")
	fs.StringVar(&cfg.CacheDSN, "d", cfg.CacheDSN, "local cache DSN")
	fs.IntVar(&cfg.CacheMaxAgeDays, "m", cfg.CacheMaxAgeDays, "cache max age (in days)")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format: console, text or json")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
