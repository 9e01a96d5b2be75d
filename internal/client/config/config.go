package config

import "time"

// Config holds runtime settings for the RecipePlanner CLI.
//
// Durations are time.Duration values; CacheMaxAgeDays is a whole number of
// days. An empty RecipeAPIBaseURL means the public Spoonacular endpoint.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration

	RecipeAPIBaseURL string
	RecipeAPIKey     string
	RecipeAPITimeout time.Duration
	RecipeAPIRPS     float64

	CacheDSN        string
	CacheMaxAgeDays int
	SearchDebounce  time.Duration

	LogFormat string
	LogLevel  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.RecipeAPITimeout = 30 * time.Second
	c.CacheDSN = "recipes.db"
	c.CacheMaxAgeDays = 7
	c.SearchDebounce = 500 * time.Millisecond
	c.LogFormat = "console"
	c.LogLevel = "warn"
}

// CacheMaxAge returns CacheMaxAgeDays as a duration.
func (c *Config) CacheMaxAge() time.Duration {
	return time.Duration(c.CacheMaxAgeDays) * 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
