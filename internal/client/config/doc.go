// Package config loads runtime configuration for the RecipePlanner CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment (see parseEnv), after loading an optional .env file
//     selected with -env, or ./.env when it exists.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      online status check interval (seconds)
//	-u string   recipe API base URL
//	-k string   recipe API key
//	-d string   local cache DSN (sqlite file path)
//	-m int      cache max age (days)
//	-l string   log format: console, text or json
//
// Environment variables
//
//	RECIPEPLANNER_API_KEY (or SPOONACULAR_API_KEY)
//	RECIPEPLANNER_SERVER
//	RECIPEPLANNER_CACHE_DSN
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "recipe_api_base_url": "https://api.spoonacular.com",
//	  "recipe_api_key": "...",
//	  "recipe_api_timeout": "30s",
//	  "recipe_api_rps": 1,
//	  "cache_dsn": "recipes.db",
//	  "cache_max_age_days": 7,
//	  "search_debounce": "500ms",
//	  "log_format": "console",
//	  "log_level": "warn"
//	}
package config
