package config

import (
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/recipeplanner/internal/flagx"
	"github.com/dmitrijs2005/recipeplanner/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	ServerEndpointAddr  *string         `json:"server_endpoint_addr"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	RecipeAPIBaseURL    *string         `json:"recipe_api_base_url"`
	RecipeAPIKey        *string         `json:"recipe_api_key"`
	RecipeAPITimeout    *timex.Duration `json:"recipe_api_timeout"`
	RecipeAPIRPS        *float64        `json:"recipe_api_rps"`
	CacheDSN            *string         `json:"cache_dsn"`
	CacheMaxAgeDays     *int            `json:"cache_max_age_days"`
	SearchDebounce      *timex.Duration `json:"search_debounce"`
	LogFormat           *string         `json:"log_format"`
	LogLevel            *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. It panics on read or unmarshal errors.
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

	setString(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval)
	setString(&cfg.RecipeAPIBaseURL, jc.RecipeAPIBaseURL)
	setString(&cfg.RecipeAPIKey, jc.RecipeAPIKey)
	setDuration(&cfg.RecipeAPITimeout, jc.RecipeAPITimeout)
	if jc.RecipeAPIRPS != nil {
		cfg.RecipeAPIRPS = *jc.RecipeAPIRPS
	}
	setString(&cfg.CacheDSN, jc.CacheDSN)
	if jc.CacheMaxAgeDays != nil {
		cfg.CacheMaxAgeDays = *jc.CacheMaxAgeDays
	}
	setDuration(&cfg.SearchDebounce, jc.SearchDebounce)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
