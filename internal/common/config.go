package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string           `toml:"environment"` // "development" or "production"
	Server      ServerConfig     `toml:"server"`
	Logging     LoggingConfig    `toml:"logging"`
	Cache       CacheConfig      `toml:"cache"`
	Google      ProviderConfig   `toml:"google"`
	Yelp        ProviderConfig   `toml:"yelp"`
	Aggregator  AggregatorConfig `toml:"aggregator"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// CacheConfig controls the search-result cache.
type CacheConfig struct {
	Backend string   `toml:"backend"` // "memory" (default) or "badger"
	MaxAge  Duration `toml:"max_age"` // entries older than this are served as misses
	Path    string   `toml:"path"`    // badger database directory (badger backend only)
}

// ProviderConfig holds per-provider API settings. An empty api_key disables
// the provider; it is skipped at dispatch, not treated as an error.
type ProviderConfig struct {
	APIKey         string   `toml:"api_key"`
	RateLimit      Duration `toml:"rate_limit"`      // minimum time between API requests
	RequestTimeout Duration `toml:"request_timeout"` // HTTP request timeout
	MaxResults     int      `toml:"max_results"`     // result cap per search
}

// AggregatorConfig tunes the fan-out/merge pipeline.
type AggregatorConfig struct {
	ProviderTimeout    Duration `toml:"provider_timeout"`     // per-provider call budget within one search
	ProximityThreshold float64  `toml:"proximity_threshold"`  // meters; closer records merge as duplicates
	RatingTieTolerance float64  `toml:"rating_tie_tolerance"` // ratings this close rank by review count
	ContextLimit       int      `toml:"context_limit"`        // max entries in the rendered context block
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability;
// only user-facing settings are exposed in taberna.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout", "file"},
			TimeFormat: "15:04:05",
		},
		Cache: CacheConfig{
			Backend: "memory",
			MaxAge:  NewDuration(30 * time.Minute),
			Path:    "./data/cache",
		},
		Google: ProviderConfig{
			APIKey:         "", // user must provide API key in config file
			RateLimit:      NewDuration(1 * time.Second),
			RequestTimeout: NewDuration(30 * time.Second),
			MaxResults:     20, // Google Places API page size
		},
		Yelp: ProviderConfig{
			APIKey:         "",
			RateLimit:      NewDuration(1 * time.Second),
			RequestTimeout: NewDuration(30 * time.Second),
			MaxResults:     50, // Yelp Fusion search limit ceiling
		},
		Aggregator: AggregatorConfig{
			ProviderTimeout:    NewDuration(20 * time.Second),
			ProximityThreshold: 50,  // meters
			RatingTieTolerance: 0.1, // ratings within this rank by review count instead
			ContextLimit:       10,
		},
	}
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
// CLI flag overrides are applied afterwards via ApplyFlagOverrides.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files; later files override
// earlier ones, environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TABERNA_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if port := os.Getenv("TABERNA_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("TABERNA_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	if level := os.Getenv("TABERNA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("TABERNA_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	if backend := os.Getenv("TABERNA_CACHE_BACKEND"); backend != "" {
		config.Cache.Backend = backend
	}
	if maxAge := os.Getenv("TABERNA_CACHE_MAX_AGE"); maxAge != "" {
		if d, err := time.ParseDuration(maxAge); err == nil {
			config.Cache.MaxAge = NewDuration(d)
		}
	}
	if path := os.Getenv("TABERNA_CACHE_PATH"); path != "" {
		config.Cache.Path = path
	}

	if apiKey := os.Getenv("TABERNA_GOOGLE_API_KEY"); apiKey != "" {
		config.Google.APIKey = apiKey
	}
	if apiKey := os.Getenv("TABERNA_YELP_API_KEY"); apiKey != "" {
		config.Yelp.APIKey = apiKey
	}

	if timeout := os.Getenv("TABERNA_PROVIDER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Aggregator.ProviderTimeout = NewDuration(d)
		}
	}
	if limit := os.Getenv("TABERNA_CONTEXT_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			config.Aggregator.ContextLimit = n
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
// Command-line flags have the highest priority.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
