// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the service configuration that can be loaded from a JSON
// file and overridden by environment variables. All fields are optional;
// missing values use defaults.
type Config struct {
	// Connections
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisURL    string `json:"redis_url,omitempty"`    // Redis connection URL, empty disables caching

	// HTTP
	Port int `json:"port,omitempty"` // Listen port for the API server

	// Crawling
	JobsDBBaseURL  string   `json:"jobsdb_base_url,omitempty"` // Override for the JobsDB host
	Keywords       []string `json:"keywords,omitempty"`        // Search keywords per crawl cycle
	SearchPages    int      `json:"search_pages,omitempty"`    // Listing pages per keyword
	UseBrowser     bool     `json:"use_browser,omitempty"`     // Use headless browser for SPA listing pages
	ScrapeInterval int      `json:"scrape_interval,omitempty"` // Hours between crawl cycles
	RetentionDays  int      `json:"retention_days,omitempty"`  // Days an expired job survives before purge

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:           8080,
		Keywords:       []string{"software engineer", "developer"},
		SearchPages:    3,
		ScrapeInterval: 6,
		RetentionDays:  90,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv overlays environment variables on top of the config. Environment
// always wins over file values.
func (c *Config) FromEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.RedisURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("JOBSDB_BASE_URL"); v != "" {
		c.JobsDBBaseURL = v
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.SearchPages < 0 {
		return fmt.Errorf("config error: 'search_pages' must be non-negative")
	}
	if c.ScrapeInterval < 0 {
		return fmt.Errorf("config error: 'scrape_interval' must be non-negative")
	}
	if c.RetentionDays < 0 {
		return fmt.Errorf("config error: 'retention_days' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.JobsDBBaseURL == "" {
		result.JobsDBBaseURL = defaults.JobsDBBaseURL
	}
	if len(result.Keywords) == 0 {
		result.Keywords = defaults.Keywords
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SearchPages == 0 {
		result.SearchPages = defaults.SearchPages
	}
	if result.ScrapeInterval == 0 {
		result.ScrapeInterval = defaults.ScrapeInterval
	}
	if result.RetentionDays == 0 {
		result.RetentionDays = defaults.RetentionDays
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
