// Package config loads the attiodex configuration from YAML files with
// environment variable expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the attiodex server configuration.
type Config struct {
	Attio   AttioConfig   `yaml:"attio"`
	Search  SearchConfig  `yaml:"search"`
	Batch   BatchConfig   `yaml:"batch"`
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
}

// AttioConfig holds Attio API connection settings.
type AttioConfig struct {
	BaseURL    string `yaml:"base_url"`
	APIKey     string `yaml:"api_key"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// SearchConfig holds search behavior toggles. Scoring is opt-in: with the
// toggle unset the strict tree's results are returned as-is, with no
// reordering and no relaxed retry.
type SearchConfig struct {
	ScoringEnabled *bool `yaml:"scoring_enabled"` // nil means default (off)
	FastPath       bool  `yaml:"fast_path"`
	MaxResults     int   `yaml:"max_results"`
}

// BatchConfig holds batch fan-out settings.
type BatchConfig struct {
	MaxConcurrency int `yaml:"max_concurrency"`
	MaxBatchSize   int `yaml:"max_batch_size"`
}

// HTTPConfig holds the ops HTTP server settings (health and metrics). Port 0
// disables the server; the MCP transport runs on stdio regardless.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Attio.BaseURL == "" {
		c.Attio.BaseURL = "https://api.attio.com"
	}
	if c.Attio.TimeoutSec <= 0 {
		c.Attio.TimeoutSec = 30
	}
	if c.Search.ScoringEnabled == nil {
		off := false
		c.Search.ScoringEnabled = &off
	}
	if c.Search.MaxResults <= 0 {
		c.Search.MaxResults = 20
	}
	if c.Batch.MaxConcurrency <= 0 {
		c.Batch.MaxConcurrency = 5
	}
	if c.Batch.MaxBatchSize <= 0 {
		c.Batch.MaxBatchSize = 25
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
}

// applyEnvOverrides applies the flat env-variable overrides kept for
// compatibility with existing deployments: ATTIO_API_KEY and
// ENABLE_SEARCH_SCORING win over anything in the file.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("ATTIO_API_KEY"); key != "" {
		c.Attio.APIKey = key
	}
	if v := os.Getenv("ENABLE_SEARCH_SCORING"); v != "" {
		on := v == "true" || v == "1"
		c.Search.ScoringEnabled = &on
	}
}

// ScoringEnabled resolves the pointer toggle. Unset means off.
func (c *Config) ScoringEnabled() bool {
	return c.Search.ScoringEnabled != nil && *c.Search.ScoringEnabled
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Attio.APIKey == "" {
		return fmt.Errorf("attio.api_key is required (or set ATTIO_API_KEY)")
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 0 and 65535, got %d", c.HTTP.Port)
	}
	if c.Search.MaxResults > 100 {
		return fmt.Errorf("search.max_results must be at most 100, got %d", c.Search.MaxResults)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
