package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all client settings. Values come from defaults, then the
// config file if one exists, then environment variables.
type Config struct {
	// Backend API
	APIBaseURL     string `json:"api_base_url"`
	RequestTimeout int    `json:"request_timeout_seconds"`

	// Local state
	DataDir        string `json:"data_dir"`
	HistoryEnabled bool   `json:"history_enabled"`

	// Defaults for new sessions
	DefaultStrategy string `json:"default_strategy"`
	TopStocksLimit  int    `json:"top_stocks_limit"`
	Region          string `json:"region"`

	Debug bool `json:"debug"`
}

// DefaultConfig builds the configuration from defaults and environment.
func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()
	cfg := DefaultConfigWithRoot(currentDir)
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv layers .env and environment variables over the config.
func (c *Config) ApplyEnv() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	c.loadFromEnv()
}

// DefaultConfigWithRoot returns the built-in defaults rooted at dir.
func DefaultConfigWithRoot(dir string) *Config {
	return &Config{
		APIBaseURL:      "http://localhost:8000",
		RequestTimeout:  30,
		DataDir:         filepath.Join(dir, "data"),
		HistoryEnabled:  true,
		DefaultStrategy: "balanced",
		TopStocksLimit:  10,
		Region:          "US",
		Debug:           false,
	}
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("STOCKCAST_API_URL"); val != "" {
		c.APIBaseURL = val
	}
	if val := os.Getenv("STOCKCAST_TIMEOUT"); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
			c.RequestTimeout = secs
		}
	}
	if val := os.Getenv("STOCKCAST_DATA_DIR"); val != "" {
		c.DataDir = val
	}
	if val := os.Getenv("STOCKCAST_HISTORY_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.HistoryEnabled = enabled
		}
	}
	if val := os.Getenv("STOCKCAST_STRATEGY"); val != "" {
		c.DefaultStrategy = val
	}
	if val := os.Getenv("STOCKCAST_REGION"); val != "" {
		c.Region = strings.ToUpper(val)
	}
	if val := os.Getenv("STOCKCAST_DEBUG"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Debug = enabled
		}
	}
}

// Validate checks values that would break the client at runtime.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("api_base_url is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive, got %d", c.RequestTimeout)
	}
	switch c.DefaultStrategy {
	case "aggressive", "balanced", "long_term":
	default:
		return fmt.Errorf("default_strategy must be aggressive, balanced, or long_term, got %q", c.DefaultStrategy)
	}
	return nil
}

// EnsureDirectories creates the local state directories.
func (c *Config) EnsureDirectories() error {
	path := strings.TrimSpace(c.DataDir)
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}
