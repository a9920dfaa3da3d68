// Package common provides shared utilities for Folioscope
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Folioscope
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Yahoo  YahooConfig  `toml:"yahoo"`
	GNews  GNewsConfig  `toml:"gnews"`
	Gemini GeminiConfig `toml:"gemini"`
}

// YahooConfig holds market metadata client configuration
type YahooConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *YahooConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GNewsConfig holds headline fetcher configuration
type GNewsConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *GNewsConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8090,
		},
		Clients: ClientsConfig{
			Yahoo: YahooConfig{
				RateLimit: 5,
				Timeout:   "10s",
			},
			GNews: GNewsConfig{
				Timeout: "10s",
			},
			Gemini: GeminiConfig{
				Model: "gemini-1.5-flash-latest",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// IsProduction reports whether the configured environment is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadConfig loads configuration from the given TOML files, merging later
// files over earlier ones, then applies environment variable overrides.
// Missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FOLIOSCOPE_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("FOLIOSCOPE_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("FOLIOSCOPE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("FOLIOSCOPE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if key := os.Getenv("FOLIOSCOPE_GEMINI_API_KEY"); key != "" {
		config.Clients.Gemini.APIKey = key
	}

	if model := os.Getenv("FOLIOSCOPE_GEMINI_MODEL"); model != "" {
		config.Clients.Gemini.Model = model
	}
}
