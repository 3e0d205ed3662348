package model

import (
	"runtime"
	"time"
)

// Config holds the complete claimsort configuration
type Config struct {
	Extraction  ExtractionConfig  `yaml:"extraction" mapstructure:"extraction"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// ExtractionConfig configures the information-extraction provider
type ExtractionConfig struct {
	// Provider name: "simulated", "plaintext", "openai".
	// Empty selects the simulated provider.
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Model is the model name for providers that take one (openai)
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey for hosted providers (recommended: environment variable)
	APIKey string `yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL for custom endpoints
	BaseURL string `yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Timeout bounds a single extraction call so a real OCR/ML backend
	// cannot stall a submission
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// RequestsPerSecond and Burst rate-limit provider calls
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// ConcurrencyConfig configures worker counts
type ConcurrencyConfig struct {
	// DocumentWorkers bounds concurrent document processing within one claim
	DocumentWorkers int `yaml:"document_workers" mapstructure:"document_workers"`

	// BatchWorkers bounds concurrent submissions in batch mode
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// CacheConfig configures extraction result memoization
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	Debug        bool          `yaml:"debug" mapstructure:"debug"`
}

// LogConfig configures structured logging
type LogConfig struct {
	// Level: "debug", "info", "warn", "error"
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			Provider:          "simulated",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 10,
			Burst:             5,
		},
		Concurrency: ConcurrencyConfig{
			DocumentWorkers: 4,
			BatchWorkers:    runtime.NumCPU(),
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
