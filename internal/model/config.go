package model

import "time"

// Config is the complete runtime configuration
type Config struct {
	Dataset     DatasetConfig     `yaml:"dataset" mapstructure:"dataset"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit" mapstructure:"rate_limit"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// DatasetConfig controls reference dataset loading
type DatasetConfig struct {
	// Path to a YAML dataset file. Empty means the embedded
	// community dataset.
	Path string `yaml:"path" mapstructure:"path"`
}

// CacheConfig controls the in-memory result cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitConfig throttles remote analysis calls
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// LLMConfig configures the optional remote enhancement provider
type LLMConfig struct {
	// Provider name: "openai", "moonshot", "ollama", "" (disabled)
	Provider string `yaml:"provider" mapstructure:"provider"`
	Model    string `yaml:"model" mapstructure:"model"`
	APIKey   string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout in seconds for a single API request
	Timeout   int `yaml:"timeout" mapstructure:"timeout"`
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path: "",
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             24 * time.Hour,
			CleanupInterval: time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2.0,
			BurstSize:         5,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
