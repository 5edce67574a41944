package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port                int      `mapstructure:"port"`
	DatabaseURL         string   `mapstructure:"database_url"`  // Postgres DSN; empty = use SQLite at database_path
	DatabasePath        string   `mapstructure:"database_path"` // SQLite file path
	LogLevel            string   `mapstructure:"log_level"`
	AllowedOrigins      []string `mapstructure:"allowed_origins"`
	CacheTTLSec         int      `mapstructure:"cache_ttl_sec"`         // Response cache entry lifetime
	CacheSize           int      `mapstructure:"cache_size"`            // Max cached responses; 0 = default
	GeneratorBaseURL    string   `mapstructure:"generator_base_url"`    // OpenAI-compatible endpoint
	GeneratorModel      string   `mapstructure:"generator_model"`       // Chat model name
	GeneratorAPIKey     string   `mapstructure:"generator_api_key"`     // Set via CHATBOT_GENERATOR_API_KEY
	GeneratorTimeoutSec int      `mapstructure:"generator_timeout_sec"` // Bound on the upstream generation call
	RequestTimeoutSec   int      `mapstructure:"request_timeout_sec"`   // HTTP read/write
	ShutdownTimeoutSec  int      `mapstructure:"shutdown_timeout_sec"`  // Graceful shutdown wait
	MaxBodyBytes        int64    `mapstructure:"max_body_bytes"`        // Max request body size
	DefaultSkip         int      `mapstructure:"default_skip"`          // List offset default; 1 preserves the historical API
	DefaultLimit        int      `mapstructure:"default_limit"`         // List page size default
	OTLPEndpoint        string   `mapstructure:"otlp_endpoint"`         // Empty = tracing disabled
	TraceSamplingRate   float64  `mapstructure:"trace_sampling_rate"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/chatbot/")
	viper.AddConfigPath("$HOME/.chatbot")
	viper.AddConfigPath(".")

	// Defaults
	viper.SetDefault("port", 8080)
	viper.SetDefault("database_url", "")
	viper.SetDefault("database_path", "./chatbot.db")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("allowed_origins", []string{"*"})
	viper.SetDefault("cache_ttl_sec", 300)
	viper.SetDefault("cache_size", 4096)
	viper.SetDefault("generator_base_url", "https://api.openai.com")
	viper.SetDefault("generator_model", "gpt-3.5-turbo")
	viper.SetDefault("generator_api_key", "")
	viper.SetDefault("generator_timeout_sec", 30)
	viper.SetDefault("request_timeout_sec", 60)
	viper.SetDefault("shutdown_timeout_sec", 15)
	viper.SetDefault("max_body_bytes", 64*1024) // chat payloads are small
	viper.SetDefault("default_skip", 1)         // historical list behavior skips the first record
	viper.SetDefault("default_limit", 10)
	viper.SetDefault("otlp_endpoint", "")
	viper.SetDefault("trace_sampling_rate", 1.0)

	// Environment variables
	viper.SetEnvPrefix("CHATBOT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; using defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
