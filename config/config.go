package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Fetch  FetchConfig
	OpenAI OpenAIConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	LogLevel       string   `mapstructure:"log_level"`
}

// FetchConfig holds page-fetcher configuration
type FetchConfig struct {
	UserAgent          string        `mapstructure:"user_agent"`
	Timeout            time.Duration `mapstructure:"timeout"`
	MaxBodyBytes       int64         `mapstructure:"max_body_bytes"`
	RequestsPerSecond  float64       `mapstructure:"requests_per_second"`
	UseHeadlessBrowser bool          `mapstructure:"use_headless_browser"`
}

// OpenAIConfig holds chat-completion configuration. The API key itself comes
// from the request body, never from config.
type OpenAIConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int64   `mapstructure:"max_tokens"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/unboxed/")

	v.SetEnvPrefix("UNBOXED")
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional - env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.log_level", "info")

	// Fetch defaults
	v.SetDefault("fetch.user_agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	v.SetDefault("fetch.timeout", "30s")
	v.SetDefault("fetch.max_body_bytes", 2*1024*1024)
	v.SetDefault("fetch.requests_per_second", 5.0)
	v.SetDefault("fetch.use_headless_browser", false)

	// OpenAI defaults
	v.SetDefault("openai.base_url", "")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.temperature", 0.2)
	v.SetDefault("openai.max_tokens", 800)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}

	if config.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got: %s", config.Fetch.Timeout)
	}

	if config.Fetch.MaxBodyBytes <= 0 {
		return fmt.Errorf("fetch max_body_bytes must be positive, got: %d", config.Fetch.MaxBodyBytes)
	}

	if config.Fetch.RequestsPerSecond <= 0 {
		return fmt.Errorf("fetch requests_per_second must be positive, got: %f", config.Fetch.RequestsPerSecond)
	}

	if config.OpenAI.Model == "" {
		return fmt.Errorf("openai model must not be empty")
	}

	if config.OpenAI.MaxTokens <= 0 {
		return fmt.Errorf("openai max_tokens must be positive, got: %d", config.OpenAI.MaxTokens)
	}

	return nil
}
