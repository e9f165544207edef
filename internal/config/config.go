// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	SerpAPI  SerpAPIConfig
	Routes   RoutesConfig
	Cache    CacheConfig
	Timeouts TimeoutConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
}

// SerpAPIConfig holds settings for the upstream flight data source.
type SerpAPIConfig struct {
	APIKey       string        `env:"SERPAPI_KEY"`
	BaseURL      string        `env:"SERPAPI_BASE_URL" envDefault:"https://serpapi.com/search"`
	Timeout      time.Duration `env:"SERPAPI_TIMEOUT" envDefault:"30s"`
	MaxRetries   int           `env:"SERPAPI_MAX_RETRIES" envDefault:"3"`
	RequestDelay time.Duration `env:"SERPAPI_REQUEST_DELAY" envDefault:"200ms"`
}

// RoutesConfig holds settings for the SQLite route graph.
type RoutesConfig struct {
	DatabasePath string `env:"ROUTES_DB_PATH" envDefault:"data/routes.db"`
}

// CacheConfig holds settings for the Redis result cache.
type CacheConfig struct {
	Enabled  bool          `env:"CACHE_ENABLED" envDefault:"false"`
	Addr     string        `env:"CACHE_REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"CACHE_REDIS_PASSWORD"`
	DB       int           `env:"CACHE_REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"6h"`
}

// TimeoutConfig holds timeout settings for flight search operations.
type TimeoutConfig struct {
	GlobalSearch time.Duration `env:"TIMEOUT_GLOBAL_SEARCH" envDefault:"60s"`
	PerQuery     time.Duration `env:"TIMEOUT_PER_QUERY" envDefault:"30s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.SerpAPI.APIKey == "" {
		return fmt.Errorf("SERPAPI_KEY is required")
	}
	if cfg.SerpAPI.Timeout <= 0 {
		return fmt.Errorf("SERPAPI_TIMEOUT must be positive")
	}
	if cfg.SerpAPI.MaxRetries < 1 {
		return fmt.Errorf("SERPAPI_MAX_RETRIES must be at least 1")
	}
	if cfg.SerpAPI.RequestDelay < 0 {
		return fmt.Errorf("SERPAPI_REQUEST_DELAY must not be negative")
	}

	if cfg.Routes.DatabasePath == "" {
		return fmt.Errorf("ROUTES_DB_PATH must not be empty")
	}

	if cfg.Cache.Enabled && cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when the cache is enabled")
	}

	if cfg.Timeouts.GlobalSearch <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_SEARCH must be positive")
	}
	if cfg.Timeouts.PerQuery <= 0 {
		return fmt.Errorf("TIMEOUT_PER_QUERY must be positive")
	}

	// A single query must not be allowed to consume the whole search budget.
	if cfg.Timeouts.PerQuery >= cfg.Timeouts.GlobalSearch {
		return fmt.Errorf("TIMEOUT_PER_QUERY (%s) should be less than TIMEOUT_GLOBAL_SEARCH (%s)",
			cfg.Timeouts.PerQuery, cfg.Timeouts.GlobalSearch)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
