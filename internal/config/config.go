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
	Server      ServerConfig
	Amadeus     AmadeusConfig
	AeroDataBox AeroDataBoxConfig
	Redis       RedisConfig
	Cache       CacheConfig
	Analysis    AnalysisConfig
	Logging     LoggingConfig
	App         AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// AmadeusConfig holds route-search provider credentials and endpoints.
type AmadeusConfig struct {
	BaseURL      string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	ClientID     string        `env:"AMADEUS_CLIENT_ID"`
	ClientSecret string        `env:"AMADEUS_CLIENT_SECRET"`
	Timeout      time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"15s"`
}

// AeroDataBoxConfig holds delay-data provider credentials and pacing.
type AeroDataBoxConfig struct {
	BaseURL           string        `env:"AERODATABOX_BASE_URL" envDefault:"https://aerodatabox.p.rapidapi.com"`
	APIKey            string        `env:"AERODATABOX_API_KEY"`
	APIHost           string        `env:"AERODATABOX_API_HOST" envDefault:"aerodatabox.p.rapidapi.com"`
	Timeout           time.Duration `env:"AERODATABOX_TIMEOUT" envDefault:"15s"`
	RequestsPerSecond float64       `env:"AERODATABOX_RPS" envDefault:"5"`
	Burst             int           `env:"AERODATABOX_BURST" envDefault:"5"`
}

// RedisConfig holds the cache backend connection. An empty Addr selects
// the in-memory store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// CacheConfig holds cache expiry settings.
type CacheConfig struct {
	ProfileTTL time.Duration `env:"CACHE_PROFILE_TTL" envDefault:"720h"`
	RouteTTL   time.Duration `env:"CACHE_ROUTE_TTL" envDefault:"720h"`
}

// AnalysisConfig holds reliability analysis settings.
type AnalysisConfig struct {
	// DaysBack is the recent-flights lookback window.
	DaysBack int `env:"ANALYSIS_DAYS_BACK" envDefault:"7"`

	// IncludePredictions counts predicted arrival times as observations
	// when no runway or revised time exists yet.
	IncludePredictions bool `env:"ANALYSIS_INCLUDE_PREDICTIONS" envDefault:"true"`
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
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Amadeus.Timeout <= 0 {
		return fmt.Errorf("AMADEUS_TIMEOUT must be positive")
	}
	if cfg.AeroDataBox.Timeout <= 0 {
		return fmt.Errorf("AERODATABOX_TIMEOUT must be positive")
	}

	if cfg.AeroDataBox.RequestsPerSecond <= 0 {
		return fmt.Errorf("AERODATABOX_RPS must be positive")
	}
	if cfg.AeroDataBox.Burst < 1 {
		return fmt.Errorf("AERODATABOX_BURST must be at least 1")
	}

	if cfg.Cache.ProfileTTL <= 0 {
		return fmt.Errorf("CACHE_PROFILE_TTL must be positive")
	}
	if cfg.Cache.RouteTTL <= 0 {
		return fmt.Errorf("CACHE_ROUTE_TTL must be positive")
	}

	if cfg.Analysis.DaysBack < 1 || cfg.Analysis.DaysBack > 60 {
		return fmt.Errorf("ANALYSIS_DAYS_BACK must be between 1 and 60, got %d", cfg.Analysis.DaysBack)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	// Credentials are required outside development so a misconfigured
	// deployment fails at startup, not on the first request.
	if cfg.App.Env != "development" {
		if cfg.Amadeus.ClientID == "" || cfg.Amadeus.ClientSecret == "" {
			return fmt.Errorf("AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET are required in %s", cfg.App.Env)
		}
		if cfg.AeroDataBox.APIKey == "" {
			return fmt.Errorf("AERODATABOX_API_KEY is required in %s", cfg.App.Env)
		}
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
