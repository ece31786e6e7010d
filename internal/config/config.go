package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

var ErrDatabaseURLRequired = errors.New("database url is required (set DB_URL)")

type Config struct {
	App      AppConfig      `toml:"app"`
	Log      LogConfig      `toml:"log"`
	Database DatabaseConfig `toml:"database"`
	Swagger  SwaggerConfig  `toml:"swagger"`
	RabbitMQ RabbitMQConfig `toml:"rabbitmq"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type DatabaseConfig struct {
	URL string `toml:"url"`
}

// SwaggerConfig only feeds the generated API document.
type SwaggerConfig struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Version     string `toml:"version"`
	Org         string `toml:"org"`
	Dev         string `toml:"dev"`
	Email       string `toml:"email"`
	URL         string `toml:"url"`
	Scheme      string `toml:"scheme"`
}

type RabbitMQConfig struct {
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return ErrDatabaseURLRequired
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid app port %d", c.App.Port)
	}
	switch c.App.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode %q", c.App.GinMode)
	}
	return nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

// Schemes returns the configured scheme, or both http and https when unset.
func (s SwaggerConfig) Schemes() []string {
	if s.Scheme == "" {
		return []string{"http", "https"}
	}
	return []string{s.Scheme}
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "usermgmt-api",
			Host:    "0.0.0.0",
			Port:    5000,
			GinMode: "release",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Swagger: SwaggerConfig{
			Title:       "User Management API",
			Description: "API for managing users",
			Version:     "1.0.0",
			Org:         "Your Organization",
			Dev:         "Your Name",
			Email:       "you@example.com",
			URL:         "https://example.com",
		},
		RabbitMQ: RabbitMQConfig{
			Exchange: "users.events",
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)

	cfg.Database.URL = getEnv("DB_URL", cfg.Database.URL)

	cfg.Swagger.Title = getEnv("SWAGGER_TITLE", cfg.Swagger.Title)
	cfg.Swagger.Description = getEnv("SWAGGER_DESCRIPTION", cfg.Swagger.Description)
	cfg.Swagger.Version = getEnv("SWAGGER_VERSION", cfg.Swagger.Version)
	cfg.Swagger.Org = getEnv("SWAGGER_ORG", cfg.Swagger.Org)
	cfg.Swagger.Dev = getEnv("SWAGGER_DEV", cfg.Swagger.Dev)
	cfg.Swagger.Email = getEnv("SWAGGER_EMAIL", cfg.Swagger.Email)
	cfg.Swagger.URL = getEnv("SWAGGER_URL", cfg.Swagger.URL)
	cfg.Swagger.Scheme = getEnv("SWAGGER_SCHEME", cfg.Swagger.Scheme)

	cfg.RabbitMQ.URL = getEnv("RABBITMQ_URL", cfg.RabbitMQ.URL)
	cfg.RabbitMQ.Exchange = getEnv("RABBITMQ_EXCHANGE", cfg.RabbitMQ.Exchange)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
