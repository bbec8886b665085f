package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/giannis84/subway-favorites/internal/auth"
	"github.com/giannis84/subway-favorites/internal/database"
)

const defaultConfigPath = "config.yaml"

// Config holds the application configuration.
//
// Values come from the YAML file first; any non-empty environment variable
// named in an env tag then overrides the file. Secrets carry yaml:"-" and can
// only be set from the environment.
type Config struct {
	APIPort    string `yaml:"api_port" env:"API_PORT"`
	HealthPort string `yaml:"health_port" env:"HEALTH_PORT"`
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL"`

	// HTTP server timeouts; zero means the server default.
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`

	// JWTSecret signs issued tokens and verifies incoming ones. When empty,
	// unsigned tokens (alg=none) are used, but only if AllowUnsignedTokens is set.
	JWTSecret           string        `yaml:"-" env:"JWT_SECRET"`
	AllowUnsignedTokens bool          `yaml:"-" env:"ALLOW_UNSIGNED_TOKENS"`
	TokenTTL            time.Duration `yaml:"token_ttl" env:"TOKEN_TTL"`

	DBDriver   string `yaml:"db_driver" env:"DB_DRIVER"`
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH"`
	DBHost     string `yaml:"-" env:"POSTGRES_HOST"`
	DBPort     string `yaml:"-" env:"POSTGRES_PORT"`
	DBUser     string `yaml:"-" env:"POSTGRES_USER"`
	DBPassword string `yaml:"-" env:"POSTGRES_PASSWORD"`
	DBName     string `yaml:"-" env:"POSTGRES_DB"`

	// SampleNetwork seeds the demo stations and lines on startup.
	SampleNetwork bool `yaml:"sample_network" env:"SAMPLE_NETWORK"`

	GitHubClientID     string `yaml:"github_client_id" env:"GITHUB_CLIENT_ID"`
	GitHubClientSecret string `yaml:"-" env:"GITHUB_CLIENT_SECRET"`
	// GitHubBaseURL hosts the OAuth endpoints, GitHubAPIURL the profile API.
	GitHubBaseURL string `yaml:"github_base_url" env:"GITHUB_BASE_URL"`
	GitHubAPIURL  string `yaml:"github_api_url" env:"GITHUB_API_URL"`
	// GitHubMockEnabled mounts the fake GitHub provider under /github on the API
	// port. Test environments only.
	GitHubMockEnabled bool `yaml:"github_mock_enabled" env:"GITHUB_MOCK_ENABLED"`

	RateLimitRequests int           `yaml:"rate_limit_requests" env:"RATE_LIMIT_REQUESTS"` // 0 disables
	RateLimitWindow   time.Duration `yaml:"rate_limit_window" env:"RATE_LIMIT_WINDOW"`
}

// Load reads configuration with the following precedence (highest wins):
//  1. Environment variables
//  2. YAML config file (path from CONFIG_PATH env var, or "config.yaml")
//  3. Built-in defaults
func Load() (*Config, error) {
	cfg := &Config{
		DBDriver:      database.DriverPostgres,
		LogLevel:      "info",
		GitHubBaseURL: "https://github.com",
		GitHubAPIURL:  "https://api.github.com",
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.RateLimitRequests > 0 && cfg.RateLimitWindow == 0 {
		cfg.RateLimitWindow = time.Minute
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIPort == "" {
		return errors.New("api_port is required (set via config file or API_PORT env var)")
	}
	if c.HealthPort == "" {
		return errors.New("health_port is required (set via config file or HEALTH_PORT env var)")
	}

	switch c.DBDriver {
	case database.DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite_path is required when db_driver is sqlite3")
		}
	case database.DriverPostgres:
		required := []struct{ name, value string }{
			{"POSTGRES_HOST", c.DBHost},
			{"POSTGRES_PORT", c.DBPort},
			{"POSTGRES_USER", c.DBUser},
			{"POSTGRES_PASSWORD", c.DBPassword},
			{"POSTGRES_DB", c.DBName},
		}
		for _, r := range required {
			if r.value == "" {
				return fmt.Errorf("%s env var is required", r.name)
			}
		}
	default:
		return fmt.Errorf("unsupported db_driver %q", c.DBDriver)
	}
	return nil
}

// DSN returns the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == database.DriverSQLite {
		return "file:" + c.SQLitePath + "?_foreign_keys=on"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// APIAddr returns the listen address for the API server.
func (c *Config) APIAddr() string {
	return ":" + c.APIPort
}

// HealthAddr returns the listen address for the health check server.
func (c *Config) HealthAddr() string {
	return ":" + c.HealthPort
}

// AuthConfig returns the JWT authentication configuration.
func (c *Config) AuthConfig() auth.Config {
	return auth.Config{
		Secret:              c.JWTSecret,
		AllowUnsignedTokens: c.AllowUnsignedTokens,
		TokenTTL:            c.TokenTTL,
	}
}

// RateLimitConfig holds rate limiting settings.
type RateLimitConfig struct {
	Requests int           // Max requests per window (0 = disabled)
	Window   time.Duration // Time window for rate limiting
}

// RateLimitConfig returns the rate limiting configuration.
func (c *Config) RateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Requests: c.RateLimitRequests,
		Window:   c.RateLimitWindow,
	}
}
