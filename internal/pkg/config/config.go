package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	EnvDevelopment = "development"

	BackendRedis  = "redis"
	BackendMemory = "memory"

	// devSessionSecret signs session tokens in development when SESSION_SECRET
	// is unset. It is rejected in every other environment.
	devSessionSecret = "dev-only-session-secret"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session  SessionConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET"`
	TTL          time.Duration `env:"SESSION_TTL,     default=8h"`
	Backend      string        `env:"SESSION_BACKEND, default=redis"`
	CookieSecure bool          `env:"COOKIE_SECURE,   default=false"`
}

type UpstreamConfig struct {
	BaseURL      string        `env:"API_URL,           default=https://dummyjson.com"`
	Timeout      time.Duration `env:"API_TIMEOUT,       default=10s"`
	MaxRetries   int           `env:"API_MAX_RETRIES,   default=1"`
	RetryBackoff time.Duration `env:"API_RETRY_BACKOFF, default=200ms"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,        default=0"`
	PoolSize int    `env:"REDIS_POOL_SIZE, default=10"`
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Load reads a .env file when present, then configuration from environment
// variables using go-envconfig.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith processes configuration from the given lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Session.Secret == "" {
		if !c.IsDevelopment() {
			return errors.New("SESSION_SECRET is required outside development")
		}
		c.Session.Secret = devSessionSecret
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Session.TTL)
	}
	switch c.Session.Backend {
	case BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("SESSION_BACKEND must be %q or %q, got %q", BackendRedis, BackendMemory, c.Session.Backend)
	}
	if c.Upstream.MaxRetries < 0 {
		return fmt.Errorf("API_MAX_RETRIES must not be negative, got %d", c.Upstream.MaxRetries)
	}
	return nil
}
