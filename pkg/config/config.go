package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix scopes every storefront environment variable.
const EnvPrefix = "BUKULOKA"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BUKULOKA_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"BUKULOKA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BUKULOKA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type APIConfig struct {
	BaseURL string        `envconfig:"BUKULOKA_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BUKULOKA_API_TIMEOUT" default:"10s"`
}

func (a APIConfig) validate() error {
	parsed, err := url.Parse(strings.TrimSpace(a.BaseURL))
	if err != nil {
		return fmt.Errorf("parsing api base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api base url must be absolute, got %q", a.BaseURL)
	}
	return nil
}

type SessionConfig struct {
	// Key identifies this device/session in the token store. Generated per
	// install by the caller when empty.
	Key      string        `envconfig:"BUKULOKA_SESSION_KEY"`
	TokenTTL time.Duration `envconfig:"BUKULOKA_SESSION_TOKEN_TTL" default:"720h"`
}

type RedisConfig struct {
	// URL is optional; when empty the in-memory token store is used.
	URL          string        `envconfig:"BUKULOKA_REDIS_URL"`
	Address      string        `envconfig:"BUKULOKA_REDIS_ADDR"`
	Password     string        `envconfig:"BUKULOKA_REDIS_PASSWORD"`
	DB           int           `envconfig:"BUKULOKA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BUKULOKA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BUKULOKA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BUKULOKA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BUKULOKA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BUKULOKA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint is configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}
