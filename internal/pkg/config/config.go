package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Credential store backends selectable with CREDENTIAL_STORE.
const (
	StoreRedis = "redis"
	StoreMongo = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8081"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API     APIConfig
	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL, default=http://localhost:8080"`
	// Timeout bounds each backend request; zero leaves it to the caller.
	Timeout time.Duration `env:"API_TIMEOUT, default=0s"`
}

type SessionConfig struct {
	Secret         string        `env:"SESSION_SECRET, required"`
	CookieSecure   bool          `env:"SESSION_COOKIE_SECURE, default=false"`
	IdleTTL        time.Duration `env:"SESSION_IDLE_TTL,      default=30m"`
	StorageTTL     time.Duration `env:"STORAGE_TTL,           default=168h"`
	Store          string        `env:"CREDENTIAL_STORE,      default=redis"`
	SubmitGuardTTL time.Duration `env:"SUBMIT_GUARD_TTL,      default=10s"`
	AuditWorkers   int           `env:"AUDIT_WORKERS,         default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=hotel_console"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Development reports whether the console runs with developer defaults.
func (c *Config) Development() bool {
	return c.Env == "development"
}

func (c *Config) validate() error {
	switch c.Session.Store {
	case StoreRedis, StoreMongo:
	default:
		return fmt.Errorf("CREDENTIAL_STORE must be %q or %q, got %q", StoreRedis, StoreMongo, c.Session.Store)
	}
	if c.API.Timeout < 0 {
		return errors.New("API_TIMEOUT must not be negative")
	}
	if c.Session.IdleTTL <= 0 || c.Session.StorageTTL <= 0 {
		return errors.New("SESSION_IDLE_TTL and STORAGE_TTL must be positive")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through lookuper.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
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
