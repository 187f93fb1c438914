package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	Timezone  string        `env:"TIMEZONE,  default=Local"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Events EventsConfig
}

type MongoConfig struct {
	URI                    string        `env:"MONGO_URI,                      default=mongodb://localhost:27017"`
	Database               string        `env:"MONGO_DB,                       default=calora"`
	MaxPoolSize            uint64        `env:"MONGO_MAX_POOL_SIZE,            default=10"`
	ServerSelectionTimeout time.Duration `env:"MONGO_SERVER_SELECTION_TIMEOUT, default=5s"`
	SocketTimeout          time.Duration `env:"MONGO_SOCKET_TIMEOUT,           default=45s"`
}

// RedisConfig is optional: an empty Addr disables the stats cache.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	DB       int           `env:"REDIS_DB,        default=0"`
	Password string        `env:"REDIS_PASSWORD"`
	StatsTTL time.Duration `env:"STATS_CACHE_TTL, default=10m"`
}

// EventsConfig is optional: an empty URL keeps events in process.
type EventsConfig struct {
	AMQPURL string `env:"AMQP_URL"`
	Queue   string `env:"AMQP_QUEUE,    default=calora.entry-events"`
	Workers int    `env:"EVENT_WORKERS, default=4"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Location resolves TIMEZONE, which decides where a calendar day starts.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if cfg.Env == "production" && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required in production")
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
