package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var knownWeakKeys = []string{
	"change-me", "dev-secret-change-me", "secret", "admin", "password", "yesyesyes",
}

type Config struct {
	Port                   int    `env:"PORT" envDefault:"8080"`
	DatabaseURL            string `env:"DATABASE_URL"`
	RedisURL               string `env:"REDIS_URL"`
	AdminKey               string `env:"ADMIN_KEY"`
	AdminKeyHash           string `env:"ADMIN_KEY_HASH"`
	LogLevel               string `env:"LOG_LEVEL" envDefault:"info"`
	ProductCacheTTLSeconds int    `env:"PRODUCT_CACHE_TTL_SECONDS" envDefault:"300"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) ProductCacheTTL() time.Duration {
	return time.Duration(c.ProductCacheTTLSeconds) * time.Second
}

// UseMemoryStorage reports whether the server should run against the
// in-process backend instead of Postgres.
func (c *Config) UseMemoryStorage() bool {
	return c.DatabaseURL == ""
}

func (c *Config) Validate(isProduction bool) error {
	if c.AdminKey == "" && c.AdminKeyHash == "" {
		return fmt.Errorf("either ADMIN_KEY or ADMIN_KEY_HASH must be set")
	}

	if c.AdminKeyHash != "" {
		if !strings.HasPrefix(c.AdminKeyHash, "$2a$") &&
			!strings.HasPrefix(c.AdminKeyHash, "$2b$") &&
			!strings.HasPrefix(c.AdminKeyHash, "$2y$") {
			return fmt.Errorf("ADMIN_KEY_HASH must be a bcrypt hash (generate with: go run scripts/hash-key.go <key>)")
		}
	}

	if isProduction {
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set in production; the in-memory backend loses data on restart")
		}
		if c.AdminKeyHash == "" {
			if len(c.AdminKey) < 16 {
				return fmt.Errorf("ADMIN_KEY must be at least 16 characters in production (or set ADMIN_KEY_HASH)")
			}
			for _, weak := range knownWeakKeys {
				if c.AdminKey == weak {
					return fmt.Errorf("ADMIN_KEY is a known weak value; set a strong key in production")
				}
			}
		}
	}

	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
