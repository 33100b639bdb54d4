package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port                int    `env:"PORT" envDefault:"3000"`
	MistralSecret       string `env:"MISTRALSECRET,required"`
	MistralBaseURL      string `env:"MISTRAL_BASE_URL" envDefault:"https://api.mistral.ai/v1"`
	MistralModel        string `env:"MISTRAL_MODEL" envDefault:"mistral-small-latest"`
	PGHost              string `env:"PGHOST" envDefault:"localhost"`
	PGUser              string `env:"PGUSER,required"`
	DBPassword          string `env:"DBPSW,required"`
	DBName              string `env:"DBNAME,required"`
	DBPort              int    `env:"DBPORT" envDefault:"5432"`
	RedisURL            string `env:"REDIS_URL"`
	ChatRateLimitPerMin int    `env:"CHAT_RATE_LIMIT_PER_MIN" envDefault:"20"`
	LogLevel            string `env:"LOG_LEVEL" envDefault:"info"`
	StaticDir           string `env:"STATIC_DIR" envDefault:"web/static"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DSN builds a lib/pq connection string from the discrete PG* settings.
// The deployment environment provides these instead of a single
// DATABASE_URL.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.PGHost, c.DBPort, c.PGUser, c.DBPassword, c.DBName,
	)
}

// RateLimitEnabled reports whether the optional redis-backed chat rate
// limit should be wired in.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisURL != "" && c.ChatRateLimitPerMin > 0
}

func Load() (*Config, error) {
	// Best-effort .env load; a missing file is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
