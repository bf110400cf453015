// Package config loads server settings from the environment, with a .env
// file picked up for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the api binary.
type Config struct {
	Port  string `env:"PORT" envDefault:"8080"`
	Debug bool   `env:"DEBUG" envDefault:"false"`

	// Snapshot persistence: file (default), sqlite, mysql, or postgres.
	SnapshotBackend string `env:"SNAPSHOT_BACKEND" envDefault:"file"`
	SnapshotPath    string `env:"SNAPSHOT_PATH" envDefault:"tmp/gharjoy.json"`
	SQLitePath      string `env:"DB_SQLITE_PATH" envDefault:"tmp/gharjoy.sqlite"`

	MySQLUser              string `env:"MYSQL_USER"`
	MySQLPassword          string `env:"MYSQL_PASSWORD"`
	MySQLDatabase          string `env:"MYSQL_DATABASE"`
	MySQLHost              string `env:"MYSQL_HOST"`
	MySQLPort              string `env:"DB_PORT"`
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	PostgresDSN string `env:"DB_POSTGRES_DSN"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Demo seed data is loaded only into an empty store.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"true"`

	// Simulated bot thinking time before chat replies.
	BotThinkDelay time.Duration `env:"BOT_THINK_DELAY" envDefault:"1200ms"`

	RateLimit  int           `env:"RATE_LIMIT" envDefault:"120"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
}

// Load reads .env (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PostgresDSN == "" {
		cfg.PostgresDSN = cfg.DatabaseURL
	}
	return cfg, nil
}
