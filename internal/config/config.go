package config

import (
	"github.com/caarlos0/env/v11"

	"promo-budget/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds the listener settings. PORT is read without a prefix.
	HTTP configs.HTTP

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Storage selects the persistence backend (STORAGE_ prefix).
	Storage configs.Storage `envPrefix:"STORAGE_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when a variable is not set. An unknown
// storage driver is rejected here rather than at first use.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if _, err := cfg.Storage.NormalizedDriver(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
