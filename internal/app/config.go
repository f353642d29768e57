package app

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// DBPath is the sqlite file holding saved scenarios and runs.
	DBPath string `envconfig:"CIMERA_DB" default:"cimera.db"`

	// CatalogPath optionally points at a YAML catalog; empty means the
	// built-in seed catalog.
	CatalogPath string `envconfig:"CIMERA_CATALOG" default:""`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
