// Package config loads the process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the full server configuration.
type Config struct {
	Port     int    `env:"PORT"           envDefault:"8000"`
	MongoURI string `env:"MONGO_URI"      envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DATABASE" envDefault:"news"`
	MediaDir string `env:"MEDIA_DIR"      envDefault:"public"`

	Token TokenConfig
}

// TokenConfig configures access token issuance.
type TokenConfig struct {
	Secret    string        `env:"ACCESS_TOKEN_SECRET"`
	Issuer    string        `env:"ACCESS_TOKEN_ISSUER"     envDefault:"newsdesk"`
	ExpiresIn time.Duration `env:"ACCESS_TOKEN_EXPIRES_IN" envDefault:"10h"`
}

// New creates a Config instance from environment variables.
func New(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.Token.Secret == "" {
		return fmt.Errorf("missing ACCESS_TOKEN_SECRET environment variable")
	}
	if c.Token.ExpiresIn <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRES_IN must be positive")
	}

	return nil
}
