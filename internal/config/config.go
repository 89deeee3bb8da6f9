// Package config loads environment variables into structured,
// validated Go types.
//
// Env vars use the CAMPWILD_ prefix and dot-delimited nesting:
// CAMPWILD_SERVER.PORT -> Config.Server.Port. A .env file, when
// present, is loaded by godotenv's autoload before anything reads the
// environment.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

const envPrefix = "CAMPWILD_"

// Config is the root configuration object. Observability is a pointer
// because it is optional; defaults are injected when it is absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups HTTP server runtime settings. Timeouts are in
// seconds.
type ServerConfig struct {
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"required"`
	WriteTimeout int    `koanf:"write_timeout" validate:"required"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"required"`
}

// DatabaseConfig contains MongoDB connection parameters. Timeouts are
// in seconds.
type DatabaseConfig struct {
	URI              string `koanf:"uri" validate:"required"`
	Name             string `koanf:"name" validate:"required"`
	ConnectTimeout   int    `koanf:"connect_timeout" validate:"required"`
	OperationTimeout int    `koanf:"operation_timeout" validate:"required"`
}

// Load reads configuration from the environment, validates it, and
// applies observability defaults. It exits the process on invalid or
// missing required configuration.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always come from primary config so
	// logs and traces carry consistent labels.
	mainConfig.Observability.ServiceName = "campwild"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}
