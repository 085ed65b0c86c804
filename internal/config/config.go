// Package config handles loading and parsing application configuration.
// The config file path comes from (in priority order):
//  1. The --config flag of the students-board command
//  2. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//
// Every value in the file can be overridden by its environment variable.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/aanand-mishra/students-board/internal/utils/validate"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	// Endpoint is the students API the loader fetches from.
	Endpoint string `yaml:"endpoint" env:"STUDENTS_ENDPOINT" env-default:"http://localhost:3000/students" validate:"required,url"`

	// StoragePath is the filesystem path to the SQLite snapshot archive.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true" validate:"required"`

	// ThemePath points at the styling configuration. Empty means the
	// built-in theme.
	ThemePath string `yaml:"theme_path" env:"THEME_PATH"`
}

// Load reads and validates the config at path. An empty path falls back
// to CONFIG_PATH.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return nil, errors.New("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	// cleanenv reads the YAML file, applies env overrides and defaults,
	// and enforces env-required.
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad is Load for the startup path: it exits the process on failure.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Validate checks the validate:"..." tags on c.
func (c *Config) Validate() error {
	return validate.Struct("config", c)
}
