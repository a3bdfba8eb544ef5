// Package config loads the CLI defaults from an optional YAML or TOML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/fixstr"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedConfig = errors.New("unsupported config file type")
	ErrInvalidConfig     = errors.New("invalid config")
)

// EnvPrefix prefixes the environment variables that override file values.
const EnvPrefix = "FIXSTR_"

// Config holds the defaults applied to every command.
type Config struct {
	Precision int    `yaml:"precision" toml:"precision"`
	Width     int    `yaml:"width" toml:"width"`
	Output    string `yaml:"output" toml:"output"`
	Strict    bool   `yaml:"strict" toml:"strict"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Precision: fixstr.DefaultPrecision,
		Output:    "plain",
	}
}

// Load reads path, if not empty, over the defaults and then applies
// environment overrides from os.Getenv.
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.Getenv)
}

// LoadWithEnv is Load with a custom environment lookup.
func LoadWithEnv(path string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the values are usable by the formatter.
func (c Config) Validate() error {
	if c.Precision < 0 || c.Precision > fixstr.MaxPrecision {
		return fmt.Errorf("%w: precision %d not in [0, %d]", ErrInvalidConfig, c.Precision, fixstr.MaxPrecision)
	}
	if c.Width < 0 || c.Width > fixstr.MaxInt64Len {
		return fmt.Errorf("%w: width %d not in [0, %d]", ErrInvalidConfig, c.Width, fixstr.MaxInt64Len)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output format is empty", ErrInvalidConfig)
	}
	return nil
}

func decodeFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedConfig, path)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvPrefix + "PRECISION"); v != "" {
		n, err := fixstr.ParseInt64(v)
		if err != nil {
			return fmt.Errorf("%w: %sPRECISION: %w", ErrInvalidConfig, EnvPrefix, err)
		}
		cfg.Precision = int(n)
	}
	if v := getenv(EnvPrefix + "WIDTH"); v != "" {
		n, err := fixstr.ParseInt64(v)
		if err != nil {
			return fmt.Errorf("%w: %sWIDTH: %w", ErrInvalidConfig, EnvPrefix, err)
		}
		cfg.Width = int(n)
	}
	if v := getenv(EnvPrefix + "OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := getenv(EnvPrefix + "STRICT"); v != "" {
		cfg.Strict = v == "1" || strings.EqualFold(v, "true")
	}
	return nil
}
