package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings that outlive a single invocation.
// Precedence, lowest first: defaults, config file, environment, flags.
type Config struct {
	WordsFile    string `yaml:"words_file"`
	MaxWildcards int    `yaml:"max_wildcards"`
	MaxUnmatched int    `yaml:"max_unmatched_phrases"`
	Color        string `yaml:"color"`

	// Source is the config file that was read, empty if none was.
	Source string `yaml:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{Color: ColorAuto}
}

// LoadConfig reads defaults, then the config file at path (the resolved
// default location when path is empty), then the environment.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = ResolvePaths().ConfigFile
	}
	if path != "" {
		err := loadFromFile(cfg, path)
		switch {
		case err == nil:
			cfg.Source = path
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if words := os.Getenv("ACRO_WORDS_FILE"); words != "" {
		cfg.WordsFile = words
	}

	if v := os.Getenv("ACRO_MAX_WILDCARDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: ACRO_MAX_WILDCARDS: %v", ErrInvalidConfig, err)
		}
		cfg.MaxWildcards = n
	}

	if v := os.Getenv("ACRO_MAX_UNMATCHED"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: ACRO_MAX_UNMATCHED: %v", ErrInvalidConfig, err)
		}
		cfg.MaxUnmatched = n
	}

	if color := os.Getenv("ACRO_COLOR"); color != "" {
		cfg.Color = color
	}

	return nil
}

// Validate checks limits and the color mode.
func (c *Config) Validate() error {
	if c.MaxWildcards < 0 {
		return fmt.Errorf("%w: max_wildcards must be non-negative", ErrInvalidConfig)
	}
	if c.MaxUnmatched < 0 {
		return fmt.Errorf("%w: max_unmatched_phrases must be non-negative", ErrInvalidConfig)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalidConfig, c.Color)
	}
	return nil
}

// WriteFile saves the configuration as YAML, creating parent directories.
func (c *Config) WriteFile(p *Paths) error {
	if err := p.EnsureDirs(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(p.ConfigFile, data, 0644)
}
