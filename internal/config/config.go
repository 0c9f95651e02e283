package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/qifreader/internal/charset"
	"github.com/cleared-dev/qifreader/internal/model"
)

// FileName is the conventional name of the configuration file.
const FileName = "qifreader.yaml"

// Output formats for the read command.
const (
	OutputText = "text"
	OutputCSV  = "csv"
)

// Config represents qifreader.yaml.
type Config struct {
	DateFormat string `yaml:"date_format"` // pattern like "dd/MM/yyyy" or a Go layout
	Encoding   string `yaml:"encoding"`
	LogLevel   string `yaml:"log_level"` // debug, info, warn, error
	Output     string `yaml:"output"`    // text or csv
	Recursive  bool   `yaml:"recursive"` // descend into subdirectories when given a directory
}

// Load reads a config file from disk. Unset fields take their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DateFormat: model.DefaultDateFormat,
		Encoding:   charset.Default,
		LogLevel:   "warn",
		Output:     OutputText,
	}
}

// Validate checks the enumerated fields and the encoding name.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Output {
	case OutputText, OutputCSV:
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	if _, err := charset.Lookup(c.Encoding); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a log level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}
