package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ytget/number-converter/internal/logging"
	"github.com/ytget/number-converter/internal/platform"
)

// ConfigFileName is the file looked up in the user config directory
const ConfigFileName = "config.yaml"

// Matrix limits. 16^MaxMatrixCols must fit in an int.
const (
	DefaultMatrixRows = 3
	DefaultMatrixCols = 4
	MaxMatrixRows     = 10
	MaxMatrixCols     = 8
)

// Default values
const (
	DefaultLanguage  = "system"
	DefaultLogLevel  = "info"
	DefaultLogFormat = logging.FormatText
)

// MatrixConfig sets the size of generated digit matrices
type MatrixConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// RandomConfig controls digit generation. Seed 0 means a fresh seed per run.
type RandomConfig struct {
	Seed uint64 `yaml:"seed"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the top-level structure for config.yaml
type Config struct {
	Matrix   MatrixConfig `yaml:"matrix"`
	Random   RandomConfig `yaml:"random"`
	Language string       `yaml:"language"`
	Log      LogConfig    `yaml:"log"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Matrix:   MatrixConfig{Rows: DefaultMatrixRows, Cols: DefaultMatrixCols},
		Language: DefaultLanguage,
		Log:      LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Validate checks limits and enumerated values
func (c *Config) Validate() error {
	var errs []error
	if c.Matrix.Rows < 1 || c.Matrix.Rows > MaxMatrixRows {
		errs = append(errs, fmt.Errorf("matrix.rows must be between 1 and %d, got %d", MaxMatrixRows, c.Matrix.Rows))
	}
	if c.Matrix.Cols < 1 || c.Matrix.Cols > MaxMatrixCols {
		errs = append(errs, fmt.Errorf("matrix.cols must be between 1 and %d, got %d", MaxMatrixCols, c.Matrix.Cols))
	}
	if _, ok := LanguageOptions()[c.Language]; !ok {
		errs = append(errs, fmt.Errorf("unsupported language: %q", c.Language))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if !logging.ValidFormat(c.Log.Format) {
		errs = append(errs, fmt.Errorf("unsupported log format: %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// DefaultPath returns <user config dir>/numconv/config.yaml
func DefaultPath() (string, error) {
	dir, err := platform.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Load reads and parses a config file. Fields missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path when given. With an empty path it looks at the
// default location and falls back to defaults when no file is there.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	defaultPath, err := DefaultPath()
	if err != nil || !platform.FileExists(defaultPath) {
		return Default(), nil
	}
	return Load(defaultPath)
}

// Save writes cfg as YAML to path
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := platform.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LanguageOptions returns available language options
func LanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
