package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSourcePath = "GoogleNews-vectors-negative300.bin"
	DefaultFormat     = "binary"
	DefaultLimit      = 1000000
	DefaultFlatPath   = "vectors.csv"
	DefaultPooling    = "mean"
	DefaultMiss       = "fail"
	DefaultLogLevel   = "info"
)

// DefaultPhrases are the example phrases; the first two are compared.
var DefaultPhrases = []string{
	"how company compares to its peers?",
	"How does the forecasted insurance premium penetration in country trend compare to its peers?",
	"what is company general information?",
}

// SourceConfig locates the pretrained vectors.
type SourceConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	Limit  int    `yaml:"limit"`
}

// PhraseConfig controls phrase pooling.
type PhraseConfig struct {
	Pooling    string `yaml:"pooling"`
	MissPolicy string `yaml:"miss_policy"`
}

// ExportConfig lists export targets. Empty paths are skipped.
type ExportConfig struct {
	FlatPath   string `yaml:"flat_path"`
	BinaryPath string `yaml:"binary_path,omitempty"`
	SQLitePath string `yaml:"sqlite_path,omitempty"`
}

// ExampleConfig holds the phrases the example run embeds.
type ExampleConfig struct {
	Phrases []string `yaml:"phrases"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Source  SourceConfig  `yaml:"source"`
	Phrase  PhraseConfig  `yaml:"phrase"`
	Export  ExportConfig  `yaml:"export"`
	Example ExampleConfig `yaml:"example"`
	Log     LogConfig     `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the configuration of the built-in example run.
func Default() *AppConfig {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	return cfg
}

// SlogLevel maps Log.Level to a slog.Level.
func (c *AppConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Source.Path == "" {
		cfg.Source.Path = DefaultSourcePath
	}
	if cfg.Source.Format == "" {
		cfg.Source.Format = DefaultFormat
	}
	if cfg.Source.Limit == 0 {
		cfg.Source.Limit = DefaultLimit
	}
	if cfg.Phrase.Pooling == "" {
		cfg.Phrase.Pooling = DefaultPooling
	}
	if cfg.Phrase.MissPolicy == "" {
		cfg.Phrase.MissPolicy = DefaultMiss
	}
	if cfg.Export.FlatPath == "" {
		cfg.Export.FlatPath = DefaultFlatPath
	}
	if len(cfg.Example.Phrases) == 0 {
		cfg.Example.Phrases = append([]string(nil), DefaultPhrases...)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
