package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/acjournal/internal/amount"
	"github.com/cleared-dev/acjournal/internal/options"
)

// FileName is the settings file written by `acjournal init`.
const FileName = "acjournal.yaml"

// Environment variables that override the settings file.
const (
	EnvCommaAsDecimal     = "ACJ_COMMA_AS_DECIMAL"
	EnvJournalSeparator   = "ACJ_JOURNAL_SEPARATOR"
	EnvAccountEquivalence = "ACJ_ACCOUNT_EQUIVALENCE"
	EnvLocale             = "ACJ_LOCALE"
	EnvLogLevel           = "ACJ_LOG_LEVEL"
	EnvServerAddr         = "ACJ_SERVER_ADDR"
)

// Settings are the global rendering settings. Documents may override the
// first three through frontmatter.
type Settings struct {
	CommaAsDecimal     bool         `yaml:"comma_as_decimal"`
	JournalSeparator   string       `yaml:"journal_separator"`
	AccountEquivalence string       `yaml:"account_equivalence,omitempty"`
	Locale             string       `yaml:"locale,omitempty"` // when set, decides CommaAsDecimal
	LogLevel           string       `yaml:"log_level"`
	Server             ServerConfig `yaml:"server"`
}

// ServerConfig controls `acjournal serve`.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		CommaAsDecimal:   options.DefaultCommaDecimal,
		JournalSeparator: options.DefaultSeparator,
		LogLevel:         "info",
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads a settings file on top of the defaults. Keys missing from the
// file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if err := cfg.applyLocale(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Settings, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes settings to a YAML file.
func Save(path string, cfg *Settings) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overlays ACJ_* variables found by lookup (usually os.LookupEnv).
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCommaAsDecimal); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvCommaAsDecimal, err)
		}
		s.CommaAsDecimal = b
	}
	if v, ok := lookup(EnvJournalSeparator); ok {
		s.JournalSeparator = v
	}
	if v, ok := lookup(EnvAccountEquivalence); ok {
		s.AccountEquivalence = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		s.LogLevel = v
	}
	if v, ok := lookup(EnvServerAddr); ok {
		s.Server.Addr = v
	}
	if v, ok := lookup(EnvLocale); ok {
		return s.SetLocale(v)
	}
	return nil
}

// SetLocale sets the locale and derives the decimal style from it.
func (s *Settings) SetLocale(locale string) error {
	s.Locale = locale
	return s.applyLocale()
}

func (s *Settings) applyLocale() error {
	if s.Locale == "" {
		return nil
	}
	comma, err := amount.CommaDecimalForLocale(s.Locale)
	if err != nil {
		return fmt.Errorf("settings locale: %w", err)
	}
	s.CommaAsDecimal = comma
	return nil
}

// Overrides exposes the settings as the global option source.
func (s *Settings) Overrides() options.Overrides {
	return options.Overrides{
		CommaDecimal:    options.Some(s.CommaAsDecimal),
		Separator:       options.NonEmpty(s.JournalSeparator),
		EquivalencePath: options.NonEmpty(s.AccountEquivalence),
	}
}
