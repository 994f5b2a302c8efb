package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration for hours, stored in ~/.hours/config.toml.
type Config struct {
	// DataFile is the YAML file holding projects and billable entries.
	DataFile string `toml:"data_file"`
	// LexOfficeAPIKey is reserved for the invoice upload integration.
	LexOfficeAPIKey string `toml:"lex_office_api_key,omitempty"`
	// MatchYear makes monthly billing compare year and month instead of the
	// month number only.
	MatchYear bool `toml:"match_year"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

const (
	// DefaultPath is where the config file is looked up unless --config is given.
	DefaultPath = "~/.hours/config.toml"
	// DefaultDataFile is the data file used when data_file is not set.
	DefaultDataFile = "~/.hours/data/projects.yaml"
	// DefaultLogLevel keeps diagnostics quiet unless something goes wrong.
	DefaultLogLevel = "warn"
)

// Default returns a Config pre-filled with the built-in defaults.
func Default() Config {
	return Config{
		DataFile: DefaultDataFile,
		LogLevel: DefaultLogLevel,
	}
}

// configTemplate is the annotated config written on first run.
const configTemplate = `# hours configuration
#
# All settings are optional; the values below are the built-in defaults.

# YAML file holding projects, tasks and billable entries. A leading ~ is
# expanded to the home directory.
data_file = "~/.hours/data/projects.yaml"

# Monthly billing selects entries by month number only, so October 2019
# entries also appear on an October 2020 invoice. Set to true to compare the
# year as well.
match_year = false

# Diagnostic log level on stderr: debug, info, warn or error.
log_level = "warn"

# API key for the Lex Office integration.
# lex_office_api_key = ""
`

// Load reads the config file at path, creating it with annotated defaults on
// first run. It always returns a usable Config: when the file cannot be read
// or parsed the defaults are returned together with the error, which callers
// report as a warning.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			return Default(), fmt.Errorf("could not create config file %s: %w", path, writeErr)
		}
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if strings.TrimSpace(cfg.DataFile) == "" {
		cfg.DataFile = DefaultDataFile
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg, nil
}

// Level returns the configured log level, falling back to warn.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// Write encodes cfg as TOML.
func Write(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
