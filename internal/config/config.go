// Package config resolves licensedesk settings. Sources are layered, later
// ones win: built-in defaults, the YAML config file, LICENSEDESK_*
// environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/licensedesk/licensedesk/internal/commands"
	"github.com/licensedesk/licensedesk/internal/logging"
	"github.com/licensedesk/licensedesk/internal/ui"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "LICENSEDESK_"

// Config holds all settings
type Config struct {
	Variant   string    `json:"variant"`
	Theme     string    `json:"theme"`
	AutoMode  bool      `json:"autoMode"`
	Sound     bool      `json:"sound"`
	PrefsPath string    `json:"prefsPath,omitempty"` // Empty means the user config dir
	ExportDir string    `json:"exportDir"`
	Log       LogConfig `json:"log"`
}

// LogConfig configures the log file
type LogConfig struct {
	File       string `json:"file,omitempty"` // Empty disables logging
	Level      string `json:"level"`
	Format     string `json:"format"`
	MaxSizeMB  int    `json:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups"`
}

// Default returns the built-in defaults
func Default() Config {
	return Config{
		Variant:   commands.DefaultVariant,
		Theme:     ui.DefaultTheme,
		Sound:     true,
		ExportDir: ".",
		Log: LogConfig{
			Level:      "info",
			Format:     string(logging.FormatText),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultPath returns <user config dir>/licensedesk/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "licensedesk", "config.yaml"), nil
}

// LoadFile merges the YAML file at path into cfg. Keys absent from the
// file keep their current value. A missing file is an error only when
// required is set.
func LoadFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg from LICENSEDESK_* variables found by lookup
// (os.LookupEnv in production).
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"VARIANT":    &cfg.Variant,
		"THEME":      &cfg.Theme,
		"PREFS":      &cfg.PrefsPath,
		"EXPORT_DIR": &cfg.ExportDir,
		"LOG_FILE":   &cfg.Log.File,
		"LOG_LEVEL":  &cfg.Log.Level,
		"LOG_FORMAT": &cfg.Log.Format,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"AUTO":  &cfg.AutoMode,
		"SOUND": &cfg.Sound,
	}
	for name, dst := range bools {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: must be true or false, got %q", EnvPrefix, name, v)
		}
		*dst = b
	}
	return nil
}

// Validate checks values that would otherwise fail late
func (c Config) Validate() error {
	variant, err := commands.LookupVariant(c.Variant)
	if err != nil {
		return err
	}
	if _, ok := ui.LookupTheme(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(ui.AvailableThemes(), ", "))
	}
	if c.AutoMode && !variant.AutoMode {
		return fmt.Errorf("auto mode is not available in the %s variant", variant.Name)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch logging.LogFormat(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Logging converts LogConfig for logging.Init
func (c Config) Logging() logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}
