package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by the CLI and ApplyFlags
const (
	FlagConfig    = "config"
	FlagVariant   = "variant"
	FlagTheme     = "theme"
	FlagAuto      = "auto"
	FlagNoSound   = "no-sound"
	FlagPrefs     = "prefs"
	FlagExportDir = "export-dir"
	FlagLogFile   = "log-file"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
)

// RegisterFlags adds the configuration flags to fs. Their defaults are
// only for help text; ApplyFlags copies values the user actually set.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagConfig, "", "config file (default <user config dir>/licensedesk/config.yaml)")
	fs.String(FlagVariant, d.Variant, "presentation variant: static, seasonal, daylight")
	fs.String(FlagTheme, d.Theme, "initial color theme")
	fs.Bool(FlagAuto, d.AutoMode, "pick the theme from the time of day")
	fs.Bool(FlagNoSound, !d.Sound, "disable sound effects")
	fs.String(FlagPrefs, "", "preferences file (default <user config dir>/licensedesk/prefs.yaml)")
	fs.String(FlagExportDir, d.ExportDir, "directory for CSV exports")
	fs.String(FlagLogFile, "", "log file path (empty disables logging)")
	fs.String(FlagLogLevel, d.Log.Level, "log level: debug, info, warn, error")
	fs.String(FlagLogFormat, d.Log.Format, "log format: text, json")
}

// ApplyFlags overrides cfg with every flag changed on the command line.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) error {
	strs := map[string]*string{
		FlagVariant:   &cfg.Variant,
		FlagTheme:     &cfg.Theme,
		FlagPrefs:     &cfg.PrefsPath,
		FlagExportDir: &cfg.ExportDir,
		FlagLogFile:   &cfg.Log.File,
		FlagLogLevel:  &cfg.Log.Level,
		FlagLogFormat: &cfg.Log.Format,
	}
	for name, dst := range strs {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if fs.Changed(FlagAuto) {
		v, err := fs.GetBool(FlagAuto)
		if err != nil {
			return err
		}
		cfg.AutoMode = v
	}
	if fs.Changed(FlagNoSound) {
		v, err := fs.GetBool(FlagNoSound)
		if err != nil {
			return err
		}
		cfg.Sound = !v
	}
	return nil
}

// Load resolves the full configuration: defaults, config file, environment
// and the flags in fs.
func Load(fs *pflag.FlagSet, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	path, _ := fs.GetString(FlagConfig)
	required := path != ""
	if !required {
		if p, ok := lookup(EnvPrefix + "CONFIG"); ok && p != "" {
			path, required = p, true
		}
	}
	if path == "" {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if err := LoadFile(&cfg, path, required); err != nil {
			return cfg, err
		}
	}

	if err := ApplyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}
	if err := ApplyFlags(&cfg, fs); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
