package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licensedesk/licensedesk/internal/logging"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("licensedesk", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "daylight", cfg.Variant)
	assert.Equal(t, "gold", cfg.Theme)
	assert.True(t, cfg.Sound)
	assert.False(t, cfg.AutoMode)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.Empty(t, cfg.Log.File)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		required bool
		missing  bool
		wantErr  string
		check    func(t *testing.T, cfg Config)
	}{
		{
			name:    "partial file keeps defaults",
			content: "theme: rose\nlog:\n  level: debug\n",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "rose", cfg.Theme)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "text", cfg.Log.Format)
				assert.Equal(t, "daylight", cfg.Variant)
			},
		},
		{
			name:    "booleans",
			content: "autoMode: true\nsound: false\n",
			check: func(t *testing.T, cfg Config) {
				assert.True(t, cfg.AutoMode)
				assert.False(t, cfg.Sound)
			},
		},
		{
			name:    "missing optional file",
			missing: true,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "missing required file",
			missing:  true,
			required: true,
			wantErr:  "read config",
		},
		{
			name:    "unknown key",
			content: "colour: red\n",
			wantErr: "parse config",
		},
		{
			name:    "malformed yaml",
			content: "theme: [rose\n",
			wantErr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if !tt.missing {
				path = writeFile(t, tt.content)
			}

			cfg := Default()
			err := LoadFile(&cfg, path, tt.required)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(&cfg, envMap(map[string]string{
		"LICENSEDESK_VARIANT":    "seasonal",
		"LICENSEDESK_THEME":      "sky",
		"LICENSEDESK_SOUND":      "false",
		"LICENSEDESK_EXPORT_DIR": "/tmp/out",
		"LICENSEDESK_LOG_FILE":   "/tmp/ld.log",
		"LICENSEDESK_LOG_FORMAT": "json",
		"UNRELATED":              "x",
	}))
	require.NoError(t, err)

	assert.Equal(t, "seasonal", cfg.Variant)
	assert.Equal(t, "sky", cfg.Theme)
	assert.False(t, cfg.Sound)
	assert.Equal(t, "/tmp/out", cfg.ExportDir)
	assert.Equal(t, "/tmp/ld.log", cfg.Log.File)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestApplyEnv_InvalidBool(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(&cfg, envMap(map[string]string{"LICENSEDESK_AUTO": "sometimes"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LICENSEDESK_AUTO")
}

func TestApplyFlags_OnlyChanged(t *testing.T) {
	cfg := Default()
	cfg.Theme = "forest"
	cfg.Sound = true

	fs := newFlags(t, "--variant", "static", "--no-sound")
	require.NoError(t, ApplyFlags(&cfg, fs))

	assert.Equal(t, "static", cfg.Variant)
	assert.Equal(t, "forest", cfg.Theme, "unchanged flag must not reset to its default")
	assert.False(t, cfg.Sound)
}

func TestLoad_Precedence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := writeFile(t, "variant: seasonal\ntheme: rose\nexportDir: /from/file\nlog:\n  level: warn\n")
	env := envMap(map[string]string{
		"LICENSEDESK_THEME":      "sky",
		"LICENSEDESK_EXPORT_DIR": "/from/env",
	})
	fs := newFlags(t, "--config", path, "--export-dir", "/from/flag")

	cfg, err := Load(fs, env)
	require.NoError(t, err)

	assert.Equal(t, "seasonal", cfg.Variant, "file overrides default")
	assert.Equal(t, "sky", cfg.Theme, "env overrides file")
	assert.Equal(t, "/from/flag", cfg.ExportDir, "flag overrides env")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ConfigFromEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeFile(t, "theme: slate\n")

	cfg, err := Load(newFlags(t), envMap(map[string]string{"LICENSEDESK_CONFIG": path}))
	require.NoError(t, err)
	assert.Equal(t, "slate", cfg.Theme)
}

func TestLoad_DefaultPathIsOptional(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(newFlags(t), envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	fs := newFlags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load(fs, envMap(nil))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unknown variant", mutate: func(c *Config) { c.Variant = "neon" }, wantErr: "unknown variant"},
		{name: "unknown theme", mutate: func(c *Config) { c.Theme = "neon" }, wantErr: "unknown theme"},
		{name: "auto without support", mutate: func(c *Config) { c.Variant = "static"; c.AutoMode = true }, wantErr: "auto mode"},
		{name: "auto in daylight", mutate: func(c *Config) { c.AutoMode = true }},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log level"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLogging(t *testing.T) {
	cfg := Default()
	cfg.Log.File = "/tmp/x.log"
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	lc := cfg.Logging()
	assert.Equal(t, "/tmp/x.log", lc.FilePath)
	assert.Equal(t, logging.FormatJSON, lc.Format)
	assert.Equal(t, 10, lc.MaxSizeMB)
	assert.Equal(t, 3, lc.MaxBackups)
}
