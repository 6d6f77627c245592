// Package prefs persists per-user preferences between runs.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"github.com/licensedesk/licensedesk/internal/logging"
	"github.com/licensedesk/licensedesk/internal/sound"
)

// FileName is the preferences file inside the user config directory.
const FileName = "prefs.yaml"

// Prefs is the persisted preference document
type Prefs struct {
	SoundTheme  string                     `json:"soundTheme,omitempty"`
	SoundThemes map[string]sound.ThemeSpec `json:"soundThemes,omitempty"` // Custom themes merged over the defaults
}

// Defaults returns the preferences used when no file exists
func Defaults() Prefs {
	return Prefs{SoundTheme: sound.DefaultTheme}
}

// Store reads and writes Prefs at a fixed path
type Store struct {
	path string
}

// NewStore creates a store for path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns <user config dir>/licensedesk/prefs.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "licensedesk", FileName), nil
}

// Path returns the file the store uses
func (s *Store) Path() string { return s.path }

// Load reads the preferences. A missing file yields Defaults and no error.
func (s *Store) Load() (Prefs, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return Defaults(), fmt.Errorf("read prefs %s: %w", s.path, err)
	}

	p := Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("parse prefs %s: %w", s.path, err)
	}
	if p.SoundTheme == "" {
		p.SoundTheme = sound.DefaultTheme
	}
	return p, nil
}

// Save writes the preferences, creating the directory if needed. The file
// is replaced atomically.
func (s *Store) Save(p Prefs) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}

	logging.Debug("prefs saved", "path", s.path, "soundTheme", p.SoundTheme)
	return nil
}

// SetSoundTheme updates only the sound theme, keeping custom themes.
func (s *Store) SetSoundTheme(name string) error {
	p, err := s.Load()
	if err != nil {
		logging.Warn("prefs unreadable, overwriting", "path", s.path, "error", err)
	}
	p.SoundTheme = name
	return s.Save(p)
}
