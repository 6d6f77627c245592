package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is used when no theme (or an unknown one) is requested.
const DefaultTheme = "gold"

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Key    string // Lookup key (e.g., "gold")
	Name   string // Display name (e.g., "Gold")
	Season string // Season used for decorative animation and sounds

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border     lipgloss.AdaptiveColor // Separator lines, borders
	Dimmed     lipgloss.AdaptiveColor // Very subtle text (shortcuts)
	Subtle     lipgloss.AdaptiveColor // Subtle UI elements
	Background lipgloss.AdaptiveColor // Background for overlays

	// Command palette
	PaletteForeground         lipgloss.AdaptiveColor
	PaletteBackground         lipgloss.AdaptiveColor
	PaletteSelectedForeground lipgloss.AdaptiveColor
	PaletteShortcut           lipgloss.AdaptiveColor

	// Terminal pane (command history inside the palette)
	TerminalBackground lipgloss.AdaptiveColor
	TerminalText       lipgloss.AdaptiveColor
	TerminalPrompt     lipgloss.AdaptiveColor

	// Status messages
	MessageSuccess lipgloss.AdaptiveColor
	MessageError   lipgloss.AdaptiveColor
	MessageInfo    lipgloss.AdaptiveColor
	MessageLoading lipgloss.AdaptiveColor

	// Component styles
	Table     TableStyles
	AppTitle  lipgloss.Style // App title with background
	Header    lipgloss.Style
	StatusBar lipgloss.Style
	Badge     lipgloss.Style // ACTIVE status pill
}

// TableStyles defines styles for table components
type TableStyles struct {
	Header      lipgloss.Style
	Cell        lipgloss.Style
	SelectedRow lipgloss.Style
}

// ToTableStyles converts Theme.Table to bubbles table.Styles
func (t *Theme) ToTableStyles() table.Styles {
	return table.Styles{
		Header:   t.Table.Header,
		Cell:     t.Table.Cell,
		Selected: t.Table.SelectedRow,
	}
}

// swatch is one Tailwind-style color ramp. The light shades are used on
// light terminals, the saturated ones on dark terminals.
type swatch struct {
	tint   string // 100
	border string // 300
	bright string // 400
	accent string // 600
	muted  string // 700
	strong string // 800
	deep   string // 900
}

func newTheme(key, name, season string, s swatch) *Theme {
	t := &Theme{Key: key, Name: name, Season: season}

	t.Primary = lipgloss.AdaptiveColor{Light: s.accent, Dark: s.bright}
	t.Secondary = lipgloss.AdaptiveColor{Light: s.muted, Dark: s.border}
	t.Accent = lipgloss.AdaptiveColor{Light: s.strong, Dark: s.tint}
	t.Foreground = lipgloss.AdaptiveColor{Light: s.deep, Dark: s.tint}
	t.Muted = lipgloss.AdaptiveColor{Light: s.muted, Dark: s.border}
	t.Error = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	t.Success = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"}

	t.Border = lipgloss.AdaptiveColor{Light: s.border, Dark: s.muted}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Subtle = lipgloss.AdaptiveColor{Light: s.border, Dark: s.strong}
	t.Background = lipgloss.AdaptiveColor{Light: s.tint, Dark: s.deep}

	t.PaletteForeground = t.Foreground
	t.PaletteBackground = t.Background
	t.PaletteSelectedForeground = lipgloss.AdaptiveColor{Light: s.deep, Dark: "#ffffff"}
	t.PaletteShortcut = lipgloss.AdaptiveColor{Light: s.muted, Dark: s.bright}

	t.TerminalBackground = lipgloss.AdaptiveColor{Light: s.deep, Dark: s.deep}
	t.TerminalText = lipgloss.AdaptiveColor{Light: s.border, Dark: s.border}
	t.TerminalPrompt = lipgloss.AdaptiveColor{Light: s.bright, Dark: s.bright}

	t.MessageSuccess = t.Success
	t.MessageError = t.Error
	t.MessageInfo = t.Primary
	t.MessageLoading = t.Secondary

	t.Table.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Primary).
		Bold(true).
		PaddingLeft(1).
		PaddingRight(1)

	t.Table.Cell = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	t.Table.SelectedRow = lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.deep)).
		Background(lipgloss.Color(s.tint)).
		Bold(true)

	t.AppTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.tint)).
		Background(lipgloss.Color(s.accent)).
		Bold(true).
		Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Badge = lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.strong)).
		Background(lipgloss.Color(s.tint)).
		Padding(0, 1)

	return t
}

// ThemeGold is the default autumn theme
func ThemeGold() *Theme {
	return newTheme("gold", "Gold", "autumn", swatch{
		tint: "#fef3c7", border: "#fcd34d", bright: "#facc15", accent: "#ca8a04",
		muted: "#b45309", strong: "#854d0e", deep: "#78350f",
	})
}

// ThemeRose is the spring theme
func ThemeRose() *Theme {
	return newTheme("rose", "Rose", "spring", swatch{
		tint: "#ffe4e6", border: "#fda4af", bright: "#fb7185", accent: "#e11d48",
		muted: "#be123c", strong: "#9f1239", deep: "#881337",
	})
}

// ThemeSky is the winter theme
func ThemeSky() *Theme {
	return newTheme("sky", "Sky", "winter", swatch{
		tint: "#e0f2fe", border: "#7dd3fc", bright: "#38bdf8", accent: "#0284c7",
		muted: "#0369a1", strong: "#075985", deep: "#0c4a6e",
	})
}

// ThemeForest is the summer theme
func ThemeForest() *Theme {
	return newTheme("forest", "Forest", "summer", swatch{
		tint: "#dcfce7", border: "#86efac", bright: "#4ade80", accent: "#16a34a",
		muted: "#15803d", strong: "#166534", deep: "#14532d",
	})
}

// ThemeSlate is the neutral day theme picked by auto mode
func ThemeSlate() *Theme {
	return newTheme("slate", "Slate", "neutral", swatch{
		tint: "#f1f5f9", border: "#cbd5e1", bright: "#94a3b8", accent: "#475569",
		muted: "#334155", strong: "#1e293b", deep: "#0f172a",
	})
}

// ThemeDark is the night theme picked by auto mode
func ThemeDark() *Theme {
	return newTheme("dark", "Dark", "night", swatch{
		tint: "#e5e7eb", border: "#a5b4fc", bright: "#818cf8", accent: "#6366f1",
		muted: "#374151", strong: "#1f2937", deep: "#111827",
	})
}

var themeConstructors = map[string]func() *Theme{
	"gold":   ThemeGold,
	"rose":   ThemeRose,
	"sky":    ThemeSky,
	"forest": ThemeForest,
	"slate":  ThemeSlate,
	"dark":   ThemeDark,
}

// LookupTheme returns the theme registered under key.
func LookupTheme(key string) (*Theme, bool) {
	ctor, ok := themeConstructors[key]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// GetTheme returns a theme by key, defaulting to Gold
func GetTheme(key string) *Theme {
	if t, ok := LookupTheme(key); ok {
		return t
	}
	return ThemeGold()
}

// AvailableThemes returns theme keys in selector order. The order also
// defines the quick-select digits (Mod+Shift+1 is gold).
func AvailableThemes() []string {
	return []string{"gold", "rose", "sky", "forest", "slate", "dark"}
}
