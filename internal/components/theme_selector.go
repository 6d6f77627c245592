package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/licensedesk/licensedesk/internal/ui"
)

// ThemeSelector renders the theme picker overlay
type ThemeSelector struct {
	theme *ui.Theme
}

func NewThemeSelector(theme *ui.Theme) *ThemeSelector {
	return &ThemeSelector{theme: theme}
}

func (s *ThemeSelector) SetTheme(theme *ui.Theme) {
	s.theme = theme
}

// View lists keys with their quick-select digit. cursor marks the row
// Enter would apply; the active theme gets a dot.
func (s *ThemeSelector) View(keys []string, cursor int) string {
	itemStyle := lipgloss.NewStyle().
		Foreground(s.theme.PaletteForeground).
		Padding(0, 1)
	selectedStyle := lipgloss.NewStyle().
		Foreground(s.theme.PaletteSelectedForeground).
		Background(s.theme.Subtle).
		Bold(true).
		Padding(0, 1)
	seasonStyle := lipgloss.NewStyle().
		Foreground(s.theme.Muted)

	lines := []string{s.theme.Header.Render("Themes")}
	for i, key := range keys {
		t := ui.GetTheme(key)
		marker := " "
		if key == s.theme.Key {
			marker = "●"
		}
		text := fmt.Sprintf("%d %s %-7s %s", i+1, marker, t.Name, seasonStyle.Render(t.Season))
		if i == cursor {
			lines = append(lines, selectedStyle.Render("▶ "+text))
		} else {
			lines = append(lines, itemStyle.Render("  "+text))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.theme.Border).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
