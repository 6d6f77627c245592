package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/licensedesk/licensedesk/internal/ui"
)

// StatusBar displays the dispatcher state as "key: value" segments
type StatusBar struct {
	segments []string
	width    int
	theme    *ui.Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
	}
}

func (sb *StatusBar) SetTheme(theme *ui.Theme) {
	sb.theme = theme
}

// SetSegments replaces the displayed segments
func (sb *StatusBar) SetSegments(segments ...string) {
	sb.segments = segments
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) View() string {
	return sb.theme.StatusBar.
		Width(sb.width).
		Padding(0, 1).
		Render(strings.Join(sb.segments, lipgloss.NewStyle().Foreground(sb.theme.Border).Render(" │ ")))
}
