package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/licensedesk/licensedesk/internal/ui"
)

type Header struct {
	appName  string
	title    string
	variant  string
	autoMode bool
	now      time.Time
	width    int
	theme    *ui.Theme
}

func NewHeader(appName string, theme *ui.Theme) *Header {
	return &Header{
		appName: appName,
		title:   "License Management",
		theme:   theme,
	}
}

func (h *Header) SetTheme(theme *ui.Theme) {
	h.theme = theme
}

func (h *Header) SetVariant(variant string) {
	h.variant = variant
}

func (h *Header) SetAutoMode(on bool) {
	h.autoMode = on
}

func (h *Header) SetTime(t time.Time) {
	h.now = t
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) View() string {
	mutedStyle := lipgloss.NewStyle().
		Foreground(h.theme.Muted).
		Padding(0, 1)

	// Left side: "licensedesk  License Management"
	left := lipgloss.JoinHorizontal(lipgloss.Top,
		h.theme.AppTitle.Render(h.appName),
		" ",
		h.theme.Header.Render(h.title))

	// Right side: "daylight • Theme: Gold (auto) • 14:05"
	rightParts := []string{}
	if h.variant != "" {
		rightParts = append(rightParts, h.variant)
	}
	themeText := fmt.Sprintf("Theme: %s", h.theme.Name)
	if h.autoMode {
		themeText += " (auto)"
	}
	rightParts = append(rightParts, themeText)
	if !h.now.IsZero() {
		rightParts = append(rightParts, h.now.Format("15:04"))
	}
	right := mutedStyle.Render(strings.Join(rightParts, " • "))

	// Push the right side to the edge
	spacing := max(h.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	spacer := lipgloss.NewStyle().
		Width(spacing).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}
