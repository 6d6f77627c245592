package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/licensedesk/licensedesk/internal/ui"
)

// tabLabels maps tab ids to the labels shown in the tab row.
var tabLabels = map[string]string{
	"upgrade":   "Upgrade Package",
	"downgrade": "Downgrade Package",
	"details":   "License Details",
	"history":   "License History",
}

// TabLabel returns the display label of a tab id.
func TabLabel(id string) string {
	if label, ok := tabLabels[id]; ok {
		return label
	}
	return id
}

// Tabs renders the tab row with the active tab highlighted.
type Tabs struct {
	ids    []string
	active int
	theme  *ui.Theme
}

func NewTabs(ids []string, theme *ui.Theme) *Tabs {
	return &Tabs{ids: ids, theme: theme}
}

func (t *Tabs) SetTheme(theme *ui.Theme) {
	t.theme = theme
}

// SetActive selects the active tab. Out of range indexes are ignored.
func (t *Tabs) SetActive(i int) {
	if i >= 0 && i < len(t.ids) {
		t.active = i
	}
}

func (t *Tabs) Active() int {
	return t.active
}

func (t *Tabs) View() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(t.theme.Primary).
		Bold(true).
		Underline(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.theme.Muted).
		Padding(0, 1)
	numberStyle := lipgloss.NewStyle().
		Foreground(t.theme.Dimmed)

	cells := make([]string, 0, len(t.ids))
	for i, id := range t.ids {
		style := inactiveStyle
		if i == t.active {
			style = activeStyle
		}
		cells = append(cells, numberStyle.Render(string(rune('1'+i)))+style.Render(TabLabel(id)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
