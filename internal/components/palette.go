package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/licensedesk/licensedesk/internal/commands"
	"github.com/licensedesk/licensedesk/internal/ui"
)

// Palette renders the command palette: input line, filtered suggestions
// and the recent command history. All state lives in the dispatcher; the
// palette only keeps its scroll position.
type Palette struct {
	theme        *ui.Theme
	width        int
	scrollOffset int // First visible suggestion
}

func NewPalette(theme *ui.Theme) *Palette {
	return &Palette{theme: theme, width: 80}
}

func (p *Palette) SetTheme(theme *ui.Theme) {
	p.theme = theme
}

func (p *Palette) SetWidth(width int) {
	p.width = width
}

// PaletteState is the dispatcher state the palette renders
type PaletteState struct {
	Buffer      string
	ArgHint     string
	Suggestions []commands.Descriptor
	Highlight   int // -1 for none
	History     []commands.HistoryEntry
}

// View renders the palette overlay.
func (p *Palette) View(s PaletteState) string {
	sections := []string{p.inputView(s)}
	if items := p.suggestionsView(s.Suggestions, s.Highlight); items != "" {
		sections = append(sections, items)
	}
	if hist := p.historyView(s.History); hist != "" {
		sections = append(sections, hist)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.theme.Border).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (p *Palette) innerWidth() int {
	return max(p.width-2, 20)
}

func (p *Palette) inputView(s PaletteState) string {
	barStyle := lipgloss.NewStyle().
		Foreground(p.theme.Foreground).
		Width(p.innerWidth()).
		Padding(0, 1)
	promptStyle := lipgloss.NewStyle().
		Foreground(p.theme.TerminalPrompt).
		Bold(true)
	hintStyle := lipgloss.NewStyle().
		Foreground(p.theme.Dimmed).
		Italic(true)

	display := promptStyle.Render("> ") + s.Buffer + "█"
	switch {
	case s.Buffer == "":
		display += hintStyle.Render(" type a command, 'help' for the list")
	case s.ArgHint != "":
		display += hintStyle.Render(s.ArgHint)
	}
	return barStyle.Render(display)
}

// scrollTo keeps the highlighted suggestion inside the visible window.
func (p *Palette) scrollTo(highlight, total int) {
	if highlight < 0 {
		p.scrollOffset = 0
		return
	}
	if highlight < p.scrollOffset {
		p.scrollOffset = highlight
	}
	if maxVisible := p.scrollOffset + MaxPaletteItems - 1; highlight > maxVisible {
		p.scrollOffset = highlight - MaxPaletteItems + 1
	}
	p.scrollOffset = min(p.scrollOffset, max(total-MaxPaletteItems, 0))
}

func (p *Palette) suggestionsView(items []commands.Descriptor, highlight int) string {
	if len(items) == 0 {
		p.scrollOffset = 0
		return ""
	}
	p.scrollTo(highlight, len(items))

	visibleEnd := min(p.scrollOffset+MaxPaletteItems, len(items))

	// First pass: find longest text to align shortcuts
	longestMainText := 0
	for i := p.scrollOffset; i < visibleEnd; i++ {
		mainText := items[i].Name + " - " + items[i].Description
		longestMainText = max(longestMainText, lipgloss.Width(mainText))
	}
	shortcutColumn := longestMainText + 4

	shortcutStyle := lipgloss.NewStyle().
		Foreground(p.theme.PaletteShortcut)
	selectedStyle := lipgloss.NewStyle().
		Foreground(p.theme.PaletteSelectedForeground).
		Background(p.theme.Subtle).
		Width(p.innerWidth()).
		Padding(0, 1).
		Bold(true)
	itemStyle := lipgloss.NewStyle().
		Foreground(p.theme.PaletteForeground).
		Width(p.innerWidth()).
		Padding(0, 1)

	lines := make([]string, 0, visibleEnd-p.scrollOffset)
	for i := p.scrollOffset; i < visibleEnd; i++ {
		mainText := items[i].Name + " - " + items[i].Description
		padding := max(shortcutColumn-lipgloss.Width(mainText), 2)
		content := mainText + strings.Repeat(" ", padding) + shortcutStyle.Render(items[i].Shortcut)

		if i == highlight {
			lines = append(lines, selectedStyle.Render("▶ "+content))
		} else {
			lines = append(lines, itemStyle.Render("  "+content))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p *Palette) historyView(history []commands.HistoryEntry) string {
	if len(history) == 0 {
		return ""
	}
	start := max(len(history)-HistoryPaneLines, 0)

	paneStyle := lipgloss.NewStyle().
		Background(p.theme.TerminalBackground).
		Foreground(p.theme.TerminalText).
		Width(p.innerWidth()).
		Padding(0, 1)
	promptStyle := lipgloss.NewStyle().
		Foreground(p.theme.TerminalPrompt).
		Background(p.theme.TerminalBackground)
	timeStyle := lipgloss.NewStyle().
		Foreground(p.theme.Dimmed).
		Background(p.theme.TerminalBackground)

	lines := make([]string, 0, 2*(len(history)-start))
	for _, e := range history[start:] {
		lines = append(lines,
			paneStyle.Render(timeStyle.Render(e.Timestamp.Format("15:04:05"))+" "+promptStyle.Render("$ ")+e.Command),
			paneStyle.Render("  "+e.Result))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
