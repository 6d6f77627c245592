package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/licensedesk/licensedesk/internal/keyboard"
	"github.com/licensedesk/licensedesk/internal/ui"
)

// HelpBar shows the key bindings that apply to the current mode
type HelpBar struct {
	help        help.Model
	keys        *keyboard.Keys
	paletteMode bool
}

func NewHelpBar(keys *keyboard.Keys, theme *ui.Theme) *HelpBar {
	hb := &HelpBar{help: help.New(), keys: keys}
	hb.SetTheme(theme)
	return hb
}

func (hb *HelpBar) SetTheme(theme *ui.Theme) {
	keyStyle := lipgloss.NewStyle().Foreground(theme.PaletteShortcut)
	descStyle := lipgloss.NewStyle().Foreground(theme.Muted)
	sepStyle := lipgloss.NewStyle().Foreground(theme.Border)

	hb.help.Styles.ShortKey = keyStyle
	hb.help.Styles.ShortDesc = descStyle
	hb.help.Styles.ShortSeparator = sepStyle
	hb.help.Styles.FullKey = keyStyle
	hb.help.Styles.FullDesc = descStyle
	hb.help.Styles.FullSeparator = sepStyle
}

func (hb *HelpBar) SetWidth(width int) {
	hb.help.Width = width
}

// SetPaletteMode switches to the palette bindings
func (hb *HelpBar) SetPaletteMode(on bool) {
	hb.paletteMode = on
}

func (hb *HelpBar) View() string {
	if hb.paletteMode {
		return hb.help.ShortHelpView(hb.keys.PaletteHelp())
	}
	return hb.help.View(hb.keys)
}
