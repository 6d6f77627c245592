package keyboard

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/licensedesk/licensedesk/internal/commands"
)

// Keys holds the key bindings shown in the help bar. Chords use
// ctrl or alt interchangeably; many terminals only deliver alt+digit.
type Keys struct {
	// Overlays
	Palette key.Binding // Toggle command palette
	Themes  key.Binding // Toggle theme selector
	Close   key.Binding // Close overlays

	// Theme and decoration
	Animate    key.Binding // Seasonal animation
	Auto       key.Binding // Auto day/night theme
	QuickTheme key.Binding // Pick theme by number

	// Navigation
	Tabs     key.Binding // Switch tab
	Rows     key.Binding // Move row selection / recall history
	Complete key.Binding // Cycle palette suggestions
	Submit   key.Binding // Run command

	// Global
	Quit key.Binding
}

// Default returns the default bindings
func Default() *Keys {
	return &Keys{
		Palette: key.NewBinding(key.WithKeys("ctrl+k", "alt+k"), key.WithHelp("ctrl+k", "commands")),
		Themes:  key.NewBinding(key.WithKeys("ctrl+t", "alt+t"), key.WithHelp("ctrl+t", "themes")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),

		Animate:    key.NewBinding(key.WithKeys("ctrl+a", "alt+a"), key.WithHelp("ctrl+a", "animate")),
		Auto:       key.NewBinding(key.WithKeys("ctrl+d", "alt+d"), key.WithHelp("ctrl+d", "auto theme")),
		QuickTheme: key.NewBinding(key.WithKeys("alt+!", "alt+@", "alt+#", "alt+$", "alt+%", "alt+^"), key.WithHelp("alt+shift+1-6", "pick theme")),

		Tabs:     key.NewBinding(key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4"), key.WithHelp("alt+1-4", "tabs")),
		Rows:     key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		Complete: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "suggest")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),

		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ForVariant returns the default bindings with absent features disabled.
func ForVariant(v commands.Variant) *Keys {
	k := Default()
	k.Themes.SetEnabled(v.HasThemes())
	k.QuickTheme.SetEnabled(v.HasThemes())
	k.Animate.SetEnabled(v.HasAnimations())
	k.Auto.SetEnabled(v.AutoMode)
	return k
}

// ShortHelp implements help.KeyMap
func (k *Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Palette, k.Themes, k.Animate, k.Auto, k.Tabs, k.Quit}
}

// FullHelp implements help.KeyMap
func (k *Keys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Palette, k.Themes, k.Close},
		{k.Animate, k.Auto, k.QuickTheme},
		{k.Tabs, k.Rows, k.Complete, k.Submit},
		{k.Quit},
	}
}

// PaletteHelp lists the bindings active while the palette is open.
func (k *Keys) PaletteHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Rows, k.Complete, k.Close}
}

// shiftedDigits maps the symbols on US digit keys back to their digit.
// Terminals report alt+shift+1 as alt+!.
var shiftedDigits = map[string]string{
	"!": "1", "@": "2", "#": "3", "$": "4", "%": "5", "^": "6",
}

// FromKeyMsg translates a Bubble Tea key press into a dispatcher event.
func FromKeyMsg(msg tea.KeyMsg) commands.KeyEvent {
	ev := commands.KeyEvent{Primary: msg.Alt}

	switch msg.Type {
	case tea.KeyRunes:
		text := string(msg.Runes)
		if len(msg.Runes) == 1 {
			ev.Key = text
		}
		if !msg.Alt {
			ev.Text = text
		}
	case tea.KeySpace:
		ev.Key = " "
		if !msg.Alt {
			ev.Text = " "
		}
	default:
		name := strings.TrimPrefix(msg.String(), "alt+")
		for {
			if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
				ev.Primary = true
				name = rest
				continue
			}
			if rest, ok := strings.CutPrefix(name, "shift+"); ok {
				ev.Shift = true
				name = rest
				continue
			}
			break
		}
		ev.Key = name
	}

	if digit, ok := shiftedDigits[ev.Key]; ok && ev.Primary {
		ev.Key = digit
		ev.Shift = true
	}
	if lower := strings.ToLower(ev.Key); lower != ev.Key && len([]rune(ev.Key)) == 1 {
		ev.Key = lower
		ev.Shift = true
	}

	return ev
}
