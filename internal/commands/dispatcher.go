package commands

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/licensedesk/licensedesk/internal/license"
	"github.com/licensedesk/licensedesk/internal/logging"
	"github.com/licensedesk/licensedesk/internal/sound"
	"github.com/licensedesk/licensedesk/internal/types"
	"github.com/licensedesk/licensedesk/internal/ui"
)

// Options configures a Dispatcher
type Options struct {
	Variant      Variant          // Zero value selects DefaultVariant
	Theme        string           // Initial theme key; unknown keys fall back to the variant's first theme
	AutoMode     bool             // Start in auto theme mode (ignored if the variant has none)
	SoundTheme   string           // Initial sound theme
	SoundThemes  []string         // Valid sound theme names (default: built-in themes)
	HistoryLimit int              // Default HistoryLimit
	Now          func() time.Time // Clock, default time.Now
}

// Dispatcher owns all command state: palette buffer, history, overlays,
// theme and the shortcut table. It is not safe for concurrent use; the
// Bubble Tea update loop is its only caller.
type Dispatcher struct {
	variant  Variant
	registry *Registry
	history  *History
	now      func() time.Time

	buffer         string
	highlight      int // Palette suggestion highlight, -1 for none
	paletteOpen    bool
	selectorOpen   bool
	selectorCursor int
	selectedRow    int
	activeTab      int

	theme       *ui.Theme
	autoMode    bool
	addLicenses int
	soundTheme  string
	soundThemes []string

	// effect accumulates the outcome of the call in progress
	effect Effect
}

// NewDispatcher creates a dispatcher for the given options.
func NewDispatcher(opts Options) (*Dispatcher, error) {
	variant := opts.Variant
	if variant.Name == "" {
		v, err := LookupVariant(DefaultVariant)
		if err != nil {
			return nil, err
		}
		variant = v
	}

	d := &Dispatcher{
		variant:     variant,
		history:     NewHistory(opts.HistoryLimit),
		now:         opts.Now,
		highlight:   -1,
		addLicenses: license.DefaultAddLicenses,
		soundThemes: opts.SoundThemes,
	}
	if d.now == nil {
		d.now = time.Now
	}
	if len(d.soundThemes) == 0 {
		d.soundThemes = sound.NewLibrary(nil).Names()
	}

	themeKey := opts.Theme
	if !slices.Contains(variant.Themes, themeKey) {
		if themeKey != "" {
			logging.Warn("theme not available in variant, using default",
				"theme", themeKey, "variant", variant.Name)
		}
		themeKey = variant.Themes[0]
	}
	d.theme = ui.GetTheme(themeKey)

	d.soundTheme = opts.SoundTheme
	if !slices.Contains(d.soundThemes, d.soundTheme) {
		d.soundTheme = sound.DefaultTheme
	}

	if opts.AutoMode && variant.AutoMode {
		d.autoMode = true
		d.theme = ui.GetTheme(timeTheme(d.now()))
	}

	registry, err := NewRegistry(d.descriptors()...)
	if err != nil {
		return nil, fmt.Errorf("build shortcut table: %w", err)
	}
	d.registry = registry

	return d, nil
}

// descriptors returns the shortcut table for the variant. Order matters
// for matching and for palette display.
func (d *Dispatcher) descriptors() []Descriptor {
	descs := []Descriptor{
		{ID: "upgrade", Name: "Upgrade Package", Description: "Upgrade license package", Shortcut: "Mod+1"},
		{ID: "downgrade", Name: "Downgrade Package", Description: "Downgrade license package", Shortcut: "Mod+2"},
		{ID: "details", Name: "License Details", Description: "View license details", Shortcut: "Mod+3"},
		{ID: "history", Name: "License History", Description: "View license history", Shortcut: "Mod+4"},
	}
	for i := range descs {
		descs[i].Action = func() { d.switchTab(i) }
	}

	descs = append(descs,
		Descriptor{ID: "calculate", Name: "Calculate Estimates", Description: "Calculate license estimates", Shortcut: "Mod+S",
			Action: func() { d.execute("calculate") }},
		Descriptor{ID: "refresh", Name: "Refresh Data", Description: "Refresh license data", Shortcut: "Mod+R",
			Action: func() { d.execute("refresh") }},
		Descriptor{ID: "export", Name: "Export Data", Description: "Export license data", Shortcut: "Mod+E",
			Action: func() { d.execute("export") }},
	)

	if d.variant.HasThemes() {
		descs = append(descs, Descriptor{ID: "theme", Name: "Theme Selector", Description: "Switch interface theme", Shortcut: "Mod+T",
			Action: d.toggleSelector})
	}
	if d.variant.HasAnimations() {
		descs = append(descs, Descriptor{ID: "animate", Name: "Seasonal Animation", Description: "Trigger seasonal animation", Shortcut: "Mod+A",
			Action: d.animateCurrent})
	}
	if d.variant.AutoMode {
		descs = append(descs, Descriptor{ID: "auto", Name: "Auto Mode Toggle", Description: "Toggle automatic day/night theme", Shortcut: "Mod+D",
			Action: d.toggleAuto})
	}

	return append(descs, Descriptor{ID: "quit", Name: "Quit", Description: "Exit licensedesk", Shortcut: "Mod+Q",
		Action: func() { d.effect.Quit = true }})
}

func (d *Dispatcher) begin() { d.effect = Effect{} }

func (d *Dispatcher) finish() Effect {
	e := d.effect
	d.effect = Effect{}
	return e
}

// HandleKey routes one key press. Reserved chords come first, then the
// shortcut table, then palette editing, the theme selector, and finally
// row navigation on the main view.
func (d *Dispatcher) HandleKey(ev KeyEvent) Effect {
	d.begin()

	handled := d.handleReserved(ev) ||
		d.handleShortcut(ev) ||
		(d.paletteOpen && d.handlePaletteKey(ev)) ||
		(d.selectorOpen && d.handleSelectorKey(ev)) ||
		(!d.paletteOpen && !d.selectorOpen && d.handleRowKey(ev))

	d.effect.Handled = handled
	return d.finish()
}

// Submit runs a command line as if typed into the palette and confirmed.
func (d *Dispatcher) Submit(text string) Effect {
	d.begin()
	d.execute(text)
	d.effect.Handled = true
	return d.finish()
}

// Tick re-applies the time-based theme while auto mode is on.
func (d *Dispatcher) Tick(now time.Time) Effect {
	d.begin()
	if d.autoMode {
		if key := timeTheme(now); key != d.theme.Key {
			d.theme = ui.GetTheme(key)
			d.effect.ThemeChanged = true
			logging.Debug("auto mode switched theme", "theme", key)
		}
	}
	return d.finish()
}

func (d *Dispatcher) handleReserved(ev KeyEvent) bool {
	if ev.Primary && !ev.Shift {
		switch ev.Key {
		case "k":
			d.togglePalette()
			return true
		case "t":
			if d.variant.HasThemes() {
				d.toggleSelector()
				return true
			}
		case "a":
			if d.variant.HasAnimations() {
				d.animateCurrent()
				return true
			}
		case "d":
			if d.variant.AutoMode {
				d.toggleAuto()
				return true
			}
		}
	}

	if ev.Key == KeyEsc {
		d.closeAll()
		return true
	}

	if ev.Primary && ev.Shift && d.variant.HasThemes() {
		if n, err := strconv.Atoi(ev.Key); err == nil && n >= 1 && n <= len(d.variant.Themes) {
			d.switchTheme(d.variant.Themes[n-1])
			return true
		}
	}

	return false
}

func (d *Dispatcher) handleShortcut(ev KeyEvent) bool {
	desc, ok := d.registry.Match(ev)
	if !ok {
		return false
	}
	logging.Debug("shortcut matched", "id", desc.ID, "shortcut", desc.Shortcut)
	desc.Action()
	return true
}

func (d *Dispatcher) handlePaletteKey(ev KeyEvent) bool {
	switch ev.Key {
	case KeyEnter:
		suggestions := d.Suggestions()
		if d.highlight >= 0 && d.highlight < len(suggestions) {
			desc := suggestions[d.highlight]
			d.paletteOpen = false
			d.resetInput()
			desc.Action()
			return true
		}
		d.execute(d.buffer)
		return true

	case KeyUp:
		if text, ok := d.history.Up(); ok {
			d.buffer = text
			d.highlight = -1
			d.effect.Sound = sound.ActionNav
		}
		return true

	case KeyDown:
		if text, ok := d.history.Down(); ok {
			d.buffer = text
			d.highlight = -1
			d.effect.Sound = sound.ActionNav
		}
		return true

	case KeyTab:
		d.moveHighlight(ev.Shift)
		return true

	case KeyBackspace:
		if d.buffer != "" {
			runes := []rune(d.buffer)
			d.setBuffer(string(runes[:len(runes)-1]))
		}
		return true
	}

	if ev.Text != "" && !ev.Primary {
		d.setBuffer(d.buffer + ev.Text)
		return true
	}
	return false
}

// setBuffer replaces the buffer with live typing: recall and highlight end.
func (d *Dispatcher) setBuffer(text string) {
	d.buffer = text
	d.highlight = -1
	d.history.Reset()
}

func (d *Dispatcher) moveHighlight(backwards bool) {
	n := len(d.Suggestions())
	if n == 0 {
		d.highlight = -1
		return
	}
	switch {
	case backwards && d.highlight <= 0:
		d.highlight = n - 1
	case backwards:
		d.highlight--
	default:
		d.highlight = (d.highlight + 1) % n
	}
	d.effect.Sound = sound.ActionNav
}

func (d *Dispatcher) handleSelectorKey(ev KeyEvent) bool {
	last := len(d.variant.Themes) - 1
	switch ev.Key {
	case KeyUp:
		d.selectorCursor = max(d.selectorCursor-1, 0)
		d.effect.Sound = sound.ActionNav
		return true
	case KeyDown:
		d.selectorCursor = min(d.selectorCursor+1, last)
		d.effect.Sound = sound.ActionNav
		return true
	case KeyEnter:
		d.switchTheme(d.variant.Themes[d.selectorCursor])
		return true
	}

	if n, err := strconv.Atoi(ev.Key); err == nil && !ev.Primary && n >= 1 && n <= last+1 {
		d.switchTheme(d.variant.Themes[n-1])
		return true
	}
	return false
}

func (d *Dispatcher) handleRowKey(ev KeyEvent) bool {
	switch ev.Key {
	case KeyUp:
		d.selectedRow = max(d.selectedRow-1, 0)
	case KeyDown:
		d.selectedRow = min(d.selectedRow+1, RowCount-1)
	default:
		return false
	}
	d.effect.Sound = sound.ActionNav
	return true
}

func (d *Dispatcher) togglePalette() {
	d.paletteOpen = !d.paletteOpen
	d.highlight = -1
	if d.paletteOpen {
		d.effect.Sound = sound.ActionReveal
	} else {
		d.effect.Sound = sound.ActionClick
	}
}

func (d *Dispatcher) toggleSelector() {
	d.selectorOpen = !d.selectorOpen
	if d.selectorOpen {
		d.selectorCursor = max(slices.Index(d.variant.Themes, d.theme.Key), 0)
		d.effect.Sound = sound.ActionReveal
	} else {
		d.effect.Sound = sound.ActionClick
	}
}

func (d *Dispatcher) closeAll() {
	d.paletteOpen = false
	d.selectorOpen = false
	d.resetInput()
	d.effect.Sound = sound.ActionClick
}

// resetInput returns the palette to live typing with an empty buffer.
func (d *Dispatcher) resetInput() {
	d.buffer = ""
	d.highlight = -1
	d.history.Reset()
}

func (d *Dispatcher) switchTab(i int) {
	d.activeTab = i
	d.status(types.MessageTypeInfo, "Switched to %s tab", license.Tabs[i])
	d.effect.Sound = sound.ActionNav
}

// switchTheme applies a theme chosen by the user, which ends auto mode.
func (d *Dispatcher) switchTheme(key string) {
	d.theme = ui.GetTheme(key)
	d.autoMode = false
	d.selectorOpen = false
	d.status(types.MessageTypeInfo, "Switched to %s theme - %s vibes", d.theme.Name, d.theme.Season)
	d.effect.ThemeChanged = true
	d.effect.Animation = d.theme.Season
	d.effect.Sound = sound.ActionConfirmFinal
}

func (d *Dispatcher) animateCurrent() {
	d.effect.Animation = d.theme.Season
	d.status(types.MessageTypeInfo, "%s animation triggered!", d.theme.Season)
}

func (d *Dispatcher) toggleAuto() {
	if !d.variant.AutoMode {
		return
	}
	d.autoMode = !d.autoMode
	if !d.autoMode {
		d.status(types.MessageTypeInfo, "Auto mode disabled - manual theme control")
		return
	}

	now := d.now()
	d.theme = ui.GetTheme(timeTheme(now))
	period := "night"
	if isDayTime(now) {
		period = "day"
	}
	d.status(types.MessageTypeInfo, "Auto mode enabled - switched to %s theme", period)
	d.effect.ThemeChanged = true
	d.effect.Animation = d.theme.Season
}

func (d *Dispatcher) status(typ types.MessageType, format string, args ...any) {
	d.effect.Status = fmt.Sprintf(format, args...)
	d.effect.StatusType = typ
}

func isDayTime(t time.Time) bool {
	return t.Hour() >= DayStartHour && t.Hour() < DayEndHour
}

// timeTheme returns the theme auto mode uses at t.
func timeTheme(t time.Time) string {
	if isDayTime(t) {
		return DayTheme
	}
	return NightTheme
}

// Suggestions returns the palette suggestions for the current buffer
func (d *Dispatcher) Suggestions() []Descriptor {
	return d.registry.Filter(strings.TrimSpace(d.buffer))
}

func (d *Dispatcher) Variant() Variant { return d.variant }
func (d *Dispatcher) Descriptors() []Descriptor { return d.registry.All() }
func (d *Dispatcher) Buffer() string { return d.buffer }
func (d *Dispatcher) Highlight() int { return d.highlight }
func (d *Dispatcher) PaletteOpen() bool { return d.paletteOpen }
func (d *Dispatcher) ThemeSelectorOpen() bool { return d.selectorOpen }
func (d *Dispatcher) SelectorCursor() int { return d.selectorCursor }
func (d *Dispatcher) SelectedRow() int { return d.selectedRow }
func (d *Dispatcher) ActiveTab() int { return d.activeTab }
func (d *Dispatcher) Theme() *ui.Theme { return d.theme }
func (d *Dispatcher) AutoMode() bool { return d.autoMode }
func (d *Dispatcher) AddLicenses() int { return d.addLicenses }
func (d *Dispatcher) SoundTheme() string { return d.soundTheme }
func (d *Dispatcher) History() []HistoryEntry { return d.history.Entries() }
func (d *Dispatcher) HistoryCursor() int { return d.history.Cursor() }
func (d *Dispatcher) SoundThemes() []string { return slices.Clone(d.soundThemes) }
func (d *Dispatcher) Registry() *Registry { return d.registry }
