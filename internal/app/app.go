package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/licensedesk/licensedesk/internal/animation"
	"github.com/licensedesk/licensedesk/internal/commands"
	"github.com/licensedesk/licensedesk/internal/components"
	"github.com/licensedesk/licensedesk/internal/keyboard"
	"github.com/licensedesk/licensedesk/internal/license"
	"github.com/licensedesk/licensedesk/internal/logging"
	"github.com/licensedesk/licensedesk/internal/messages"
	"github.com/licensedesk/licensedesk/internal/prefs"
	"github.com/licensedesk/licensedesk/internal/sound"
	"github.com/licensedesk/licensedesk/internal/types"
	"github.com/licensedesk/licensedesk/internal/ui"
)

const (
	AppName = "licensedesk"

	// RefreshDuration is how long the simulated data refresh spins.
	RefreshDuration = 800 * time.Millisecond

	// ClockInterval drives auto theme mode and the header clock.
	ClockInterval = time.Minute
)

// Options wires the model to its collaborators
type Options struct {
	Dispatcher *commands.Dispatcher
	Sounds     *sound.Library // nil disables sound
	Player     sound.Player   // default sound.NopPlayer
	Prefs      *prefs.Store   // nil disables persisting the sound theme
	ExportDir  string
	Seed       uint64           // Particle randomness
	Now        func() time.Time // default time.Now
}

type Model struct {
	dispatcher *commands.Dispatcher
	keys       *keyboard.Keys
	sounds     *sound.Library
	player     sound.Player
	prefs      *prefs.Store
	exportDir  string
	now        func() time.Time
	field      *animation.Field
	theme      *ui.Theme

	header      *components.Header
	tabs        *components.Tabs
	table       *components.LicenseTable
	billing     *components.BillingPanel
	palette     *components.Palette
	selector    *components.ThemeSelector
	userMessage *components.UserMessage
	statusBar   *components.StatusBar
	helpBar     *components.HelpBar
	layout      *components.Layout

	lastRefresh time.Time
}

func NewModel(opts Options) Model {
	d := opts.Dispatcher
	theme := d.Theme()
	keys := keyboard.ForVariant(d.Variant())

	m := Model{
		dispatcher: d,
		keys:       keys,
		sounds:     opts.Sounds,
		player:     opts.Player,
		prefs:      opts.Prefs,
		exportDir:  opts.ExportDir,
		now:        opts.Now,
		field:      animation.NewField(opts.Seed),
		theme:      theme,

		header:      components.NewHeader(AppName, theme),
		tabs:        components.NewTabs(license.Tabs, theme),
		table:       components.NewLicenseTable(license.Rows(), theme),
		billing:     components.NewBillingPanel(license.Summary(), theme),
		palette:     components.NewPalette(theme),
		selector:    components.NewThemeSelector(theme),
		userMessage: components.NewUserMessage(theme),
		statusBar:   components.NewStatusBar(theme),
		helpBar:     components.NewHelpBar(keys, theme),
		layout:      components.NewLayout(80, 24),
	}
	if m.player == nil {
		m.player = sound.NopPlayer{}
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.exportDir == "" {
		m.exportDir = "."
	}

	m.header.SetVariant(d.Variant().Name)
	m.header.SetTime(m.now())
	m.setSize(80, 24)
	m.sync()
	return m
}

func (m Model) Init() tea.Cmd {
	return clockCmd()
}

func clockCmd() tea.Cmd {
	return tea.Every(ClockInterval, func(t time.Time) tea.Msg {
		return types.ClockTickMsg{Time: t}
	})
}

func (m *Model) setSize(width, height int) {
	m.layout.SetSize(width, height)
	m.header.SetWidth(width)
	m.palette.SetWidth(width)
	m.userMessage.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.helpBar.SetWidth(width)
	m.field.Resize(width, height)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		effect := m.dispatcher.HandleKey(keyboard.FromKeyMsg(msg))
		return m, m.apply(effect)

	case types.StatusMsg:
		return m, m.userMessage.Show(msg.Message, msg.Type)

	case types.ClearStatusMsg:
		m.userMessage.Clear(msg.MessageID)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.userMessage, cmd = m.userMessage.Update(msg)
		return m, cmd

	case animation.FrameMsg:
		return m, m.field.Update(msg)

	case sound.ToneMsg:
		if err := m.player.Play(msg.Tone); err != nil {
			logging.Warn("play tone", "error", err)
		}
		return m, nil

	case types.ClockTickMsg:
		m.header.SetTime(msg.Time)
		effect := m.dispatcher.Tick(msg.Time)
		return m, tea.Batch(m.apply(effect), clockCmd())

	case types.RefreshCompleteMsg:
		m.lastRefresh = m.now()
		logging.Info("license data refreshed", "duration", msg.Duration)
		return m, messages.SuccessCmd("Data refreshed")

	case types.ExportDoneMsg:
		return m, exportResult(msg)
	}

	return m, nil
}

// apply turns a dispatcher effect into UI work.
func (m *Model) apply(e commands.Effect) tea.Cmd {
	var cmds []tea.Cmd

	if e.ThemeChanged {
		logging.Debug("theme changed", "theme", m.dispatcher.Theme().Key)
	}
	m.sync()

	if e.Status != "" {
		cmds = append(cmds, m.userMessage.Show(e.Status, e.StatusType))
	}
	if e.Animation != "" {
		cmds = append(cmds, m.field.Start(e.Animation, m.now()))
	}
	if e.Sound != "" && m.sounds != nil {
		cmds = append(cmds, m.sounds.Sequence(m.dispatcher.SoundTheme(), e.Sound))
	}
	if e.Export != commands.ExportNone {
		cmds = append(cmds, m.exportCmd(e.Export))
	}
	if e.Refresh {
		cmds = append(cmds, tea.Tick(RefreshDuration, func(time.Time) tea.Msg {
			return types.RefreshCompleteMsg{Duration: RefreshDuration}
		}))
	}
	if e.SoundTheme != "" {
		cmds = append(cmds, m.persistSoundTheme(e.SoundTheme))
	}
	if e.Quit {
		cmds = append(cmds, tea.Quit)
	}
	return tea.Batch(cmds...)
}

// sync copies dispatcher state into the components.
func (m *Model) sync() {
	d := m.dispatcher
	if t := d.Theme(); t.Key != m.theme.Key {
		m.setTheme(t)
	}

	m.tabs.SetActive(d.ActiveTab())
	m.table.SetSelected(d.SelectedRow())
	m.billing.SetAddLicenses(d.AddLicenses())
	m.header.SetAutoMode(d.AutoMode())
	m.helpBar.SetPaletteMode(d.PaletteOpen())
	m.statusBar.SetSegments(
		fmt.Sprintf("Row %d/%d", d.SelectedRow()+1, commands.RowCount),
		"Tab: "+components.TabLabel(license.Tabs[d.ActiveTab()]),
		"Sound: "+d.SoundTheme(),
		fmt.Sprintf("History: %d", len(d.History())),
	)
}

func (m *Model) setTheme(t *ui.Theme) {
	m.theme = t
	m.header.SetTheme(t)
	m.tabs.SetTheme(t)
	m.table.SetTheme(t)
	m.billing.SetTheme(t)
	m.palette.SetTheme(t)
	m.selector.SetTheme(t)
	m.userMessage.SetTheme(t)
	m.statusBar.SetTheme(t)
	m.helpBar.SetTheme(t)
}

func (m Model) exportCmd(target commands.ExportTarget) tea.Cmd {
	rows := license.Rows()
	dir := m.exportDir
	now := m.now()
	return func() tea.Msg {
		if target == commands.ExportClipboard {
			return types.ExportDoneMsg{Target: string(target), Err: license.ExportClipboard(rows)}
		}
		path, err := license.ExportFile(dir, rows, now)
		return types.ExportDoneMsg{Target: string(target), Path: path, Err: err}
	}
}

func exportResult(msg types.ExportDoneMsg) tea.Cmd {
	if msg.Err != nil {
		logging.Warn("export failed", "target", msg.Target, "error", msg.Err)
		return messages.ErrorCmd("Export failed: %v", msg.Err)
	}
	if msg.Target == string(commands.ExportClipboard) {
		return messages.SuccessCmd("Copied %d licenses to clipboard", license.RowCount())
	}
	return messages.SuccessCmd("Exported %d licenses to %s", license.RowCount(), msg.Path)
}

func (m Model) persistSoundTheme(name string) tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	store := m.prefs
	return func() tea.Msg {
		if err := store.SetSoundTheme(name); err != nil {
			err = messages.WrapError(err, "save sound theme %s", name)
			logging.Warn("persist preferences", "error", err)
			return types.ErrorStatusMsg(err.Error())
		}
		return nil
	}
}

func (m Model) View() string {
	d := m.dispatcher

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.table.View(), "  ", m.billing.View())
	if lipgloss.Width(body) > m.layout.Width() {
		body = lipgloss.JoinVertical(lipgloss.Left, m.table.View(), m.billing.View())
	}

	var overlay string
	switch {
	case d.PaletteOpen():
		overlay = m.palette.View(components.PaletteState{
			Buffer:      d.Buffer(),
			ArgHint:     d.ArgHint(),
			Suggestions: d.Suggestions(),
			Highlight:   d.Highlight(),
			History:     d.History(),
		})
	case d.ThemeSelectorOpen():
		overlay = m.selector.View(d.Variant().Themes, d.SelectorCursor())
	}

	frame := m.layout.Render(components.Frame{
		Header:  m.header.View(),
		Tabs:    m.tabs.View(),
		Body:    body,
		Overlay: overlay,
		Message: m.userMessage.View(),
		Status:  m.statusBar.View(),
		Help:    m.helpBar.View(),
	})
	return m.field.Overlay(frame)
}

// Dispatcher exposes the dispatcher for tests and headless callers
func (m Model) Dispatcher() *commands.Dispatcher {
	return m.dispatcher
}

// Theme returns the theme the components currently render with
func (m Model) Theme() *ui.Theme {
	return m.theme
}

// Animating reports whether particles are on screen
func (m Model) Animating() bool {
	return m.field.Active()
}

// StatusMessage returns the text of the status line
func (m Model) StatusMessage() string {
	return m.userMessage.Message()
}

func (m Model) LastRefresh() time.Time {
	return m.lastRefresh
}
