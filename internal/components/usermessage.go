package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/licensedesk/licensedesk/internal/types"
	"github.com/licensedesk/licensedesk/internal/ui"
)

// UserMessage manages the transient status line (success, errors, info,
// loading). Each message gets an id so a clear timer started for an older
// message never wipes a newer one. Rendering is delegated to
// ui.RenderMessage.
type UserMessage struct {
	message     string
	messageType types.MessageType
	id          int
	width       int
	theme       *ui.Theme
	spinner     spinner.Model
}

// NewUserMessage creates a new user message component
func NewUserMessage(theme *ui.Theme) *UserMessage {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"✽", "✻", "✶", "·", "✢"},
		FPS:    time.Second / 6,
	}
	s.Style = lipgloss.NewStyle()

	return &UserMessage{
		theme:   theme,
		spinner: s,
	}
}

func (um *UserMessage) SetTheme(theme *ui.Theme) {
	um.theme = theme
}

// SetMessage shows msg and returns its id
func (um *UserMessage) SetMessage(msg string, msgType types.MessageType) int {
	um.message = msg
	um.messageType = msgType
	um.id++
	return um.id
}

// Show sets the message and returns the commands that go with it: the
// spinner tick for loading messages, a delayed clear for the rest.
func (um *UserMessage) Show(msg string, msgType types.MessageType) tea.Cmd {
	id := um.SetMessage(msg, msgType)
	if msgType == types.MessageTypeLoading {
		return um.spinner.Tick
	}
	return tea.Tick(StatusBarDisplayDuration, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}

// Clear removes the message if id is still the current one.
func (um *UserMessage) Clear(id int) bool {
	if id != um.id {
		return false
	}
	um.message = ""
	um.messageType = types.MessageTypeInfo
	return true
}

func (um *UserMessage) Message() string {
	return um.message
}

func (um *UserMessage) Type() types.MessageType {
	return um.messageType
}

// ID returns the id of the current message
func (um *UserMessage) ID() int {
	return um.id
}

// IsLoadingMessage returns true if the current message is a loading message
func (um *UserMessage) IsLoadingMessage() bool {
	return um.message != "" && um.messageType == types.MessageTypeLoading
}

func (um *UserMessage) SetWidth(width int) {
	um.width = width
}

// Update advances the spinner while a loading message is shown
func (um *UserMessage) Update(msg tea.Msg) (*UserMessage, tea.Cmd) {
	if um.IsLoadingMessage() {
		var cmd tea.Cmd
		um.spinner, cmd = um.spinner.Update(msg)
		return um, cmd
	}
	return um, nil
}

func (um *UserMessage) View() string {
	if um.message == "" {
		// Empty line keeps the layout height stable
		return lipgloss.NewStyle().Width(um.width).Render("")
	}

	var spinnerView string
	if um.messageType == types.MessageTypeLoading {
		spinnerView = um.spinner.View()
	}
	return ui.RenderMessage(um.message, um.messageType, um.theme, spinnerView, um.width)
}
