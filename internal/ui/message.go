package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/licensedesk/licensedesk/internal/types"
)

// RenderMessage renders a status message with styling based on its type.
// Long messages are truncated to fit the terminal width.
func RenderMessage(text string, msgType types.MessageType, theme *Theme, spinnerView string, width int) string {
	if text == "" {
		return ""
	}

	// Max length = terminal width - prefix (2) - margin (5)
	maxMessageLength := width - 7
	if maxMessageLength < 20 {
		maxMessageLength = 20
	}
	text = ansi.Truncate(text, maxMessageLength, "…")

	var messageColor lipgloss.AdaptiveColor
	prefix := "⏺ "

	switch msgType {
	case types.MessageTypeSuccess:
		messageColor = theme.MessageSuccess
	case types.MessageTypeError:
		messageColor = theme.MessageError
	case types.MessageTypeLoading:
		messageColor = theme.MessageLoading
		if spinnerView != "" {
			prefix = spinnerView + " "
		}
	default:
		messageColor = theme.MessageInfo
	}

	return lipgloss.NewStyle().Foreground(messageColor).Render(prefix + text)
}
