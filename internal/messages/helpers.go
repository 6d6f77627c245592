package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/licensedesk/licensedesk/internal/types"
)

// UI layer helpers - return tea.Cmd with appropriate StatusMsg

// ErrorCmd returns a tea.Cmd that produces an error status message.
//
// Example:
//
//	if err != nil {
//	    return messages.ErrorCmd("Export failed: %v", err)
//	}
func ErrorCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.ErrorStatusMsg(msg)
	}
}

// SuccessCmd returns a tea.Cmd that produces a success status message.
//
// Example:
//
//	return messages.SuccessCmd("Exported %d licenses to %s", n, path)
func SuccessCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.SuccessMsg(msg)
	}
}

// InfoCmd returns a tea.Cmd that produces an info status message.
func InfoCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.InfoMsg(msg)
	}
}

// StatusCmd returns a tea.Cmd producing a status message of the given type.
// An empty message yields nil.
func StatusCmd(message string, msgType types.MessageType) tea.Cmd {
	if message == "" {
		return nil
	}
	return func() tea.Msg {
		return types.StatusMsg{Message: message, Type: msgType}
	}
}

// Storage layer helpers - return wrapped errors with context

// WrapError wraps an error with additional context using fmt.Errorf.
// Preserves the error chain for errors.Is/As.
//
// Example:
//
//	if err := os.WriteFile(path, data, 0o644); err != nil {
//	    return messages.WrapError(err, "write export %s", path)
//	}
func WrapError(err error, format string, args ...any) error {
	context := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", context, err)
}
