package types

import (
	"time"
)

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
	MessageTypeLoading // Loading state with spinner
)

// String returns the lowercase name used by the headless printer.
func (t MessageType) String() string {
	switch t {
	case MessageTypeSuccess:
		return "success"
	case MessageTypeError:
		return "error"
	case MessageTypeLoading:
		return "loading"
	default:
		return "info"
	}
}

type StatusMsg struct {
	Message string
	Type    MessageType
}

type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}

// LoadingMsg creates a loading status message (with spinner)
func LoadingMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeLoading}
}

// RefreshCompleteMsg is sent when the simulated license refresh finishes.
type RefreshCompleteMsg struct {
	Duration time.Duration
}

// ClockTickMsg drives auto theme mode. Sent once a minute.
type ClockTickMsg struct {
	Time time.Time
}

// ExportDoneMsg reports the outcome of an export started from the palette.
type ExportDoneMsg struct {
	Target string // "csv" or "clipboard"
	Path   string // file written, csv only
	Err    error
}
