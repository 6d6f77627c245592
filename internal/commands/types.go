package commands

import (
	"time"

	"github.com/licensedesk/licensedesk/internal/sound"
	"github.com/licensedesk/licensedesk/internal/types"
)

// Named keys carried in KeyEvent.Key. Printable keys use the key itself
// ("k", "1", " ").
const (
	KeyUp        = "up"
	KeyDown      = "down"
	KeyEnter     = "enter"
	KeyEsc       = "esc"
	KeyBackspace = "backspace"
	KeyTab       = "tab"
)

// KeyEvent is one key press as seen by the dispatcher
type KeyEvent struct {
	Key     string // Lowercase key, without modifiers
	Primary bool   // Ctrl or Alt (interchangeable)
	Shift   bool
	Text    string // Printable text to insert into the palette buffer
}

// Descriptor is one entry of the shortcut table
type Descriptor struct {
	ID          string // Unique identifier (e.g., "upgrade")
	Name        string // Display name in the palette
	Description string // Human-readable description
	Shortcut    string // Chord as displayed (e.g., "Mod+1")
	Action      func() // Invoked when the chord or palette entry fires
}

// HistoryEntry records one submitted command line
type HistoryEntry struct {
	Command   string
	Timestamp time.Time
	Result    string
}

// ExportTarget selects where export writes license rows
type ExportTarget string

const (
	ExportNone      ExportTarget = ""
	ExportCSV       ExportTarget = "csv"
	ExportClipboard ExportTarget = "clipboard"
)

// Effect describes what one dispatcher call did. The caller turns it into
// UI work (status line, animation, sound, export I/O).
type Effect struct {
	Handled      bool          // Key was consumed (matched a chord or edited the palette)
	Entry        *HistoryEntry // New history entry, if a command was submitted
	Status       string        // Status line text, empty for none
	StatusType   types.MessageType
	Animation    string       // Season to animate, empty for none
	Sound        sound.Action // Sound to play, empty for none
	Export       ExportTarget
	Refresh      bool // Start the simulated data refresh
	ThemeChanged bool
	SoundTheme   string // New sound theme to persist, empty when unchanged
	Quit         bool
}
