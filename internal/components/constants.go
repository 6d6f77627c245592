package components

import "time"

// UI component constants
const (
	// MaxPaletteItems is the maximum number of suggestions shown in the
	// command palette before scrolling.
	MaxPaletteItems = 8

	// HistoryPaneLines is the number of recent commands shown under the
	// palette input.
	HistoryPaneLines = 5

	// StatusBarDisplayDuration is how long status messages stay visible
	// before clearing.
	StatusBarDisplayDuration = 3 * time.Second
)
