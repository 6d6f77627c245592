package commands

const (
	// HistoryLimit bounds the command history; the oldest entries are
	// dropped first.
	HistoryLimit = 100

	// RowCount is the number of selectable rows on the main view.
	RowCount = 4

	// DefaultVariant is used when no variant is configured.
	DefaultVariant = "daylight"

	// Auto mode uses the day theme for hours in [DayStartHour, DayEndHour).
	DayStartHour = 6
	DayEndHour   = 18

	DayTheme   = "slate"
	NightTheme = "dark"
)
