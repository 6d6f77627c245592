package commands

// History is the append-only command log plus the recall cursor.
// The cursor is -1 while the user types live and k while showing the entry
// k steps back from the newest. It always stays in [-1, Len()-1].
type History struct {
	entries []HistoryEntry
	cursor  int
	limit   int
}

// NewHistory creates an empty history keeping at most limit entries.
// A limit <= 0 means HistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = HistoryLimit
	}
	return &History{cursor: -1, limit: limit}
}

// Append records an entry, drops the oldest beyond the limit and returns
// the cursor to live typing. Duplicates are kept: the log is chronological.
func (h *History) Append(e HistoryEntry) {
	h.entries = append(h.entries, e)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.cursor = -1
}

// Clear wipes all entries.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
}

// Up moves one entry back in time and returns its command text.
// It clamps at the oldest entry; ok is false when there is nothing to recall.
func (h *History) Up() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
	}
	return h.entries[len(h.entries)-1-h.cursor].Command, true
}

// Down moves one entry forward in time. Leaving the newest entry returns
// to live typing with an empty buffer. ok is false when already live.
func (h *History) Down() (string, bool) {
	if h.cursor < 0 {
		return "", false
	}
	h.cursor--
	if h.cursor < 0 {
		return "", true
	}
	return h.entries[len(h.entries)-1-h.cursor].Command, true
}

// Reset returns to live typing without touching entries.
func (h *History) Reset() {
	h.cursor = -1
}

// Cursor returns the recall position (-1 when live)
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the entries, oldest first
func (h *History) Entries() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}
