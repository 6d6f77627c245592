package sound

import (
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Player renders a single tone.
type Player interface {
	Play(t Tone) error
}

// BellPlayer approximates tones with the terminal bell. Terminals have no
// pitch control, so every tone is one BEL.
type BellPlayer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellPlayer returns a player writing BEL characters to w.
func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

// Play writes one bell.
func (p *BellPlayer) Play(t Tone) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := io.WriteString(p.w, "\a"); err != nil {
		return fmt.Errorf("ring bell for %.0fHz tone: %w", t.Freq, err)
	}
	return nil
}

// NopPlayer discards every tone. Used when sound is disabled.
type NopPlayer struct{}

// Play does nothing.
func (NopPlayer) Play(Tone) error { return nil }

// ToneMsg asks the program to play a tone now.
type ToneMsg struct {
	Tone Tone
}

// Sequence returns a command that emits one ToneMsg per tone of the action,
// each after its delay. Returns nil when the action has no tones.
func (l *Library) Sequence(theme string, action Action) tea.Cmd {
	ts := l.Resolve(theme, action)
	if len(ts) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(ts))
	for _, t := range ts {
		if t.Delay <= 0 {
			cmds = append(cmds, func() tea.Msg { return ToneMsg{Tone: t} })
			continue
		}
		cmds = append(cmds, tea.Tick(time.Duration(t.Delay)*time.Millisecond, func(time.Time) tea.Msg {
			return ToneMsg{Tone: t}
		}))
	}
	return tea.Batch(cmds...)
}
