package testutil

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TestProgram wraps a Bubble Tea program for testing. Input is disabled;
// keys are delivered with Send.
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	done    chan struct{}
	final   tea.Model
	t       *testing.T
}

// syncBuffer guards the output written by the renderer goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewTestProgram starts model in the background with controlled I/O and
// sends an initial window size.
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	p := tea.NewProgram(
		model,
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithoutSignalHandler(),
	)

	tp := &TestProgram{
		program: p,
		output:  output,
		done:    make(chan struct{}),
		t:       t,
	}

	go func() {
		defer close(tp.done)
		m, err := p.Run()
		if err != nil {
			t.Logf("Program error: %v", err)
		}
		tp.final = m
	}()
	t.Cleanup(tp.Quit)

	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return tp
}

// Send delivers a message and gives the program time to render
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(20 * time.Millisecond)
}

// Type simulates typing a string
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{
			Type:  tea.KeyRunes,
			Runes: []rune{r},
		})
	}
}

// SendKey sends a specific key press
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// SendAlt sends an alt+key chord, the primary modifier on most terminals
func (tp *TestProgram) SendAlt(key rune) {
	tp.Send(tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune{key},
		Alt:   true,
	})
}

// Output returns everything rendered so far
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput waits for specific text to appear in output
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

// AssertContains checks if output contains expected text
func (tp *TestProgram) AssertContains(expected string) {
	tp.t.Helper()

	if output := tp.Output(); !strings.Contains(output, expected) {
		tp.t.Errorf("Output does not contain %q\nGot:\n%s", expected, output)
	}
}

// AssertNotContains checks if output does NOT contain text
func (tp *TestProgram) AssertNotContains(notExpected string) {
	tp.t.Helper()

	if output := tp.Output(); strings.Contains(output, notExpected) {
		tp.t.Errorf("Output should not contain %q\nGot:\n%s", notExpected, output)
	}
}

// Quit stops the program and waits for it to exit
func (tp *TestProgram) Quit() {
	tp.program.Quit()
	select {
	case <-tp.done:
	case <-time.After(2 * time.Second):
		tp.t.Log("program did not exit in time")
	}
}

// WaitForExit waits until the program stops on its own and returns the
// final model. Returns nil on timeout.
func (tp *TestProgram) WaitForExit(timeout time.Duration) tea.Model {
	tp.t.Helper()
	select {
	case <-tp.done:
		return tp.final
	case <-time.After(timeout):
		return nil
	}
}
