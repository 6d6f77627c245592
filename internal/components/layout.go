package components

import (
	"github.com/charmbracelet/lipgloss"
)

type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

func (l *Layout) Width() int {
	return l.width
}

// Frame holds the rendered sections of one screen
type Frame struct {
	Header  string
	Tabs    string
	Body    string
	Overlay string // Palette or theme selector, empty when closed
	Message string
	Status  string
	Help    string
}

// Render stacks the frame sections top to bottom. The result always has
// exactly the terminal height, so the animation can cover the full screen.
func (l *Layout) Render(f Frame) string {
	top := []string{}
	if f.Header != "" {
		top = append(top, f.Header, "")
	}
	if f.Tabs != "" {
		top = append(top, f.Tabs, "")
	}
	if f.Body != "" {
		top = append(top, f.Body)
	}
	if f.Overlay != "" {
		top = append(top, f.Overlay)
	}

	bottom := []string{f.Message, f.Status}
	if f.Help != "" {
		bottom = append(bottom, f.Help)
	}

	upper := lipgloss.JoinVertical(lipgloss.Left, top...)
	lower := lipgloss.JoinVertical(lipgloss.Left, bottom...)

	// Pad between the content and the bottom bars; clip when too tall
	upperHeight := max(l.height-lipgloss.Height(lower), 1)
	upper = lipgloss.NewStyle().
		Height(upperHeight).
		MaxHeight(upperHeight).
		Render(upper)

	return lipgloss.JoinVertical(lipgloss.Left, upper, lower)
}
