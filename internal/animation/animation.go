// Package animation runs the decorative falling-particle effect and draws
// it on top of a rendered frame.
//
// Particles live in a virtual pixel space (CellWidth x CellHeight pixels
// per terminal cell) so motion stays smooth even though drawing snaps to
// cells.
package animation

import (
	"math"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// FrameInterval is the time between simulation steps.
	FrameInterval = time.Second / 30
	// MaxDuration caps a run regardless of remaining particles.
	MaxDuration = 5 * time.Second

	CellWidth  = 8
	CellHeight = 16

	// Particles spawn in a band of spawnBand pixels starting exitMargin
	// above the field, and are dropped exitMargin below it.
	spawnBand   = 100
	exitMargin  = 50
	fadePerStep = 0.002
)

// Particle is one falling glyph
type Particle struct {
	X, Y     float64 // Virtual pixels, origin top-left
	Rotation float64
	Speed    float64 // Pixels per step
	Opacity  float64
	Size     float64
	Glyph    string
	Color    string
}

// FrameMsg advances the field. Frames from an older run are ignored.
type FrameMsg struct {
	Generation int
	Time       time.Time
}

// Field is the particle simulation. Zero or one run is active at a time;
// starting a new run replaces the old one.
type Field struct {
	particles  []Particle
	width      float64
	height     float64
	started    time.Time
	generation int
	active     bool
	rng        *rand.Rand
}

// NewField creates an idle field of 80x24 cells.
func NewField(seed uint64) *Field {
	f := &Field{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	f.Resize(80, 24)
	return f
}

// Resize sets the field size in terminal cells.
func (f *Field) Resize(cols, rows int) {
	f.width = float64(max(cols, 1) * CellWidth)
	f.height = float64(max(rows, 1) * CellHeight)
}

// Start spawns the particles for season and returns the first frame tick.
func (f *Field) Start(season string, now time.Time) tea.Cmd {
	cfg := LookupSeason(season)

	f.generation++
	f.started = now
	f.active = true
	f.particles = make([]Particle, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		f.particles = append(f.particles, Particle{
			X:        f.rng.Float64() * f.width,
			Y:        -exitMargin - f.rng.Float64()*spawnBand,
			Rotation: f.rng.Float64() * 360,
			Speed:    1 + f.rng.Float64()*3,
			Opacity:  0.7 + f.rng.Float64()*0.3,
			Size:     0.8 + f.rng.Float64()*0.4,
			Glyph:    cfg.Glyphs[f.rng.IntN(len(cfg.Glyphs))],
			Color:    cfg.Colors[f.rng.IntN(len(cfg.Colors))],
		})
	}
	return f.tick()
}

// Update handles a frame. It returns the next tick, or nil once the run
// has ended or the frame belongs to a replaced run.
func (f *Field) Update(msg FrameMsg) tea.Cmd {
	if !f.active || msg.Generation != f.generation {
		return nil
	}
	if msg.Time.Sub(f.started) >= MaxDuration {
		f.Stop()
		return nil
	}
	f.Step()
	if len(f.particles) == 0 {
		f.Stop()
		return nil
	}
	return f.tick()
}

// Step moves every particle once and drops the ones that left or faded.
func (f *Field) Step() {
	kept := f.particles[:0]
	for _, p := range f.particles {
		p.Y += p.Speed
		p.X += math.Sin(p.Y*0.01) * 0.5
		p.Rotation++
		p.Opacity -= fadePerStep
		if p.Y < f.height+exitMargin && p.Opacity > 0 {
			kept = append(kept, p)
		}
	}
	f.particles = kept
}

// Stop ends the current run
func (f *Field) Stop() {
	f.active = false
	f.particles = nil
}

// Active reports whether a run is in progress
func (f *Field) Active() bool { return f.active }

// Generation identifies the current run
func (f *Field) Generation() int { return f.generation }

// Particles returns a copy of the live particles
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

func (f *Field) tick() tea.Cmd {
	gen := f.generation
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Generation: gen, Time: t}
	})
}

// Overlay draws the visible particles over view, one glyph per cell.
// Escape sequences in view are kept intact.
func (f *Field) Overlay(view string) string {
	if !f.active || len(f.particles) == 0 {
		return view
	}

	lines := strings.Split(view, "\n")
	cols := int(f.width / CellWidth)
	for _, p := range f.particles {
		if p.Y < 0 || p.X < 0 {
			continue
		}
		row, col := int(p.Y/CellHeight), int(p.X/CellWidth)
		if row >= len(lines) || col >= cols {
			continue
		}
		lines[row] = splice(lines[row], col, glyphStyle(p).Render(p.Glyph), ansi.StringWidth(p.Glyph))
	}
	return strings.Join(lines, "\n")
}

// splice replaces the cells [col, col+width) of line with cell.
func splice(line string, col int, cell string, width int) string {
	if pad := col - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return ansi.Truncate(line, col, "") + cell + ansi.TruncateLeft(line, col+width, "")
}

func glyphStyle(p Particle) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color))
	if p.Opacity < 0.5 {
		s = s.Faint(true)
	}
	return s
}
