package animation

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 7, 8, 12, 0, 0, 0, time.UTC)

func TestStart_SpawnsSeasonParticles(t *testing.T) {
	tests := []struct {
		season string
		count  int
	}{
		{"spring", 15},
		{"summer", 12},
		{"autumn", 18},
		{"winter", 20},
		{"neutral", 10},
		{"night", 16},
		{"unknown", 10},
	}

	for _, tt := range tests {
		t.Run(tt.season, func(t *testing.T) {
			f := NewField(1)
			cmd := f.Start(tt.season, t0)
			require.NotNil(t, cmd)
			assert.True(t, f.Active())

			cfg := LookupSeason(tt.season)
			particles := f.Particles()
			require.Len(t, particles, tt.count)
			for _, p := range particles {
				assert.Less(t, p.Y, 0.0, "particles start above the field")
				assert.GreaterOrEqual(t, p.Y, float64(-exitMargin-spawnBand))
				assert.GreaterOrEqual(t, p.Speed, 1.0)
				assert.Less(t, p.Speed, 4.0)
				assert.GreaterOrEqual(t, p.Opacity, 0.7)
				assert.Contains(t, cfg.Glyphs, p.Glyph)
				assert.Contains(t, cfg.Colors, p.Color)
			}
		})
	}
}

func TestStep_Motion(t *testing.T) {
	f := NewField(1)
	f.active = true
	f.particles = []Particle{{X: 100, Y: 10, Speed: 2, Opacity: 1, Rotation: 0}}

	f.Step()
	p := f.Particles()[0]
	assert.InDelta(t, 12, p.Y, 1e-9)
	assert.InDelta(t, 1, p.Rotation, 1e-9)
	assert.InDelta(t, 0.998, p.Opacity, 1e-9)
	assert.NotEqual(t, 100.0, p.X, "particles drift sideways")
}

func TestStep_DropsExitedAndFaded(t *testing.T) {
	f := NewField(1)
	f.Resize(10, 2) // 32 virtual pixels tall
	f.particles = []Particle{
		{Y: 81, Speed: 1, Opacity: 1},     // crosses height+50
		{Y: 0, Speed: 1, Opacity: 0.001},  // fades out
		{Y: 0, Speed: 1, Opacity: 0.5},    // stays
	}

	f.Step()
	require.Len(t, f.Particles(), 1)
	assert.InDelta(t, 0.498, f.Particles()[0].Opacity, 1e-9)
}

func TestUpdate_FieldEmptiesOut(t *testing.T) {
	f := NewField(7)
	f.Resize(10, 2)
	f.Start("winter", t0)

	frames := 0
	for f.Active() && frames < 1000 {
		frames++
		f.Update(FrameMsg{Generation: f.Generation(), Time: t0.Add(time.Millisecond)})
	}
	assert.False(t, f.Active(), "run ends once every particle has left")
	assert.Empty(t, f.Particles())
}

func TestUpdate_RespectsMaxDuration(t *testing.T) {
	f := NewField(1)
	f.Start("winter", t0)

	cmd := f.Update(FrameMsg{Generation: f.Generation(), Time: t0.Add(MaxDuration - time.Millisecond)})
	assert.NotNil(t, cmd)
	assert.True(t, f.Active())

	cmd = f.Update(FrameMsg{Generation: f.Generation(), Time: t0.Add(MaxDuration)})
	assert.Nil(t, cmd)
	assert.False(t, f.Active())
	assert.Empty(t, f.Particles())
}

func TestUpdate_IgnoresStaleFrames(t *testing.T) {
	f := NewField(1)
	f.Start("spring", t0)
	stale := f.Generation()
	f.Start("winter", t0)

	before := f.Particles()
	cmd := f.Update(FrameMsg{Generation: stale, Time: t0})
	assert.Nil(t, cmd)
	assert.Equal(t, before, f.Particles(), "stale frames must not advance the new run")
	assert.Len(t, before, 20)
}

func TestUpdate_Idle(t *testing.T) {
	f := NewField(1)
	assert.Nil(t, f.Update(FrameMsg{Generation: f.Generation(), Time: t0}))
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name      string
		view      string
		particles []Particle
		want      string
	}{
		{
			name:      "replaces one cell",
			view:      "abcdef\nghijkl",
			particles: []Particle{{X: 2 * CellWidth, Y: 1 * CellHeight, Glyph: "*", Color: "#ffffff", Opacity: 1}},
			want:      "abcdef\ngh*jkl",
		},
		{
			name:      "pads short lines",
			view:      "ab",
			particles: []Particle{{X: 5 * CellWidth, Y: 0, Glyph: "*", Color: "#ffffff", Opacity: 1}},
			want:      "ab   *",
		},
		{
			name: "skips particles outside the view",
			view: "abc\ndef",
			particles: []Particle{
				{X: 0, Y: -10, Glyph: "*", Opacity: 1},
				{X: 0, Y: 5 * CellHeight, Glyph: "*", Opacity: 1},
				{X: 200 * CellWidth, Y: 0, Glyph: "*", Opacity: 1},
			},
			want: "abc\ndef",
		},
		{
			name:      "keeps styled text around the glyph",
			view:      "\x1b[1mbold\x1b[0m text",
			particles: []Particle{{X: 1 * CellWidth, Y: 0, Glyph: "❄", Color: "#bae6fd", Opacity: 0.3}},
			want:      "b❄ld text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewField(1)
			f.active = true
			f.particles = tt.particles

			got := f.Overlay(tt.view)
			assert.Equal(t, tt.want, ansi.Strip(got))
		})
	}
}

func TestOverlay_Inactive(t *testing.T) {
	f := NewField(1)
	assert.Equal(t, "view", f.Overlay("view"))
}

func TestSeasons(t *testing.T) {
	assert.Equal(t, []string{"autumn", "neutral", "night", "spring", "summer", "winter"}, Seasons())
	for _, name := range Seasons() {
		s := LookupSeason(name)
		for _, g := range s.Glyphs {
			assert.Equal(t, 1, ansi.StringWidth(g), "glyph %q in %s must be one cell", g, name)
		}
	}
}
