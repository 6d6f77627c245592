// Package sound holds the sound-effect themes played on UI interaction and
// turns them into timed tea commands.
package sound

import (
	"maps"
	"slices"
)

// Action identifies which UI interaction a sound belongs to.
type Action string

const (
	ActionClick        Action = "click"
	ActionReveal       Action = "reveal"
	ActionConfirm      Action = "confirm"
	ActionConfirmFinal Action = "confirm-final"
	ActionNav          Action = "nav"
)

// Waveform is the oscillator shape of a tone.
type Waveform string

const (
	WaveSine     Waveform = "sine"
	WaveSquare   Waveform = "square"
	WaveSawtooth Waveform = "sawtooth"
	WaveTriangle Waveform = "triangle"
)

// DefaultTheme is used when no sound theme has been chosen, and as the
// fallback for unknown theme names.
const DefaultTheme = "neutral"

// Tone defaults applied to zero fields.
const (
	DefaultDuration = 0.08
	DefaultGain     = 0.08
)

// Tone is one oscillator burst. Duration is in seconds, Delay in
// milliseconds from the start of the action.
type Tone struct {
	Freq     float64  `json:"freq"`
	Duration float64  `json:"duration,omitempty"`
	Type     Waveform `json:"type,omitempty"`
	Gain     float64  `json:"gain,omitempty"`
	Delay    int      `json:"delay,omitempty"`
}

// WithDefaults fills zero fields with the standard tone parameters.
func (t Tone) WithDefaults() Tone {
	if t.Duration == 0 {
		t.Duration = DefaultDuration
	}
	if t.Type == "" {
		t.Type = WaveSine
	}
	if t.Gain == 0 {
		t.Gain = DefaultGain
	}
	return t
}

// ActionSpec is the sequence of tones played for an action.
type ActionSpec struct {
	Tones []Tone `json:"tones"`
}

// ThemeSpec maps actions to tone sequences. Actions may be missing.
type ThemeSpec map[Action]ActionSpec

func tones(ts ...Tone) ActionSpec { return ActionSpec{Tones: ts} }

// DefaultThemes returns a fresh copy of the built-in sound themes.
func DefaultThemes() map[string]ThemeSpec {
	return map[string]ThemeSpec{
		"neutral": {
			ActionClick:  tones(Tone{Freq: 1600, Duration: 0.02, Type: WaveSquare, Gain: 0.06}),
			ActionReveal: tones(Tone{Freq: 700, Duration: 0.06, Type: WaveSine, Gain: 0.06}),
			ActionConfirm: tones(
				Tone{Freq: 900, Duration: 0.06, Type: WaveSawtooth, Gain: 0.08},
				Tone{Freq: 1200, Duration: 0.08, Type: WaveSine, Gain: 0.06, Delay: 70},
			),
			ActionConfirmFinal: tones(
				Tone{Freq: 700, Duration: 0.06, Type: WaveSawtooth, Gain: 0.08},
				Tone{Freq: 900, Duration: 0.06, Type: WaveSquare, Gain: 0.08, Delay: 65},
				Tone{Freq: 1400, Duration: 0.12, Type: WaveSine, Gain: 0.09, Delay: 140},
			),
			ActionNav: tones(Tone{Freq: 480, Duration: 0.05, Type: WaveSine, Gain: 0.06}),
		},
		"spring": {
			ActionClick:  tones(Tone{Freq: 1700, Duration: 0.02, Type: WaveSquare, Gain: 0.07}),
			ActionReveal: tones(Tone{Freq: 900, Duration: 0.06, Type: WaveSine, Gain: 0.07}),
			ActionConfirm: tones(
				Tone{Freq: 1000, Duration: 0.06, Type: WaveSawtooth, Gain: 0.09},
				Tone{Freq: 1400, Duration: 0.08, Type: WaveSine, Gain: 0.07, Delay: 70},
			),
			ActionConfirmFinal: tones(
				Tone{Freq: 800, Duration: 0.06, Type: WaveSawtooth, Gain: 0.09},
				Tone{Freq: 1100, Duration: 0.06, Type: WaveSquare, Gain: 0.09, Delay: 65},
				Tone{Freq: 1600, Duration: 0.12, Type: WaveSine, Gain: 0.1, Delay: 140},
			),
			ActionNav: tones(Tone{Freq: 520, Duration: 0.05, Type: WaveSine, Gain: 0.06}),
		},
		"winter": {
			ActionClick:  tones(Tone{Freq: 1300, Duration: 0.02, Type: WaveTriangle, Gain: 0.05}),
			ActionReveal: tones(Tone{Freq: 650, Duration: 0.08, Type: WaveSine, Gain: 0.05}),
			ActionConfirm: tones(
				Tone{Freq: 760, Duration: 0.07, Type: WaveSawtooth, Gain: 0.06},
				Tone{Freq: 980, Duration: 0.09, Type: WaveSine, Gain: 0.05, Delay: 80},
			),
			ActionConfirmFinal: tones(
				Tone{Freq: 500, Duration: 0.08, Type: WaveSawtooth, Gain: 0.06},
				Tone{Freq: 720, Duration: 0.08, Type: WaveSquare, Gain: 0.07, Delay: 80},
				Tone{Freq: 1100, Duration: 0.14, Type: WaveSine, Gain: 0.08, Delay: 170},
			),
			ActionNav: tones(Tone{Freq: 420, Duration: 0.05, Type: WaveSine, Gain: 0.05}),
		},
		"dark": {
			ActionClick:  tones(Tone{Freq: 1100, Duration: 0.02, Type: WaveSquare, Gain: 0.05}),
			ActionReveal: tones(Tone{Freq: 480, Duration: 0.06, Type: WaveSine, Gain: 0.05}),
			ActionConfirm: tones(
				Tone{Freq: 600, Duration: 0.06, Type: WaveSawtooth, Gain: 0.06},
				Tone{Freq: 820, Duration: 0.08, Type: WaveSine, Gain: 0.05, Delay: 80},
			),
			ActionConfirmFinal: tones(
				Tone{Freq: 420, Duration: 0.06, Type: WaveSawtooth, Gain: 0.06},
				Tone{Freq: 600, Duration: 0.06, Type: WaveSquare, Gain: 0.07, Delay: 65},
				Tone{Freq: 1000, Duration: 0.12, Type: WaveSine, Gain: 0.08, Delay: 140},
			),
			ActionNav: tones(Tone{Freq: 380, Duration: 0.05, Type: WaveSine, Gain: 0.05}),
		},
	}
}

// Library is the set of sound themes available to the player.
type Library struct {
	themes map[string]ThemeSpec
	custom map[string]bool
}

// NewLibrary merges custom themes over the built-in ones. A custom theme
// with a built-in name replaces it entirely.
func NewLibrary(custom map[string]ThemeSpec) *Library {
	l := &Library{themes: DefaultThemes(), custom: map[string]bool{}}
	for name, spec := range custom {
		l.Set(name, spec)
	}
	return l
}

// Names returns the theme names in sorted order.
func (l *Library) Names() []string {
	return slices.Sorted(maps.Keys(l.themes))
}

// Has reports whether a theme is registered under name.
func (l *Library) Has(name string) bool {
	_, ok := l.themes[name]
	return ok
}

// Set registers or replaces a theme.
func (l *Library) Set(name string, spec ThemeSpec) {
	l.themes[name] = spec
	l.custom[name] = true
}

// Custom returns the themes registered through Set or NewLibrary, for
// persisting.
func (l *Library) Custom() map[string]ThemeSpec {
	custom := make(map[string]ThemeSpec, len(l.custom))
	for name := range l.custom {
		custom[name] = l.themes[name]
	}
	return custom
}

// Resolve returns the tones for action under theme, with defaults applied.
// Unknown themes fall back to DefaultTheme and missing actions to click.
func (l *Library) Resolve(theme string, action Action) []Tone {
	spec, ok := l.themes[theme]
	if !ok {
		spec = l.themes[DefaultTheme]
	}
	as, ok := spec[action]
	if !ok {
		as = spec[ActionClick]
	}
	out := make([]Tone, len(as.Tones))
	for i, t := range as.Tones {
		out[i] = t.WithDefaults()
	}
	return out
}
