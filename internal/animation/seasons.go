package animation

import (
	"maps"
	"slices"
)

// Season configures the particles of one seasonal animation
type Season struct {
	Name   string
	Glyphs []string // Single-cell glyphs
	Colors []string // Hex colors
	Count  int
}

// DefaultSeason is used for unknown season names.
const DefaultSeason = "neutral"

var seasons = map[string]Season{
	"spring": {
		Name:   "spring",
		Glyphs: []string{"✿", "❀", "✾", "*"},
		Colors: []string{"#fda4af", "#f9a8d4", "#fbcfe8", "#fce7f3"},
		Count:  15,
	},
	"summer": {
		Name:   "summer",
		Glyphs: []string{"♣", "✤", "⁕", "·"},
		Colors: []string{"#86efac", "#6ee7b7", "#a7f3d0", "#bbf7d0"},
		Count:  12,
	},
	"autumn": {
		Name:   "autumn",
		Glyphs: []string{"✸", "❋", "✺", "•"},
		Colors: []string{"#fbbf24", "#f59e0b", "#d97706", "#b45309"},
		Count:  18,
	},
	"winter": {
		Name:   "winter",
		Glyphs: []string{"❄", "❅", "❆", "✦", "✧", "⋄"},
		Colors: []string{"#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9"},
		Count:  20,
	},
	"neutral": {
		Name:   "neutral",
		Glyphs: []string{"·", "•", "∘", "°"},
		Colors: []string{"#cbd5e1", "#94a3b8", "#64748b", "#e2e8f0"},
		Count:  10,
	},
	"night": {
		Name:   "night",
		Glyphs: []string{"✦", "✧", "⋆", "·"},
		Colors: []string{"#a5b4fc", "#818cf8", "#c7d2fe", "#e0e7ff"},
		Count:  16,
	},
}

// LookupSeason returns the configuration for name, or DefaultSeason's.
func LookupSeason(name string) Season {
	if s, ok := seasons[name]; ok {
		return s
	}
	return seasons[DefaultSeason]
}

// Seasons returns the known season names, sorted
func Seasons() []string {
	return slices.Sorted(maps.Keys(seasons))
}
