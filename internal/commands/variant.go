package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownVariant is returned by LookupVariant for names not in Variants.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant parameterizes the dispatcher: which themes, seasons and verbs
// exist, and whether auto theme mode is available.
type Variant struct {
	Name     string
	Themes   []string // Theme keys in selector order (quick-select digits follow it)
	Seasons  []string // Valid animate arguments
	AutoMode bool
	Verbs    []string // Canonical verbs in help order
}

// HasThemes reports whether theme switching exists in this variant.
func (v Variant) HasThemes() bool { return len(v.Themes) > 1 }

// HasAnimations reports whether the animate verb and chord exist.
func (v Variant) HasAnimations() bool { return slices.Contains(v.Verbs, "animate") }

// HasVerb reports whether verb (canonical form) is available.
func (v Variant) HasVerb(verb string) bool { return slices.Contains(v.Verbs, verb) }

var (
	coreVerbs = []string{"help", "upgrade", "calculate", "refresh", "export", "clear", "status"}

	staticVariant = Variant{
		Name:   "static",
		Themes: []string{"gold"},
		Verbs:  concat(coreVerbs, "sound"),
	}

	seasonalVariant = Variant{
		Name:    "seasonal",
		Themes:  []string{"gold", "rose", "sky", "forest"},
		Seasons: []string{"spring", "summer", "autumn", "winter"},
		Verbs:   concat(coreVerbs, "theme", "animate", "sound"),
	}

	daylightVariant = Variant{
		Name:     "daylight",
		Themes:   []string{"gold", "rose", "sky", "forest", "slate", "dark"},
		Seasons:  []string{"spring", "summer", "autumn", "winter", "neutral", "night"},
		AutoMode: true,
		Verbs:    concat(coreVerbs, "theme", "animate", "auto", "sound"),
	}
)

func concat(base []string, extra ...string) []string {
	return append(slices.Clone(base), extra...)
}

// Variants returns the available variants
func Variants() []Variant {
	return []Variant{staticVariant, seasonalVariant, daylightVariant}
}

// VariantNames returns the variant names in definition order
func VariantNames() []string {
	var names []string
	for _, v := range Variants() {
		names = append(names, v.Name)
	}
	return names
}

// LookupVariant returns the variant with the given name. An empty name
// selects DefaultVariant.
func LookupVariant(name string) (Variant, error) {
	if name == "" {
		name = DefaultVariant
	}
	for _, v := range Variants() {
		if v.Name == strings.ToLower(name) {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q (available: %s)",
		ErrUnknownVariant, name, strings.Join(VariantNames(), ", "))
}
