package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

var (
	// ErrDuplicateID is returned when two descriptors share an ID.
	ErrDuplicateID = errors.New("duplicate command id")
	// ErrDuplicateShortcut is returned when a descriptor's chord would
	// always be taken by an earlier descriptor.
	ErrDuplicateShortcut = errors.New("duplicate shortcut")
)

// Registry holds the shortcut table. Matching is first-match-wins in table
// order; NewRegistry rejects tables where that rule would hide a descriptor.
type Registry struct {
	descriptors []Descriptor
}

// NewRegistry validates and stores the descriptors in the given order.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	seen := make(map[string]bool, len(descriptors))
	for i, d := range descriptors {
		if seen[d.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, d.ID)
		}
		seen[d.ID] = true

		key := chordKey(d.Shortcut)
		if key == "" {
			continue
		}
		for _, earlier := range descriptors[:i] {
			if containsChord(earlier.Shortcut, key) {
				return nil, fmt.Errorf("%w: %s (%s) is shadowed by %s (%s)",
					ErrDuplicateShortcut, d.ID, d.Shortcut, earlier.ID, earlier.Shortcut)
			}
		}
	}

	return &Registry{descriptors: append([]Descriptor(nil), descriptors...)}, nil
}

// chordKey returns the lowercased key part of a chord ("Mod+Shift+1" -> "1").
func chordKey(shortcut string) string {
	i := strings.LastIndex(shortcut, "+")
	if i < 0 || i == len(shortcut)-1 {
		return ""
	}
	return strings.ToLower(shortcut[i+1:])
}

func containsChord(shortcut, key string) bool {
	return strings.Contains(strings.ToLower(shortcut), "+"+key)
}

// Match returns the first descriptor whose shortcut contains "+<key>" when
// the primary modifier is held. Digits follow the same rule.
func (r *Registry) Match(ev KeyEvent) (Descriptor, bool) {
	if !ev.Primary || ev.Key == "" {
		return Descriptor{}, false
	}
	key := strings.ToLower(ev.Key)
	for _, d := range r.descriptors {
		if containsChord(d.Shortcut, key) {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Get returns the descriptor with the given ID
func (r *Registry) Get(id string) (Descriptor, bool) {
	for _, d := range r.descriptors {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// All returns the descriptors in table order
func (r *Registry) All() []Descriptor {
	return append([]Descriptor(nil), r.descriptors...)
}

// Filter returns, in table order, the descriptors whose name or description
// contains query case-insensitively. An empty query yields no suggestions.
func (r *Registry) Filter(query string) []Descriptor {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	var out []Descriptor
	for _, d := range r.descriptors {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Description), q) {
			out = append(out, d)
		}
	}
	return out
}

// closestVerb returns the best fuzzy match for word among candidates.
func closestVerb(word string, candidates []string) (string, bool) {
	if word == "" {
		return "", false
	}
	matches := fuzzy.Find(word, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
