package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupVariant(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantAuto bool
		wantErr  bool
	}{
		{name: "default", input: "", want: "daylight", wantAuto: true},
		{name: "static", input: "static", want: "static"},
		{name: "seasonal", input: "seasonal", want: "seasonal"},
		{name: "case insensitive", input: "DayLight", want: "daylight", wantAuto: true},
		{name: "unknown", input: "neon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := LookupVariant(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownVariant)
				assert.Contains(t, err.Error(), "static, seasonal, daylight")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Name)
			assert.Equal(t, tt.wantAuto, v.AutoMode)
		})
	}
}

func TestVariantFeatures(t *testing.T) {
	tests := []struct {
		variant        Variant
		wantThemes     bool
		wantAnimations bool
		wantVerbs      []string
	}{
		{
			variant:   staticVariant,
			wantVerbs: []string{"help", "upgrade", "calculate", "refresh", "export", "clear", "status", "sound"},
		},
		{
			variant:        seasonalVariant,
			wantThemes:     true,
			wantAnimations: true,
			wantVerbs:      []string{"help", "upgrade", "calculate", "refresh", "export", "clear", "status", "theme", "animate", "sound"},
		},
		{
			variant:        daylightVariant,
			wantThemes:     true,
			wantAnimations: true,
			wantVerbs:      []string{"help", "upgrade", "calculate", "refresh", "export", "clear", "status", "theme", "animate", "auto", "sound"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.variant.Name, func(t *testing.T) {
			assert.Equal(t, tt.wantThemes, tt.variant.HasThemes())
			assert.Equal(t, tt.wantAnimations, tt.variant.HasAnimations())
			assert.Equal(t, tt.wantVerbs, tt.variant.Verbs)
		})
	}
}

func TestVariantNames(t *testing.T) {
	assert.Equal(t, []string{"static", "seasonal", "daylight"}, VariantNames())
}
