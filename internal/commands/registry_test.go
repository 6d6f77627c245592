package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descriptorIDs(descs []Descriptor) []string {
	ids := make([]string, 0, len(descs))
	for _, d := range descs {
		ids = append(ids, d.ID)
	}
	return ids
}

func testTable() []Descriptor {
	return []Descriptor{
		{ID: "upgrade", Name: "Upgrade Package", Description: "Upgrade license package", Shortcut: "Mod+1"},
		{ID: "downgrade", Name: "Downgrade Package", Description: "Downgrade license package", Shortcut: "Mod+2"},
		{ID: "calculate", Name: "Calculate Estimates", Description: "Calculate license estimates", Shortcut: "Mod+S"},
		{ID: "refresh", Name: "Refresh Data", Description: "Refresh license data", Shortcut: "Mod+R"},
		{ID: "about", Name: "About", Description: "No shortcut"},
	}
}

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name    string
		descs   []Descriptor
		wantErr error
	}{
		{
			name:  "valid table",
			descs: testTable(),
		},
		{
			name:  "empty table",
			descs: nil,
		},
		{
			name: "duplicate id",
			descs: []Descriptor{
				{ID: "a", Shortcut: "Mod+1"},
				{ID: "a", Shortcut: "Mod+2"},
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "same chord twice",
			descs: []Descriptor{
				{ID: "a", Shortcut: "Mod+1"},
				{ID: "b", Shortcut: "mod+1"},
			},
			wantErr: ErrDuplicateShortcut,
		},
		{
			name: "shift chord shadows plain digit",
			descs: []Descriptor{
				{ID: "a", Shortcut: "Mod+Shift+1"},
				{ID: "b", Shortcut: "Mod+1"},
			},
			wantErr: ErrDuplicateShortcut,
		},
		{
			name: "shift modifier shadows s",
			descs: []Descriptor{
				{ID: "a", Shortcut: "Mod+Shift+1"},
				{ID: "b", Shortcut: "Mod+S"},
			},
			wantErr: ErrDuplicateShortcut,
		},
		{
			name: "descriptors without chords never conflict",
			descs: []Descriptor{
				{ID: "a"},
				{ID: "b", Shortcut: "Mod+"},
				{ID: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRegistry(tt.descs...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Len(t, r.All(), len(tt.descs))
		})
	}
}

func TestRegistry_Match(t *testing.T) {
	r, err := NewRegistry(testTable()...)
	require.NoError(t, err)

	tests := []struct {
		name   string
		event  KeyEvent
		wantID string
	}{
		{"digit chord", KeyEvent{Key: "1", Primary: true}, "upgrade"},
		{"second digit", KeyEvent{Key: "2", Primary: true}, "downgrade"},
		{"letter chord", KeyEvent{Key: "s", Primary: true}, "calculate"},
		{"uppercase key", KeyEvent{Key: "R", Primary: true}, "refresh"},
		{"shift does not block literal match", KeyEvent{Key: "1", Primary: true, Shift: true}, "upgrade"},
		{"no primary modifier", KeyEvent{Key: "1"}, ""},
		{"unbound chord", KeyEvent{Key: "9", Primary: true}, ""},
		{"empty key", KeyEvent{Primary: true}, ""},
		{"named key", KeyEvent{Key: KeyEnter, Primary: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := r.Match(tt.event)
			if tt.wantID == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantID, d.ID)
		})
	}
}

func TestRegistry_Filter(t *testing.T) {
	r, err := NewRegistry(testTable()...)
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query yields nothing", "", nil},
		{"name match", "refresh", []string{"refresh"}},
		{"case insensitive", "PACKAGE", []string{"upgrade", "downgrade"}},
		{"description match keeps table order", "license", []string{"upgrade", "downgrade", "calculate", "refresh"}},
		{"substring not subsequence", "upgpkg", nil},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Filter(tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, descriptorIDs(got))
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	r, err := NewRegistry(testTable()...)
	require.NoError(t, err)

	d, ok := r.Get("calculate")
	require.True(t, ok)
	assert.Equal(t, "Mod+S", d.Shortcut)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestClosestVerb(t *testing.T) {
	verbs := daylightVariant.Verbs

	tests := []struct {
		word   string
		want   string
		wantOK bool
	}{
		{"upgrad", "upgrade", true},
		{"exprt", "export", true},
		{"zzz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := closestVerb(tt.word, verbs)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
