package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/licensedesk/licensedesk/internal/types"
)

func TestRenderMessage(t *testing.T) {
	theme := ThemeGold()

	tests := []struct {
		name       string
		text       string
		msgType    types.MessageType
		spinner    string
		width      int
		wantPrefix string
		wantEmpty  bool
	}{
		{name: "empty", text: "", wantEmpty: true, width: 80},
		{name: "success", text: "Done", msgType: types.MessageTypeSuccess, width: 80, wantPrefix: "⏺ Done"},
		{name: "error", text: "Oops", msgType: types.MessageTypeError, width: 80, wantPrefix: "⏺ Oops"},
		{name: "loading with spinner", text: "Refreshing", msgType: types.MessageTypeLoading, spinner: "*", width: 80, wantPrefix: "* Refreshing"},
		{name: "loading without spinner", text: "Refreshing", msgType: types.MessageTypeLoading, width: 80, wantPrefix: "⏺ Refreshing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderMessage(tt.text, tt.msgType, theme, tt.spinner, tt.width)
			if tt.wantEmpty {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.wantPrefix, ansi.Strip(got))
		})
	}
}

func TestRenderMessage_Truncates(t *testing.T) {
	long := strings.Repeat("x", 200)
	got := ansi.Strip(RenderMessage(long, types.MessageTypeInfo, ThemeGold(), "", 40))

	body := strings.TrimPrefix(got, "⏺ ")
	assert.True(t, strings.HasSuffix(body, "…"))
	assert.Equal(t, 33, utf8.RuneCountInString(body))
}

func TestRenderMessage_MinimumWidth(t *testing.T) {
	long := strings.Repeat("y", 100)
	got := ansi.Strip(RenderMessage(long, types.MessageTypeInfo, ThemeGold(), "", 5))

	assert.Equal(t, 20, utf8.RuneCountInString(strings.TrimPrefix(got, "⏺ ")))
}
