package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licensedesk/licensedesk/internal/types"
)

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name     string
		cmd      func() types.StatusMsg
		wantText string
		wantType types.MessageType
	}{
		{
			name:     "error",
			cmd:      func() types.StatusMsg { return ErrorCmd("Export failed: %v", "disk full")().(types.StatusMsg) },
			wantText: "Export failed: disk full",
			wantType: types.MessageTypeError,
		},
		{
			name:     "success",
			cmd:      func() types.StatusMsg { return SuccessCmd("Exported %d rows", 4)().(types.StatusMsg) },
			wantText: "Exported 4 rows",
			wantType: types.MessageTypeSuccess,
		},
		{
			name:     "info",
			cmd:      func() types.StatusMsg { return InfoCmd("Hello")().(types.StatusMsg) },
			wantText: "Hello",
			wantType: types.MessageTypeInfo,
		},
		{
			name:     "status",
			cmd:      func() types.StatusMsg { return StatusCmd("Refreshing", types.MessageTypeLoading)().(types.StatusMsg) },
			wantText: "Refreshing",
			wantType: types.MessageTypeLoading,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.cmd()
			assert.Equal(t, tt.wantText, msg.Message)
			assert.Equal(t, tt.wantType, msg.Type)
		})
	}
}

func TestStatusCmd_EmptyIsNil(t *testing.T) {
	assert.Nil(t, StatusCmd("", types.MessageTypeInfo))
}

func TestWrapError(t *testing.T) {
	base := errors.New("permission denied")
	err := WrapError(base, "write export %s", "/tmp/x.csv")

	require.Error(t, err)
	assert.Equal(t, "write export /tmp/x.csv: permission denied", err.Error())
	assert.ErrorIs(t, err, base)
}
