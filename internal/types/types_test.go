package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name string
		msg  StatusMsg
		want MessageType
	}{
		{"info", InfoMsg("a"), MessageTypeInfo},
		{"success", SuccessMsg("a"), MessageTypeSuccess},
		{"error", ErrorStatusMsg("a"), MessageTypeError},
		{"loading", LoadingMsg("a"), MessageTypeLoading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "a", tt.msg.Message)
			assert.Equal(t, tt.want, tt.msg.Type)
			assert.Equal(t, tt.name, tt.msg.Type.String())
		})
	}
}
