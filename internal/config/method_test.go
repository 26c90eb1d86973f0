package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected Method
	}{
		{"kick", MethodKick},
		{"hold", MethodHold},
		{"forward", MethodForward},
		{"lobby", MethodLobby},
		{"KICK", MethodKick},
		{"Hold", MethodHold},
		{" lobby ", MethodLobby},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMethod(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestParseMethod_Unknown(t *testing.T) {
	_, err := ParseMethod("teleport")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleport")
}

func TestMethod_TextRoundTrip(t *testing.T) {
	for _, m := range []Method{MethodKick, MethodHold, MethodForward, MethodLobby} {
		text, err := m.MarshalText()
		require.NoError(t, err)

		var parsed Method
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, m, parsed)
	}
}

func TestMethod_UnmarshalUnknown(t *testing.T) {
	var m Method

	assert.Error(t, m.UnmarshalText([]byte("teleport")))
}
