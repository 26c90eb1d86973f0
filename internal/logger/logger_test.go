package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONWithRole(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	log := New(&buf, "test-role")

	// Act
	log.Info().Str("key", "value").Msg("hello")

	// Assert
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()

	// Must not panic and must not write anywhere.
	log.Error().Msg("should vanish")
}
