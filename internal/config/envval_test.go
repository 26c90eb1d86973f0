// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The slumber authors

package config

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mapLookup backs an envSource with a plain map so tests never touch the
// real process environment.
func mapLookup(vars map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDecodeEscapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"newline and tab", `a\nb\tc`, "a\nb\tc"},
		{"carriage return", `a\rb`, "a\rb"},
		{"double backslash to single", `a\\b`, `a\b`},
		{"backslash only", `\\`, `\`},
		{"two literal backslashes", `\\\\`, `\\`},
		{"no escapes passthrough", "plain text", "plain text"},
		{"empty", "", ""},
		{"mixed", `line1\nline2\\end`, "line1\nline2\\end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decodeEscapes(tt.input))
		})
	}
}

func TestEnvSource_String(t *testing.T) {
	env := envSource{lookup: mapLookup(map[string]string{
		"SLUMBER_MOTD_SLEEPING": `gone\nfishing`,
	})}

	// Present values are escape-decoded; absent values yield the default
	// untouched.
	assert.Equal(t, "gone\nfishing", env.String("MOTD_SLEEPING", "default"))
	assert.Equal(t, `def\nault`, env.String("MOTD_STARTING", `def\nault`))
}

func TestEnvSource_Bool(t *testing.T) {
	tests := []struct {
		value    string
		def      bool
		expected bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"Yes", false, true},
		{"on", false, true},
		{"ON", false, true},
		{"false", true, false},
		{"False", true, false},
		{"0", true, false},
		{"no", true, false},
		{"off", true, false},
		{"OfF", true, false},
		// Anything else falls back to the default, whichever it is.
		{"maybe", true, true},
		{"maybe", false, false},
		{"2", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			env := envSource{lookup: mapLookup(map[string]string{
				"SLUMBER_LOCKOUT_ENABLED": tt.value,
			})}

			assert.Equal(t, tt.expected, env.Bool("LOCKOUT_ENABLED", tt.def))
		})
	}
}

func TestEnvSource_Bool_Absent(t *testing.T) {
	env := envSource{lookup: mapLookup(nil)}

	assert.True(t, env.Bool("SERVER_FREEZE_PROCESS", true))
	assert.False(t, env.Bool("SERVER_WAKE_ON_START", false))
}

func TestEnvSource_Uint16(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected uint16
	}{
		{"valid", "25575", 25575},
		{"zero", "0", 0},
		{"garbage", "not-a-number", 9999},
		{"negative", "-1", 9999},
		{"overflow", "70000", 9999},
		{"float", "25.5", 9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := envSource{lookup: mapLookup(map[string]string{
				"SLUMBER_RCON_PORT": tt.value,
			})}

			assert.Equal(t, tt.expected, env.Uint16("RCON_PORT", 9999))
		})
	}
}

func TestEnvSource_Uint32(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected uint32
	}{
		{"valid", "300", 300},
		{"garbage", "soon", 60},
		{"negative", "-5", 60},
		{"overflow", "99999999999", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := envSource{lookup: mapLookup(map[string]string{
				"SLUMBER_TIME_SLEEP_AFTER": tt.value,
			})}

			assert.Equal(t, tt.expected, env.Uint32("TIME_SLEEP_AFTER", 60))
		})
	}
}

func TestEnvSource_Addr(t *testing.T) {
	t.Run("absent yields default", func(t *testing.T) {
		env := envSource{lookup: mapLookup(nil)}

		addr := env.Addr("SERVER_ADDRESS", defaultServerAddress)

		assert.Equal(t, netip.MustParseAddrPort("127.0.0.1:25566"), addr)
	})

	t.Run("literal IP and port", func(t *testing.T) {
		env := envSource{lookup: mapLookup(map[string]string{
			"SLUMBER_SERVER_ADDRESS": "10.0.0.1:25570",
		})}

		addr := env.Addr("SERVER_ADDRESS", defaultServerAddress)

		assert.Equal(t, netip.MustParseAddrPort("10.0.0.1:25570"), addr)
	})

	t.Run("malformed value falls back silently", func(t *testing.T) {
		env := envSource{lookup: mapLookup(map[string]string{
			"SLUMBER_SERVER_ADDRESS": "no-port-here",
		})}

		addr := env.Addr("SERVER_ADDRESS", defaultServerAddress)

		assert.Equal(t, netip.MustParseAddrPort("127.0.0.1:25566"), addr)
	})
}

func TestEnvSource_List(t *testing.T) {
	t.Run("splits on commas and trims", func(t *testing.T) {
		env := envSource{lookup: mapLookup(map[string]string{
			"SLUMBER_JOIN_METHODS": " hold , kick,forward ",
		})}

		assert.Equal(t, []string{"hold", "kick", "forward"}, env.List("JOIN_METHODS", nil))
	})

	t.Run("absent yields a copy of the default", func(t *testing.T) {
		env := envSource{lookup: mapLookup(nil)}
		def := []string{"hold", "kick"}

		got := env.List("JOIN_METHODS", def)

		assert.Equal(t, def, got)
		got[0] = "mutated"
		assert.Equal(t, "hold", def[0])
	})

	t.Run("empty value is a single empty element", func(t *testing.T) {
		env := envSource{lookup: mapLookup(map[string]string{
			"SLUMBER_JOIN_METHODS": "",
		})}

		assert.Equal(t, []string{""}, env.List("JOIN_METHODS", []string{"hold"}))
	})
}
