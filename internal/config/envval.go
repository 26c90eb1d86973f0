// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The slumber authors

package config

import (
	"net/netip"
	"os"
	"strconv"
	"strings"
)

// lookupFunc reads a single raw environment value. Injectable so the
// environment-sourced builders can be exercised in tests without touching
// the real process environment.
type lookupFunc func(key string) (string, bool)

func osLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// envSource reads SLUMBER_-namespaced variables through a lookupFunc and
// coerces them to typed values.
//
// Every accessor is total: on absence or coercion failure it silently
// substitutes the supplied default and never fails. Availability wins over
// strictness for optional settings.
type envSource struct {
	lookup lookupFunc
}

// raw returns the raw, undecoded value for a prefixed variable name.
func (e envSource) raw(name string) (string, bool) {
	return e.lookup(envPrefix + name)
}

// String returns the escape-decoded value of a variable, or def when the
// variable is absent.
func (e envSource) String(name, def string) string {
	v, ok := e.raw(name)
	if !ok {
		return def
	}

	return decodeEscapes(v)
}

// Bool parses a boolean variable. Accepted, case-insensitively:
// true/1/yes/on and false/0/no/off. Anything else yields def.
func (e envSource) Bool(name string, def bool) bool {
	v, ok := e.raw(name)
	if !ok {
		return def
	}

	switch strings.ToLower(v) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return def
	}
}

// Uint16 parses an unsigned 16-bit variable, yielding def when absent or
// unparsable.
func (e envSource) Uint16(name string, def uint16) uint16 {
	v, ok := e.raw(name)
	if !ok {
		return def
	}

	n, err := strconv.ParseUint(v, 10, 16)
	if err != nil {
		return def
	}

	return uint16(n)
}

// Uint32 parses an unsigned 32-bit variable, yielding def when absent or
// unparsable.
func (e envSource) Uint32(name string, def uint32) uint32 {
	v, ok := e.raw(name)
	if !ok {
		return def
	}

	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return def
	}

	return uint32(n)
}

// Addr resolves a host:port variable to a concrete address. Absent,
// malformed, and unresolvable values all yield def, which must be a literal
// IP and port.
func (e envSource) Addr(name, def string) netip.AddrPort {
	fallback := netip.MustParseAddrPort(def)

	v, ok := e.raw(name)
	if !ok {
		return fallback
	}

	addr, err := resolveAddr(v)
	if err != nil {
		return fallback
	}

	return addr
}

// List splits a comma-separated variable into elements with surrounding
// whitespace trimmed, yielding a copy of def when the variable is absent.
func (e envSource) List(name string, def []string) []string {
	v, ok := e.raw(name)
	if !ok {
		return append([]string(nil), def...)
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}

	return out
}

// decodeEscapes rewrites literal backslash-escape sequences in
// environment-sourced text into their control-character equivalents.
// Backslash un-escaping runs last so an already-substituted control
// character is not processed a second time.
func decodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	s = strings.ReplaceAll(s, `\t`, "\t")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}
