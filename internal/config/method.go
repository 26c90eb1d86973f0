package config

import (
	"fmt"
	"strings"
)

// Method is a join strategy applied to an incoming connection while the
// backend server is not yet ready.
type Method uint8

const (
	// MethodKick kicks the client with a message.
	MethodKick Method = iota

	// MethodHold holds the client connection until the backend is ready.
	MethodHold

	// MethodForward forwards the connection to another host.
	MethodForward

	// MethodLobby keeps the client in a temporary fake lobby until the
	// backend is ready.
	MethodLobby
)

// ParseMethod parses a join method name, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kick":
		return MethodKick, nil
	case "hold":
		return MethodHold, nil
	case "forward":
		return MethodForward, nil
	case "lobby":
		return MethodLobby, nil
	default:
		return 0, fmt.Errorf("unknown join method %q", s)
	}
}

func (m Method) String() string {
	switch m {
	case MethodKick:
		return "kick"
	case MethodHold:
		return "hold"
	case MethodForward:
		return "forward"
	case MethodLobby:
		return "lobby"
	default:
		return "unknown"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so method lists decode
// directly from TOML. An unknown name is a decode error, which is fatal for
// file-sourced configuration.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for the effective-config
// dump.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
