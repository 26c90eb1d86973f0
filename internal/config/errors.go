package config

import "errors"

// ErrMissingCommand indicates that no backend start command was provided.
// The start command is the only setting without a default: file-sourced
// configuration must set server.command, environment-sourced configuration
// must set SLUMBER_SERVER_COMMAND.
var ErrMissingCommand = errors.New("missing server start command")

// Error is a fatal configuration failure carrying remediation hints for the
// user. The engine never returns a partial configuration alongside one.
type Error struct {
	err error

	// Hints are human-readable remediation suggestions, printed by the
	// binary below the error message.
	Hints []string
}

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

func fatal(err error, hints ...string) *Error {
	return &Error{err: err, Hints: hints}
}
