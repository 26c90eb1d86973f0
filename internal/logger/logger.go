// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The slumber authors

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout slumber.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger writing JSON entries to w.
//
// Every entry carries:
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a "time" timestamp field.
func New(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a production *Logger for the given role label,
// writing to os.Stdout.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
