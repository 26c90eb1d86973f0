// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The slumber authors

package config

import (
	"os"
	"path/filepath"

	"github.com/slumbermc/slumber/internal/logger"
)

// DefaultFile is the default configuration file location.
const DefaultFile = "slumber.toml"

// envPrefix namespaces every configuration environment variable.
const envPrefix = "SLUMBER_"

// minVersion is the configuration format version the current field set was
// written for. Files declaring an older version get a warning at load time.
const minVersion = "0.2.8"

// Config is the fully-resolved configuration tree. It is immutable after
// loading and shared read-only by every downstream consumer, so no locking
// is required.
type Config struct {
	// path is the provenance of a file-sourced configuration, used as the
	// base for relative filesystem settings. Empty when loaded from the
	// environment.
	path string

	Public   Public   `toml:"public"`
	Server   Server   `toml:"server"`
	Time     Time     `toml:"time"`
	Motd     Motd     `toml:"motd"`
	Join     Join     `toml:"join"`
	Lockout  Lockout  `toml:"lockout"`
	Rcon     Rcon     `toml:"rcon"`
	Advanced Advanced `toml:"advanced"`
	Meta     Meta     `toml:"config"`
}

// Load resolves the configuration from the candidate file path.
//
// If path names an existing regular file it is parsed as TOML, with a
// non-fatal version compatibility check. Otherwise the tree is built from
// SLUMBER_-prefixed environment variables, where only SLUMBER_SERVER_COMMAND
// is required. Exactly one source is ever used; fields are never merged
// across the two.
//
// Fatal failures are returned as a hint-bearing *Error and never yield a
// partial configuration.
func Load(path string, log *logger.Logger) (*Config, error) {
	return load(path, osLookup, log)
}

func load(path string, lookup lookupFunc, log *logger.Logger) (*Config, error) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return loadFile(path, log)
	}

	log.Info().Str("path", path).Msg("config file not found, using environment variables and defaults")
	return loadEnv(lookup, log)
}

// Path returns the file the configuration was loaded from, and whether it
// was file-sourced at all.
func (c *Config) Path() (string, bool) {
	return c.path, c.path != ""
}

// ServerDirectory resolves the backend server's working directory. For a
// file-sourced configuration a relative declared directory is joined onto
// the directory containing the configuration file; an absolute declared
// directory and an environment-sourced directory are used as-is.
//
// The directory is not checked for existence; that is left to the caller
// that spawns the backend process.
func (c *Config) ServerDirectory() string {
	if c.path == "" || filepath.IsAbs(c.Server.Directory) {
		return c.Server.Directory
	}

	return filepath.Join(filepath.Dir(c.path), c.Server.Directory)
}
