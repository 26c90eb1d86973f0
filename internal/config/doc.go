// Package config resolves the slumber startup configuration.
//
// Configuration comes from exactly one of two mutually exclusive sources:
//   - a TOML configuration file (slumber.toml by default), or
//   - SLUMBER_-prefixed environment variables, used only when the file does
//     not exist.
//
// Fields are never merged across the two sources. Every field has a
// documented default, so the resolved tree is always fully populated:
// addresses are concrete (hostnames resolved), the backend working directory
// is derived relative to the file location when file-sourced, and a declared
// config format version is checked against the minimum expected version
// (warnings only, never fatal).
//
// The main entry point is [Load]. The returned [Config] is immutable after
// construction and safe to share across goroutines without locking.
package config
