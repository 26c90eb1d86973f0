package config

import (
	"github.com/hashicorp/go-version"

	"github.com/slumbermc/slumber/internal/logger"
)

// versionStatus classifies a declared configuration format version against
// minVersion.
type versionStatus int

const (
	versionOK versionStatus = iota
	versionUnknown
	versionOlder
	versionInvalid
)

// parsedMinVersion is parsed once at init so a malformed minVersion
// constant fails loudly instead of on every check.
var parsedMinVersion = version.Must(version.NewVersion(minVersion))

// classifyVersion compares the declared version with minVersion using
// dotted-numeric ordering, not lexical comparison.
func classifyVersion(declared string) versionStatus {
	if declared == "" {
		return versionUnknown
	}

	v, err := version.NewVersion(declared)
	if err != nil {
		return versionInvalid
	}

	if v.LessThan(parsedMinVersion) {
		return versionOlder
	}

	return versionOK
}

// warnVersion logs the outcome of the version compatibility check. All
// outcomes are non-fatal; a current version produces no output.
func warnVersion(log *logger.Logger, declared string) {
	switch classifyVersion(declared) {
	case versionUnknown:
		log.Warn().Msg("config version unknown, it may be outdated")
	case versionOlder:
		log.Warn().Str("version", declared).Msg("config is for an older slumber version, you may need to update it")
	case versionInvalid:
		log.Warn().Str("version", declared).Msg("config version is invalid, you may need to update it")
	}
}
