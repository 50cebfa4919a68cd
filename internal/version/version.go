// Package version exposes the release version embedded at build time.
package version

import (
	_ "embed"
	"strings"
)

// Name is the binary name shown in version output.
const Name = "gigasecond"

//go:embed VERSION
var versionContent string

// Get returns the current version, with whitespace trimmed
func Get() string {
	return strings.TrimSpace(versionContent)
}

// String returns the version line printed by the CLI.
func String() string {
	return Name + " version " + Get()
}
