package version

import (
	"fmt"
	"runtime"
)

// Build-time variables injected via ldflags
var (
	// Version is the semantic version, injected at build time
	Version = "dev"

	// GitCommit is the git commit hash, injected at build time
	GitCommit = "unknown"

	// BuildDate is the build date, injected at build time
	BuildDate = "unknown"
)

// Full returns the version with the short commit hash when known.
func Full() string {
	if len(GitCommit) >= 7 && GitCommit != "unknown" {
		return fmt.Sprintf("%s (%s)", Version, GitCommit[:7])
	}
	return Version
}

// Details returns the multi-line text printed by the version command.
func Details() string {
	s := fmt.Sprintf("file-split %s\n", Full())
	if BuildDate != "unknown" {
		s += fmt.Sprintf("Build date: %s\n", BuildDate)
	}
	s += fmt.Sprintf("Go version: %s\n", runtime.Version())
	return s
}
