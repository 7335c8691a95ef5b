package config

import "fmt"

// Variables below are set at build time via -ldflags
var (
	// Commit is the git commit hash the binary was built from
	Commit = "unknown"
	// BuildDate is the RFC3339 timestamp of the build
	BuildDate = "unknown"
)

// GetFormattedBuildArgs returns "<module> @ <commit> (<build date>)"
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
