// Package version provides build-time version information for shade.
// Version information is injected at build time using ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the application.
	// Injected at build time via: -ldflags "-X github.com/jmylchreest/shade/internal/version.Version=x.y.z".
	Version = "dev"

	// Commit is the git commit hash of the build.
	// Injected at build time via: -ldflags "-X github.com/jmylchreest/shade/internal/version.Commit=$(git rev-parse HEAD)".
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// Info holds all version information for the application.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns all version information as a structured type.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version string.
func String() string {
	return GetInfo().String()
}

// String formats i as a single line. Commits are shortened to 8 characters.
func (i Info) String() string {
	if i.Commit != "unknown" && i.Date != "unknown" {
		commit := i.Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		return fmt.Sprintf("shade version %s (commit: %s, built: %s, %s, %s)",
			i.Version, commit, i.Date, i.GoVersion, i.Platform)
	}
	return fmt.Sprintf("shade version %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return Version
}
