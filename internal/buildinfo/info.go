// Package buildinfo holds version metadata stamped in at link time:
//
//	go build -ldflags "-X github.com/cleared-dev/acjournal/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

var (
	// Version will be set via ldflags during build.
	Version = "dev"
	// Commit will be set via ldflags during build.
	Commit = "none"
	// Date will be set via ldflags during build.
	Date = "unknown"
)

// String is the one-line version reported by `acjournal --version`.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
