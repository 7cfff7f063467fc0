// Package buildinfo reports version/commit metadata for cmd/orca's
// --version flag. Version and Commit are overridden at link time via
// -ldflags "-X github.com/Becheler/orca/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	// Version is the release tag, or "dev" for a local build.
	Version = "dev"
	// Commit is the short VCS commit hash, or "none" for a local build.
	Commit = "none"
)

// String formats Version and Commit for --version output.
func String() string {
	return fmt.Sprintf("orca %s (%s)", Version, Commit)
}
