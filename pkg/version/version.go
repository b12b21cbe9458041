// Package version exposes build metadata injected at link time:
//
//	go build -ldflags "-X github.com/rshade/tinyforest/pkg/version.version=v1.0.0 \
//	  -X github.com/rshade/tinyforest/pkg/version.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/rshade/tinyforest/pkg/version.buildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import "fmt"

//nolint:gochecknoglobals // Set by the linker.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the release version, "dev" for local builds.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the UTC build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, gitCommit, buildDate)
}
