// Package version holds build information, set with -ldflags at release.
package version

import "runtime"

var (
	// GitRelease is the release tag.
	GitRelease = "dev"
	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"
	// GitCommitDate is the commit date.
	GitCommitDate = "unknown"
	// GoInfo is the Go version and platform of the build.
	GoInfo = runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH
)
