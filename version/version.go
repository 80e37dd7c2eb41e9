package version

import (
	"fmt"
	"runtime"
)

// Build information, stamped at build time via ldflags.
var (
	// Version is the semantic version when the binary was built from a tag
	Version = "dev"

	// CommitHash is the git commit the binary was built from
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"
)

// Info bundles version and build information for display
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version line
func (i Info) String() string {
	return fmt.Sprintf("axc %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
}
