// Package version carries build information injected at link time, e.g.
//
//	go build -ldflags "-X github.com/arthur-debert/lintlayer/internal/version.Version=v0.3.0"
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version with its commit, for logs
func String() string {
	if Commit == "unknown" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
