// Package buildinfo holds version information stamped in at build time:
//
//	go build -ldflags "-X github.com/localgod/plantkit/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/localgod/plantkit/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/localgod/plantkit/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/plantkit
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// CacheScope returns the cache key prefix for this build. Development
// builds also include the commit so rebuilt binaries do not reuse entries.
func CacheScope() string {
	if Version == "dev" {
		return fmt.Sprintf("%s-%s:", Version, Commit)
	}
	return Version + ":"
}
