// ABOUTME: Build version information.
// ABOUTME: Values are set via ldflags at build time.

package app

import "fmt"

// Example: go build -ldflags "-X github.com/harper/litenotes/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
