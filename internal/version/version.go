package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/cardrender/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/cardrender/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/cardrender/internal/version.Date={{.Date}}
)

// String returns the one-line version summary
func String() string {
	return fmt.Sprintf("cardrender %s (commit %s, built %s)", Version, Commit, Date)
}
