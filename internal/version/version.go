package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/kn327/NetworkLocationInfo/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/kn327/NetworkLocationInfo/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/kn327/NetworkLocationInfo/internal/version.Date={{.Date}}
)
