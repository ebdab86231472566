// Package version holds build-time variables injected by ldflags.
package version

// These vars are overwritten at link time:
//
//	-X github.com/d9705996/kysai/internal/version.Version=v0.1.0
//	-X github.com/d9705996/kysai/internal/version.Commit=abc1234
//	-X github.com/d9705996/kysai/internal/version.Date=2026-10-01T00:00:00Z
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
