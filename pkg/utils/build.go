// Build information of the binaries, filled in through -ldflags "-X github.com/nobletooth/dlist/pkg/utils.Version=..."
// CAUTION: These variables are referenced by the build scripts; renaming them silently drops the build info.

package utils

import (
	"log/slog"
	"strconv"
	"time"
)

const devVersion = "v0.0.0-dev" // Reported when the binary was built without version info.

var (
	TestMode   string // Should be true when running tests.
	IsTestMode bool
	Version    string
	Commit     string
	BuildTime  string
	StartTime  time.Time
)

func init() {
	StartTime = time.Now()

	// If build info is not set, make that clear.
	if Version == "" {
		Version = devVersion
	}
	if Commit == "" {
		Commit = "unknown"
	}
	if BuildTime == "" {
		BuildTime = "unknown"
	}
	if len(TestMode) > 0 {
		if isTestMode, err := strconv.ParseBool(TestMode); err == nil {
			IsTestMode = isTestMode
		} else {
			slog.Warn("Failed to parse TestMode build flag, defaulting to false", "error", err)
		}
	}
}
