package config

import (
	"os"
	"strconv"
	"strings"
)

// BuildMode is injected at build time via -ldflags
// "-X github.com/example/timeapp/internal/config.BuildMode=release". Builds
// without it, such as go run, are treated as debug builds.
var BuildMode string

// Version is injected at build time alongside BuildMode.
var Version = "dev"

const (
	ModeDebug   = "debug"
	ModeRelease = "release"
)

// Mode returns the normalized build mode.
func Mode() string {
	if forced, ok := debugOverride(); ok {
		if forced {
			return ModeDebug
		}
		return ModeRelease
	}
	if strings.EqualFold(strings.TrimSpace(BuildMode), ModeRelease) {
		return ModeRelease
	}
	return ModeDebug
}

// Debug reports whether this process runs with debug capabilities attached.
func Debug() bool {
	return Mode() == ModeDebug
}

func debugOverride() (bool, bool) {
	raw := strings.TrimSpace(os.Getenv("TIMEAPP_DEBUG"))
	if raw == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return parsed, true
}
