package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time via ldflags:
//
//	go build -ldflags="-X github.com/kvdijken/Settings/internal/version.Version=v1.0.0 \
//	                   -X github.com/kvdijken/Settings/internal/version.Commit=abc123"
//
// Unset values are filled from the VCS stamp in the build info, or fall back
// to "dev".
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			fromBuildSettings(info.Settings)
		}
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildSettings fills Version and Commit from the vcs.* build settings.
func fromBuildSettings(settings []debug.BuildSetting) {
	var revision, modified, stamp string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			stamp = s.Value
		}
	}

	if Commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		Commit = revision
		if modified == "true" {
			Commit += "-dirty"
		}
	}

	if Version == "" && stamp != "" {
		if t, err := time.Parse(time.RFC3339, stamp); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
