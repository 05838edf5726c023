// Package version reports which core2 build is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via ldflags. Empty or "unknown" values fall back to the
// build info the Go toolchain embeds in the binary.
var (
	Version   = ""
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info describes a build.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	Dirty     bool
}

var readBuildInfo = debug.ReadBuildInfo

// Get returns the ldflags values, completed from the embedded build info.
func Get() Info {
	bi, _ := readBuildInfo()
	return resolve(Info{Version: Version, Commit: Commit, BuildTime: BuildTime}, bi)
}

// String returns e.g. "core2 v0.3.0 (commit: 1a2b3c4, built: 2024-05-01T09:00:00Z)".
func String() string {
	info := Get()
	commit := shortCommit(info.Commit)
	if info.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("core2 %s (commit: %s, built: %s)", info.Version, commit, info.BuildTime)
}

func resolve(info Info, bi *debug.BuildInfo) Info {
	if bi != nil {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "unknown" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "unknown" {
					info.BuildTime = s.Value
				}
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	return info
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
