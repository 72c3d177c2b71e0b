package common

import (
	"fmt"
	"runtime/debug"
)

// Version and GitCommit can be set via ldflags at build time
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func GetModuleBuildInfo() (string, string, bool) {
	if Version != "dev" {
		return Version, GitCommit, true
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		version := info.Main.Version
		gitCommit := GitCommit

		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				gitCommit = setting.Value
				break
			}
		}

		return version, gitCommit, true
	}
	return "", "", false
}

// GetBuildIdentifier is sent in the User-Agent of every API request.
func GetBuildIdentifier() string {
	version, _, ok := GetModuleBuildInfo()
	if !ok || len(version) == 0 {
		return Version
	}
	return version
}

func GetVersion() string {
	version, gitCommit, ok := GetModuleBuildInfo()
	if !ok {
		return "unknown"
	}
	if len(gitCommit) > 8 {
		gitCommit = gitCommit[:8]
	}
	return fmt.Sprintf("%s (git: %s)", version, gitCommit)
}
