// Package build provides domain entities for build information.
package build

import (
	"runtime/debug"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// WithDefaults fills blank fields from the embedded module build info.
func (i Info) WithDefaults() Info {
	bi, ok := debug.ReadBuildInfo()
	if i.GoVersion == "" && ok {
		i.GoVersion = bi.GoVersion
	}
	if i.Version == "" {
		i.Version = "dev"
		if ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			i.Version = bi.Main.Version
		}
	}
	if i.Commit == "" && ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				i.Commit = s.Value
			}
		}
	}
	if i.Commit == "" {
		i.Commit = "unknown"
	}
	if i.BuildDate == "" {
		i.BuildDate = "unknown"
	}
	return i
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/webdeck"
}
