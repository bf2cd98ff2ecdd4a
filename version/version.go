// Package version reports the build of the rytm tools.
package version

import (
	"runtime/debug"
	"strings"
)

// Version can be set at build time:
// go build -ldflags "-X github.com/rytmctl/rytm/version.Version=$(git describe --dirty)"
var Version string

// Hash is the short VCS revision embedded by the go tool, with a -dirty
// suffix for modified trees, or empty when unknown.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return revision(info.Settings)
}()

func revision(settings []debug.BuildSetting) string {
	var rev string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}

// String returns Version if set, otherwise Hash, otherwise "devel".
func String() string {
	if Version != "" {
		return strings.TrimPrefix(Version, "v")
	}
	if Hash != "" {
		return Hash
	}
	return "devel"
}
