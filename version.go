// Package vex is the root of the vex modal text editor. It carries the
// release version; the editing core lives in the buffer and editor
// packages.
package vex

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strconv"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var releaseRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Release is a parsed SemVer release number. Pre-release and build
// suffixes are kept verbatim in Suffix.
type Release struct {
	Major, Minor, Patch int
	Suffix              string
}

// ParseRelease parses a SemVer 2.0.0 string without the leading "v".
func ParseRelease(s string) (Release, bool) {
	m := releaseRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Release{}, false
	}
	var r Release
	r.Major, _ = strconv.Atoi(m[1])
	r.Minor, _ = strconv.Atoi(m[2])
	r.Patch, _ = strconv.Atoi(m[3])
	r.Suffix = strings.TrimSpace(s)[len(m[1])+len(m[2])+len(m[3])+2:]
	return r, true
}

// Version is the embedded release version, without "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag is Version in git tag form.
func VersionTag() string {
	return "v" + Version()
}

// BuildString is what `vex -version` prints: the tag, plus the VCS
// revision when the binary was built from a checkout.
func BuildString() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return VersionTag()
	}
	return buildString(VersionTag(), info.Settings)
}

func buildString(tag string, settings []debug.BuildSetting) string {
	var rev string
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return tag
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if dirty {
		rev += "-dirty"
	}
	return tag + " (" + rev + ")"
}
