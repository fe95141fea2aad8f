// Package version parses the version strings the appliance components
// publish: `git describe` output for the core scripts and the
// "TAG BRANCH COMMIT" line shipped with the web interface.
package version

import "strings"

// Version identifies a release of one appliance component.
type Version struct {
	Tag    string `json:"tag"`
	Branch string `json:"branch"`
	Hash   string `json:"hash"`
}

// ParseGitDescribe parses `git describe` output in the form
// "TAG-NUMBER-gCOMMIT". The tag is kept only when NUMBER is zero, meaning
// the checkout sits exactly on the tagged commit; otherwise the build is a
// development snapshot and only branch and hash identify it.
func ParseGitDescribe(gitVersion, branch string) (Version, bool) {
	parts := strings.Split(gitVersion, "-")
	if len(parts) != 3 {
		return Version{}, false
	}

	tag := ""
	if parts[1] == "0" {
		tag = parts[0]
	}

	// Drop the leading "g" that git describe puts before the hash.
	hash := strings.TrimPrefix(parts[2], "g")

	return Version{Tag: tag, Branch: branch, Hash: hash}, true
}

// ParseWebVersion parses the web interface VERSION line, formatted as
// "TAG BRANCH COMMIT". The tag field may be empty for development builds.
func ParseWebVersion(raw string) (Version, bool) {
	parts := strings.Split(strings.TrimRight(raw, "\n"), " ")
	if len(parts) != 3 {
		return Version{}, false
	}

	return Version{Tag: parts[0], Branch: parts[1], Hash: parts[2]}, true
}

// FirstField returns the first space-separated field of a version or branch
// file. Those files hold one field per component ("CORE WEB FTL"); the core
// component comes first.
func FirstField(raw string) string {
	field, _, _ := strings.Cut(strings.TrimSpace(raw), " ")
	return field
}
